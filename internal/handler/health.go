package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/internal/db"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Reports the database driver, whether it answers a ping and whether every catalog table is migrated
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "failed to get underlying DB",
		})
		return
	}

	driver := h.db.Dialector.Name()

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("driver", driver).Msg("readiness check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"driver": driver,
				"status": "down",
				"error":  err.Error(),
			},
		})
		return
	}

	if missing := h.missingTables(c); len(missing) > 0 {
		log.Ctx(c.Request.Context()).Warn().Strs("tables", missing).Msg("catalog schema not migrated")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"driver":         driver,
				"status":         "up",
				"missing_tables": missing,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
		"db": gin.H{
			"driver": driver,
			"status": "up",
		},
	})
}

// missingTables lists the catalog tables the database does not hold yet.
func (h *HealthHandler) missingTables(c *gin.Context) []string {
	tx := h.db.WithContext(c.Request.Context())

	var missing []string
	for _, m := range db.Models {
		if tx.Migrator().HasTable(m) {
			continue
		}
		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(m); err != nil {
			missing = append(missing, fmt.Sprintf("%T", m))
			continue
		}
		missing = append(missing, stmt.Schema.Table)
	}
	return missing
}
