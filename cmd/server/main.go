package main

// @title           Shelfshare Catalog API
// @version         1.0
// @description     Library catalog of authors, genres, books and book copies.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/config"
	"github.com/snnyvrz/shelfshare/internal/db"
	"github.com/snnyvrz/shelfshare/internal/docs"
	"github.com/snnyvrz/shelfshare/internal/handler"
	"github.com/snnyvrz/shelfshare/internal/logger"
	"github.com/snnyvrz/shelfshare/internal/middleware"
	"github.com/snnyvrz/shelfshare/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.2.0"

func main() {
	startTime := time.Now()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	svc := catalog.NewService(repository.NewStore(database))
	metrics := middleware.NewMetrics()

	e := gin.New()
	e.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		metrics.Middleware(),
	)

	if err := e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	}); err != nil {
		log.Fatal().Err(err).Msg("invalid trusted proxies")
	}

	handler.NewHealthHandler(database, startTime, appVersion).RegisterRoutes(e)
	handler.Routes(e.Group("/catalog"), svc)

	e.GET("/metrics", metrics.Handler())

	docs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("db_driver", cfg.DBDriver).
			Str("version", appVersion).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("server exited")
}
