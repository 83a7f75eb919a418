package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func writeInternalError(c *gin.Context, code, message string, err error) {
	log.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("code", code).
		Str("path", c.FullPath()).
		Msg(message)

	writeError(c, http.StatusInternalServerError, code, message)
}

// errorWriter turns catalog errors about records of type E, blocked by
// dependents of type D, into responses.
type errorWriter[E, D any] struct {
	name      string
	key       string
	depKey    string
	blocked   string
	entity    func(E) any
	dependent func(D) any
}

func (w errorWriter[E, D]) code() string {
	return strings.ToUpper(strings.ReplaceAll(w.name, " ", "_"))
}

// write answers for err; op is the failed operation, e.g. "create".
func (w errorWriter[E, D]) write(c *gin.Context, op string, err error) {
	var (
		verr *catalog.ValidationError[E]
		cerr *catalog.ConflictError[E]
		derr *catalog.DependentsError[E, D]
	)

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"code":    "VALIDATION_FAILED",
			"message": "validation failed",
			"errors":  verr.Errors,
			w.key:     w.entity(verr.Candidate),
		})

	case errors.As(err, &cerr):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"code":    w.code() + "_EXISTS",
			"message": capitalize(w.name) + " already exists",
			w.key:     w.entity(cerr.Existing),
		})

	case errors.As(err, &derr):
		deps := make([]any, 0, len(derr.Dependents))
		for _, d := range derr.Dependents {
			deps = append(deps, w.dependent(d))
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"code":    w.code() + "_HAS_DEPENDENTS",
			"message": w.blocked,
			w.key:     w.entity(derr.Entity),
			w.depKey:  deps,
		})

	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, w.code()+"_NOT_FOUND", w.name+" not found")

	default:
		writeInternalError(c,
			w.code()+"_"+strings.ToUpper(op)+"_FAILED",
			"failed to "+op+" "+w.name,
			err,
		)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
