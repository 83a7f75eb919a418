package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type idParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// parseID binds the :id path parameter. On failure the 400 response has
// already been written.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	var p idParam
	if !validation.BindURI(c, &p) {
		return uuid.Nil, false
	}
	return uuid.MustParse(p.ID), true
}

// idString renders id, leaving unsaved records without one.
func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// StringList decodes either a single JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}

	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return fmt.Errorf("expected a string or an array of strings: %w", err)
	}
	*l = ss
	return nil
}
