package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type payload struct {
	Name string `json:"name" binding:"required"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things/:id", func(c *gin.Context) {
		var p idParam
		if !BindURI(c, &p) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID})
	})
	r.POST("/things", func(c *gin.Context) {
		var p payload
		if !BindAndValidateJSON(c, &p) {
			return
		}
		c.JSON(http.StatusOK, p)
	})
	return r
}

func TestBindURI_InvalidUUID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil)
	newRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "id", resp.Errors[0].Field)
	assert.Equal(t, "uuid", resp.Errors[0].Rule)
}

func TestBindURI_Valid(t *testing.T) {
	id := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/things/"+id, nil)
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindAndValidateJSON_Syntax(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	newRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "syntax", resp.Errors[0].Rule)
}

func TestBindAndValidateJSON_Required(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "name", resp.Errors[0].Field)
	assert.Equal(t, "name is required", resp.Errors[0].Message)
}
