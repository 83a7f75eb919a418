package validation

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(tagName)
	}
}

// tagName reports fields by their json or uri tag so error payloads use
// the same names the client sent.
func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	return bind(c, c.ShouldBindJSON(dst), "invalid request body")
}

// BindURI binds path parameters into dst and checks its binding tags.
func BindURI(c *gin.Context, dst any) bool {
	return bind(c, c.ShouldBindUri(dst), "invalid path parameter")
}

func bind(c *gin.Context, err error, message string) bool {
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp := formatValidationErrors(verrs)
		resp.Message = message
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: message,
		Errors: []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
	return false
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: buildMessage(fe.Field(), fe),
		})
	}

	return ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "uuid", "uuid4":
		return field + " must be a valid UUID"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
