package v1

import (
	"errors"
	"io"
	"strings"

	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the body into req. On failure it records a
// validation error on the context and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		_ = c.Error(apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; ")))
	case errors.Is(err, io.EOF):
		_ = c.Error(apperror.Validation("Request body is required"))
	default:
		_ = c.Error(apperror.Validation("Invalid request body"))
	}
	return false
}
