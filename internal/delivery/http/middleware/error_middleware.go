package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.HTTPStatus(err)

		var appErr *apperror.AppError
		if status == http.StatusInternalServerError || !errors.As(err, &appErr) {
			// Never expose internal error details to clients.
			logger.From(c.Request.Context()).Error("internal server error",
				zap.Error(err),
				zap.String("path", c.FullPath()),
			)
			response.Error(c, http.StatusInternalServerError, internalErrorMessage, nil)
			return
		}

		response.Error(c, status, appErr.Message, errorBody(appErr))
	}
}

type errorDetail struct {
	Kind     string `json:"kind"`
	Resource string `json:"resource,omitempty"`
	ID       string `json:"id,omitempty"`
}

func errorBody(e *apperror.AppError) errorDetail {
	return errorDetail{Kind: e.Kind.String(), Resource: e.Resource, ID: e.ID}
}
