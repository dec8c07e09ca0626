package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talgatov/cloud-notes-api/internal/apperror"
)

const errInternalServer = "Internal server error"

// Errors is the terminal error stage. Handlers and middleware report
// failures with c.Error and abort; after the chain unwinds this stage turns
// the last collected error into the client response. Tagged apperror values
// keep their status and message; anything else becomes a 500 with the detail
// logged, never echoed.
func Errors(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, gin.H{"error": appErr.Message})
			return
		}

		logger.ErrorContext(c.Request.Context(), "unhandled error",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}

// abortWith routes an error to the Errors stage and stops the chain.
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
