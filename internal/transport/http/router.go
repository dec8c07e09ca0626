package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talgatov/cloud-notes-api/internal/transport/http/handler"
	"github.com/talgatov/cloud-notes-api/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, noteHandler *handler.NoteHandler, appMessage string, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Errors(logger))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, appMessage)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected note routes
	notes := r.Group("/api/notes", middleware.Auth(jwtKey))
	notes.POST("", middleware.NoteBody(false), noteHandler.Create)
	notes.GET("", noteHandler.List)
	notes.GET("/:id", noteHandler.GetByID)
	notes.PUT("/:id", middleware.NoteBody(true), noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	return r
}
