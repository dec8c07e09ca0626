package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/talgatov/cloud-notes-api/internal/apperror"
)

const (
	errNotAuthenticated = "Not authenticated"
	errTokenInvalid     = "Invalid or expired token"
)

// UserIDKey is where Auth stores the authenticated user id in the gin context.
const UserIDKey = "userID"

// Auth validates a Bearer JWT and sets the user id in the gin context.
// It trusts the signature and expiry alone; the user is not re-checked
// against the database.
func Auth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWith(c, apperror.Unauthorized(errNotAuthenticated))
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			abortWith(c, apperror.Unauthorized(errTokenInvalid))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, apperror.Unauthorized(errTokenInvalid))
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			abortWith(c, apperror.Unauthorized(errTokenInvalid))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
