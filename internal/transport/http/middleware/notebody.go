package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talgatov/cloud-notes-api/internal/apperror"
)

const (
	errTitleRequired   = "Title is required"
	errContentRequired = "Content is required"
	errInvalidBody     = "Invalid request body"
)

const noteBodyKey = "noteBody"

// NotePayload is the parsed note body. Pointers distinguish an absent field
// from an empty one, which matters for partial updates.
type NotePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteBody validates the request body before the handler runs and stashes
// the parsed payload in the gin context (the body can only be read once).
// Checks run in field-declaration order and stop at the first failure.
// With partial=true only fields present in the body are checked, so a PUT
// may carry just a title or just a content.
func NoteBody(partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p NotePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			abortWith(c, apperror.BadRequest(errInvalidBody))
			return
		}

		if !partial || p.Title != nil {
			if blank(p.Title) {
				abortWith(c, apperror.BadRequest(errTitleRequired))
				return
			}
		}
		if !partial || p.Content != nil {
			if blank(p.Content) {
				abortWith(c, apperror.BadRequest(errContentRequired))
				return
			}
		}

		c.Set(noteBodyKey, &p)
		c.Next()
	}
}

// NoteBodyFrom returns the payload stashed by NoteBody. Only valid on
// routes behind that middleware.
func NoteBodyFrom(c *gin.Context) *NotePayload {
	v, _ := c.Get(noteBodyKey)
	p, _ := v.(*NotePayload)
	return p
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
