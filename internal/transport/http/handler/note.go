package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talgatov/cloud-notes-api/internal/apperror"
	"github.com/talgatov/cloud-notes-api/internal/domain"
	"github.com/talgatov/cloud-notes-api/internal/metrics"
	"github.com/talgatov/cloud-notes-api/internal/transport/http/middleware"
	"github.com/talgatov/cloud-notes-api/internal/usecase"
)

type noteUsecaser interface {
	Create(ctx context.Context, input usecase.CreateNoteInput) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	Update(ctx context.Context, id string, input usecase.UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

type NoteHandler struct {
	uc     noteUsecaser
	logger *slog.Logger
}

func NewNoteHandler(uc noteUsecaser, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{uc: uc, logger: logger.With("component", "note_handler")}
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// POST /api/notes — body already validated by middleware.NoteBody.
func (h *NoteHandler) Create(c *gin.Context) {
	body := middleware.NoteBodyFrom(c)

	note, err := h.uc.Create(c.Request.Context(), usecase.CreateNoteInput{
		Title:   *body.Title,
		Content: *body.Content,
	})
	if err != nil {
		abortWith(c, err)
		return
	}

	metrics.NotesCreatedTotal.Inc()
	c.JSON(http.StatusCreated, toNoteResponse(note))
}

// GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.uc.List(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}

	items := make([]noteResponse, len(notes))
	for i, n := range notes {
		items[i] = toNoteResponse(n)
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	note, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			abortWith(c, apperror.NotFound(errNoteNotFound))
			return
		}
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

// PUT /api/notes/:id — partial update, fields present were validated by
// middleware.NoteBody(partial).
func (h *NoteHandler) Update(c *gin.Context) {
	id := c.Param("id")
	body := middleware.NoteBodyFrom(c)

	note, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateNoteInput{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			abortWith(c, apperror.NotFound(errNoteNotFound))
			return
		}
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

// DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			abortWith(c, apperror.NotFound(errNoteNotFound))
			return
		}
		abortWith(c, err)
		return
	}

	metrics.NotesDeletedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// abortWith routes an error to the terminal error stage and stops the chain.
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
