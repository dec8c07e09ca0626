package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/talgatov/cloud-notes-api/internal/apperror"
)

func TestError_MessageOnly(t *testing.T) {
	err := apperror.NotFound("Note not found")
	if err.Error() != "Note not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", err.Status)
	}
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("row scan failed")
	err := &apperror.Error{Status: 500, Message: "Internal server error", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if err.Error() != "Internal server error: row scan failed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestError_RecoverableThroughWrapping(t *testing.T) {
	tagged := apperror.Unauthorized("Not authenticated")
	wrapped := fmt.Errorf("auth stage: %w", tagged)

	var appErr *apperror.Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As failed through wrapping")
	}
	if appErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", appErr.Status)
	}
}

// Duplicate registration answers 400, matching the public API contract.
func TestConflict_Uses400(t *testing.T) {
	if apperror.Conflict("User already exists").Status != http.StatusBadRequest {
		t.Error("Conflict status != 400")
	}
}
