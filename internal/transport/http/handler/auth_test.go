package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/talgatov/cloud-notes-api/internal/domain"
	"github.com/talgatov/cloud-notes-api/internal/transport/http/handler"
	"github.com/talgatov/cloud-notes-api/internal/transport/http/middleware"
	"github.com/talgatov/cloud-notes-api/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, input usecase.RegisterInput) error
	login    func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) error {
	return f.register(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return f.login(ctx, email, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, discardLogger())

	r := gin.New()
	r.Use(middleware.Errors(discardLogger()))
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Register ----

func TestRegister_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/register", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_MissingField_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/register",
		`{"name":"A","email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "All fields are required") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRegister_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _ usecase.RegisterInput) error {
			return domain.ErrEmailTaken
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRegister_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _ usecase.RegisterInput) error {
			return errors.New("db down")
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Errorf("body = %q leaks internal detail", w.Body.String())
	}
}

func TestRegister_Success_Returns201(t *testing.T) {
	var got usecase.RegisterInput
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, input usecase.RegisterInput) error {
			got = input
			return nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User registered successfully") {
		t.Errorf("body = %q", w.Body.String())
	}
	if got.Email != "a@x.com" || got.Name != "A" || got.Password != "secret1" {
		t.Errorf("usecase input = %+v", got)
	}
}

// ---- Login ----

func TestLogin_MissingFields_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/login", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email and password required") {
		t.Errorf("body = %q", w.Body.String())
	}
}

// Wrong password and unknown email must be indistinguishable to the client.
func TestLogin_InvalidCredentials_SameResponseEitherWay(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	r := newAuthEngine(uc)

	wrongPass := postJSON(t, r, "/api/auth/login", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := postJSON(t, r, "/api/auth/login", `{"email":"ghost@x.com","password":"secret1"}`)

	if wrongPass.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("codes = %d / %d, want 401 / 401", wrongPass.Code, unknownEmail.Code)
	}
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), unknownEmail.Body.String())
	}
	if !strings.Contains(wrongPass.Body.String(), "Invalid credentials") {
		t.Errorf("body = %q", wrongPass.Body.String())
	}
}

func TestLogin_Success_ReturnsToken(t *testing.T) {
	const fakeJWT = "header.payload.signature"
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return fakeJWT, nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), fakeJWT) {
		t.Errorf("body %q does not contain token", w.Body.String())
	}
}
