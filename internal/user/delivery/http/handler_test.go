package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tair/inventory-tracker/internal/user/domain"
)

// Stub UserRepository with an injectable create failure
type stubUserRepo struct {
	createErr error
}

func (s *stubUserRepo) Create(user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 1
	return nil
}

func (s *stubUserRepo) FindByID(id uint) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByUsername(username string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) Count() (int64, error) { return 0, nil }

// Prometheus collectors register once per process, so the handler is
// shared across subtests.
func TestUserHandler_RegisterErrorMapping(t *testing.T) {
	repo := &stubUserRepo{}
	h := NewUserHandler(repo)

	t.Run("storage failure stays opaque", func(t *testing.T) {
		repo.createErr = errors.New("pq: connection refused")
		defer func() { repo.createErr = nil }()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"alice","email":"a@x.com","password":"pw1234"}`))
		h.Register(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response body: %v", err)
		}
		if body["error"] != "Failed to register user" {
			t.Errorf("body error = %q, want the generic message", body["error"])
		}
		if strings.Contains(body["error"], "pq:") {
			t.Error("driver detail must not reach the caller")
		}
	})

	t.Run("validation stays 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"alice","email":"a@x.com","password":"pw"}`))
		h.Register(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
