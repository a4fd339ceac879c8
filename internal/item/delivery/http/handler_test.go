package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/item/domain"
	usermw "github.com/tair/inventory-tracker/internal/user/delivery/http"
)

// Stub ItemRepository with injectable failures
type stubItemRepo struct {
	createErr error
	updateErr error
	existing  *domain.Item
}

func (s *stubItemRepo) Create(ctx context.Context, item *domain.Item) error {
	return s.createErr
}

func (s *stubItemRepo) FindBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	return nil, domain.ErrItemNotFound
}

func (s *stubItemRepo) FindByOwner(ctx context.Context, id, userID uint) (*domain.Item, error) {
	if s.existing != nil && s.existing.ID == id && s.existing.UserID == userID {
		return s.existing, nil
	}
	return nil, domain.ErrItemNotFound
}

func (s *stubItemRepo) FindAllByOwner(ctx context.Context, userID uint) ([]domain.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) FindLowStockByOwner(ctx context.Context, userID uint) ([]domain.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) Update(ctx context.Context, item *domain.Item, adj *domain.Adjustment) error {
	return s.updateErr
}

func (s *stubItemRepo) Delete(ctx context.Context, id, userID uint) error {
	return domain.ErrItemNotFound
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), usermw.UserIDKey, uint(1))
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body["error"]
}

// Prometheus collectors register once per process, so the handler is
// shared across subtests.
func TestItemHandler_ErrorMapping(t *testing.T) {
	repo := &stubItemRepo{}
	h := NewItemHandler(repo, nil)

	t.Run("create storage failure stays opaque", func(t *testing.T) {
		repo.createErr = errors.New("pq: connection refused")
		defer func() { repo.createErr = nil }()

		rec := httptest.NewRecorder()
		h.CreateItem(rec, authedRequest(http.MethodPost, "/items", `{"name":"Widget","sku":"WID-001"}`))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		msg := decodeError(t, rec)
		if msg != "Failed to create item" {
			t.Errorf("body error = %q, want the generic message", msg)
		}
		if strings.Contains(msg, "pq:") {
			t.Error("driver detail must not reach the caller")
		}
	})

	t.Run("create validation stays 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreateItem(rec, authedRequest(http.MethodPost, "/items", `{"sku":"WID-001"}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("update storage failure stays opaque", func(t *testing.T) {
		repo.existing = &domain.Item{ID: 1, Name: "Widget", SKU: "WID-001", Quantity: 3, UserID: 1}
		repo.updateErr = errors.New("pq: deadlock detected")
		defer func() { repo.existing = nil; repo.updateErr = nil }()

		req := authedRequest(http.MethodPut, "/items/1", `{"name":"Widget","sku":"WID-001","quantity":5}`)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		h.UpdateItem(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		msg := decodeError(t, rec)
		if msg != "Failed to update item" {
			t.Errorf("body error = %q, want the generic message", msg)
		}
	})

	t.Run("update of missing item stays 404", func(t *testing.T) {
		req := authedRequest(http.MethodPut, "/items/9", `{"name":"Widget","sku":"WID-001"}`)
		req = mux.SetURLVars(req, map[string]string{"id": "9"})
		rec := httptest.NewRecorder()
		h.UpdateItem(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
