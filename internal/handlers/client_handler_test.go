package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stubClientStore struct {
	listResult []models.Client
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	lastCreate repository.ClientRecord
	lastDelete string
}

func (s *stubClientStore) List(_ context.Context) ([]models.Client, error) {
	return s.listResult, s.listErr
}

func (s *stubClientStore) Create(_ context.Context, rec repository.ClientRecord) (*models.Client, error) {
	s.lastCreate = rec
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Client{ID: "c1", Name: rec.Name, Status: rec.Status, JoinDate: "2025-01-01"}, nil
}

func (s *stubClientStore) Update(_ context.Context, id string, rec repository.ClientRecord) (*models.Client, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Client{ID: id, Name: rec.Name, Status: rec.Status}, nil
}

func (s *stubClientStore) Delete(_ context.Context, id string) error {
	s.lastDelete = id
	return s.deleteErr
}

type stubInvalidator struct {
	collections []string
}

func (s *stubInvalidator) Invalidate(collection string) {
	s.collections = append(s.collections, collection)
}

func newClientApp(store *stubClientStore, live *stubInvalidator) *fiber.App {
	handler := NewClientHandler(store, live)
	app := fiber.New()
	app.Get("/api/v1/clients", handler.List)
	app.Post("/api/v1/clients", handler.Create)
	app.Put("/api/v1/clients/:id", handler.Update)
	app.Delete("/api/v1/clients/:id", handler.Delete)
	return app
}

func TestListClients(t *testing.T) {
	store := &stubClientStore{listResult: []models.Client{{ID: "c1", Name: "山田太郎"}}}
	app := newClientApp(store, &stubInvalidator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Clients []models.Client `json:"clients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(body.Clients) != 1 || body.Clients[0].ID != "c1" {
		t.Errorf("Unexpected clients %+v", body.Clients)
	}
}

func TestCreateClientInvalidatesCollection(t *testing.T) {
	store := &stubClientStore{}
	live := &stubInvalidator{}
	app := newClientApp(store, live)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(`{
		"name": "山田太郎",
		"kana": "ヤマダタロウ",
		"email": "taro@example.com",
		"status": "active"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	if store.lastCreate.Name != "山田太郎" {
		t.Errorf("Unexpected record %+v", store.lastCreate)
	}
	if len(live.collections) != 1 || live.collections[0] != "clients" {
		t.Errorf("Expected clients invalidated, got %v", live.collections)
	}
}

func TestCreateClientValidationErrors(t *testing.T) {
	store := &stubClientStore{}
	live := &stubInvalidator{}
	app := newClientApp(store, live)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(`{
		"name": "",
		"email": "bad",
		"status": "paused"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	for _, field := range []string{"name", "email", "status"} {
		if body.Errors[field] == "" {
			t.Errorf("Expected error for %s, got %v", field, body.Errors)
		}
	}
	if len(live.collections) != 0 {
		t.Errorf("Expected no invalidation on validation failure")
	}
}

func TestCreateClientStoreFailureIsGeneric(t *testing.T) {
	store := &stubClientStore{createErr: errors.New("connection reset")}
	app := newClientApp(store, &stubInvalidator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(`{
		"name": "山田太郎",
		"kana": "ヤマダタロウ",
		"email": "taro@example.com",
		"status": "trial"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if strings.Contains(body.Error, "connection reset") {
		t.Errorf("Expected the underlying cause to stay out of the response, got %q", body.Error)
	}
}

func TestDeleteClientTouchesOnlyClients(t *testing.T) {
	store := &stubClientStore{}
	live := &stubInvalidator{}
	app := newClientApp(store, live)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/clients/c9", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", resp.StatusCode)
	}
	if store.lastDelete != "c9" {
		t.Errorf("Expected delete of c9, got %q", store.lastDelete)
	}
	// Referencing sessions and payments are left dangling.
	if len(live.collections) != 1 || live.collections[0] != "clients" {
		t.Errorf("Expected only clients invalidated, got %v", live.collections)
	}
}

func TestDeleteMissingClient(t *testing.T) {
	store := &stubClientStore{deleteErr: pgx.ErrNoRows}
	app := newClientApp(store, &stubInvalidator{})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/clients/missing", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}
}
