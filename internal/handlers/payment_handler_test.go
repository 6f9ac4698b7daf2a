package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type stubPaymentStore struct {
	lastCreate repository.PaymentRecord
}

func (s *stubPaymentStore) List(_ context.Context) ([]models.Payment, error) {
	return nil, nil
}

func (s *stubPaymentStore) Create(_ context.Context, rec repository.PaymentRecord) (*models.Payment, error) {
	s.lastCreate = rec
	return &models.Payment{ID: "p1", ClientID: rec.ClientID, Amount: rec.Amount, Status: rec.Status}, nil
}

func (s *stubPaymentStore) Update(_ context.Context, id string, rec repository.PaymentRecord) (*models.Payment, error) {
	return &models.Payment{ID: id, Amount: rec.Amount, Status: rec.Status}, nil
}

func (s *stubPaymentStore) Delete(_ context.Context, _ string) error {
	return nil
}

func newPaymentApp(store *stubPaymentStore, live *stubInvalidator) *fiber.App {
	handler := NewPaymentHandler(store, live)
	app := fiber.New()
	app.Post("/api/v1/payments", handler.Create)
	return app
}

func TestCreatePaymentCoercesNumericAmount(t *testing.T) {
	store := &stubPaymentStore{}
	live := &stubInvalidator{}
	app := newPaymentApp(store, live)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(`{
		"client_id": "c1",
		"client_name": "山田太郎",
		"payment_type": "monthly",
		"due_date": "2025-01-31",
		"status": "unpaid",
		"amount": 30000
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	if store.lastCreate.Amount != 30000 {
		t.Errorf("Expected amount 30000, got %v", store.lastCreate.Amount)
	}
	if len(live.collections) != 1 || live.collections[0] != "payments" {
		t.Errorf("Expected payments invalidated, got %v", live.collections)
	}
}

func TestCreatePaymentRejectsNegativeAmount(t *testing.T) {
	app := newPaymentApp(&stubPaymentStore{}, &stubInvalidator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(`{
		"client_id": "c1",
		"client_name": "山田太郎",
		"payment_type": "monthly",
		"due_date": "2025-01-31",
		"status": "unpaid",
		"amount": -500
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
	if body.Errors["amount"] == "" {
		t.Errorf("Expected amount error, got %v", body.Errors)
	}
}
