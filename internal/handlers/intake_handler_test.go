package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yuuta12-maker/MEC-App/internal/forms"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/gofiber/fiber/v2"
)

type stubIntakeService struct {
	applyResult   *models.Client
	applyErr      error
	bookClient    *models.Client
	bookSession   *models.Session
	bookErr       error
	timesResult   []string
	timesErr      error
	lastApply     forms.ApplicationValues
	lastBook      forms.BookingValues
	lastSlotsDate string
}

func (s *stubIntakeService) Apply(_ context.Context, values forms.ApplicationValues) (*models.Client, error) {
	s.lastApply = values
	return s.applyResult, s.applyErr
}

func (s *stubIntakeService) Book(_ context.Context, values forms.BookingValues) (*models.Client, *models.Session, error) {
	s.lastBook = values
	return s.bookClient, s.bookSession, s.bookErr
}

func (s *stubIntakeService) AvailableTimes(_ context.Context, date string) ([]string, error) {
	s.lastSlotsDate = date
	return s.timesResult, s.timesErr
}

func newIntakeApp(service *stubIntakeService) *fiber.App {
	handler := NewIntakeHandler(service)
	app := fiber.New()
	app.Post("/api/public/apply", handler.Apply)
	app.Post("/api/public/book", handler.Book)
	app.Get("/api/public/booking/slots", handler.AvailableSlots)
	return app
}

func TestApplyReturnsCreatedClient(t *testing.T) {
	service := &stubIntakeService{
		applyResult: &models.Client{ID: "c1", Name: "山田太郎", Status: "trial"},
	}
	app := newIntakeApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/public/apply", strings.NewReader(`{
		"name": "山田太郎",
		"kana": "ヤマダタロウ",
		"email": "taro@example.com"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	if service.lastApply.Email != "taro@example.com" {
		t.Errorf("Unexpected values %+v", service.lastApply)
	}

	var body struct {
		Client models.Client `json:"client"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Client.Status != "trial" {
		t.Errorf("Expected trial client, got %q", body.Client.Status)
	}
}

func TestApplyRejectsInvalidForm(t *testing.T) {
	service := &stubIntakeService{}
	app := newIntakeApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/public/apply", strings.NewReader(`{
		"name": "", "kana": "", "email": "nope"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestBookReturnsClientAndSession(t *testing.T) {
	service := &stubIntakeService{
		bookClient: &models.Client{ID: "c7", Status: "trial"},
		bookSession: &models.Session{
			ID:       "s1",
			ClientID: "c7",
			Date:     "2025-03-10",
			Time:     "14:00",
			Type:     "trial",
			Status:   "scheduled",
		},
	}
	app := newIntakeApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/public/book", strings.NewReader(`{
		"name": "山田太郎",
		"email": "taro@example.com",
		"date": "2025-03-10",
		"time": "14:00"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	if service.lastBook.Time != "14:00" {
		t.Errorf("Unexpected values %+v", service.lastBook)
	}
}

func TestBookFailureIsGeneric(t *testing.T) {
	service := &stubIntakeService{bookErr: errors.New("session write failed")}
	app := newIntakeApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/public/book", strings.NewReader(`{
		"name": "山田太郎",
		"email": "taro@example.com",
		"date": "2025-03-10",
		"time": "14:00"
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
	if strings.Contains(body.Error, "session write failed") {
		t.Errorf("Expected a generic error, got %q", body.Error)
	}
}

func TestAvailableSlots(t *testing.T) {
	service := &stubIntakeService{timesResult: []string{"09:00", "10:00"}}
	app := newIntakeApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/public/booking/slots?date=2025-03-10", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if service.lastSlotsDate != "2025-03-10" {
		t.Errorf("Expected date to reach the service, got %q", service.lastSlotsDate)
	}

	var body struct {
		Date  string   `json:"date"`
		Times []string `json:"times"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(body.Times) != 2 || body.Times[0] != "09:00" {
		t.Errorf("Unexpected times %v", body.Times)
	}
}

func TestAvailableSlotsRequiresValidDate(t *testing.T) {
	app := newIntakeApp(&stubIntakeService{})

	for _, query := range []string{"", "?date=", "?date=10-03-2025"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/public/booking/slots"+query, nil))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for %q, got %d", query, resp.StatusCode)
		}
	}
}
