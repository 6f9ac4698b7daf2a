package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/Yuuta12-maker/MEC-App/internal/forms"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type paymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, rec repository.PaymentRecord) (*models.Payment, error)
	Update(ctx context.Context, id string, rec repository.PaymentRecord) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentHandler struct {
	store paymentStore
	live  collectionInvalidator
}

func NewPaymentHandler(store paymentStore, live collectionInvalidator) *PaymentHandler {
	return &PaymentHandler{store: store, live: live}
}

type paymentRequest struct {
	ClientID    string      `json:"client_id"`
	ClientName  string      `json:"client_name"`
	PaymentType string      `json:"payment_type"`
	DueDate     string      `json:"due_date"`
	Status      string      `json:"status"`
	PaidDate    string      `json:"paid_date"`
	Amount      json.Number `json:"amount"`
	Notes       string      `json:"notes"`
}

func (r paymentRequest) form() forms.PaymentForm {
	return forms.PaymentForm{
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		PaymentType: r.PaymentType,
		DueDate:     r.DueDate,
		Status:      r.Status,
		PaidDate:    r.PaidDate,
		Amount:      r.Amount.String(),
		Notes:       r.Notes,
	}
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("list payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidatePayment(req.form())
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	payment, err := h.store.Create(c.Context(), *rec)
	if err != nil {
		log.Printf("create payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	h.live.Invalidate("payments")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"payment": payment})
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidatePayment(req.form())
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	payment, err := h.store.Update(c.Context(), id, *rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		log.Printf("update payment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	h.live.Invalidate("payments")
	return c.JSON(fiber.Map{"payment": payment})
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		log.Printf("delete payment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}

	h.live.Invalidate("payments")
	return c.SendStatus(fiber.StatusNoContent)
}
