package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/forms"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/gofiber/fiber/v2"
)

type intakeService interface {
	Apply(ctx context.Context, values forms.ApplicationValues) (*models.Client, error)
	Book(ctx context.Context, values forms.BookingValues) (*models.Client, *models.Session, error)
	AvailableTimes(ctx context.Context, date string) ([]string, error)
}

// IntakeHandler serves the public, unauthenticated apply and book forms.
type IntakeHandler struct {
	service intakeService
}

func NewIntakeHandler(service intakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

func (h *IntakeHandler) Apply(c *fiber.Ctx) error {
	var form forms.ApplicationForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	values, fieldErrs := forms.ValidateApplication(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	client, err := h.service.Apply(c.Context(), *values)
	if err != nil {
		log.Printf("apply workflow: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to submit application"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": client})
}

func (h *IntakeHandler) Book(c *fiber.Ctx) error {
	var form forms.BookingForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	values, fieldErrs := forms.ValidateBooking(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	client, session, err := h.service.Book(c.Context(), *values)
	if err != nil {
		// A client may already have been created; that is accepted, the
		// caller only sees a generic failure.
		log.Printf("booking workflow: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to submit booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": client, "session": session})
}

func (h *IntakeHandler) AvailableSlots(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "date must be a YYYY-MM-DD date"})
	}

	times, err := h.service.AvailableTimes(c.Context(), date)
	if err != nil {
		log.Printf("available slots %s: %v", date, err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load available slots"})
	}

	return c.JSON(fiber.Map{"date": date, "times": times})
}
