package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Yuuta12-maker/MEC-App/internal/forms"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type sessionStore interface {
	List(ctx context.Context) ([]models.Session, error)
	Create(ctx context.Context, rec repository.SessionRecord) (*models.Session, error)
	Update(ctx context.Context, id string, rec repository.SessionRecord) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type SessionHandler struct {
	store sessionStore
	live  collectionInvalidator
}

func NewSessionHandler(store sessionStore, live collectionInvalidator) *SessionHandler {
	return &SessionHandler{store: store, live: live}
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	sessions, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("list sessions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load sessions"})
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var form forms.SessionForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidateSession(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	session, err := h.store.Create(c.Context(), *rec)
	if err != nil {
		log.Printf("create session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	h.live.Invalidate("sessions")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var form forms.SessionForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidateSession(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	session, err := h.store.Update(c.Context(), id, *rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		log.Printf("update session %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	h.live.Invalidate("sessions")
	return c.JSON(fiber.Map{"session": session})
}

func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		log.Printf("delete session %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete session"})
	}

	h.live.Invalidate("sessions")
	return c.SendStatus(fiber.StatusNoContent)
}
