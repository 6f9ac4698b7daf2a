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

type clientStore interface {
	List(ctx context.Context) ([]models.Client, error)
	Create(ctx context.Context, rec repository.ClientRecord) (*models.Client, error)
	Update(ctx context.Context, id string, rec repository.ClientRecord) (*models.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientHandler struct {
	store clientStore
	live  collectionInvalidator
}

func NewClientHandler(store clientStore, live collectionInvalidator) *ClientHandler {
	return &ClientHandler{store: store, live: live}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("list clients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load clients"})
	}
	return c.JSON(fiber.Map{"clients": clients})
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var form forms.ClientForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidateClient(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	client, err := h.store.Create(c.Context(), *rec)
	if err != nil {
		log.Printf("create client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create client"})
	}

	h.live.Invalidate("clients")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": client})
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	var form forms.ClientForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, fieldErrs := forms.ValidateClient(form)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
	}

	client, err := h.store.Update(c.Context(), id, *rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		log.Printf("update client %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update client"})
	}

	h.live.Invalidate("clients")
	return c.JSON(fiber.Map{"client": client})
}

// Delete removes only the client document. Sessions and payments that
// reference it are left untouched.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		log.Printf("delete client %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete client"})
	}

	h.live.Invalidate("clients")
	return c.SendStatus(fiber.StatusNoContent)
}
