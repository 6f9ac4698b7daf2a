package routes

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Yuuta12-maker/MEC-App/internal/config"
	"github.com/Yuuta12-maker/MEC-App/internal/handlers"
	"github.com/Yuuta12-maker/MEC-App/internal/livews"
	"github.com/Yuuta12-maker/MEC-App/internal/middleware"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/notify"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
	"github.com/Yuuta12-maker/MEC-App/internal/services"
	"github.com/Yuuta12-maker/MEC-App/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	clientRepo := repository.NewClientRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	if err := ensureDefaultAdmin(cfg, adminRepo); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}

	snapshotService := services.NewSnapshotService(clientRepo, sessionRepo, paymentRepo)
	hub := livews.NewHub(snapshotService)
	go hub.Run()

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.ResendAPIKey != "" && cfg.MailFrom != "" {
		notifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.MailFrom)
	}

	intakeService := services.NewIntakeService(
		clientRepo,
		sessionRepo,
		notifier,
		hub,
		cfg.DefaultCoachName,
		cfg.AdminNotifyEmail,
	)

	authHandler := handlers.NewAuthHandler(adminRepo, cfg.JWTSecret)
	clientHandler := handlers.NewClientHandler(clientRepo, hub)
	sessionHandler := handlers.NewSessionHandler(sessionRepo, hub)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo, hub)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	liveHandler := handlers.NewLiveHandler(hub, cfg.JWTSecret)

	api := app.Group("/api")

	public := api.Group("/public")
	public.Post("/apply", intakeHandler.Apply)
	public.Post("/book", intakeHandler.Book)
	public.Get("/booking/slots", intakeHandler.AvailableSlots)

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	protected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	clients := protected.Group("/clients")
	clients.Get("", clientHandler.List)
	clients.Post("", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	sessions := protected.Group("/sessions")
	sessions.Get("", sessionHandler.List)
	sessions.Post("", sessionHandler.Create)
	sessions.Put("/:id", sessionHandler.Update)
	sessions.Delete("/:id", sessionHandler.Delete)

	payments := protected.Group("/payments")
	payments.Get("", paymentHandler.List)
	payments.Post("", paymentHandler.Create)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	api.Use("/v1/ws", liveHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(liveHandler.HandleWebSocket))

	return nil
}

func ensureDefaultAdmin(cfg *config.Config, adminRepo *repository.AdminRepository) error {
	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	_, err := adminRepo.GetByEmail(ctx, cfg.DefaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		Email:        cfg.DefaultAdminEmail,
		PasswordHash: hashed,
		DisplayName:  cfg.DefaultCoachName,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded default admin %s", admin.Email)
	return nil
}
