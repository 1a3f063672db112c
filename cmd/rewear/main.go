package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"rewear/internal/config"
	"rewear/internal/http/handlers"
	applog "rewear/internal/log"
	"rewear/internal/media"
	"rewear/internal/repos"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	storage := media.NewClient(cfg.StorageURL, cfg.StorageFolder, 15*time.Second)
	deps := handlers.NewDeps(db, cfg, storage)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Never leak internals to callers
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		},
	})
	// Body guard sized above the 5 MiB upload cap plus multipart overhead
	app.Server().MaxRequestBodySize = 6 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))

	// ---------- Routes ----------
	requireUser := handlers.RequireUser(cfg.JWTSecret)

	// Auth (login throttled)
	app.Post("/api/auth/signup", deps.AuthHandler.Signup)
	app.Post("/api/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AuthHandler.Login)

	// Media
	app.Post("/api/upload", deps.UploadHandler.Upload)

	// Items
	app.Post("/api/items", requireUser, deps.ItemHandler.Create)
	app.Patch("/api/items/:id/status", requireUser, deps.ItemHandler.SetStatus)
	app.Get("/api/items", deps.ItemHandler.List)
	app.Get("/api/items/:id", deps.ItemHandler.Get)

	// Swap requests
	app.Post("/api/requests", requireUser, deps.RequestHandler.Create)
	app.Patch("/api/requests/:id", requireUser, deps.RequestHandler.Resolve)
	app.Get("/api/requests/me", requireUser, deps.RequestHandler.Mine)

	// Health
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "ReWear API is running"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
