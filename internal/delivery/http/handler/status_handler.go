package handler

import (
	"context"
	"os"
	"strings"

	"competency-matrix/internal/database"

	"github.com/gofiber/fiber/v3"
)

type CachePinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler serves the liveness and diagnostics endpoints. Diagnostics
// are best-effort and never fail the request, whatever state the store or
// cache is in.
type StatusHandler struct {
	handle *database.Handle
	cache  CachePinger
}

func NewStatusHandler(handle *database.Handle, cache CachePinger) *StatusHandler {
	return &StatusHandler{handle: handle, cache: cache}
}

func (h *StatusHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get("/test", h.Diagnostics)
}

func (h *StatusHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Competency Matrix API is running"})
}

func (h *StatusHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *StatusHandler) Diagnostics(c fiber.Ctx) error {
	report := fiber.Map{
		"backend":       "running",
		"store":         "not configured",
		"database_url":  envSet("DATABASE_URL"),
		"database_name": envSet("DATABASE_NAME"),
		"cache":         "unavailable",
	}

	if db, err := h.handle.Acquire(); err == nil {
		if err := db.Ping(c.Context()); err != nil {
			report["store"] = "error: " + truncate(err.Error(), 50)
		} else {
			report["store"] = "connected"
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err == nil {
			report["cache"] = "connected"
		}
	}

	return c.JSON(report)
}

func envSet(key string) string {
	if strings.TrimSpace(os.Getenv(key)) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
