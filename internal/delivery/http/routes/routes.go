package routes

import (
	"competency-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	status  *handler.StatusHandler
	ingest  *handler.IngestHandler
	catalog *handler.CatalogHandler
}

func NewRegistry(status *handler.StatusHandler, ingest *handler.IngestHandler, catalog *handler.CatalogHandler) *Registry {
	return &Registry{status: status, ingest: ingest, catalog: catalog}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.status.RegisterRoutes(app)

	api := app.Group("/api")
	api.Get("/hello", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
	})
	r.ingest.RegisterRoutes(api)
	r.catalog.RegisterRoutes(api)
}
