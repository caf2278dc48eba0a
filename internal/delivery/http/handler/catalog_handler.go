package handler

import (
	"errors"
	"strings"

	"competency-matrix/internal/delivery/http/dto"
	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/titles", h.Titles)
	r.Get("/competencies", h.Competencies)
}

func (h *CatalogHandler) Titles(c fiber.Ctx) error {
	res, err := h.uc.ListTitles(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrStoreUnavailable) {
			return response.Error(c, fiber.StatusInternalServerError, "store unavailable")
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(dto.TitlesResponse{Titles: res.Titles, Levels: res.Levels})
}

func (h *CatalogHandler) Competencies(c fiber.Ctx) error {
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		return response.Error(c, fiber.StatusBadRequest, "title is required")
	}
	level := c.Query("level")

	report, err := h.uc.GetCompetencies(c.Context(), title, level)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTitleNotFound):
			return response.Error(c, fiber.StatusNotFound, "title not found")
		case errors.Is(err, usecase.ErrStoreUnavailable):
			return response.Error(c, fiber.StatusInternalServerError, "store unavailable")
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
		}
	}

	items := make([]dto.CompetencyItemResponse, 0, len(report.Items))
	for _, it := range report.Items {
		items = append(items, dto.CompetencyItemResponse{
			Key:                it.Key,
			Label:              it.Label,
			Standard:           it.Standard,
			Definition:         it.Definition,
			StandardDefinition: it.StandardDefinition,
		})
	}

	var lvl *string
	if level != "" {
		lvl = &level
	}

	return c.Status(fiber.StatusOK).JSON(dto.CompetenciesResponse{
		Title: report.Title,
		Level: lvl,
		Items: items,
	})
}
