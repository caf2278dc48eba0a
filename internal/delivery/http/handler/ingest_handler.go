package handler

import (
	"errors"

	"competency-matrix/internal/delivery/http/dto"
	"competency-matrix/internal/pkg/response"
	"competency-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IngestHandler struct {
	uc usecase.IngestUsecase
}

func NewIngestHandler(uc usecase.IngestUsecase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

func (h *IngestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/ingest", h.Ingest)
}

func (h *IngestHandler) Ingest(c fiber.Ctx) error {
	var req dto.IngestRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest)
	}

	replace := true
	if req.Replace != nil {
		replace = *req.Replace
	}

	skipped, err := h.uc.Ingest(c.Context(), usecase.IngestInput{
		Matrix:      req.Matrix,
		Standards:   req.Standards,
		Definitions: req.Definitions,
		Replace:     replace,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrStoreUnavailable) {
			return response.Error(c, fiber.StatusInternalServerError, "store unavailable")
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(dto.IngestResponse{
		Status: "ok",
		Skipped: dto.SkippedCounts{
			Matrix:      skipped.Matrix,
			Standards:   skipped.Standards,
			Definitions: skipped.Definitions,
		},
	})
}
