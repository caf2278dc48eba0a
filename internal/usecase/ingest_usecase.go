package usecase

import (
	"context"
	"log"

	"competency-matrix/internal/domain/matrix"
	"competency-matrix/internal/repository"
)

type IngestInput struct {
	Matrix      any
	Standards   any
	Definitions any
	Replace     bool
}

// SkippedCounts reports how many malformed items each decoder dropped.
// Dropping is not an error; the counts exist so callers can notice silently
// lost records.
type SkippedCounts struct {
	Matrix      int `json:"matrix"`
	Standards   int `json:"standards"`
	Definitions int `json:"definitions"`
}

type IngestUsecase interface {
	Ingest(ctx context.Context, in IngestInput) (SkippedCounts, error)
}

type Ingest struct {
	matrixRepo     repository.MatrixRepository
	standardRepo   repository.StandardRepository
	definitionRepo repository.DefinitionRepository
	cache          CatalogCache
	logger         *log.Logger
}

func NewIngestUsecase(
	matrixRepo repository.MatrixRepository,
	standardRepo repository.StandardRepository,
	definitionRepo repository.DefinitionRepository,
	cache CatalogCache,
	logger *log.Logger,
) *Ingest {
	return &Ingest{
		matrixRepo:     matrixRepo,
		standardRepo:   standardRepo,
		definitionRepo: definitionRepo,
		cache:          cache,
		logger:         logger,
	}
}

// Ingest replaces (or appends to) the stored dataset from three
// loosely-shaped payloads. The three delete-alls and the per-entity inserts
// are independent statements; a failure partway leaves a partially written
// store, which the bulk-reload usage pattern accepts. A store-unavailable
// error always surfaces before the first mutation.
func (u *Ingest) Ingest(ctx context.Context, in IngestInput) (SkippedCounts, error) {
	if in.Replace {
		if err := u.matrixRepo.DeleteAll(ctx); err != nil {
			return SkippedCounts{}, mapStoreErr(err)
		}
		if err := u.standardRepo.DeleteAll(ctx); err != nil {
			return SkippedCounts{}, mapStoreErr(err)
		}
		if err := u.definitionRepo.DeleteAll(ctx); err != nil {
			return SkippedCounts{}, mapStoreErr(err)
		}
	}

	var skipped SkippedCounts

	entries, n := matrix.DecodeMatrix(in.Matrix)
	skipped.Matrix = n
	for _, entry := range entries {
		if err := u.matrixRepo.Insert(ctx, entry); err != nil {
			return skipped, mapStoreErr(err)
		}
	}

	records, n := matrix.DecodeStandards(in.Standards)
	skipped.Standards = n
	for _, record := range records {
		if err := u.standardRepo.Insert(ctx, record); err != nil {
			return skipped, mapStoreErr(err)
		}
	}

	defs, n := matrix.DecodeDefinitions(in.Definitions)
	skipped.Definitions = n
	for _, def := range defs {
		if err := u.definitionRepo.Insert(ctx, def); err != nil {
			return skipped, mapStoreErr(err)
		}
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, titlesCacheKey); err != nil && u.logger != nil {
			u.logger.Printf("[Ingest] titles cache invalidation failed: %v", err)
		}
	}

	return skipped, nil
}
