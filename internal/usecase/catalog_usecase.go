package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"competency-matrix/internal/domain/matrix"
	"competency-matrix/internal/repository"
)

type TitlesResult struct {
	Titles []string            `json:"titles"`
	Levels map[string][]string `json:"levels"`
}

// CompetencyItem is one row of the composed report. Standard and
// StandardDefinition stay nil when no level was requested or nothing
// matched; Definition stays nil when the competency has no definition
// entry or the entry carries no description.
type CompetencyItem struct {
	Key                string
	Label              string
	Standard           any
	Definition         *string
	StandardDefinition any
}

type CompetencyReport struct {
	Title string
	Level string
	Items []CompetencyItem
}

type CatalogUsecase interface {
	ListTitles(ctx context.Context) (TitlesResult, error)
	GetCompetencies(ctx context.Context, title, level string) (CompetencyReport, error)
}

type Catalog struct {
	matrixRepo     repository.MatrixRepository
	standardRepo   repository.StandardRepository
	definitionRepo repository.DefinitionRepository
	cache          CatalogCache
	logger         *log.Logger
}

func NewCatalogUsecase(
	matrixRepo repository.MatrixRepository,
	standardRepo repository.StandardRepository,
	definitionRepo repository.DefinitionRepository,
	cache CatalogCache,
	logger *log.Logger,
) *Catalog {
	return &Catalog{
		matrixRepo:     matrixRepo,
		standardRepo:   standardRepo,
		definitionRepo: definitionRepo,
		cache:          cache,
		logger:         logger,
	}
}

// ListTitles scans matrix entries for the distinct job titles and standard
// records for the levels observed per title. Titles without standards get no
// levels entry. The result is cached until the next ingest.
func (u *Catalog) ListTitles(ctx context.Context) (TitlesResult, error) {
	if u.cache != nil {
		var cached TitlesResult
		if ok, err := u.cache.GetJSON(ctx, titlesCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rawTitles, err := u.matrixRepo.ListTitles(ctx)
	if err != nil {
		return TitlesResult{}, mapStoreErr(err)
	}
	seen := map[string]struct{}{}
	titles := make([]string, 0, len(rawTitles))
	for _, t := range rawTitles {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		titles = append(titles, t)
	}
	sort.Strings(titles)

	pairs, err := u.standardRepo.ListTitleLevels(ctx)
	if err != nil {
		return TitlesResult{}, mapStoreErr(err)
	}
	levels := map[string][]string{}
	for _, p := range pairs {
		if p.JobTitle == "" || p.Level == "" {
			continue
		}
		if !containsString(levels[p.JobTitle], p.Level) {
			levels[p.JobTitle] = append(levels[p.JobTitle], p.Level)
		}
	}
	for t := range levels {
		sort.Strings(levels[t])
	}

	res := TitlesResult{Titles: titles, Levels: levels}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, titlesCacheKey, res, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Catalog] titles cache write failed: %v", err)
		}
	}
	return res, nil
}

// GetCompetencies joins the title's matrix entry, the (title, level)
// standard record, and all definitions into ordered report rows. The join is
// by natural keys only: competency keys into the level's standards mapping
// and the definitions map, then the standard value (lowercased) into the
// definition's values mapping.
func (u *Catalog) GetCompetencies(ctx context.Context, title, level string) (CompetencyReport, error) {
	normalized := matrix.NormalizeTitle(title)

	entry, found, err := u.matrixRepo.FindByTitle(ctx, normalized)
	if err != nil {
		return CompetencyReport{}, mapStoreErr(err)
	}
	if !found {
		return CompetencyReport{}, ErrTitleNotFound
	}

	// Missing (title, level) record is not an error: every row just gets a
	// nil standard.
	levelTable := map[string]any{}
	if level != "" {
		record, ok, err := u.standardRepo.FindByTitleLevel(ctx, normalized, level)
		if err != nil {
			return CompetencyReport{}, mapStoreErr(err)
		}
		if ok && record.Standards != nil {
			levelTable = record.Standards
		}
	}

	defs, err := u.definitionRepo.ListAll(ctx)
	if err != nil {
		return CompetencyReport{}, mapStoreErr(err)
	}
	// Last read wins on duplicate keys. Store scans have no guaranteed
	// order, so which duplicate wins is effectively arbitrary.
	defsByKey := make(map[string]matrix.DefinitionEntry, len(defs))
	for _, d := range defs {
		defsByKey[d.Key] = d
	}

	items := make([]CompetencyItem, 0, len(entry.Competencies))
	for _, ref := range entry.Competencies {
		key, label, ok := matrix.ResolveRef(ref)
		if !ok {
			continue
		}

		item := CompetencyItem{Key: key, Label: label, Standard: levelTable[key]}
		if def, ok := defsByKey[key]; ok {
			item.Definition = def.Description
			if item.Standard != nil {
				term := strings.ToLower(matrix.CoerceString(item.Standard))
				if v, ok := def.Values[term]; ok {
					item.StandardDefinition = v
				}
			}
		}
		items = append(items, item)
	}

	return CompetencyReport{Title: normalized, Level: level, Items: items}, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
