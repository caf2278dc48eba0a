package usecase

import (
	"context"
	"encoding/json"
	"time"

	"competency-matrix/internal/domain/matrix"
	"competency-matrix/internal/repository"
)

// In-memory store shared by the fake repositories so ingest and catalog can
// be exercised end to end without a database.
type memStore struct {
	matrix    []matrix.MatrixEntry
	standards []matrix.StandardRecord
	defs      []matrix.DefinitionEntry
}

type memMatrixRepo struct {
	s   *memStore
	err error
}

func (r *memMatrixRepo) Insert(_ context.Context, entry matrix.MatrixEntry) error {
	if r.err != nil {
		return r.err
	}
	r.s.matrix = append(r.s.matrix, entry)
	return nil
}

func (r *memMatrixRepo) DeleteAll(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.s.matrix = nil
	return nil
}

func (r *memMatrixRepo) FindByTitle(_ context.Context, title string) (matrix.MatrixEntry, bool, error) {
	if r.err != nil {
		return matrix.MatrixEntry{}, false, r.err
	}
	for _, e := range r.s.matrix {
		if e.JobTitle == title {
			return e, true, nil
		}
	}
	return matrix.MatrixEntry{}, false, nil
}

func (r *memMatrixRepo) ListTitles(context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]string, 0, len(r.s.matrix))
	for _, e := range r.s.matrix {
		out = append(out, e.JobTitle)
	}
	return out, nil
}

type memStandardRepo struct {
	s   *memStore
	err error
}

func (r *memStandardRepo) Insert(_ context.Context, record matrix.StandardRecord) error {
	if r.err != nil {
		return r.err
	}
	r.s.standards = append(r.s.standards, record)
	return nil
}

func (r *memStandardRepo) DeleteAll(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.s.standards = nil
	return nil
}

func (r *memStandardRepo) FindByTitleLevel(_ context.Context, title, level string) (matrix.StandardRecord, bool, error) {
	if r.err != nil {
		return matrix.StandardRecord{}, false, r.err
	}
	for _, rec := range r.s.standards {
		if rec.JobTitle == title && rec.Level == level {
			return rec, true, nil
		}
	}
	return matrix.StandardRecord{}, false, nil
}

func (r *memStandardRepo) ListTitleLevels(context.Context) ([]repository.TitleLevel, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]repository.TitleLevel, 0, len(r.s.standards))
	for _, rec := range r.s.standards {
		out = append(out, repository.TitleLevel{JobTitle: rec.JobTitle, Level: rec.Level})
	}
	return out, nil
}

type memDefinitionRepo struct {
	s   *memStore
	err error
}

func (r *memDefinitionRepo) Insert(_ context.Context, def matrix.DefinitionEntry) error {
	if r.err != nil {
		return r.err
	}
	r.s.defs = append(r.s.defs, def)
	return nil
}

func (r *memDefinitionRepo) DeleteAll(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.s.defs = nil
	return nil
}

func (r *memDefinitionRepo) ListAll(context.Context) ([]matrix.DefinitionEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]matrix.DefinitionEntry(nil), r.s.defs...), nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newMemRepos() (*memStore, *memMatrixRepo, *memStandardRepo, *memDefinitionRepo) {
	s := &memStore{}
	return s, &memMatrixRepo{s: s}, &memStandardRepo{s: s}, &memDefinitionRepo{s: s}
}
