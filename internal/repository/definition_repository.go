package repository

import (
	"context"
	"encoding/json"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

type DefinitionRepository interface {
	Insert(ctx context.Context, def matrix.DefinitionEntry) error
	DeleteAll(ctx context.Context) error
	// ListAll returns every definition in store order. Duplicate keys are
	// possible; callers decide which wins.
	ListAll(ctx context.Context) ([]matrix.DefinitionEntry, error)
}

type PostgresDefinitionRepository struct {
	handle *database.Handle
}

func NewPostgresDefinitionRepository(handle *database.Handle) *PostgresDefinitionRepository {
	return &PostgresDefinitionRepository{handle: handle}
}

func (r *PostgresDefinitionRepository) Insert(ctx context.Context, def matrix.DefinitionEntry) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	values := def.Values
	if values == nil {
		values = map[string]any{}
	}
	doc, err := json.Marshal(values)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO definition_entries (id, key, label, description, "values") VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), def.Key, def.Label, def.Description, doc,
	)
	return err
}

func (r *PostgresDefinitionRepository) DeleteAll(ctx context.Context) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `DELETE FROM definition_entries`)
	return err
}

func (r *PostgresDefinitionRepository) ListAll(ctx context.Context) ([]matrix.DefinitionEntry, error) {
	db, err := r.handle.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT key, label, description, "values" FROM definition_entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matrix.DefinitionEntry, 0)
	for rows.Next() {
		var def matrix.DefinitionEntry
		var doc []byte
		if err := rows.Scan(&def.Key, &def.Label, &def.Description, &doc); err != nil {
			return nil, err
		}
		if len(doc) > 0 {
			if err := json.Unmarshal(doc, &def.Values); err != nil {
				return nil, err
			}
		}
		out = append(out, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
