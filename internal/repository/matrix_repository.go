package repository

import (
	"context"
	"encoding/json"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

type MatrixRepository interface {
	Insert(ctx context.Context, entry matrix.MatrixEntry) error
	DeleteAll(ctx context.Context) error
	FindByTitle(ctx context.Context, title string) (matrix.MatrixEntry, bool, error)
	// ListTitles returns the job_title column of every entry, duplicates
	// included; callers dedupe.
	ListTitles(ctx context.Context) ([]string, error)
}

type PostgresMatrixRepository struct {
	handle *database.Handle
}

func NewPostgresMatrixRepository(handle *database.Handle) *PostgresMatrixRepository {
	return &PostgresMatrixRepository{handle: handle}
}

func (r *PostgresMatrixRepository) Insert(ctx context.Context, entry matrix.MatrixEntry) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	comps := entry.Competencies
	if comps == nil {
		comps = []any{}
	}
	doc, err := json.Marshal(comps)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO matrix_entries (id, job_title, competencies) VALUES ($1, $2, $3)`,
		uuid.New(), entry.JobTitle, doc,
	)
	return err
}

func (r *PostgresMatrixRepository) DeleteAll(ctx context.Context) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `DELETE FROM matrix_entries`)
	return err
}

func (r *PostgresMatrixRepository) FindByTitle(ctx context.Context, title string) (matrix.MatrixEntry, bool, error) {
	db, err := r.handle.Acquire()
	if err != nil {
		return matrix.MatrixEntry{}, false, err
	}
	rows, err := db.Query(ctx,
		`SELECT job_title, competencies FROM matrix_entries WHERE job_title = $1 LIMIT 1`,
		title,
	)
	if err != nil {
		return matrix.MatrixEntry{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return matrix.MatrixEntry{}, false, rows.Err()
	}
	var entry matrix.MatrixEntry
	var doc []byte
	if err := rows.Scan(&entry.JobTitle, &doc); err != nil {
		return matrix.MatrixEntry{}, false, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &entry.Competencies); err != nil {
			return matrix.MatrixEntry{}, false, err
		}
	}
	return entry, true, nil
}

func (r *PostgresMatrixRepository) ListTitles(ctx context.Context) ([]string, error) {
	db, err := r.handle.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT job_title FROM matrix_entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
