package repository

import (
	"context"
	"encoding/json"

	"competency-matrix/internal/database"
	"competency-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

// TitleLevel is the projection used to enumerate which levels exist per title.
type TitleLevel struct {
	JobTitle string
	Level    string
}

type StandardRepository interface {
	Insert(ctx context.Context, record matrix.StandardRecord) error
	DeleteAll(ctx context.Context) error
	FindByTitleLevel(ctx context.Context, title, level string) (matrix.StandardRecord, bool, error)
	ListTitleLevels(ctx context.Context) ([]TitleLevel, error)
}

type PostgresStandardRepository struct {
	handle *database.Handle
}

func NewPostgresStandardRepository(handle *database.Handle) *PostgresStandardRepository {
	return &PostgresStandardRepository{handle: handle}
}

func (r *PostgresStandardRepository) Insert(ctx context.Context, record matrix.StandardRecord) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	standards := record.Standards
	if standards == nil {
		standards = map[string]any{}
	}
	doc, err := json.Marshal(standards)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO standard_records (id, job_title, level, standards) VALUES ($1, $2, $3, $4)`,
		uuid.New(), record.JobTitle, record.Level, doc,
	)
	return err
}

func (r *PostgresStandardRepository) DeleteAll(ctx context.Context) error {
	db, err := r.handle.Acquire()
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `DELETE FROM standard_records`)
	return err
}

func (r *PostgresStandardRepository) FindByTitleLevel(ctx context.Context, title, level string) (matrix.StandardRecord, bool, error) {
	db, err := r.handle.Acquire()
	if err != nil {
		return matrix.StandardRecord{}, false, err
	}
	rows, err := db.Query(ctx,
		`SELECT job_title, level, standards FROM standard_records WHERE job_title = $1 AND level = $2 LIMIT 1`,
		title, level,
	)
	if err != nil {
		return matrix.StandardRecord{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return matrix.StandardRecord{}, false, rows.Err()
	}
	var record matrix.StandardRecord
	var doc []byte
	if err := rows.Scan(&record.JobTitle, &record.Level, &doc); err != nil {
		return matrix.StandardRecord{}, false, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &record.Standards); err != nil {
			return matrix.StandardRecord{}, false, err
		}
	}
	return record, true, nil
}

func (r *PostgresStandardRepository) ListTitleLevels(ctx context.Context) ([]TitleLevel, error) {
	db, err := r.handle.Acquire()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT job_title, level FROM standard_records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TitleLevel, 0)
	for rows.Next() {
		var tl TitleLevel
		if err := rows.Scan(&tl.JobTitle, &tl.Level); err != nil {
			return nil, err
		}
		out = append(out, tl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
