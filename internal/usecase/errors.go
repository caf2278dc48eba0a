package usecase

import (
	"errors"

	"competency-matrix/internal/database"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrTitleNotFound    = errors.New("title not found")
	ErrInternal         = errors.New("internal error")
)

func mapStoreErr(err error) error {
	if errors.Is(err, database.ErrNotInitialized) {
		return ErrStoreUnavailable
	}
	return ErrInternal
}
