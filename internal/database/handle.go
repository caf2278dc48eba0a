package database

import "errors"

// ErrNotInitialized is returned by Handle.Acquire when the service started
// without a working store connection. Callers surface it before attempting
// any mutation.
var ErrNotInitialized = errors.New("store not initialized")

// Handle makes the "store may be absent" state explicit instead of passing
// a nullable DB around. A Handle is either backed by a live DB or empty;
// every access goes through Acquire so the unavailable branch is a checked
// error path, not a nil dereference.
type Handle struct {
	db DB
}

func NewHandle(db DB) *Handle {
	return &Handle{db: db}
}

// EmptyHandle returns a handle with no backing store. Acquire always fails.
func EmptyHandle() *Handle {
	return &Handle{}
}

func (h *Handle) Acquire() (DB, error) {
	if h == nil || h.db == nil {
		return nil, ErrNotInitialized
	}
	return h.db, nil
}

func (h *Handle) Available() bool {
	return h != nil && h.db != nil
}
