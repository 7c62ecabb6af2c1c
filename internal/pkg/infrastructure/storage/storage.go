package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("entity not found")

// Record is a stored entity document. Documents are kept as the exact JSON-LD
// text they were rendered to, so that property order survives a round trip.
type Record struct {
	ID       string
	Type     string
	Document string
	Modified time.Time
}

type Store interface {
	Put(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	// List returns records ordered by id, optionally filtered by type
	List(ctx context.Context, entityType string, offset, limit int) ([]Record, error)
	// Purge removes all records not modified since before and returns how many were removed
	Purge(ctx context.Context, before time.Time) (int64, error)
	Close()
}
