package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no operation matches the requested ID.
var ErrNotFound = errors.New("operation not found")

// Operation is a stored domain request. IDs are caller-assigned and not
// required to be unique.
type Operation struct {
	ID      int
	Date    time.Time
	EirCode string
}

// Repository defines the storage contract for operations.
type Repository interface {
	// List returns every operation in insertion order.
	List(ctx context.Context) []Operation
	// GetByID returns the first operation with the given ID or ErrNotFound.
	GetByID(ctx context.Context, id int) (Operation, error)
	// Create appends op without any uniqueness check.
	Create(ctx context.Context, op Operation)
	// DeleteByID removes every operation with the given ID and reports how many were removed.
	DeleteByID(ctx context.Context, id int) int
}
