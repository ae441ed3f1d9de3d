package repository

import (
	"context"
	"sync"
)

// MemoryRepository keeps operations in process memory. State is lost on restart.
type MemoryRepository struct {
	mu         sync.RWMutex
	operations []Operation
}

// NewMemory creates an in-memory repository pre-populated with seed.
func NewMemory(seed ...Operation) *MemoryRepository {
	operations := make([]Operation, 0, len(seed))
	operations = append(operations, seed...)
	return &MemoryRepository{operations: operations}
}

func (r *MemoryRepository) List(_ context.Context) []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Operation, len(r.operations))
	copy(result, r.operations)
	return result
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, op := range r.operations {
		if op.ID == id {
			return op, nil
		}
	}
	return Operation{}, ErrNotFound
}

func (r *MemoryRepository) Create(_ context.Context, op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.operations = append(r.operations, op)
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.operations[:0]
	for _, op := range r.operations {
		if op.ID != id {
			kept = append(kept, op)
		}
	}
	removed := len(r.operations) - len(kept)
	clear(r.operations[len(kept):])
	r.operations = kept
	return removed
}

// Compile-time check that MemoryRepository implements Repository
var _ Repository = (*MemoryRepository)(nil)
