package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

func TestMemoryListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(Operation{ID: 1, Date: day, EirCode: "A"})
	repo.Create(ctx, Operation{ID: 3, Date: day, EirCode: "C"})
	repo.Create(ctx, Operation{ID: 2, Date: day, EirCode: "B"})

	ids := make([]int, 0)
	for _, op := range repo.List(ctx) {
		ids = append(ids, op.ID)
	}
	assert.Equal(t, []int{1, 3, 2}, ids)
}

func TestMemoryListIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(Operation{ID: 1, EirCode: "A"})

	list := repo.List(ctx)
	list[0].EirCode = "changed"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.EirCode)
}

func TestMemoryListEmptyIsNotNil(t *testing.T) {
	list := NewMemory().List(context.Background())
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(Operation{ID: 1, EirCode: "first"}, Operation{ID: 1, EirCode: "second"})

	t.Run("ok: returns first match", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "first", got.EirCode)
	})

	t.Run("err: missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryDeleteByIDRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(
		Operation{ID: 1, EirCode: "a"},
		Operation{ID: 2, EirCode: "b"},
		Operation{ID: 1, EirCode: "c"},
	)

	assert.Equal(t, 2, repo.DeleteByID(ctx, 1))
	assert.Equal(t, []Operation{{ID: 2, EirCode: "b"}}, repo.List(ctx))
	assert.Zero(t, repo.DeleteByID(ctx, 1))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			repo.Create(ctx, Operation{ID: id})
			_ = repo.List(ctx)
			_, _ = repo.GetByID(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.List(ctx), 50)
	for i := 0; i < 50; i += 2 {
		assert.Equal(t, 1, repo.DeleteByID(ctx, i))
	}
	assert.Len(t, repo.List(ctx), 25)
}
