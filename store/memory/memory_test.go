package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/store/memory"
	"github.com/user/fitfusion-go/store/storetest"
)

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.New()
	})
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.CreateExercise(ctx, &store.Exercise{Name: "x", Description: "y"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	list, err := s.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

func TestReturnedRowsAreCopies(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	id, err := s.CreateExercise(ctx, &store.Exercise{Name: "Plank", Description: "Hold"})
	require.NoError(t, err)

	got, err := s.GetExercise(ctx, id)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.GetExercise(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Plank", again.Name)
}
