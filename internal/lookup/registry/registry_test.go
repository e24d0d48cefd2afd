package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := New()

	t.Run("unknown id is not banned", func(t *testing.T) {
		assert.False(t, r.IsBanned(ctx, 42))
	})

	t.Run("mark is monotonic and idempotent", func(t *testing.T) {
		r.MarkBanned(ctx, 42)
		r.MarkBanned(ctx, 42)

		assert.True(t, r.IsBanned(ctx, 42))
		assert.Equal(t, 1, r.Len())
		assert.False(t, r.IsBanned(ctx, 43))
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	ctx := context.Background()
	r := New()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int64) {
			defer wg.Done()
			r.MarkBanned(ctx, id%10)
			_ = r.IsBanned(ctx, id)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
	for id := int64(0); id < 10; id++ {
		assert.True(t, r.IsBanned(ctx, id))
	}
}
