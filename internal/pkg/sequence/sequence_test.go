//go:build unit

package sequence_test

import (
	"sync"
	"testing"

	"travel-booking/internal/pkg/sequence"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	t.Run("starts at base", func(t *testing.T) {
		seq := sequence.New(400001)
		assert.Equal(t, int64(400001), seq.Next())
		assert.Equal(t, int64(400002), seq.Next())
	})

	t.Run("recovers from observed max", func(t *testing.T) {
		seq := sequence.New(500001)
		seq.Observe(500007)
		seq.Observe(500003)
		assert.Equal(t, int64(500008), seq.Next())
	})

	t.Run("observing below watermark is a no-op", func(t *testing.T) {
		seq := sequence.New(100001)
		seq.Observe(7)
		assert.Equal(t, int64(100001), seq.Next())
	})

	t.Run("concurrent allocations are unique", func(t *testing.T) {
		seq := sequence.New(1)
		const n = 100

		var wg sync.WaitGroup
		ids := make([]int64, n)
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ids[i] = seq.Next()
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, n)
		for _, id := range ids {
			assert.False(t, seen[id], "id %d allocated twice", id)
			seen[id] = true
		}
	})
}
