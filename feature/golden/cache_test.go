package golden

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"finledger/feature/golden/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingsCache(t *testing.T) {
	t.Run("reuses fresh entries", func(t *testing.T) {
		c := newHoldingsCache(time.Minute)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		var loads int
		load := func() ([]models.GoldenHolding, error) {
			loads++
			return []models.GoldenHolding{{ID: uint(loads)}}, nil
		}

		first, err := c.get("ref/EQUITY", load)
		require.NoError(t, err)
		second, err := c.get("ref/EQUITY", load)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, loads)

		now = now.Add(2 * time.Minute)
		third, err := c.get("ref/EQUITY", load)
		require.NoError(t, err)
		assert.Equal(t, uint(2), third[0].ID)
	})

	t.Run("disabled", func(t *testing.T) {
		c := newHoldingsCache(0)
		var loads int
		for i := 0; i < 3; i++ {
			_, err := c.get("k", func() ([]models.GoldenHolding, error) { loads++; return nil, nil })
			require.NoError(t, err)
		}
		assert.Equal(t, 3, loads)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := newHoldingsCache(time.Minute)
		_, err := c.get("k", func() ([]models.GoldenHolding, error) { return nil, errors.New("down") })
		assert.Error(t, err)

		got, err := c.get("k", func() ([]models.GoldenHolding, error) { return []models.GoldenHolding{{ID: 7}}, nil })
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("concurrent misses share one load", func(t *testing.T) {
		c := newHoldingsCache(time.Minute)
		var loads int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.get("k", func() ([]models.GoldenHolding, error) {
					atomic.AddInt32(&loads, 1)
					<-release
					return []models.GoldenHolding{{ID: 1}}, nil
				})
				assert.NoError(t, err)
			}()
		}

		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()
		assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	})
}
