package golden

import (
	"sync"
	"time"

	"finledger/feature/golden/models"

	"golang.org/x/sync/singleflight"
)

// holdingsEntry is one cached holdings list.
type holdingsEntry struct {
	holdings []models.GoldenHolding
	built    time.Time
}

// holdingsCache keeps golden holdings per (reference, asset class). Golden holdings are
// append-only, so entries only age out by TTL.
type holdingsCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]holdingsEntry
	sf      singleflight.Group
	now     func() time.Time
}

func newHoldingsCache(ttl time.Duration) *holdingsCache {
	return &holdingsCache{
		ttl:     ttl,
		entries: make(map[string]holdingsEntry),
		now:     time.Now,
	}
}

func (c *holdingsCache) fresh(key string) ([]models.GoldenHolding, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.holdings, true
}

// get returns the cached list for key or loads it. Concurrent misses for the same key
// share one load.
func (c *holdingsCache) get(key string, load func() ([]models.GoldenHolding, error)) ([]models.GoldenHolding, error) {
	if c.ttl <= 0 {
		return load()
	}

	// Fast path
	if holdings, ok := c.fresh(key); ok {
		return holdings, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		// Double-check after joining the flight
		if holdings, ok := c.fresh(key); ok {
			return holdings, nil
		}

		holdings, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = holdingsEntry{holdings: holdings, built: c.now()}
		c.mu.Unlock()

		return holdings, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]models.GoldenHolding), nil
}
