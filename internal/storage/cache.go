package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

const (
	// CollectionKey holds the JSON-encoded roster.
	CollectionKey = "cachedPokemon"
	// DefaultTTL is how long a cached roster stays valid.
	DefaultTTL = 24 * time.Hour
)

// CollectionCache stores the whole roster as one blob with a single expiry.
// It is either valid or expired; there is no partial eviction.
type CollectionCache struct {
	kv  *KV
	ttl time.Duration
}

// NewCollectionCache returns a cache over kv. A non-positive ttl means
// DefaultTTL.
func NewCollectionCache(kv *KV, ttl time.Duration) *CollectionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CollectionCache{kv: kv, ttl: ttl}
}

// Load returns the cached roster when one exists and is younger than the TTL.
func (c *CollectionCache) Load() ([]pokedex.Record, bool, error) {
	data, updated, ok, err := c.kv.Get(CollectionKey)
	if err != nil || !ok {
		return nil, false, err
	}
	if c.kv.now().Sub(updated) >= c.ttl {
		return nil, false, nil
	}
	var records []pokedex.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("%w: decode cached collection: %w", pokedex.ErrStorage, err)
	}
	return records, true, nil
}

// Save replaces the cached roster and restarts its validity window.
func (c *CollectionCache) Save(records []pokedex.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode collection: %w", pokedex.ErrStorage, err)
	}
	return c.kv.Put(CollectionKey, data)
}

// Clear drops the cached roster.
func (c *CollectionCache) Clear() error {
	return c.kv.Delete(CollectionKey)
}

// Status describes the cached roster without decoding it.
type Status struct {
	Present bool
	Valid   bool
	Age     time.Duration
	Size    int
}

// Status reports whether a roster is cached, how old it is and whether it
// is still within the TTL.
func (c *CollectionCache) Status() (Status, error) {
	data, updated, ok, err := c.kv.Get(CollectionKey)
	if err != nil || !ok {
		return Status{}, err
	}
	age := c.kv.now().Sub(updated)
	return Status{Present: true, Valid: age < c.ttl, Age: age, Size: len(data)}, nil
}

// TTL returns the validity window.
func (c *CollectionCache) TTL() time.Duration { return c.ttl }
