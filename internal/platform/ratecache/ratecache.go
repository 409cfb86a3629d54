package ratecache

import (
	"sync"
	"time"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
)

// Cache holds the single "latest known rate snapshot" for the process with a
// sliding expiration window: every hit re-arms the timer, and a snapshot that
// goes unread for the full TTL is dropped on the next access.
//
// It is an explicitly owned component rather than ambient global state so
// tests can construct isolated instances. A race between expiry and
// repopulation costs at most one extra store read; rate rows are immutable
// once published, so there is no correctness impact.
type Cache struct {
	mu        sync.Mutex
	ttl       time.Duration
	snapshot  domain.RateSnapshot
	populated bool
	expiresAt time.Time
}

// New creates an empty cache with the given sliding TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached snapshot if one is present and not expired,
// re-arming the expiration timer on a hit.
func (c *Cache) Get() (domain.RateSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if !c.populated || now.After(c.expiresAt) {
		c.populated = false
		return domain.RateSnapshot{}, false
	}

	c.expiresAt = now.Add(c.ttl)
	return c.snapshot, true
}

// Set stores a snapshot and starts a fresh expiration window.
func (c *Cache) Set(snapshot domain.RateSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.populated = true
	c.expiresAt = time.Now().Add(c.ttl)
}

// Drop empties the cache so the next read goes back to the store.
func (c *Cache) Drop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = domain.RateSnapshot{}
	c.populated = false
}
