package ratecache_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vporfyris/wallet_rates_app/internal/core/domain"
	"github.com/vporfyris/wallet_rates_app/internal/platform/ratecache"
)

func snapshotFixture() domain.RateSnapshot {
	return domain.RateSnapshot{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(2),
		},
	}
}

func TestCache_EmptyMisses(t *testing.T) {
	cache := ratecache.New(time.Minute)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestCache_SetThenGet(t *testing.T) {
	cache := ratecache.New(time.Minute)
	cache.Set(snapshotFixture())

	got, ok := cache.Get()
	require.True(t, ok)
	assert.True(t, got.Date.Equal(snapshotFixture().Date))
	rate, found := got.Rate("USD")
	require.True(t, found)
	assert.True(t, rate.Equal(decimal.NewFromInt(2)))
}

func TestCache_ExpiresAfterInactivity(t *testing.T) {
	cache := ratecache.New(30 * time.Millisecond)
	cache.Set(snapshotFixture())

	time.Sleep(60 * time.Millisecond)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestCache_SlidingWindowReArmsOnHit(t *testing.T) {
	cache := ratecache.New(60 * time.Millisecond)
	cache.Set(snapshotFixture())

	// Keep touching the entry at intervals shorter than the TTL; the total
	// elapsed time exceeds it, but the window slides with each hit.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, ok := cache.Get()
		require.True(t, ok, "hit %d should have kept the entry alive", i)
	}
}

func TestCache_Drop(t *testing.T) {
	cache := ratecache.New(time.Minute)
	cache.Set(snapshotFixture())
	cache.Drop()

	_, ok := cache.Get()
	assert.False(t, ok)
}
