package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(time.Second + time.Nanosecond)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Size())
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Set("c", []byte("3"))

				_, ok := c.Get("a")
				assert.False(t, ok)
				v, ok := c.Get("b")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, "3", string(v))
			},
		},
		{
			name:     "get refreshes recency",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("b")
				assert.False(t, ok)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(600 * time.Millisecond)
				c.Set("a", []byte("2"))
				clock.Advance(600 * time.Millisecond)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "cleanup removes only expired",
			capacity: 3,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(800 * time.Millisecond)
				c.Set("b", []byte("2"))
				clock.Advance(300 * time.Millisecond)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl, WithClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	clock := &fakeClock{now: time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache(2, time.Second, WithClock(clock.Now), WithJanitorInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))

	c.Set("a", []byte("1"))
	clock.Advance(2 * time.Second)

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}
