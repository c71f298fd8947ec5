package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[[]byte], *clock) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[[]byte](capacity, ttl)
	c.now = clk.now
	return c, clk
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[[]byte], clk *clock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[[]byte], _ *clock) {
				c.Set("a", []byte("1"))
				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[[]byte], clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(60 * time.Millisecond)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[[]byte], _ *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Set("c", []byte("3"))

				_, ok := c.Get("a")
				assert.False(t, ok, "a must be evicted")

				v, ok := c.Get("b")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
				v, ok = c.Get("c")
				require.True(t, ok)
				assert.Equal(t, "3", string(v))
			},
		},
		{
			name:     "get refreshes recency",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[[]byte], _ *clock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b must be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[[]byte], clk *clock) {
				c.Set("a", []byte("1"))
				clk.advance(30 * time.Millisecond)
				c.Set("a", []byte("2"))
				clk.advance(30 * time.Millisecond)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[[]byte], _ *clock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[[]byte], clk *clock) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				require.NoError(t, c.Start(ctx))

				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				clk.advance(60 * time.Millisecond)
				c.Set("c", []byte("3"))

				c.cleanup()
				assert.Equal(t, 1, c.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newTestCache(tt.capacity, tt.ttl)
			tt.actions(t, c, clk)
		})
	}
}
