package verge_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := verge.NewMemoryCache()

	_, err := cache.Get(ctx, "missing")
	require.ErrorIs(t, err, verge.ErrCacheKeyNotFound)
	assert.False(t, cache.Has(ctx, "missing"))

	require.NoError(t, cache.Set(ctx, "a", "1"))
	assert.True(t, cache.Has(ctx, "a"))

	value, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))

	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := verge.NewMemoryCache()

	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_ = cache.Set(ctx, "shared", "value")
			_, _ = cache.Get(ctx, "shared")
			_ = cache.Has(ctx, "shared")
		}()
	}

	wg.Wait()

	value, err := cache.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := verge.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "a", "1"))
	assert.False(t, cache.Has(ctx, "a"))

	_, err := cache.Get(ctx, "a")
	require.ErrorIs(t, err, verge.ErrCacheDisabled)
}

func TestNameKeyCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := verge.NewNameKeyCache(nil)

	_, ok := cache.LookupKey(ctx, "vms", "web-01")
	assert.False(t, ok)

	cache.Store(ctx, "vms", "web-01", 42)

	key, ok := cache.LookupKey(ctx, "vms", "web-01")
	require.True(t, ok)
	assert.Equal(t, 42, key)

	name, ok := cache.LookupName(ctx, "vms", 42)
	require.True(t, ok)
	assert.Equal(t, "web-01", name)

	// Families are independent namespaces
	_, ok = cache.LookupKey(ctx, "tags", "web-01")
	assert.False(t, ok)
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    *verge.CacheConfig
		wantNoOp  bool
		wantError bool
	}{
		{
			name:   "nil config defaults to memory",
			config: nil,
		},
		{
			name:   "memory",
			config: &verge.CacheConfig{Type: verge.CacheTypeMemory},
		},
		{
			name:     "none",
			config:   &verge.CacheConfig{Type: verge.CacheTypeNone},
			wantNoOp: true,
		},
		{
			name:      "unknown type",
			config:    &verge.CacheConfig{Type: "redis"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache, err := verge.NewCacheFromConfig(tt.config)
			if tt.wantError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cache)

			if tt.wantNoOp {
				assert.IsType(t, &verge.NoOpCache{}, cache)
			}
		})
	}
}
