package loadercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/careerstats/pkg/utils/cache"
)

func countingLoader(calls *int) LoaderFunc[string, string] {
	return func(ctx context.Context, key string) (*string, error) {
		*calls++
		if key == "bad" {
			return nil, errors.New("cannot load")
		}
		v := "value-" + key
		return &v, nil
	}
}

func TestLoaderCache_Get(t *testing.T) {
	ctx := context.Background()
	calls := 0
	c := New(WithLoader(countingLoader(&calls)))

	v, err := c.Get(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, "value-a", *v)
	_, _ = c.Get(ctx, "a")
	assert.Equal(t, 1, calls, "second get is served from cache")

	_, err = c.Get(ctx, "bad")
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len(), "failed loads are not cached")

	c.Invalidate(ctx, "a")
	_, _ = c.Get(ctx, "a")
	assert.Equal(t, 3, calls)

	c.InvalidateAll(ctx)
	assert.Equal(t, 0, c.Len())
}

func TestLoaderCache_Expiration(t *testing.T) {
	ctx := context.Background()
	calls := 0
	now := time.Date(2024, 4, 28, 11, 10, 12, 0, time.UTC)
	c := New(
		WithLoader(countingLoader(&calls)),
		WithExpiration[string, string](time.Minute),
		WithClock[string, string](func() time.Time { return now }),
	)
	_, _ = c.Get(ctx, "a")
	now = now.Add(30 * time.Second)
	_, _ = c.Get(ctx, "a")
	assert.Equal(t, 1, calls)
	now = now.Add(time.Minute)
	_, _ = c.Get(ctx, "a")
	assert.Equal(t, 2, calls)
}

func TestLoaderCache_NoLoader(t *testing.T) {
	c := New[string, string]()
	_, err := c.Get(context.Background(), "a")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
