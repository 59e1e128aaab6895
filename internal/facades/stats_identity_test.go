package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeStatsReader struct {
	id    int64
	err   error
	calls int
}

func (f *fakeStatsReader) FindCharacterID(ctx context.Context, name string) (int64, error) {
	f.calls++
	return f.id, f.err
}

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestStatsIdentityFacade_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("match cached on first probe", func(t *testing.T) {
		stats := &fakeStatsReader{id: 123456}
		facade := NewStatsIdentityFacade(stats, newTestCache(t), time.Minute)

		id, ok := facade.Probe(ctx, "Alice")
		assert.True(t, ok)
		assert.Equal(t, int64(123456), id)

		// Second probe is served from cache.
		id, ok = facade.Probe(ctx, "alice")
		assert.True(t, ok)
		assert.Equal(t, int64(123456), id)
		assert.Equal(t, 1, stats.calls)
	})

	t.Run("no match", func(t *testing.T) {
		stats := &fakeStatsReader{id: 0}
		facade := NewStatsIdentityFacade(stats, newTestCache(t), time.Minute)

		id, ok := facade.Probe(ctx, "ghost")
		assert.False(t, ok)
		assert.Equal(t, int64(0), id)
	})

	t.Run("stats failure is swallowed", func(t *testing.T) {
		stats := &fakeStatsReader{err: errors.New("stats db unreachable")}
		facade := NewStatsIdentityFacade(stats, newTestCache(t), time.Minute)

		id, ok := facade.Probe(ctx, "alice")
		assert.False(t, ok)
		assert.Equal(t, int64(0), id)
	})

	t.Run("nil cache still probes", func(t *testing.T) {
		stats := &fakeStatsReader{id: 42}
		facade := NewStatsIdentityFacade(stats, nil, time.Minute)

		id, ok := facade.Probe(ctx, "alice")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})
}
