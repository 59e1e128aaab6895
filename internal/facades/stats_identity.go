package facades

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grinval/gs-login-core/internal/logger"
)

// StatsReader resolves a character identity from the external stats store.
type StatsReader interface {
	FindCharacterID(ctx context.Context, name string) (int64, error)
}

// StatsIdentityFacade probes the external stats source for a pre-existing
// player identity, with a Redis cache in front of the stats database.
type StatsIdentityFacade struct {
	stats StatsReader
	cache *redis.Client
	exp   time.Duration
}

// NewStatsIdentityFacade creates a facade. The cache client may be nil,
// in which case every probe goes to the stats store.
func NewStatsIdentityFacade(stats StatsReader, cache *redis.Client, expiration time.Duration) *StatsIdentityFacade {
	return &StatsIdentityFacade{stats: stats, cache: cache, exp: expiration}
}

// Probe returns the authoritative identity for a username, if one exists.
// Any failure along the way (cache, stats store, stale value) is reported
// as "no match": the probe must never abort account creation.
func (f *StatsIdentityFacade) Probe(ctx context.Context, username string) (int64, bool) {
	key := "stats:char_id:" + strings.ToLower(username)

	if f.cache != nil {
		val, err := f.cache.Get(ctx, key).Result()
		if err == nil {
			id, parseErr := strconv.ParseInt(val, 10, 64)
			if parseErr == nil && id > 0 {
				logger.Log.Infow("stats identity cache hit", "username", username, "char_id", id)
				return id, true
			}
			logger.Log.Warnw("discarding unparsable cached identity", "key", key, "value", val)
		} else if err != redis.Nil {
			logger.Log.Warnw("stats identity cache unavailable", "key", key, "error", err)
		}
	}

	id, err := f.stats.FindCharacterID(ctx, username)
	if err != nil {
		logger.Log.Warnw("stats identity lookup failed, treating as no match",
			"username", username, "error", err)
		return 0, false
	}
	if id <= 0 {
		return 0, false
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, key, strconv.FormatInt(id, 10), f.exp).Err(); err != nil {
			logger.Log.Warnw("failed to cache stats identity", "key", key, "error", err)
		}
	}

	return id, true
}
