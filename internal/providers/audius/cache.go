package audius

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/logger"
)

// cachedClient decorates a Client with a read-through cache for metadata
// lookups. Cache failures degrade to the origin; they never fail a request.
type cachedClient struct {
	next  Client
	cache adapter.Cache
	json  adapter.JSON
	ttl   time.Duration
}

// NewCachedClient wraps a client with a metadata cache. Track metadata is
// effectively immutable over the TTL window, so staleness is acceptable.
func NewCachedClient(next Client, cache adapter.Cache, json adapter.JSON, ttl time.Duration) Client {
	return &cachedClient{next: next, cache: cache, json: json, ttl: ttl}
}

func trackKey(trackID string) string {
	return "audius:track:" + trackID
}

func trendingKey(limit int, genre, timeRange string) string {
	return fmt.Sprintf("audius:trending:%d:%s:%s", limit, genre, timeRange)
}

func (c *cachedClient) GetTrack(ctx context.Context, trackID string) (*Track, error) {
	key := trackKey(trackID)
	if raw, err := c.cache.Get(ctx, key); err == nil {
		var track Track
		if err := c.json.Unmarshal(raw, &track); err == nil {
			return &track, nil
		}
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		logger.Warn("track cache read failed", zap.String("track_id", trackID), zap.Error(err))
	}

	track, err := c.next.GetTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, track)
	return track, nil
}

func (c *cachedClient) GetTrendingTracks(ctx context.Context, limit int, genre, timeRange string) ([]Track, error) {
	key := trendingKey(limit, genre, timeRange)
	if raw, err := c.cache.Get(ctx, key); err == nil {
		var tracks []Track
		if err := c.json.Unmarshal(raw, &tracks); err == nil {
			return tracks, nil
		}
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		logger.Warn("trending cache read failed", zap.Error(err))
	}

	tracks, err := c.next.GetTrendingTracks(ctx, limit, genre, timeRange)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, tracks)
	return tracks, nil
}

// SearchTracks is not cached: queries are high-cardinality and rarely repeat
func (c *cachedClient) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	return c.next.SearchTracks(ctx, query, limit)
}

func (c *cachedClient) GetUserTracks(ctx context.Context, userID string) ([]Track, error) {
	return c.next.GetUserTracks(ctx, userID)
}

// VerifyToken is never cached: each call must hit the provider
func (c *cachedClient) VerifyToken(ctx context.Context, token string) (*VerifiedUser, error) {
	return c.next.VerifyToken(ctx, token)
}

func (c *cachedClient) TrackStreamURL(trackID string) string {
	return c.next.TrackStreamURL(trackID)
}

func (c *cachedClient) store(ctx context.Context, key string, v interface{}) {
	raw, err := c.json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
