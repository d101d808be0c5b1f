package audius_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/mocks"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
)

const cacheTTL = 60 * time.Second

func TestCachedClient_GetTrack_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	cached := []byte(`{"id":"D7KyD","title":"Midnight Run"}`)

	mockCache.EXPECT().
		Get(ctx, "audius:track:D7KyD").
		Return(cached, nil)
	// No call reaches the origin on a hit

	track, err := client.GetTrack(ctx, "D7KyD")

	require.NoError(t, err)
	assert.Equal(t, "Midnight Run", track.Title)
}

func TestCachedClient_GetTrack_MissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	track := &audius.Track{ID: "D7KyD", Title: "Midnight Run"}

	mockCache.EXPECT().
		Get(ctx, "audius:track:D7KyD").
		Return(nil, adapter.ErrCacheMiss)
	mockNext.EXPECT().
		GetTrack(ctx, "D7KyD").
		Return(track, nil)
	mockCache.EXPECT().
		Set(ctx, "audius:track:D7KyD", gomock.Any(), cacheTTL).
		Return(nil)

	got, err := client.GetTrack(ctx, "D7KyD")

	require.NoError(t, err)
	assert.Equal(t, track, got)
}

func TestCachedClient_GetTrack_CacheFailureDegradesToOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	track := &audius.Track{ID: "D7KyD"}

	// A broken cache must never fail the request
	mockCache.EXPECT().
		Get(ctx, "audius:track:D7KyD").
		Return(nil, assert.AnError)
	mockNext.EXPECT().
		GetTrack(ctx, "D7KyD").
		Return(track, nil)
	mockCache.EXPECT().
		Set(ctx, gomock.Any(), gomock.Any(), cacheTTL).
		Return(assert.AnError)

	got, err := client.GetTrack(ctx, "D7KyD")

	require.NoError(t, err)
	assert.Equal(t, track, got)
}

func TestCachedClient_GetTrendingTracks_KeyPerQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	tracks := []audius.Track{{ID: "a"}, {ID: "b"}}

	mockCache.EXPECT().
		Get(ctx, "audius:trending:10:Electronic:week").
		Return(nil, adapter.ErrCacheMiss)
	mockNext.EXPECT().
		GetTrendingTracks(ctx, 10, "Electronic", "week").
		Return(tracks, nil)
	mockCache.EXPECT().
		Set(ctx, "audius:trending:10:Electronic:week", gomock.Any(), cacheTTL).
		Return(nil)

	got, err := client.GetTrendingTracks(ctx, 10, "Electronic", "week")

	require.NoError(t, err)
	assert.Equal(t, tracks, got)
}

func TestCachedClient_VerifyToken_NeverCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	user := &audius.VerifiedUser{UserID: "eP9G7"}

	// Each verification hits the provider; the cache is never consulted
	mockNext.EXPECT().
		VerifyToken(ctx, "token-1").
		Return(user, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		got, err := client.VerifyToken(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	}
}

func TestCachedClient_SearchTracks_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNext := mocks.NewMockAudiusClient(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	client := audius.NewCachedClient(mockNext, mockCache, adapter.NewJSON(), cacheTTL)

	ctx := context.Background()
	mockNext.EXPECT().
		SearchTracks(ctx, "midnight", 5).
		Return([]audius.Track{{ID: "D7KyD"}}, nil)

	tracks, err := client.SearchTracks(ctx, "midnight", 5)

	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}
