package hydrator_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/hydrator"
	"github.com/musicvalue/vault-backend/internal/mocks"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
	"github.com/musicvalue/vault-backend/internal/store"
)

func testVault(trackID string, deposited uint64) domain.Vault {
	return domain.Vault{
		Address:        "vault-" + trackID,
		AudiusTrackID:  trackID,
		TotalDeposited: deposited,
		Cap:            10_000_000,
		TotalShares:    deposited,
	}
}

func TestHydrateAll_DropsVaultsWithUnresolvableTracks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	vaults := []domain.Vault{
		testVault("aaa", 1_000_000),
		testVault("bbb", 5_000_000),
		testVault("ccc", 3_000_000),
	}

	program.EXPECT().FetchAllVaults(ctx).Return(vaults, nil)
	tracks.EXPECT().GetTrack(ctx, "aaa").Return(&audius.Track{ID: "aaa", Title: "A"}, nil)
	tracks.EXPECT().GetTrack(ctx, "bbb").Return(nil, assert.AnError)
	tracks.EXPECT().GetTrack(ctx, "ccc").Return(&audius.Track{ID: "ccc", Title: "C"}, nil)

	h := hydrator.New(program, tracks, st, clock, 4)
	defer h.Stop()

	hydrated, err := h.HydrateAll(ctx)

	require.NoError(t, err)
	require.Len(t, hydrated, 2)

	// Failed metadata drops the vault; survivors are ordered by deposits
	assert.Equal(t, "ccc", hydrated[0].Vault.AudiusTrackID)
	assert.Equal(t, "aaa", hydrated[1].Vault.AudiusTrackID)
	assert.Equal(t, "C", hydrated[0].Track.Title)
}

func TestHydrateAll_PropagatesListingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	program.EXPECT().FetchAllVaults(ctx).Return(nil, assert.AnError)

	h := hydrator.New(program, tracks, st, clock, 4)
	defer h.Stop()

	_, err := h.HydrateAll(ctx)
	assert.Error(t, err)
}

func TestRefresh_PersistsSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	clock.EXPECT().Now().Return(now).AnyTimes()

	program.EXPECT().FetchAllVaults(ctx).Return([]domain.Vault{testVault("aaa", 1_000_000)}, nil)
	tracks.EXPECT().GetTrack(ctx, "aaa").Return(&audius.Track{
		ID:      "aaa",
		Title:   "A",
		User:    audius.User{Name: "Artist A"},
		Artwork: map[string]string{"480x480": "https://cdn/a.jpg"},
	}, nil)

	st.EXPECT().
		UpsertVaultSnapshot(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *store.VaultSnapshot) error {
			assert.Equal(t, "aaa", snapshot.Vault.AudiusTrackID)
			assert.Equal(t, "A", snapshot.TrackTitle)
			assert.Equal(t, "Artist A", snapshot.TrackArtist)
			assert.Equal(t, "https://cdn/a.jpg", snapshot.TrackArtwork)
			assert.Equal(t, now.Unix(), snapshot.RefreshedAt)
			return nil
		})

	h := hydrator.New(program, tracks, st, clock, 4)
	defer h.Stop()

	require.NoError(t, h.Refresh(ctx))
}
