package hydrator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/logger"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
	solanaclient "github.com/musicvalue/vault-backend/internal/providers/solana"
	"github.com/musicvalue/vault-backend/internal/store"
	"github.com/musicvalue/vault-backend/internal/vault"
)

// HydratedVault joins one vault's on-chain state with its derived display
// values and the track metadata it references.
type HydratedVault struct {
	Vault   domain.Vault  `json:"vault"`
	Derived vault.Summary `json:"derived"`
	Track   audius.Track  `json:"track"`
}

// Hydrator fans out metadata lookups for vault listings over a bounded
// worker pool. A vault whose track metadata cannot be resolved is dropped
// from the result rather than failing the whole listing.
type Hydrator struct {
	program solanaclient.Client
	tracks  audius.Client
	store   store.Store
	clock   adapter.Clock
	pool    pond.Pool
}

// New creates a hydrator with at most maxWorkers concurrent metadata lookups.
func New(program solanaclient.Client, tracks audius.Client, st store.Store, clock adapter.Clock, maxWorkers int) *Hydrator {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	return &Hydrator{
		program: program,
		tracks:  tracks,
		store:   st,
		clock:   clock,
		pool:    pond.NewPool(maxWorkers),
	}
}

// HydrateAll fetches every vault, resolves each one's track metadata
// concurrently and returns the joined results. Order follows total deposits,
// highest first, to match the listing page.
func (h *Hydrator) HydrateAll(ctx context.Context) ([]HydratedVault, error) {
	vaults, err := h.program.FetchAllVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}
	return h.hydrate(ctx, vaults), nil
}

// Refresh re-reads all vaults, hydrates them and writes snapshots for the
// listing endpoint. Called on a schedule and after each observed deposit.
func (h *Hydrator) Refresh(ctx context.Context) error {
	hydrated, err := h.HydrateAll(ctx)
	if err != nil {
		return err
	}

	now := h.clock.Now().Unix()
	for i := range hydrated {
		hv := &hydrated[i]
		snapshot := &store.VaultSnapshot{
			Vault:        hv.Vault,
			TrackTitle:   hv.Track.Title,
			TrackArtist:  hv.Track.User.Name,
			TrackArtwork: artworkURL(hv.Track.Artwork),
			RefreshedAt:  now,
		}
		if err := h.store.UpsertVaultSnapshot(ctx, snapshot); err != nil {
			logger.WarnCtx(ctx, "failed to persist vault snapshot",
				zap.String("address", hv.Vault.Address), zap.Error(err))
		}
	}

	logger.InfoCtx(ctx, "vault snapshots refreshed", zap.Int("count", len(hydrated)))
	return nil
}

// hydrate resolves track metadata for each vault on the pool. Failures are
// logged and the vault dropped; the remaining results are still returned.
func (h *Hydrator) hydrate(ctx context.Context, vaults []domain.Vault) []HydratedVault {
	var mu sync.Mutex
	results := make([]HydratedVault, 0, len(vaults))

	group := h.pool.NewGroup()
	for i := range vaults {
		v := vaults[i]
		group.Submit(func() {
			track, err := h.tracks.GetTrack(ctx, v.AudiusTrackID)
			if err != nil {
				logger.WarnCtx(ctx, "dropping vault with unresolvable track",
					zap.String("track_id", v.AudiusTrackID), zap.Error(err))
				return
			}

			mu.Lock()
			results = append(results, HydratedVault{
				Vault:   v,
				Derived: vault.Summarize(v),
				Track:   *track,
			})
			mu.Unlock()
		})
	}
	group.Wait()

	sortByDeposits(results)
	return results
}

// Stop releases the worker pool.
func (h *Hydrator) Stop() {
	h.pool.StopAndWait()
}

func sortByDeposits(hydrated []HydratedVault) {
	sort.Slice(hydrated, func(i, j int) bool {
		if hydrated[i].Vault.TotalDeposited != hydrated[j].Vault.TotalDeposited {
			return hydrated[i].Vault.TotalDeposited > hydrated[j].Vault.TotalDeposited
		}
		return hydrated[i].Vault.Address < hydrated[j].Vault.Address
	})
}

func artworkURL(artwork map[string]string) string {
	for _, size := range []string{"480x480", "150x150", "1000x1000"} {
		if u, ok := artwork[size]; ok && u != "" {
			return u
		}
	}
	return ""
}
