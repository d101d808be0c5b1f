package store

import (
	"context"

	"github.com/musicvalue/vault-backend/internal/domain"
)

// Store persists linked artist identities and the vault snapshots maintained
// by the hydrator.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// SaveIdentity inserts or replaces the identity for its user ID
	SaveIdentity(ctx context.Context, identity *domain.LinkedIdentity) error

	// GetIdentity returns the identity for a user ID, or
	// domain.ErrIdentityNotFound
	GetIdentity(ctx context.Context, userID string) (*domain.LinkedIdentity, error)

	// DeleteIdentity removes the identity for a user ID. Deleting an absent
	// identity is not an error.
	DeleteIdentity(ctx context.Context, userID string) error

	// UpsertVaultSnapshot inserts or refreshes the snapshot for a vault
	UpsertVaultSnapshot(ctx context.Context, snapshot *VaultSnapshot) error

	// GetVaultSnapshot returns the snapshot for a vault address, or
	// domain.ErrVaultNotFound
	GetVaultSnapshot(ctx context.Context, address string) (*VaultSnapshot, error)

	// ListVaultSnapshots returns all snapshots, most recently created first
	ListVaultSnapshots(ctx context.Context) ([]VaultSnapshot, error)

	// AutoMigrate creates or updates the backing tables
	AutoMigrate() error
}

// VaultSnapshot pairs on-chain vault state with the track metadata resolved
// for it.
type VaultSnapshot struct {
	Vault        domain.Vault
	TrackTitle   string
	TrackArtist  string
	TrackArtwork string
	RefreshedAt  int64
}
