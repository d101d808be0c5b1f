package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/store/schema"
)

// PGStore implements Store on PostgreSQL via gorm.
type PGStore struct {
	db *gorm.DB
}

// NewPGStore opens a connection to the database and returns a store over it.
func NewPGStore(dsn string) (*PGStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PGStore{db: db}, nil
}

// NewPGStoreWithDB wraps an existing gorm handle, used in tests.
func NewPGStoreWithDB(db *gorm.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) AutoMigrate() error {
	return s.db.AutoMigrate(&schema.LinkedIdentity{}, &schema.VaultSnapshot{})
}

func (s *PGStore) SaveIdentity(ctx context.Context, identity *domain.LinkedIdentity) error {
	row := schema.LinkedIdentity{
		UserID:         identity.UserID,
		Handle:         identity.Handle,
		Name:           identity.Name,
		ProfilePicture: identity.ProfilePicture,
		JWT:            identity.JWT,
		LinkedAt:       identity.LinkedAt,
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}

func (s *PGStore) GetIdentity(ctx context.Context, userID string) (*domain.LinkedIdentity, error) {
	var row schema.LinkedIdentity
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}

	return &domain.LinkedIdentity{
		UserID:         row.UserID,
		Handle:         row.Handle,
		Name:           row.Name,
		ProfilePicture: row.ProfilePicture,
		JWT:            row.JWT,
		LinkedAt:       row.LinkedAt,
	}, nil
}

func (s *PGStore) DeleteIdentity(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Delete(&schema.LinkedIdentity{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	return nil
}

func (s *PGStore) UpsertVaultSnapshot(ctx context.Context, snapshot *VaultSnapshot) error {
	row := snapshotRow(snapshot)
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert vault snapshot: %w", err)
	}
	return nil
}

func (s *PGStore) GetVaultSnapshot(ctx context.Context, address string) (*VaultSnapshot, error) {
	var row schema.VaultSnapshot
	err := s.db.WithContext(ctx).First(&row, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrVaultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load vault snapshot: %w", err)
	}

	snapshot := snapshotFromRow(&row)
	return &snapshot, nil
}

func (s *PGStore) ListVaultSnapshots(ctx context.Context) ([]VaultSnapshot, error) {
	var rows []schema.VaultSnapshot
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list vault snapshots: %w", err)
	}

	snapshots := make([]VaultSnapshot, 0, len(rows))
	for i := range rows {
		snapshots = append(snapshots, snapshotFromRow(&rows[i]))
	}
	return snapshots, nil
}

func snapshotRow(snapshot *VaultSnapshot) schema.VaultSnapshot {
	v := snapshot.Vault
	return schema.VaultSnapshot{
		Address:               v.Address,
		AudiusTrackID:         v.AudiusTrackID,
		Authority:             v.Authority,
		ShareMint:             v.ShareMint,
		TotalDeposited:        v.TotalDeposited,
		Cap:                   v.Cap,
		TotalShares:           v.TotalShares,
		RoyaltyPct:            v.RoyaltyPct,
		DistributionInterval:  uint8(v.DistributionInterval),
		VaultDurationMonths:   v.VaultDurationMonths,
		PledgeNote:            v.PledgeNote,
		TotalYieldDistributed: v.TotalYieldDistributed,
		TrackTitle:            snapshot.TrackTitle,
		TrackArtist:           snapshot.TrackArtist,
		TrackArtwork:          snapshot.TrackArtwork,
		RefreshedAt:           time.Unix(snapshot.RefreshedAt, 0).UTC(),
	}
}

func snapshotFromRow(row *schema.VaultSnapshot) VaultSnapshot {
	return VaultSnapshot{
		Vault: domain.Vault{
			Address:               row.Address,
			AudiusTrackID:         row.AudiusTrackID,
			Authority:             row.Authority,
			ShareMint:             row.ShareMint,
			TotalDeposited:        row.TotalDeposited,
			Cap:                   row.Cap,
			TotalShares:           row.TotalShares,
			RoyaltyPct:            row.RoyaltyPct,
			DistributionInterval:  domain.DistributionInterval(row.DistributionInterval),
			VaultDurationMonths:   row.VaultDurationMonths,
			PledgeNote:            row.PledgeNote,
			TotalYieldDistributed: row.TotalYieldDistributed,
		},
		TrackTitle:   row.TrackTitle,
		TrackArtist:  row.TrackArtist,
		TrackArtwork: row.TrackArtwork,
		RefreshedAt:  row.RefreshedAt.Unix(),
	}
}
