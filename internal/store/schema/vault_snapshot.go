package schema

import "time"

// VaultSnapshot is the last observed state of one on-chain vault, refreshed
// by the hydrator. It backs the listing endpoint so the homepage does not
// fan out to the RPC node on every request.
type VaultSnapshot struct {
	Address               string    `gorm:"column:address;primaryKey"`
	AudiusTrackID         string    `gorm:"column:audius_track_id;not null;uniqueIndex"`
	Authority             string    `gorm:"column:authority;not null;index"`
	ShareMint             string    `gorm:"column:share_mint;not null"`
	TotalDeposited        uint64    `gorm:"column:total_deposited;not null"`
	Cap                   uint64    `gorm:"column:cap;not null"`
	TotalShares           uint64    `gorm:"column:total_shares;not null"`
	RoyaltyPct            uint8     `gorm:"column:royalty_pct;not null"`
	DistributionInterval  uint8     `gorm:"column:distribution_interval;not null"`
	VaultDurationMonths   uint16    `gorm:"column:vault_duration_months;not null"`
	PledgeNote            string    `gorm:"column:pledge_note"`
	TotalYieldDistributed uint64    `gorm:"column:total_yield_distributed;not null"`
	TrackTitle            string    `gorm:"column:track_title"`
	TrackArtist           string    `gorm:"column:track_artist"`
	TrackArtwork          string    `gorm:"column:track_artwork"`
	RefreshedAt           time.Time `gorm:"column:refreshed_at;not null"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for VaultSnapshot
func (VaultSnapshot) TableName() string {
	return "vault_snapshots"
}
