package domain

import "time"

// USDCDecimals is the number of decimal places of the vault stablecoin.
// All monetary quantities in this package are integers in the smallest unit;
// conversion to decimal happens only at the presentation boundary.
const USDCDecimals = 6

// MaxTrackIDBytes is the longest track identifier the program can derive a
// vault address for. Oversized IDs must be rejected before submission.
const MaxTrackIDBytes = 32

// DistributionInterval is the artist-declared payout cadence.
type DistributionInterval uint8

const (
	DistributionMonthly DistributionInterval = iota
	DistributionQuarterly
	DistributionMilestone
)

// String returns a human-readable label for the interval.
func (d DistributionInterval) String() string {
	switch d {
	case DistributionMonthly:
		return "monthly"
	case DistributionQuarterly:
		return "quarterly"
	case DistributionMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// Valid reports whether the interval is one the program accepts.
func (d DistributionInterval) Valid() bool {
	return d <= DistributionMilestone
}

// Vault is a snapshot of an on-chain TrackVault account. The program owns the
// state transitions; this service only reads and displays them.
//
// Invariant relied upon (enforced on-chain, not here): TotalShares never
// exceeds TotalDeposited, since deposits mint shares 1:1 and yield raises
// TotalDeposited without minting.
type Vault struct {
	Address               string               `json:"address"`
	AudiusTrackID         string               `json:"audius_track_id"`
	Authority             string               `json:"authority"`
	ShareMint             string               `json:"share_mint"`
	TotalDeposited        uint64               `json:"total_deposited"`
	Cap                   uint64               `json:"cap"`
	TotalShares           uint64               `json:"total_shares"`
	RoyaltyPct            uint8                `json:"royalty_pct"`
	DistributionInterval  DistributionInterval `json:"distribution_interval"`
	VaultDurationMonths   uint16               `json:"vault_duration_months"`
	PledgeNote            string               `json:"pledge_note"`
	TotalYieldDistributed uint64               `json:"total_yield_distributed"`
}

// UserPosition is a snapshot of a wallet's position account in one vault.
type UserPosition struct {
	SharesHeld     uint64 `json:"shares_held"`
	TotalDeposited uint64 `json:"total_deposited"`
	DepositedAt    int64  `json:"deposited_at"` // unix seconds of first deposit
}

// LinkedIdentity is a verified Audius identity linked to an artist account.
// It is trusted until explicitly unlinked; there is no expiry or refresh.
type LinkedIdentity struct {
	UserID         string    `json:"user_id"`
	Handle         string    `json:"handle"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	JWT            string    `json:"-"`
	LinkedAt       time.Time `json:"linked_at"`
}

// VaultEventType identifies a vault state change observed by this service.
type VaultEventType string

const (
	VaultInitialized      VaultEventType = "vault.initialized"
	VaultDeposited        VaultEventType = "vault.deposit"
	VaultWithdrawn        VaultEventType = "vault.withdraw"
	VaultYieldDistributed VaultEventType = "vault.yield"
)

// VaultEvent is published after a signed transaction for a vault is accepted
// by the RPC endpoint. Consumers use it to invalidate caches and refetch.
type VaultEvent struct {
	ID         string         `json:"id"`
	Type       VaultEventType `json:"type"`
	TrackID    string         `json:"track_id"`
	Wallet     string         `json:"wallet,omitempty"`
	Signature  string         `json:"signature"`
	OccurredAt time.Time      `json:"occurred_at"`
}
