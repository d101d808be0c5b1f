// Package vault computes the display values derived from raw on-chain vault
// and position snapshots: funding progress, share price, distributed yield and
// per-backer returns. All functions are pure and never fail on zero or empty
// inputs; they return the documented sentinel instead.
package vault

import (
	"time"

	"github.com/musicvalue/vault-backend/internal/domain"
)

// hoursPerDay and daysPerYear are used to annualise realized returns.
const (
	hoursPerDay = 24
	daysPerYear = 365
)

// FundingProgress returns the percentage of the cap raised, clamped to 100.
// A zero cap yields 0 rather than dividing by zero.
func FundingProgress(v domain.Vault) float64 {
	if v.Cap == 0 {
		return 0
	}
	progress := float64(v.TotalDeposited) / float64(v.Cap) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// IsFull reports whether the vault has reached its cap.
func IsFull(v domain.Vault) bool {
	return FundingProgress(v) >= 100
}

// SharePrice returns the current price of one share in stablecoin smallest
// units. Before any shares exist the price is par, 1.
func SharePrice(v domain.Vault) float64 {
	if v.TotalShares == 0 {
		return 1
	}
	return float64(v.TotalDeposited) / float64(v.TotalShares)
}

// YieldDistributed derives the total yield pushed into the vault. Deposits
// mint shares 1:1, so any excess of TotalDeposited over TotalShares is yield.
// Clamped at zero in case the on-chain invariant is ever violated.
func YieldDistributed(v domain.Vault) uint64 {
	if v.TotalDeposited <= v.TotalShares {
		return 0
	}
	return v.TotalDeposited - v.TotalShares
}

// PreviewSharePrice projects the share price after adding amount to the vault
// without minting shares (a yield distribution). Returns nil when no preview
// is available: either no shares exist yet or the amount is non-positive.
// Callers must render nothing for nil, not zero.
func PreviewSharePrice(v domain.Vault, added uint64) *float64 {
	if v.TotalShares == 0 || added == 0 {
		return nil
	}
	price := float64(v.TotalDeposited+added) / float64(v.TotalShares)
	return &price
}

// PositionCurrentValue returns the stablecoin value of a backer's shares:
// their proportional claim on everything the vault holds.
func PositionCurrentValue(v domain.Vault, p domain.UserPosition) float64 {
	if v.TotalShares == 0 {
		return 0
	}
	return float64(p.SharesHeld) / float64(v.TotalShares) * float64(v.TotalDeposited)
}

// YieldEarned returns the backer's gain over their cumulative principal,
// clamped at zero.
func YieldEarned(p domain.UserPosition, currentValue float64) float64 {
	earned := currentValue - float64(p.TotalDeposited)
	if earned < 0 {
		return 0
	}
	return earned
}

// RealizedAPY annualises the return since the backer's first deposit. The
// result is undefined (nil, rendered as "pending") until yield has actually
// accrued and the position is at least a day old — zero would falsely imply
// a measured 0% return. Short holding periods annualise to extreme values;
// that is intended.
func RealizedAPY(p domain.UserPosition, yieldEarned float64, now time.Time) *float64 {
	if yieldEarned <= 0 || p.TotalDeposited == 0 {
		return nil
	}
	daysHeld := now.Sub(time.Unix(p.DepositedAt, 0)).Hours() / hoursPerDay
	if daysHeld < 1 {
		return nil
	}
	apy := (yieldEarned / float64(p.TotalDeposited)) * (daysPerYear / daysHeld) * 100
	return &apy
}

// Summary bundles the derived vault values for one snapshot.
type Summary struct {
	FundingProgress  float64 `json:"funding_progress"`
	IsFull           bool    `json:"is_full"`
	SharePrice       float64 `json:"share_price"`
	YieldDistributed uint64  `json:"yield_distributed"`
	SharesMinted     uint64  `json:"shares_minted"`
}

// Summarize computes the full set of derived values for a vault.
func Summarize(v domain.Vault) Summary {
	return Summary{
		FundingProgress:  FundingProgress(v),
		IsFull:           IsFull(v),
		SharePrice:       SharePrice(v),
		YieldDistributed: YieldDistributed(v),
		SharesMinted:     v.TotalShares,
	}
}

// PositionSummary bundles the derived values for one backer's position.
type PositionSummary struct {
	CurrentValue float64  `json:"current_value"`
	YieldEarned  float64  `json:"yield_earned"`
	RealizedAPY  *float64 `json:"realized_apy,omitempty"`
}

// SummarizePosition computes the derived values for a position against a
// vault snapshot at the given instant.
func SummarizePosition(v domain.Vault, p domain.UserPosition, now time.Time) PositionSummary {
	currentValue := PositionCurrentValue(v, p)
	earned := YieldEarned(p, currentValue)
	return PositionSummary{
		CurrentValue: currentValue,
		YieldEarned:  earned,
		RealizedAPY:  RealizedAPY(p, earned, now),
	}
}
