package domain

import "errors"

var (
	// ErrVaultNotFound is returned when no vault account exists for a track.
	// This is a valid empty state, distinct from a fetch failure.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrPositionNotFound is returned when a wallet has no position in a vault
	ErrPositionNotFound = errors.New("position not found")

	// ErrTrackIDTooLong is returned when a track ID exceeds the seed limit
	// and therefore cannot derive a valid vault address
	ErrTrackIDTooLong = errors.New("track id exceeds 32 bytes")

	// ErrIdentityNotFound is returned when no linked identity exists for a user
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrVaultFull is returned when a deposit is attempted against a vault
	// that has reached its cap
	ErrVaultFull = errors.New("vault is fully funded")

	// ErrInvalidAmount is returned for zero, negative or malformed amounts
	ErrInvalidAmount = errors.New("invalid amount")
)
