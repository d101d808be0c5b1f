package solana

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/musicvalue/vault-backend/internal/domain"
)

// discriminatorLen is the Anchor account/instruction tag length
const discriminatorLen = 8

// anchorDiscriminator computes the 8-byte Anchor discriminator for a
// namespaced name, e.g. "account:TrackVault" or "global:deposit".
func anchorDiscriminator(name string) []byte {
	sum := sha256.Sum256([]byte(name))
	return sum[:discriminatorLen]
}

var (
	trackVaultDiscriminator   = anchorDiscriminator("account:TrackVault")
	userPositionDiscriminator = anchorDiscriminator("account:UserPosition")
)

// trackVaultAccount is the borsh layout of the program's TrackVault account,
// field order exactly as declared in the program IDL.
type trackVaultAccount struct {
	Authority             solana.PublicKey
	AudiusTrackID         string
	Cap                   uint64
	TotalDeposited        uint64
	TotalShares           uint64
	ShareMint             solana.PublicKey
	RoyaltyPct            uint8
	DistributionInterval  uint8
	VaultDurationMonths   uint16
	PledgeNote            string
	TotalYieldDistributed uint64
	Bump                  uint8
}

// userPositionAccount is the borsh layout of the program's UserPosition account
type userPositionAccount struct {
	Owner          solana.PublicKey
	Vault          solana.PublicKey
	SharesHeld     uint64
	TotalDeposited uint64
	DepositedAt    int64
	Bump           uint8
}

// decodeTrackVault decodes raw account data into a domain vault snapshot
func decodeTrackVault(address solana.PublicKey, data []byte) (*domain.Vault, error) {
	if len(data) < discriminatorLen {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:discriminatorLen], trackVaultDiscriminator) {
		return nil, fmt.Errorf("not a TrackVault account")
	}

	var acc trackVaultAccount
	if err := bin.NewBorshDecoder(data[discriminatorLen:]).Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode TrackVault account: %w", err)
	}

	return &domain.Vault{
		Address:               address.String(),
		AudiusTrackID:         acc.AudiusTrackID,
		Authority:             acc.Authority.String(),
		ShareMint:             acc.ShareMint.String(),
		TotalDeposited:        acc.TotalDeposited,
		Cap:                   acc.Cap,
		TotalShares:           acc.TotalShares,
		RoyaltyPct:            acc.RoyaltyPct,
		DistributionInterval:  domain.DistributionInterval(acc.DistributionInterval),
		VaultDurationMonths:   acc.VaultDurationMonths,
		PledgeNote:            acc.PledgeNote,
		TotalYieldDistributed: acc.TotalYieldDistributed,
	}, nil
}

// decodeUserPosition decodes raw account data into a domain position snapshot
func decodeUserPosition(data []byte) (*domain.UserPosition, error) {
	if len(data) < discriminatorLen {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:discriminatorLen], userPositionDiscriminator) {
		return nil, fmt.Errorf("not a UserPosition account")
	}

	var acc userPositionAccount
	if err := bin.NewBorshDecoder(data[discriminatorLen:]).Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode UserPosition account: %w", err)
	}

	return &domain.UserPosition{
		SharesHeld:     acc.SharesHeld,
		TotalDeposited: acc.TotalDeposited,
		DepositedAt:    acc.DepositedAt,
	}, nil
}
