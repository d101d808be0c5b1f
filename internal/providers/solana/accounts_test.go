package solana

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/domain"
)

func encodeAccount(t *testing.T, discriminator []byte, acc interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(discriminator)
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(acc))
	return buf.Bytes()
}

func TestDecodeTrackVault(t *testing.T) {
	authority := solana.MustPublicKeyFromBase58("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	shareMint := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	address := solana.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")

	data := encodeAccount(t, trackVaultDiscriminator, trackVaultAccount{
		Authority:             authority,
		AudiusTrackID:         "D7KyD",
		Cap:                   10_000_000,
		TotalDeposited:        1_200_000,
		TotalShares:           1_000_000,
		ShareMint:             shareMint,
		RoyaltyPct:            15,
		DistributionInterval:  1,
		VaultDurationMonths:   12,
		PledgeNote:            "50% of streaming royalties",
		TotalYieldDistributed: 200_000,
		Bump:                  254,
	})

	vault, err := decodeTrackVault(address, data)
	require.NoError(t, err)

	assert.Equal(t, address.String(), vault.Address)
	assert.Equal(t, "D7KyD", vault.AudiusTrackID)
	assert.Equal(t, authority.String(), vault.Authority)
	assert.Equal(t, shareMint.String(), vault.ShareMint)
	assert.Equal(t, uint64(10_000_000), vault.Cap)
	assert.Equal(t, uint64(1_200_000), vault.TotalDeposited)
	assert.Equal(t, uint64(1_000_000), vault.TotalShares)
	assert.Equal(t, uint8(15), vault.RoyaltyPct)
	assert.Equal(t, domain.DistributionQuarterly, vault.DistributionInterval)
	assert.Equal(t, uint16(12), vault.VaultDurationMonths)
	assert.Equal(t, "50% of streaming royalties", vault.PledgeNote)
	assert.Equal(t, uint64(200_000), vault.TotalYieldDistributed)
}

func TestDecodeTrackVault_WrongDiscriminator(t *testing.T) {
	data := encodeAccount(t, userPositionDiscriminator, trackVaultAccount{})

	_, err := decodeTrackVault(solana.PublicKey{}, data)
	assert.Error(t, err)
}

func TestDecodeTrackVault_ShortData(t *testing.T) {
	_, err := decodeTrackVault(solana.PublicKey{}, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestDecodeUserPosition(t *testing.T) {
	owner := solana.MustPublicKeyFromBase58("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")

	data := encodeAccount(t, userPositionDiscriminator, userPositionAccount{
		Owner:          owner,
		Vault:          solana.PublicKey{},
		SharesHeld:     500_000,
		TotalDeposited: 500_000,
		DepositedAt:    1_756_000_000,
		Bump:           255,
	})

	position, err := decodeUserPosition(data)
	require.NoError(t, err)

	assert.Equal(t, uint64(500_000), position.SharesHeld)
	assert.Equal(t, uint64(500_000), position.TotalDeposited)
	assert.Equal(t, int64(1_756_000_000), position.DepositedAt)
}
