package solana

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/domain"
)

var testProgramID = solana.MustPublicKeyFromBase58("Atf26b8XuQ49cmvfTsvU5PjZ56zhoCvFiGQ7bBW2zoio")

func TestVaultPDA_Deterministic(t *testing.T) {
	a, err := VaultPDA(testProgramID, "D7KyD")
	require.NoError(t, err)
	b, err := VaultPDA(testProgramID, "D7KyD")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestVaultPDA_DistinctPerTrack(t *testing.T) {
	a, err := VaultPDA(testProgramID, "D7KyD")
	require.NoError(t, err)
	b, err := VaultPDA(testProgramID, "eP9G7")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVaultPDA_RejectsOversizedTrackID(t *testing.T) {
	_, err := VaultPDA(testProgramID, strings.Repeat("x", 33))
	assert.ErrorIs(t, err, domain.ErrTrackIDTooLong)
}

func TestVaultPDA_AcceptsMaxLengthTrackID(t *testing.T) {
	_, err := VaultPDA(testProgramID, strings.Repeat("x", 32))
	assert.NoError(t, err)
}

func TestPositionPDA_DistinctPerWallet(t *testing.T) {
	vault, err := VaultPDA(testProgramID, "D7KyD")
	require.NoError(t, err)

	w1 := solana.MustPublicKeyFromBase58("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	w2 := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	p1, err := PositionPDA(testProgramID, vault, w1)
	require.NoError(t, err)
	p2, err := PositionPDA(testProgramID, vault, w2)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestDerivedAccountsDifferPerSeed(t *testing.T) {
	vault, err := VaultPDA(testProgramID, "D7KyD")
	require.NoError(t, err)

	token, err := VaultTokenPDA(testProgramID, vault)
	require.NoError(t, err)
	mint, err := ShareMintPDA(testProgramID, vault)
	require.NoError(t, err)

	assert.NotEqual(t, token, mint)
	assert.NotEqual(t, vault, token)
	assert.NotEqual(t, vault, mint)
}
