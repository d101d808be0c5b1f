package solana

import (
	"github.com/gagliardetto/solana-go"

	"github.com/musicvalue/vault-backend/internal/domain"
)

// Seed prefixes of the program's derived accounts. These must match the
// program exactly or every derived address is wrong.
var (
	seedVault      = []byte("vault")
	seedVaultToken = []byte("vault_token")
	seedShareMint  = []byte("share_mint")
	seedPosition   = []byte("position")
)

// VaultPDA derives the vault account address for a track. Track IDs longer
// than 32 bytes cannot be used as a seed and are rejected up front.
func VaultPDA(programID solana.PublicKey, trackID string) (solana.PublicKey, error) {
	if len(trackID) > domain.MaxTrackIDBytes {
		return solana.PublicKey{}, domain.ErrTrackIDTooLong
	}
	addr, _, err := solana.FindProgramAddress([][]byte{seedVault, []byte(trackID)}, programID)
	return addr, err
}

// VaultTokenPDA derives the vault's stablecoin token account address.
func VaultTokenPDA(programID, vault solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{seedVaultToken, vault.Bytes()}, programID)
	return addr, err
}

// ShareMintPDA derives the vault's share mint address.
func ShareMintPDA(programID, vault solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{seedShareMint, vault.Bytes()}, programID)
	return addr, err
}

// PositionPDA derives a wallet's position account address in a vault.
func PositionPDA(programID, vault, wallet solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{seedPosition, vault.Bytes(), wallet.Bytes()}, programID)
	return addr, err
}
