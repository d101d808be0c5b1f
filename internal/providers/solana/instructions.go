package solana

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	initializeVaultDiscriminator = anchorDiscriminator("global:initialize_vault")
	depositDiscriminator         = anchorDiscriminator("global:deposit")
	distributeYieldDiscriminator = anchorDiscriminator("global:distribute_yield")
	withdrawDiscriminator        = anchorDiscriminator("global:withdraw")
)

// initializeVaultArgs is the borsh layout of the initialize_vault arguments
type initializeVaultArgs struct {
	TrackID              string
	Cap                  uint64
	RoyaltyPct           uint8
	DistributionInterval uint8
	VaultDurationMonths  uint16
	PledgeNote           string
}

// amountArgs is the borsh layout shared by deposit, distribute_yield and
// withdraw, which each take a single u64.
type amountArgs struct {
	Amount uint64
}

// encodeInstructionData prepends the discriminator to the borsh-encoded args
func encodeInstructionData(discriminator []byte, args interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(discriminator)
	if args != nil {
		if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
			return nil, fmt.Errorf("failed to encode instruction args: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// vaultAccounts bundles the derived addresses of one vault
type vaultAccounts struct {
	Vault      solana.PublicKey
	VaultToken solana.PublicKey
	ShareMint  solana.PublicKey
}

// deriveVaultAccounts derives the vault, vault token and share mint addresses
// for a track.
func deriveVaultAccounts(programID solana.PublicKey, trackID string) (*vaultAccounts, error) {
	vault, err := VaultPDA(programID, trackID)
	if err != nil {
		return nil, err
	}
	vaultToken, err := VaultTokenPDA(programID, vault)
	if err != nil {
		return nil, err
	}
	shareMint, err := ShareMintPDA(programID, vault)
	if err != nil {
		return nil, err
	}
	return &vaultAccounts{Vault: vault, VaultToken: vaultToken, ShareMint: shareMint}, nil
}

// newInitializeVaultInstruction builds the initialize_vault instruction
func newInitializeVaultInstruction(programID, authority, usdcMint solana.PublicKey, accs *vaultAccounts, args initializeVaultArgs) (solana.Instruction, error) {
	data, err := encodeInstructionData(initializeVaultDiscriminator, args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(accs.Vault, true, false),
		solana.NewAccountMeta(usdcMint, false, false),
		solana.NewAccountMeta(accs.VaultToken, true, false),
		solana.NewAccountMeta(accs.ShareMint, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}, data), nil
}

// newDepositInstruction builds the deposit instruction
func newDepositInstruction(programID, user, position, userUSDC, userShares solana.PublicKey, accs *vaultAccounts, amount uint64) (solana.Instruction, error) {
	data, err := encodeInstructionData(depositDiscriminator, amountArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(user, true, true),
		solana.NewAccountMeta(accs.Vault, true, false),
		solana.NewAccountMeta(position, true, false),
		solana.NewAccountMeta(userUSDC, true, false),
		solana.NewAccountMeta(accs.VaultToken, true, false),
		solana.NewAccountMeta(accs.ShareMint, true, false),
		solana.NewAccountMeta(userShares, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}, data), nil
}

// newDistributeYieldInstruction builds the distribute_yield instruction
func newDistributeYieldInstruction(programID, authority, authorityUSDC solana.PublicKey, accs *vaultAccounts, amount uint64) (solana.Instruction, error) {
	data, err := encodeInstructionData(distributeYieldDiscriminator, amountArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(accs.Vault, true, false),
		solana.NewAccountMeta(authorityUSDC, true, false),
		solana.NewAccountMeta(accs.VaultToken, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, data), nil
}

// newWithdrawInstruction builds the withdraw instruction
func newWithdrawInstruction(programID, user, position, userUSDC, userShares solana.PublicKey, accs *vaultAccounts, shares uint64) (solana.Instruction, error) {
	data, err := encodeInstructionData(withdrawDiscriminator, amountArgs{Amount: shares})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(user, true, true),
		solana.NewAccountMeta(accs.Vault, true, false),
		solana.NewAccountMeta(position, true, false),
		solana.NewAccountMeta(accs.VaultToken, true, false),
		solana.NewAccountMeta(userUSDC, true, false),
		solana.NewAccountMeta(accs.ShareMint, true, false),
		solana.NewAccountMeta(userShares, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, data), nil
}
