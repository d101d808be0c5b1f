package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/logger"
)

// InitializeVaultParams are the artist-declared terms of a new vault. The
// program validates cap, royalty and interval bounds itself; rejections pass
// through verbatim.
type InitializeVaultParams struct {
	Cap                  uint64
	RoyaltyPct           uint8
	DistributionInterval domain.DistributionInterval
	VaultDurationMonths  uint16
	PledgeNote           string
}

// Client defines the interface for program operations to enable mocking.
// Write operations return unsigned base64-encoded transactions; the wallet
// signs client-side and submits the result via SubmitSignedTransaction.
//
//go:generate mockgen -source=client.go -destination=../../mocks/solana_client.go -package=mocks -mock_names=Client=MockProgramClient
type Client interface {
	// FetchVault returns the vault snapshot for a track, or
	// domain.ErrVaultNotFound when no vault exists yet
	FetchVault(ctx context.Context, trackID string) (*domain.Vault, error)

	// FetchAllVaults returns every vault account the program owns
	FetchAllVaults(ctx context.Context) ([]domain.Vault, error)

	// FetchPosition returns a wallet's position in a track's vault, or
	// domain.ErrPositionNotFound
	FetchPosition(ctx context.Context, trackID, wallet string) (*domain.UserPosition, error)

	// BuildInitializeVault builds an unsigned initialize_vault transaction
	BuildInitializeVault(ctx context.Context, trackID, wallet string, params InitializeVaultParams) (string, error)

	// BuildDeposit builds an unsigned deposit transaction, prepending share
	// token account creation when the wallet has none yet
	BuildDeposit(ctx context.Context, trackID, wallet string, amount uint64) (string, error)

	// BuildDistributeYield builds an unsigned distribute_yield transaction
	BuildDistributeYield(ctx context.Context, trackID, wallet string, amount uint64) (string, error)

	// BuildWithdraw builds an unsigned withdraw transaction
	BuildWithdraw(ctx context.Context, trackID, wallet string, shares uint64) (string, error)

	// SubmitSignedTransaction forwards a signed transaction and returns its
	// signature. Program rejections are returned verbatim.
	SubmitSignedTransaction(ctx context.Context, txBase64 string) (string, error)
}

type programClient struct {
	rpc       adapter.SolanaRPC
	programID solana.PublicKey
	usdcMint  solana.PublicKey
}

// NewClient creates a new program client
func NewClient(rpc adapter.SolanaRPC, programID, usdcMint string) (Client, error) {
	program, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id: %w", err)
	}
	mint, err := solana.PublicKeyFromBase58(usdcMint)
	if err != nil {
		return nil, fmt.Errorf("invalid usdc mint: %w", err)
	}
	return &programClient{rpc: rpc, programID: program, usdcMint: mint}, nil
}

func (c *programClient) FetchVault(ctx context.Context, trackID string) (*domain.Vault, error) {
	vaultAddr, err := VaultPDA(c.programID, trackID)
	if err != nil {
		return nil, err
	}

	data, err := c.rpc.GetAccountData(ctx, vaultAddr)
	if err != nil {
		if errors.Is(err, adapter.ErrAccountNotFound) {
			return nil, domain.ErrVaultNotFound
		}
		return nil, fmt.Errorf("failed to fetch vault account: %w", err)
	}

	return decodeTrackVault(vaultAddr, data)
}

func (c *programClient) FetchAllVaults(ctx context.Context) ([]domain.Vault, error) {
	accounts, err := c.rpc.GetProgramAccounts(ctx, c.programID, trackVaultDiscriminator)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault accounts: %w", err)
	}

	vaults := make([]domain.Vault, 0, len(accounts))
	for _, acc := range accounts {
		vault, err := decodeTrackVault(acc.Pubkey, acc.Data)
		if err != nil {
			// One undecodable account must not break the whole listing
			logger.Warn("skipping undecodable vault account",
				zap.String("account", acc.Pubkey.String()),
				zap.Error(err),
			)
			continue
		}
		vaults = append(vaults, *vault)
	}
	return vaults, nil
}

func (c *programClient) FetchPosition(ctx context.Context, trackID, wallet string) (*domain.UserPosition, error) {
	owner, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}

	vaultAddr, err := VaultPDA(c.programID, trackID)
	if err != nil {
		return nil, err
	}
	positionAddr, err := PositionPDA(c.programID, vaultAddr, owner)
	if err != nil {
		return nil, err
	}

	data, err := c.rpc.GetAccountData(ctx, positionAddr)
	if err != nil {
		if errors.Is(err, adapter.ErrAccountNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to fetch position account: %w", err)
	}

	return decodeUserPosition(data)
}

func (c *programClient) BuildInitializeVault(ctx context.Context, trackID, wallet string, params InitializeVaultParams) (string, error) {
	authority, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return "", fmt.Errorf("invalid wallet address: %w", err)
	}

	accs, err := deriveVaultAccounts(c.programID, trackID)
	if err != nil {
		return "", err
	}

	ix, err := newInitializeVaultInstruction(c.programID, authority, c.usdcMint, accs, initializeVaultArgs{
		TrackID:              trackID,
		Cap:                  params.Cap,
		RoyaltyPct:           params.RoyaltyPct,
		DistributionInterval: uint8(params.DistributionInterval),
		VaultDurationMonths:  params.VaultDurationMonths,
		PledgeNote:           params.PledgeNote,
	})
	if err != nil {
		return "", err
	}

	return c.assemble(ctx, authority, ix)
}

func (c *programClient) BuildDeposit(ctx context.Context, trackID, wallet string, amount uint64) (string, error) {
	user, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return "", fmt.Errorf("invalid wallet address: %w", err)
	}

	accs, err := deriveVaultAccounts(c.programID, trackID)
	if err != nil {
		return "", err
	}
	position, err := PositionPDA(c.programID, accs.Vault, user)
	if err != nil {
		return "", err
	}

	userUSDC, _, err := solana.FindAssociatedTokenAddress(user, c.usdcMint)
	if err != nil {
		return "", fmt.Errorf("failed to derive usdc token account: %w", err)
	}
	userShares, _, err := solana.FindAssociatedTokenAddress(user, accs.ShareMint)
	if err != nil {
		return "", fmt.Errorf("failed to derive share token account: %w", err)
	}

	var instructions []solana.Instruction

	// The share token account must exist before the program can mint into it
	hasShares, err := c.rpc.AccountExists(ctx, userShares)
	if err != nil {
		return "", fmt.Errorf("failed to check share token account: %w", err)
	}
	if !hasShares {
		createATA := associatedtokenaccount.NewCreateInstruction(user, user, accs.ShareMint).Build()
		instructions = append(instructions, createATA)
	}

	depositIx, err := newDepositInstruction(c.programID, user, position, userUSDC, userShares, accs, amount)
	if err != nil {
		return "", err
	}
	instructions = append(instructions, depositIx)

	return c.assemble(ctx, user, instructions...)
}

func (c *programClient) BuildDistributeYield(ctx context.Context, trackID, wallet string, amount uint64) (string, error) {
	authority, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return "", fmt.Errorf("invalid wallet address: %w", err)
	}

	accs, err := deriveVaultAccounts(c.programID, trackID)
	if err != nil {
		return "", err
	}

	authorityUSDC, _, err := solana.FindAssociatedTokenAddress(authority, c.usdcMint)
	if err != nil {
		return "", fmt.Errorf("failed to derive usdc token account: %w", err)
	}

	ix, err := newDistributeYieldInstruction(c.programID, authority, authorityUSDC, accs, amount)
	if err != nil {
		return "", err
	}

	return c.assemble(ctx, authority, ix)
}

func (c *programClient) BuildWithdraw(ctx context.Context, trackID, wallet string, shares uint64) (string, error) {
	user, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return "", fmt.Errorf("invalid wallet address: %w", err)
	}

	accs, err := deriveVaultAccounts(c.programID, trackID)
	if err != nil {
		return "", err
	}
	position, err := PositionPDA(c.programID, accs.Vault, user)
	if err != nil {
		return "", err
	}

	userUSDC, _, err := solana.FindAssociatedTokenAddress(user, c.usdcMint)
	if err != nil {
		return "", fmt.Errorf("failed to derive usdc token account: %w", err)
	}
	userShares, _, err := solana.FindAssociatedTokenAddress(user, accs.ShareMint)
	if err != nil {
		return "", fmt.Errorf("failed to derive share token account: %w", err)
	}

	ix, err := newWithdrawInstruction(c.programID, user, position, userUSDC, userShares, accs, shares)
	if err != nil {
		return "", err
	}

	return c.assemble(ctx, user, ix)
}

func (c *programClient) SubmitSignedTransaction(ctx context.Context, txBase64 string) (string, error) {
	sig, err := c.rpc.SendEncodedTransaction(ctx, txBase64)
	if err != nil {
		// Program rejections (cap exceeded, zero amount, unauthorized,
		// insufficient shares) surface here and pass through verbatim.
		return "", err
	}
	return sig.String(), nil
}

// assemble wraps instructions into an unsigned transaction paid by the wallet
// and returns its base64 encoding.
func (c *programClient) assemble(ctx context.Context, payer solana.PublicKey, instructions ...solana.Instruction) (string, error) {
	blockhash, err := c.rpc.LatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return "", fmt.Errorf("failed to assemble transaction: %w", err)
	}

	encoded, err := tx.ToBase64()
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction: %w", err)
	}
	return encoded, nil
}
