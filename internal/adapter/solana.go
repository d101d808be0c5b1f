package adapter

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrAccountNotFound is returned when an account does not exist on-chain
var ErrAccountNotFound = errors.New("account not found")

// KeyedAccountData pairs an account address with its raw data
type KeyedAccountData struct {
	Pubkey solana.PublicKey
	Data   []byte
}

// SolanaRPC defines the interface for Solana RPC operations to enable mocking
//
//go:generate mockgen -source=solana.go -destination=../mocks/solana.go -package=mocks -mock_names=SolanaRPC=MockSolanaRPC
type SolanaRPC interface {
	// GetAccountData returns the raw data of an account, or ErrAccountNotFound
	GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)

	// GetProgramAccounts returns all accounts owned by programID whose data
	// starts with the given discriminator
	GetProgramAccounts(ctx context.Context, programID solana.PublicKey, discriminator []byte) ([]KeyedAccountData, error)

	// AccountExists reports whether an account exists on-chain
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)

	// LatestBlockhash returns a recent blockhash for transaction assembly
	LatestBlockhash(ctx context.Context) (solana.Hash, error)

	// SendEncodedTransaction submits a base64-encoded signed transaction
	SendEncodedTransaction(ctx context.Context, txBase64 string) (solana.Signature, error)
}

// RealSolanaRPC implements SolanaRPC over the solana-go JSON-RPC client
type RealSolanaRPC struct {
	client *rpc.Client
}

// NewSolanaRPC creates a new RPC-backed Solana adapter
func NewSolanaRPC(endpoint string) SolanaRPC {
	return &RealSolanaRPC{client: rpc.New(endpoint)}
}

func (r *RealSolanaRPC) GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	out, err := r.client.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}
	return out.Value.Data.GetBinary(), nil
}

func (r *RealSolanaRPC) GetProgramAccounts(ctx context.Context, programID solana.PublicKey, discriminator []byte) ([]KeyedAccountData, error) {
	out, err := r.client.GetProgramAccountsWithOpts(ctx, programID, &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  solana.Base58(discriminator),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]KeyedAccountData, 0, len(out))
	for _, keyed := range out {
		if keyed == nil || keyed.Account == nil {
			continue
		}
		accounts = append(accounts, KeyedAccountData{
			Pubkey: keyed.Pubkey,
			Data:   keyed.Account.Data.GetBinary(),
		})
	}
	return accounts, nil
}

func (r *RealSolanaRPC) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	_, err := r.GetAccountData(ctx, account)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RealSolanaRPC) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := r.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return out.Value.Blockhash, nil
}

func (r *RealSolanaRPC) SendEncodedTransaction(ctx context.Context, txBase64 string) (solana.Signature, error) {
	return r.client.SendEncodedTransaction(ctx, txBase64)
}
