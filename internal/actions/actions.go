// Package actions implements the Solana Actions surface: shareable deposit
// links that wallets and blink-aware clients unfurl into a signable
// transaction without visiting the site.
package actions

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
	solanaclient "github.com/musicvalue/vault-backend/internal/providers/solana"
	"github.com/musicvalue/vault-backend/internal/vault"
)

// Spec-level constants of the Actions protocol.
const (
	ActionVersion = "2.1.3"
	BlockchainIDs = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp" // mainnet CAIP-2
)

// RulesFile maps site paths to their action API endpoints, served at
// /actions.json per the protocol.
type RulesFile struct {
	Rules []Rule `json:"rules"`
}

type Rule struct {
	PathPattern string `json:"pathPattern"`
	APIPath     string `json:"apiPath"`
}

// Metadata is the GET response describing one action.
type Metadata struct {
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Label       string       `json:"label"`
	Links       *ActionLinks `json:"links,omitempty"`
}

type ActionLinks struct {
	Actions []LinkedAction `json:"actions"`
}

type LinkedAction struct {
	Label      string            `json:"label"`
	Href       string            `json:"href"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

type ActionParameter struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// PostRequest is the POST body a wallet sends to obtain a transaction.
type PostRequest struct {
	Account string `json:"account" binding:"required"`
}

// PostResponse carries the unsigned transaction back to the wallet.
type PostResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message,omitempty"`
}

// Service builds action metadata and deposit transactions.
type Service struct {
	program solanaclient.Client
	tracks  audius.Client
	baseURL string
}

// NewService creates an actions service. baseURL is the public origin the
// hrefs are rooted at.
func NewService(program solanaclient.Client, tracks audius.Client, baseURL string) *Service {
	return &Service{program: program, tracks: tracks, baseURL: baseURL}
}

// Rules returns the actions.json mapping for vault pages.
func (s *Service) Rules() RulesFile {
	return RulesFile{Rules: []Rule{
		{PathPattern: "/vault/*", APIPath: "/api/actions/back-track?trackId=*"},
		{PathPattern: "/api/actions/**", APIPath: "/api/actions/**"},
	}}
}

// DepositMetadata describes the deposit action for a track's vault,
// offering preset amounts plus a custom field.
func (s *Service) DepositMetadata(ctx context.Context, trackID string) (*Metadata, error) {
	v, err := s.program.FetchVault(ctx, trackID)
	if err != nil {
		return nil, err
	}
	track, err := s.tracks.GetTrack(ctx, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve track: %w", err)
	}

	base := s.baseURL + "/api/actions/back-track?trackId=" + url.QueryEscape(trackID)
	presets := []string{"10", "50", "100"}

	linked := make([]LinkedAction, 0, len(presets)+1)
	for _, amount := range presets {
		linked = append(linked, LinkedAction{
			Label: "Back with $" + amount,
			Href:  base + "&amount=" + amount,
		})
	}
	linked = append(linked, LinkedAction{
		Label: "Back this track",
		Href:  base + "&amount={amount}",
		Parameters: []ActionParameter{
			{Name: "amount", Label: "Amount in USDC", Required: true},
		},
	})

	description := fmt.Sprintf("Back %q by %s. %.0f%% funded.",
		track.Title, track.User.Name, vault.FundingProgress(*v))
	if v.PledgeNote != "" {
		description += " Artist pledge: " + v.PledgeNote
	}

	return &Metadata{
		Icon:        artworkURL(track.Artwork),
		Title:       "Back " + track.Title,
		Description: description,
		Label:       "Deposit USDC",
		Links:       &ActionLinks{Actions: linked},
	}, nil
}

// BuildDeposit parses the human-readable amount and returns the unsigned
// deposit transaction for the requesting wallet.
func (s *Service) BuildDeposit(ctx context.Context, trackID, account, amountStr string) (*PostResponse, error) {
	amount, err := parseAmount(amountStr)
	if err != nil {
		return nil, err
	}

	v, err := s.program.FetchVault(ctx, trackID)
	if err != nil {
		return nil, err
	}
	if vault.IsFull(*v) {
		return nil, domain.ErrVaultFull
	}

	tx, err := s.program.BuildDeposit(ctx, trackID, account, amount)
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		Transaction: tx,
		Message:     fmt.Sprintf("Depositing %s USDC into the vault", amountStr),
	}, nil
}

// ActionURL is the raw solana-action URL for a track's deposit action.
func (s *Service) ActionURL(trackID string) string {
	return "solana-action:" + s.baseURL + "/api/actions/back-track?trackId=" + url.QueryEscape(trackID)
}

// BlinkURL wraps the action URL in the dial.to interstitial.
func (s *Service) BlinkURL(trackID string) string {
	return "https://dial.to/?action=" + url.QueryEscape(s.ActionURL(trackID))
}

// parseAmount converts a decimal USDC string to smallest units. Negative,
// zero and malformed amounts are rejected before reaching the program.
func parseAmount(amountStr string) (uint64, error) {
	f, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amountStr)
	}
	units := uint64(f * 1e6)
	if units == 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amountStr)
	}
	return units, nil
}

func artworkURL(artwork map[string]string) string {
	for _, size := range []string{"480x480", "1000x1000", "150x150"} {
		if u, ok := artwork[size]; ok && u != "" {
			return u
		}
	}
	return ""
}
