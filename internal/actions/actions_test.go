package actions_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/actions"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/mocks"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
)

const baseURL = "https://backend.musicvalue.app"

func TestDepositMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)

	ctx := context.Background()
	program.EXPECT().FetchVault(ctx, "D7KyD").Return(&domain.Vault{
		AudiusTrackID:  "D7KyD",
		TotalDeposited: 2_500_000,
		Cap:            10_000_000,
		PledgeNote:     "50% of streaming royalties",
	}, nil)
	tracks.EXPECT().GetTrack(ctx, "D7KyD").Return(&audius.Track{
		ID:      "D7KyD",
		Title:   "Midnight Run",
		User:    audius.User{Name: "Night Artist"},
		Artwork: map[string]string{"480x480": "https://cdn/art.jpg"},
	}, nil)

	svc := actions.NewService(program, tracks, baseURL)

	metadata, err := svc.DepositMetadata(ctx, "D7KyD")

	require.NoError(t, err)
	assert.Equal(t, "Back Midnight Run", metadata.Title)
	assert.Equal(t, "https://cdn/art.jpg", metadata.Icon)
	assert.Contains(t, metadata.Description, "Midnight Run")
	assert.Contains(t, metadata.Description, "25% funded")
	assert.Contains(t, metadata.Description, "50% of streaming royalties")

	require.NotNil(t, metadata.Links)
	require.Len(t, metadata.Links.Actions, 4)

	// Preset amounts plus one parameterized action
	assert.Equal(t, baseURL+"/api/actions/back-track?trackId=D7KyD&amount=10", metadata.Links.Actions[0].Href)
	custom := metadata.Links.Actions[3]
	assert.Contains(t, custom.Href, "{amount}")
	require.Len(t, custom.Parameters, 1)
	assert.True(t, custom.Parameters[0].Required)
}

func TestDepositMetadata_VaultMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)

	ctx := context.Background()
	program.EXPECT().FetchVault(ctx, "D7KyD").Return(nil, domain.ErrVaultNotFound)

	svc := actions.NewService(program, tracks, baseURL)

	_, err := svc.DepositMetadata(ctx, "D7KyD")
	assert.ErrorIs(t, err, domain.ErrVaultNotFound)
}

func TestBuildDeposit_ConvertsDecimalAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)

	ctx := context.Background()
	wallet := "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

	program.EXPECT().FetchVault(ctx, "D7KyD").Return(&domain.Vault{
		TotalDeposited: 1_000_000,
		Cap:            10_000_000,
	}, nil)
	// 12.5 USDC becomes 12_500_000 smallest units
	program.EXPECT().BuildDeposit(ctx, "D7KyD", wallet, uint64(12_500_000)).Return("dHgtYmFzZTY0", nil)

	svc := actions.NewService(program, tracks, baseURL)

	response, err := svc.BuildDeposit(ctx, "D7KyD", wallet, "12.5")

	require.NoError(t, err)
	assert.Equal(t, "dHgtYmFzZTY0", response.Transaction)
	assert.Contains(t, response.Message, "12.5")
}

func TestBuildDeposit_RejectsBadAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)
	svc := actions.NewService(program, tracks, baseURL)

	ctx := context.Background()
	for _, amount := range []string{"", "0", "-5", "abc"} {
		_, err := svc.BuildDeposit(ctx, "D7KyD", "wallet", amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %q", amount)
	}
}

func TestBuildDeposit_RejectsFullVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	program := mocks.NewMockProgramClient(ctrl)
	tracks := mocks.NewMockAudiusClient(ctrl)

	ctx := context.Background()
	program.EXPECT().FetchVault(ctx, "D7KyD").Return(&domain.Vault{
		TotalDeposited: 10_000_000,
		Cap:            10_000_000,
	}, nil)

	svc := actions.NewService(program, tracks, baseURL)

	_, err := svc.BuildDeposit(ctx, "D7KyD", "wallet", "10")
	assert.ErrorIs(t, err, domain.ErrVaultFull)
}

func TestBlinkURL(t *testing.T) {
	svc := actions.NewService(nil, nil, baseURL)

	url := svc.BlinkURL("D7KyD")

	assert.Contains(t, url, "https://dial.to/?action=")
	assert.Contains(t, url, "solana-action%3A")
}

func TestRules_MapVaultPages(t *testing.T) {
	svc := actions.NewService(nil, nil, baseURL)

	rules := svc.Rules()

	require.NotEmpty(t, rules.Rules)
	assert.Equal(t, "/vault/*", rules.Rules[0].PathPattern)
}
