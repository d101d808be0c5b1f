package messaging_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/messaging"
	"github.com/musicvalue/vault-backend/internal/mocks"
)

func TestNewEventPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	js.EXPECT().
		CreateOrUpdateStream(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
			assert.Equal(t, "vault-events", cfg.Name)
			assert.Equal(t, []string{"vault.>"}, cfg.Subjects)
			assert.Equal(t, jetstream.LimitsPolicy, cfg.Retention)
			assert.Equal(t, 7*24*time.Hour, cfg.MaxAge)
			return nil, nil
		})

	_, err := messaging.NewEventPublisher(ctx, js, adapter.NewJSON(), clock, "vault-events")
	require.NoError(t, err)
}

func TestNewEventPublisher_StreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	js.EXPECT().
		CreateOrUpdateStream(ctx, gomock.Any()).
		Return(nil, assert.AnError)

	_, err := messaging.NewEventPublisher(ctx, js, adapter.NewJSON(), clock, "vault-events")
	assert.Error(t, err)
}

func TestPublishVaultEvent_FillsIDAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	clock.EXPECT().Now().Return(now).AnyTimes()

	js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(nil, nil)

	json := adapter.NewJSON()
	js.EXPECT().
		Publish(ctx, "vault.deposit", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var published domain.VaultEvent
			require.NoError(t, json.Unmarshal(payload, &published))
			assert.NotEmpty(t, published.ID)
			assert.Equal(t, now.UTC(), published.OccurredAt)
			assert.Equal(t, "D7KyD", published.TrackID)
			return &jetstream.PubAck{}, nil
		})

	publisher, err := messaging.NewEventPublisher(ctx, js, json, clock, "vault-events")
	require.NoError(t, err)

	event := &domain.VaultEvent{
		Type:      domain.VaultDeposited,
		TrackID:   "D7KyD",
		Signature: "5sig",
	}
	require.NoError(t, publisher.PublishVaultEvent(ctx, event))

	// The caller's event carries the assigned ID and timestamp afterwards
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, now.UTC(), event.OccurredAt)
}

func TestPublishVaultEvent_KeepsExistingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(nil, nil)
	js.EXPECT().
		Publish(ctx, "vault.yield", gomock.Any()).
		Return(&jetstream.PubAck{}, nil)

	publisher, err := messaging.NewEventPublisher(ctx, js, adapter.NewJSON(), clock, "vault-events")
	require.NoError(t, err)

	event := &domain.VaultEvent{
		ID:         "01HN0000000000000000000000",
		Type:       domain.VaultYieldDistributed,
		TrackID:    "D7KyD",
		OccurredAt: time.Unix(1690000000, 0).UTC(),
	}
	require.NoError(t, publisher.PublishVaultEvent(ctx, event))

	assert.Equal(t, "01HN0000000000000000000000", event.ID)
	assert.Equal(t, time.Unix(1690000000, 0).UTC(), event.OccurredAt)
}

func TestPublishVaultEvent_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	clock.EXPECT().Now().Return(now).AnyTimes()

	js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(nil, nil)
	js.EXPECT().
		Publish(ctx, "vault.withdraw", gomock.Any()).
		Return(nil, assert.AnError)

	publisher, err := messaging.NewEventPublisher(ctx, js, adapter.NewJSON(), clock, "vault-events")
	require.NoError(t, err)

	err = publisher.PublishVaultEvent(ctx, &domain.VaultEvent{
		Type:    domain.VaultWithdrawn,
		TrackID: "D7KyD",
	})
	assert.ErrorContains(t, err, "vault.withdraw")
}
