package messaging

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/logger"
)

// SubjectPrefix is the root subject under which vault events are published.
// The event type is appended, e.g. "vault.deposit".
const SubjectPrefix = "vault"

// Publisher emits vault lifecycle events for downstream consumers.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks
type Publisher interface {
	// PublishVaultEvent assigns the event an ID and timestamp if unset and
	// publishes it to the event stream
	PublishVaultEvent(ctx context.Context, event *domain.VaultEvent) error
}

// EventPublisher publishes vault events to a NATS JetStream stream.
type EventPublisher struct {
	js    adapter.JetStream
	json  adapter.JSON
	clock adapter.Clock
}

// NewEventPublisher ensures the stream exists and returns a publisher bound
// to it.
func NewEventPublisher(ctx context.Context, js adapter.JetStream, json adapter.JSON, clock adapter.Clock, streamName string) (*EventPublisher, error) {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      streamName,
		Subjects:  []string{SubjectPrefix + ".>"},
		Retention: jetstream.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event stream: %w", err)
	}

	return &EventPublisher{js: js, json: json, clock: clock}, nil
}

func (p *EventPublisher) PublishVaultEvent(ctx context.Context, event *domain.VaultEvent) error {
	if event.ID == "" {
		event.ID = ulid.MustNew(ulid.Timestamp(p.clock.Now()), rand.Reader).String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.clock.Now().UTC()
	}

	payload, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	subject := string(event.Type)
	if _, err := p.js.Publish(ctx, subject, payload); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugCtx(ctx, "published vault event",
		zap.String("id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("track_id", event.TrackID))
	return nil
}
