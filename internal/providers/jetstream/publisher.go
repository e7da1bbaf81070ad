package jetstream

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/logger"
	"github.com/feral-file/ff-donate/internal/messaging"
)

const (
	// SUBJECT_PREFIX is prepended to the event type to build the subject
	SUBJECT_PREFIX = "ff_donate.events"

	// DUPLICATE_WINDOW is how long JetStream remembers message ids for deduplication
	DUPLICATE_WINDOW = 2 * time.Minute
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// ConnectTimeout bounds the total time spent retrying the initial connection
	ConnectTimeout time.Duration
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
	jcs  adapter.JCS
}

// NewPublisher connects to NATS, retrying with exponential backoff, and ensures the event stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = cfg.ConnectTimeout
	if b.MaxElapsedTime <= 0 {
		b.MaxElapsedTime = time.Minute
	}

	var (
		nc adapter.NatsConn
		js adapter.JetStream
	)
	operation := func() error {
		var err error
		nc, js, err = natsJS.Connect(cfg.URL, opts...)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to connect to NATS, retrying", zap.Error(err), zap.String("url", cfg.URL))
			return err
		}
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{SUBJECT_PREFIX + ".>"},
		Duplicates: DUPLICATE_WINDOW,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	logger.InfoCtx(ctx, "Connected to NATS JetStream",
		zap.String("url", nc.ConnectedUrl()),
		zap.String("stream", cfg.StreamName))

	return &publisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
		jcs:  jcsAdapter,
	}, nil
}

// PublishEvent publishes the canonical JSON of the event. The message id is the
// SHA-256 of that canonical form so republishing the same envelope is deduplicated.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.String("type", string(event.Type)), zap.String("id", event.ID))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	canonical, err := p.jcs.Transform(data)
	if err != nil {
		return fmt.Errorf("failed to canonicalize event: %w", err)
	}

	_, err = p.js.Publish(ctx, BuildSubject(event.Type), canonical, jetstream.WithMsgID(MessageID(canonical)))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// BuildSubject constructs the NATS subject for an event type
// Format: ff_donate.events.{event_type}, e.g. ff_donate.events.donation_recorded
func BuildSubject(eventType domain.EventType) string {
	return fmt.Sprintf("%s.%s", SUBJECT_PREFIX, eventType)
}

// MessageID returns the hex SHA-256 digest of a canonical payload
func MessageID(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
