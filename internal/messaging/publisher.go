package messaging

import (
	"context"

	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/logger"
	"go.uber.org/zap"
)

// Publisher defines the interface for publishing domain events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a domain event to the message broker
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	logger.DebugCtx(ctx, "No broker configured, dropping event",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID))
	return nil
}

func (p *noopPublisher) Close() {}
