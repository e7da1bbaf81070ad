package messaging

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/logger"
)

const (
	DEFAULT_POOL_SIZE       = 4
	DEFAULT_QUEUE_SIZE      = 1024
	DEFAULT_PUBLISH_TIMEOUT = 5 * time.Second
)

// Dispatcher hands domain events to a publisher without blocking the caller
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch queues an event for publishing. Events are dropped when the queue is full.
	Dispatch(ctx context.Context, event domain.Event)
	// Close waits for queued events to be published and closes the publisher
	Close()
}

// DispatcherConfig holds the worker pool settings of the dispatcher
type DispatcherConfig struct {
	PoolSize       int
	QueueSize      int
	PublishTimeout time.Duration
}

type dispatcher struct {
	publisher Publisher
	pool      pond.Pool
	timeout   time.Duration
}

// NewDispatcher creates a dispatcher backed by a bounded, non-blocking worker pool
func NewDispatcher(cfg DispatcherConfig, publisher Publisher) Dispatcher {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_POOL_SIZE
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = DEFAULT_QUEUE_SIZE
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = DEFAULT_PUBLISH_TIMEOUT
	}

	return &dispatcher{
		publisher: publisher,
		pool: pond.NewPool(
			poolSize,
			pond.WithQueueSize(queueSize),
			pond.WithNonBlocking(true),
		),
		timeout: timeout,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, event domain.Event) {
	// The request context ends with the response; keep its values only
	publishCtx := context.WithoutCancel(ctx)

	err := d.pool.Go(func() {
		ctx, cancel := context.WithTimeout(publishCtx, d.timeout)
		defer cancel()

		if err := d.publisher.PublishEvent(ctx, &event); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Failed to publish event"),
				zap.String("type", string(event.Type)),
				zap.String("id", event.ID))
			return
		}

		logger.DebugCtx(ctx, "Published event",
			zap.String("type", string(event.Type)),
			zap.String("id", event.ID))
	})
	if err != nil {
		logger.WarnCtx(ctx, "Dropping event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("id", event.ID))
	}
}

func (d *dispatcher) Close() {
	logger.Info("Shutting down event dispatcher",
		zap.Uint64("submitted", d.pool.SubmittedTasks()),
		zap.Uint64("waiting", d.pool.WaitingTasks()))

	d.pool.StopAndWait()
	d.publisher.Close()

	logger.Info("Event dispatcher shutdown complete",
		zap.Uint64("completed", d.pool.CompletedTasks()),
		zap.Uint64("failed", d.pool.FailedTasks()))
}
