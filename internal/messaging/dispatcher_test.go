package messaging_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/domain"
	"github.com/feral-file/ff-donate/internal/messaging"
	"github.com/feral-file/ff-donate/internal/mocks"
)

func TestDispatcher_PublishesAsynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	d := messaging.NewDispatcher(messaging.DispatcherConfig{PoolSize: 2, QueueSize: 10}, publisher)

	var mu sync.Mutex
	var got []string
	publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, event.SubjectID)
			return nil
		}).Times(3)
	publisher.EXPECT().Close()

	for _, id := range []string{"a", "b", "c"} {
		d.Dispatch(context.Background(), domain.NewEvent(domain.EventPostCreated, id, "", nil, time.Now()))
	}

	d.Close()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestDispatcher_PublishFailureDoesNotPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	d := messaging.NewDispatcher(messaging.DispatcherConfig{}, publisher)

	publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	publisher.EXPECT().Close()

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), domain.NewEvent(domain.EventCommentCreated, "p1", "", nil, time.Now()))
	})
	d.Close()
}

func TestDispatcher_OutlivesRequestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	d := messaging.NewDispatcher(messaging.DispatcherConfig{PoolSize: 1}, publisher)

	ctx, cancel := context.WithCancel(context.Background())

	publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *domain.Event) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
	publisher.EXPECT().Close()

	d.Dispatch(ctx, domain.NewEvent(domain.EventLikeToggled, "p1", "", nil, time.Now()))
	cancel()
	d.Close()
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockPublisher(ctrl)
	d := messaging.NewDispatcher(messaging.DispatcherConfig{PoolSize: 1, QueueSize: 1}, publisher)

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Event) error {
			once.Do(func() { close(started) })
			<-release
			return nil
		}).MinTimes(1).MaxTimes(2)
	publisher.EXPECT().Close()

	d.Dispatch(context.Background(), domain.NewEvent(domain.EventPostCreated, "busy", "", nil, time.Now()))
	<-started

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Dispatch(context.Background(), domain.NewEvent(domain.EventPostCreated, "overflow", "", nil, time.Now()))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "dispatch blocked on a full queue")
	}

	close(release)
	d.Close()
}

func TestNoopPublisher(t *testing.T) {
	p := messaging.NewNoopPublisher()
	event := domain.NewEvent(domain.EventCampaignCreated, "c1", "", nil, time.Now())
	assert.NoError(t, p.PublishEvent(context.Background(), &event))
	p.Close()
}
