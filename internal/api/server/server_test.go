package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/api/middleware"
	"github.com/feral-file/ff-donate/internal/messaging"
	"github.com/feral-file/ff-donate/internal/store"
)

func newTestServer(t *testing.T, rateLimit middleware.RateLimitConfig) *Server {
	clock := adapter.NewClock()
	dispatcher := messaging.NewDispatcher(messaging.DispatcherConfig{PoolSize: 1, QueueSize: 8}, messaging.NewNoopPublisher())
	t.Cleanup(dispatcher.Close)

	return New(Config{
		Host:      "127.0.0.1",
		Port:      0,
		Storage:   "memory",
		RateLimit: rateLimit,
	}, store.NewMemoryStore(clock), dispatcher, clock)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{})

	for _, path := range []string{"/health", "/metrics", "/api/stats", "/api/campaigns"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER), path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_WriteRoutesAreRateLimited(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/social/posts", bytes.NewBufferString(`{"authorAddress":"0x1111111111111111111111111111111111111111","content":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// Reads are not limited
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/social/posts", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Give the listener a moment before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
