package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/domain"
)

func TestRequestStarted(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/api/donations", "201"))

	done := RequestStarted("post")
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))
	done("/api/donations", http.StatusCreated)

	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/api/donations", "201")))

	RequestStarted("GET")("", http.StatusNotFound)
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordDonation(t *testing.T) {
	RecordDonation(domain.NetworkTestnet, 300)
	RecordDonation(domain.NetworkTestnet, 250)

	assert.Equal(t, float64(2), testutil.ToFloat64(donationsRecorded.WithLabelValues("testnet")))
	assert.Equal(t, float64(550), testutil.ToFloat64(donatedAmount.WithLabelValues("testnet")))
}

func TestRecordLikeToggleAndCreated(t *testing.T) {
	RecordLikeToggle(true)
	RecordLikeToggle(false)
	RecordLikeToggle(true)
	RecordCreated(ENTITY_COMMENT)

	assert.Equal(t, float64(2), testutil.ToFloat64(likesToggled.WithLabelValues(ACTION_LIKE)))
	assert.Equal(t, float64(1), testutil.ToFloat64(likesToggled.WithLabelValues(ACTION_UNLIKE)))
	assert.Equal(t, float64(1), testutil.ToFloat64(entitiesCreated.WithLabelValues(ENTITY_COMMENT)))
}

func TestHandler(t *testing.T) {
	RecordCreated(ENTITY_CAMPAIGN)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ff_donate_entities_created_total{entity="campaign"}`)
}
