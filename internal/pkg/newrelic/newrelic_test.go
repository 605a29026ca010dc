package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))
	assert.Nil(t, InitNewRelic(&models.Config{NewRelic: models.NewRelicConfig{Enabled: true}}))
}

func TestWithSegment_NoTransaction(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "payments.create", func() error {
		called = true
		return errors.New("boom")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "boom")
}

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}
