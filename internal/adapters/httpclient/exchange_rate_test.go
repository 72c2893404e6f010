package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fxconvert/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newRatesServer(t *testing.T, status int, body string, gotPath *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExchangeRateClient_Success(t *testing.T) {
	var gotPath string
	srv := newRatesServer(t, http.StatusOK, `{
		"base": "USD",
		"date": "2025-01-02",
		"rates": {"USD": 1, "EUR": 0.92, "JPY": 150.0, "AED": 3.67}
	}`, &gotPath)

	c := NewExchangeRateClient(srv.URL+"/v4/latest/", 5*time.Second)

	table, err := c.GetRateTable(context.Background(), "USD")
	require.NoError(t, err)
	require.Equal(t, "/v4/latest/USD", gotPath)
	require.Equal(t, "USD", table.Base)
	require.Equal(t, []string{"USD", "EUR", "JPY", "AED"}, table.Codes())

	eur, ok := table.Rate("EUR")
	require.True(t, ok)
	require.InDelta(t, 0.92, eur, 1e-9)
}

func TestExchangeRateClient_StatusCodeError(t *testing.T) {
	srv := newRatesServer(t, http.StatusServiceUnavailable, `{"error": "nope"}`, nil)
	c := NewExchangeRateClient(srv.URL, 5*time.Second)

	_, err := c.GetRateTable(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
	require.Contains(t, err.Error(), "unexpected status code 503")
	require.Contains(t, err.Error(), "USD")
}

func TestExchangeRateClient_MissingRates(t *testing.T) {
	srv := newRatesServer(t, http.StatusOK, `{"base": "USD"}`, nil)
	c := NewExchangeRateClient(srv.URL, 5*time.Second)

	_, err := c.GetRateTable(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
}

func TestExchangeRateClient_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"invalid json":   `{`,
		"rates not map":  `{"rates": [1, 2]}`,
		"non-numeric":    `{"rates": {"EUR": "abc"}}`,
		"negative value": `{"rates": {"EUR": -0.5}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newRatesServer(t, http.StatusOK, body, nil)
			c := NewExchangeRateClient(srv.URL, 5*time.Second)

			_, err := c.GetRateTable(context.Background(), "USD")
			require.ErrorIs(t, err, domain.ErrRatesUnavailable)
		})
	}
}

func TestExchangeRateClient_ContextCanceled(t *testing.T) {
	srv := newRatesServer(t, http.StatusOK, `{"rates": {"EUR": 0.9}}`, nil)
	c := NewExchangeRateClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetRateTable(ctx, "USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
}

func TestExchangeRateClient_BaseURLParseError(t *testing.T) {
	c := NewExchangeRateClient("http://::1]", time.Second)
	_, err := c.GetRateTable(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
}

type stubClient struct {
	table *domain.RateTable
	err   error
}

func (s stubClient) GetRateTable(context.Context, string) (*domain.RateTable, error) {
	return s.table, s.err
}

func TestLoggingClient_LogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	wantErr := errors.New("boom")
	c := NewLoggingClient(logger, stubClient{err: wantErr})

	_, err := c.GetRateTable(context.Background(), "USD")
	require.ErrorIs(t, err, wantErr)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "USD", entry.Data["base"])
}

func TestLoggingClient_PassesThroughTable(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	table := domain.NewRateTable("USD")
	table.Put("EUR", 0.9)
	c := NewLoggingClient(logger, stubClient{table: table})

	got, err := c.GetRateTable(context.Background(), "USD")
	require.NoError(t, err)
	require.Same(t, table, got)
}

func TestExchangeRateClient_EmptyRates(t *testing.T) {
	srv := newRatesServer(t, http.StatusOK, `{"base": "USD", "rates": {}}`, nil)
	c := NewExchangeRateClient(srv.URL, 5*time.Second)

	_, err := c.GetRateTable(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRatesUnavailable)
	require.Contains(t, err.Error(), "has no rates")
}
