package httpclient

import (
	"context"
	"fmt"
	"fxconvert/internal/domain"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"
)

type ExchangeRateClient struct {
	http *resty.Client
}

type apiResponse struct {
	Base  string            `json:"base"`
	Rates *domain.RateTable `json:"rates"`
}

// GetRateTable fetches GET <baseURL>/<base> and returns its rates in response order.
func (c *ExchangeRateClient) GetRateTable(ctx context.Context, base string) (*domain.RateTable, error) {
	var body apiResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("base", base).
		SetResult(&body).
		Get("/{base}")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request for currency %q: %w", domain.ErrRatesUnavailable, base, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status code %d for currency %q", domain.ErrRatesUnavailable, resp.StatusCode(), base)
	}

	if body.Rates == nil || body.Rates.Len() == 0 {
		return nil, fmt.Errorf("%w: response for currency %q has no rates", domain.ErrRatesUnavailable, base)
	}

	body.Rates.Base = base
	return body.Rates, nil
}

func NewExchangeRateClient(baseURL string, timeout time.Duration) *ExchangeRateClient {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &ExchangeRateClient{http: httpClient}
}
