package httpclient

import (
	"context"
	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

// loggingClient decorates a RateClient with request logging
type loggingClient struct {
	next   adapters.RateClient
	logger logrus.FieldLogger
}

func NewLoggingClient(logger logrus.FieldLogger, next adapters.RateClient) adapters.RateClient {
	return &loggingClient{next: next, logger: logger}
}

func (c *loggingClient) GetRateTable(ctx context.Context, base string) (table *domain.RateTable, err error) {
	defer func(begin time.Time) {
		entry := c.logger.WithFields(logrus.Fields{
			"method": "get_rate_table",
			"base":   base,
			"took":   time.Since(begin),
		})
		if err != nil {
			entry.WithError(err).Warn("rate table request failed")
			return
		}
		entry.WithField("codes", table.Len()).Debug("rate table fetched")
	}(time.Now())
	return c.next.GetRateTable(ctx, base)
}
