package brokerage

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	marketdata "watchdeck/internal/domain/entity/marketdata"
)

// GetMarketDataBatch fetches quotes for all symbols concurrently, one
// upstream call per symbol with no deduplication and no concurrency cap.
// A failed symbol is replaced by a placeholder quote instead of failing
// the batch; the batch itself fails only when the fan-out orchestration
// does. The result maps each requested symbol to its quote.
func (c *Client) GetMarketDataBatch(ctx context.Context, token string, symbols []string) (map[string]marketdata.Quote, error) {
	results := make([]marketdata.Quote, len(symbols))

	var group errgroup.Group
	for i, symbol := range symbols {
		i, symbol := i, symbol
		group.Go(func() error {
			quote, err := c.GetMarketData(ctx, token, symbol)
			if err != nil {
				c.log.WithField("symbol", symbol).
					WithError(err).Warn("quote fetch failed, substituting placeholder")
				results[i] = marketdata.Placeholder(symbol, time.Now())
				return nil
			}
			results[i] = *quote
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, &APIError{Message: msgBatchFailed}
	}

	quotes := make(map[string]marketdata.Quote, len(symbols))
	for i, symbol := range symbols {
		quotes[symbol] = results[i]
	}
	return quotes, nil
}
