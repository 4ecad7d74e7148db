package marketdata

import (
	"context"
	"errors"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	watchlist "watchdeck/internal/domain/entity/watchlist"
	interfaces "watchdeck/internal/domain/interfaces"
)

var (
	ErrNoSymbols = errors.New("at least one symbol is required")
)

// Service exposes on-demand quote and symbol lookup operations. Quotes
// are fetched fresh per call and never stored.
type Service struct {
	api interfaces.BrokerageAPI
}

func NewService(api interfaces.BrokerageAPI) *Service {
	return &Service{api: api}
}

// Quotes fetches a quote per symbol concurrently; failed symbols come
// back as placeholder quotes rather than failing the batch.
func (s *Service) Quotes(ctx context.Context, token string, symbols []string) (map[string]marketdata.Quote, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	return s.api.GetMarketDataBatch(ctx, token, symbols)
}

// Search queries the upstream symbol search.
func (s *Service) Search(ctx context.Context, token, query string) ([]watchlist.SymbolMatch, error) {
	return s.api.SearchSymbols(ctx, token, query)
}
