package watchlists

import (
	"context"
	"errors"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	watchlist "watchdeck/internal/domain/entity/watchlist"
	interfaces "watchdeck/internal/domain/interfaces"
)

var (
	ErrNameRequired = errors.New("watchlist name is required")
)

// Service exposes watchlist operations against the upstream brokerage,
// which is the sole source of truth. Nothing is cached or persisted
// locally beyond a single request.
type Service struct {
	api interfaces.BrokerageAPI
}

func NewService(api interfaces.BrokerageAPI) *Service {
	return &Service{api: api}
}

// List returns the account's watchlist summaries.
func (s *Service) List(ctx context.Context, token string) ([]watchlist.Watchlist, error) {
	return s.api.GetWatchlists(ctx, token)
}

// Create makes a new watchlist from a name and symbol list and returns
// the refreshed summary list.
func (s *Service) Create(ctx context.Context, token, name string, symbols []string, groupName string) ([]watchlist.Watchlist, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.api.CreateWatchlist(ctx, token, name, symbols, groupName)
}

// Detail fetches a single watchlist with its entries.
func (s *Service) Detail(ctx context.Context, token, id string) (*watchlist.Detail, error) {
	if id == "" {
		return nil, ErrNameRequired
	}
	return s.api.GetWatchlistDetail(ctx, token, id)
}

// DetailWithQuotes composes a watchlist detail with a batch quote fetch
// for its entries; a watchlist without entries yields an empty quote map
// without touching the market data endpoint.
func (s *Service) DetailWithQuotes(ctx context.Context, token, id string) (*watchlist.Detail, map[string]marketdata.Quote, error) {
	detail, err := s.Detail(ctx, token, id)
	if err != nil {
		return nil, nil, err
	}

	symbols := detail.Symbols()
	if len(symbols) == 0 {
		return detail, map[string]marketdata.Quote{}, nil
	}

	quotes, err := s.api.GetMarketDataBatch(ctx, token, symbols)
	if err != nil {
		return nil, nil, err
	}
	return detail, quotes, nil
}

// Update applies a partial update to the named watchlist. A nil symbols
// slice leaves the entries untouched; a non-nil slice replaces them with
// equity-typed entries.
func (s *Service) Update(ctx context.Context, token, name, newName string, symbols []string) (*watchlist.Detail, error) {
	if name == "" || newName == "" {
		return nil, ErrNameRequired
	}

	update := watchlist.Update{Name: newName}
	if symbols != nil {
		update.Entries = watchlist.EntriesFor(symbols)
	}
	return s.api.UpdateWatchlist(ctx, token, name, update)
}

// Delete removes the named watchlist.
func (s *Service) Delete(ctx context.Context, token, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return s.api.DeleteWatchlist(ctx, token, name)
}
