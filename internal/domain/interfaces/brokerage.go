package interfaces

import (
	"context"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	session "watchdeck/internal/domain/entity/session"
	watchlist "watchdeck/internal/domain/entity/watchlist"
)

// BrokerageAPI wraps every upstream brokerage endpoint used by the
// application. All authenticated operations take the raw session token;
// CreateSession authenticates with the configured service credentials.
type BrokerageAPI interface {
	CreateSession(ctx context.Context) (*session.Session, error)

	GetWatchlists(ctx context.Context, token string) ([]watchlist.Watchlist, error)
	CreateWatchlist(ctx context.Context, token, name string, symbols []string, groupName string) ([]watchlist.Watchlist, error)
	GetWatchlistDetail(ctx context.Context, token, id string) (*watchlist.Detail, error)
	UpdateWatchlist(ctx context.Context, token, name string, update watchlist.Update) (*watchlist.Detail, error)
	DeleteWatchlist(ctx context.Context, token, name string) error

	SearchSymbols(ctx context.Context, token, query string) ([]watchlist.SymbolMatch, error)

	GetMarketData(ctx context.Context, token, symbol string) (*marketdata.Quote, error)
	GetMarketDataBatch(ctx context.Context, token string, symbols []string) (map[string]marketdata.Quote, error)
}
