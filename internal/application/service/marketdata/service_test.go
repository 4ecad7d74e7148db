package marketdata

import (
	"context"
	"errors"
	"testing"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	session "watchdeck/internal/domain/entity/session"
	watchlist "watchdeck/internal/domain/entity/watchlist"
)

type fakeAPI struct {
	quotes      map[string]marketdata.Quote
	batchCalled bool
}

func (f *fakeAPI) CreateSession(ctx context.Context) (*session.Session, error) { return nil, nil }

func (f *fakeAPI) GetWatchlists(ctx context.Context, token string) ([]watchlist.Watchlist, error) {
	return nil, nil
}

func (f *fakeAPI) CreateWatchlist(ctx context.Context, token, name string, symbols []string, groupName string) ([]watchlist.Watchlist, error) {
	return nil, nil
}

func (f *fakeAPI) GetWatchlistDetail(ctx context.Context, token, id string) (*watchlist.Detail, error) {
	return nil, nil
}

func (f *fakeAPI) UpdateWatchlist(ctx context.Context, token, name string, update watchlist.Update) (*watchlist.Detail, error) {
	return nil, nil
}

func (f *fakeAPI) DeleteWatchlist(ctx context.Context, token, name string) error { return nil }

func (f *fakeAPI) SearchSymbols(ctx context.Context, token, query string) ([]watchlist.SymbolMatch, error) {
	return nil, nil
}

func (f *fakeAPI) GetMarketData(ctx context.Context, token, symbol string) (*marketdata.Quote, error) {
	return nil, nil
}

func (f *fakeAPI) GetMarketDataBatch(ctx context.Context, token string, symbols []string) (map[string]marketdata.Quote, error) {
	f.batchCalled = true
	return f.quotes, nil
}

func TestQuotesRejectsEmptySymbolList(t *testing.T) {
	fake := &fakeAPI{}
	service := NewService(fake)

	_, err := service.Quotes(context.Background(), "tok", nil)
	if !errors.Is(err, ErrNoSymbols) {
		t.Errorf("err = %v, want ErrNoSymbols", err)
	}
	if fake.batchCalled {
		t.Error("empty symbol list must not reach the upstream")
	}
}

func TestQuotesDelegatesToBatch(t *testing.T) {
	fake := &fakeAPI{quotes: map[string]marketdata.Quote{"AAPL": {Symbol: "AAPL"}}}
	service := NewService(fake)

	quotes, err := service.Quotes(context.Background(), "tok", []string{"AAPL"})
	if err != nil {
		t.Fatalf("Quotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Errorf("quotes = %v", quotes)
	}
}
