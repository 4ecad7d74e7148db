package watchlists

import (
	"context"
	"errors"
	"testing"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	session "watchdeck/internal/domain/entity/session"
	watchlist "watchdeck/internal/domain/entity/watchlist"
)

type fakeAPI struct {
	detail    *watchlist.Detail
	detailErr error
	quotes    map[string]marketdata.Quote
	quotesErr error

	batchSymbols []string
	batchCalled  bool
	update       watchlist.Update
}

func (f *fakeAPI) CreateSession(ctx context.Context) (*session.Session, error) {
	return nil, nil
}

func (f *fakeAPI) GetWatchlists(ctx context.Context, token string) ([]watchlist.Watchlist, error) {
	return nil, nil
}

func (f *fakeAPI) CreateWatchlist(ctx context.Context, token, name string, symbols []string, groupName string) ([]watchlist.Watchlist, error) {
	return nil, nil
}

func (f *fakeAPI) GetWatchlistDetail(ctx context.Context, token, id string) (*watchlist.Detail, error) {
	return f.detail, f.detailErr
}

func (f *fakeAPI) UpdateWatchlist(ctx context.Context, token, name string, update watchlist.Update) (*watchlist.Detail, error) {
	f.update = update
	return f.detail, f.detailErr
}

func (f *fakeAPI) DeleteWatchlist(ctx context.Context, token, name string) error {
	return f.detailErr
}

func (f *fakeAPI) SearchSymbols(ctx context.Context, token, query string) ([]watchlist.SymbolMatch, error) {
	return nil, nil
}

func (f *fakeAPI) GetMarketData(ctx context.Context, token, symbol string) (*marketdata.Quote, error) {
	return nil, nil
}

func (f *fakeAPI) GetMarketDataBatch(ctx context.Context, token string, symbols []string) (map[string]marketdata.Quote, error) {
	f.batchCalled = true
	f.batchSymbols = symbols
	return f.quotes, f.quotesErr
}

func TestCreateRequiresName(t *testing.T) {
	service := NewService(&fakeAPI{})

	_, err := service.Create(context.Background(), "tok", "", nil, "")
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}

func TestDetailWithQuotesFetchesEntrySymbols(t *testing.T) {
	fake := &fakeAPI{
		detail: &watchlist.Detail{
			Name: "Tech",
			Entries: []watchlist.Entry{
				{Symbol: "AAPL", InstrumentType: "equity"},
				{Symbol: "MSFT", InstrumentType: "equity"},
			},
		},
		quotes: map[string]marketdata.Quote{
			"AAPL": {Symbol: "AAPL"},
			"MSFT": {Symbol: "MSFT"},
		},
	}
	service := NewService(fake)

	detail, quotes, err := service.DetailWithQuotes(context.Background(), "tok", "Tech")
	if err != nil {
		t.Fatalf("DetailWithQuotes: %v", err)
	}
	if detail.Name != "Tech" || len(quotes) != 2 {
		t.Errorf("detail = %+v, quotes = %v", detail, quotes)
	}
	if len(fake.batchSymbols) != 2 || fake.batchSymbols[0] != "AAPL" {
		t.Errorf("batch symbols = %v, want entry symbols in order", fake.batchSymbols)
	}
}

func TestDetailWithQuotesSkipsBatchForEmptyWatchlist(t *testing.T) {
	fake := &fakeAPI{detail: &watchlist.Detail{Name: "Empty"}}
	service := NewService(fake)

	_, quotes, err := service.DetailWithQuotes(context.Background(), "tok", "Empty")
	if err != nil {
		t.Fatalf("DetailWithQuotes: %v", err)
	}
	if fake.batchCalled {
		t.Error("empty watchlist must not trigger a market data call")
	}
	if quotes == nil || len(quotes) != 0 {
		t.Errorf("quotes = %v, want empty map", quotes)
	}
}

func TestUpdateLeavesEntriesWhenSymbolsNil(t *testing.T) {
	fake := &fakeAPI{detail: &watchlist.Detail{Name: "Renamed"}}
	service := NewService(fake)

	if _, err := service.Update(context.Background(), "tok", "Tech", "Renamed", nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if fake.update.Entries != nil {
		t.Errorf("entries = %+v, want nil for a rename-only update", fake.update.Entries)
	}
}

func TestUpdateReplacesEntriesWithEquitySymbols(t *testing.T) {
	fake := &fakeAPI{detail: &watchlist.Detail{Name: "Tech"}}
	service := NewService(fake)

	if _, err := service.Update(context.Background(), "tok", "Tech", "Tech", []string{"AAPL"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(fake.update.Entries) != 1 || fake.update.Entries[0].InstrumentType != watchlist.InstrumentTypeEquity {
		t.Errorf("entries = %+v", fake.update.Entries)
	}
}

func TestDeleteRequiresName(t *testing.T) {
	service := NewService(&fakeAPI{})

	if err := service.Delete(context.Background(), "tok", ""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}
