package brokerage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	marketdata "watchdeck/internal/domain/entity/marketdata"
	session "watchdeck/internal/domain/entity/session"
	watchlist "watchdeck/internal/domain/entity/watchlist"
)

// Config holds the upstream endpoint and service credentials. It is
// injected at construction so the client performs no environment lookups
// of its own.
type Config struct {
	BaseURL  string
	Login    string
	Password string
}

// Client talks to the brokerage REST API. Every operation is a single
// stateless round trip: no retries, no caching, no client-imposed
// deadline beyond the transport's own defaults.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logrus.Entry
}

// NewClient builds a brokerage client. A nil httpClient falls back to a
// default transport.
func NewClient(cfg Config, httpClient *http.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		cfg:  cfg,
		http: httpClient,
		log:  logger.WithField("component", "brokerage_client"),
	}
}

// CreateSession authenticates with the configured service credentials and
// returns the upstream-issued session.
func (c *Client) CreateSession(ctx context.Context) (*session.Session, error) {
	body := createSessionRequest{Login: c.cfg.Login, Password: c.cfg.Password}

	var env sessionEnvelope
	if err := c.do(ctx, http.MethodPost, "/sessions", "", body, "Authentication failed", &env); err != nil {
		return nil, err
	}
	return env.Data.toDomain(), nil
}

// GetWatchlists lists the account's watchlist summaries.
func (c *Client) GetWatchlists(ctx context.Context, token string) ([]watchlist.Watchlist, error) {
	var env watchlistsEnvelope
	if err := c.do(ctx, http.MethodGet, "/watchlists", token, nil, "Failed to fetch watchlists", &env); err != nil {
		return nil, err
	}
	return env.Data.Items, nil
}

// CreateWatchlist creates a watchlist whose entries are the given symbols
// typed as equities, then re-fetches the summary list so the caller sees
// the updated state.
func (c *Client) CreateWatchlist(ctx context.Context, token, name string, symbols []string, groupName string) ([]watchlist.Watchlist, error) {
	body := createWatchlistRequest{
		Name:      name,
		GroupName: groupName,
		Entries:   watchlist.EntriesFor(symbols),
	}

	var env watchlistDetailEnvelope
	if err := c.do(ctx, http.MethodPost, "/watchlists", token, body, "Failed to create watchlist", &env); err != nil {
		return nil, err
	}
	return c.GetWatchlists(ctx, token)
}

// GetWatchlistDetail fetches a watchlist with its entries by id or name.
func (c *Client) GetWatchlistDetail(ctx context.Context, token, id string) (*watchlist.Detail, error) {
	path := "/watchlists/" + url.PathEscape(id)

	var env watchlistDetailEnvelope
	if err := c.do(ctx, http.MethodGet, path, token, nil, "Failed to fetch watchlist details", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateWatchlist applies a partial update to the named watchlist and
// returns the updated detail.
func (c *Client) UpdateWatchlist(ctx context.Context, token, name string, update watchlist.Update) (*watchlist.Detail, error) {
	path := "/watchlists/" + url.PathEscape(name)

	var env watchlistDetailEnvelope
	if err := c.do(ctx, http.MethodPut, path, token, update, "Failed to update watchlist", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteWatchlist removes the named watchlist.
func (c *Client) DeleteWatchlist(ctx context.Context, token, name string) error {
	path := "/watchlists/" + url.PathEscape(name)

	var env watchlistDetailEnvelope
	return c.do(ctx, http.MethodDelete, path, token, nil, "Failed to delete watchlist", &env)
}

// SearchSymbols queries the upstream symbol search.
func (c *Client) SearchSymbols(ctx context.Context, token, query string) ([]watchlist.SymbolMatch, error) {
	path := "/symbols/search/" + url.PathEscape(query)

	var env symbolSearchEnvelope
	if err := c.do(ctx, http.MethodGet, path, token, nil, "Failed to search symbols", &env); err != nil {
		return nil, err
	}
	return env.Data.Items, nil
}

// GetMarketData fetches the quote snapshot for a single symbol.
func (c *Client) GetMarketData(ctx context.Context, token, symbol string) (*marketdata.Quote, error) {
	path := "/market-data/" + url.PathEscape(symbol)
	fallback := fmt.Sprintf("Failed to fetch market data for %s", symbol)

	var env quoteEnvelope
	if err := c.do(ctx, http.MethodGet, path, token, nil, fallback, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// do issues one upstream request and normalizes the outcome. The body is
// parsed regardless of status: a non-2xx response yields an APIError
// carrying the upstream message (or the fallback), and a transport-level
// failure yields the generic connect message. Errors returned here are
// already of the normalized kind and must not be wrapped again.
func (c *Client) do(ctx context.Context, method, path, token string, body any, fallback string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fallback}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return &APIError{Message: fallback}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		// The upstream expects the raw session token, not a Bearer prefix.
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).
			WithError(err).Error("brokerage request failed")
		return &APIError{Message: msgConnectFailed}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).
			WithError(err).Error("brokerage response read failed")
		return &APIError{Message: msgConnectFailed}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env errorEnvelope
		_ = json.Unmarshal(raw, &env)
		apiErr := env.normalize(fallback)
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"code":   apiErr.Code,
		}).Warn(apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.log.WithFields(logrus.Fields{"method": method, "path": path}).
				WithError(err).Error("brokerage response decode failed")
			return &APIError{Message: fallback}
		}
	}
	return nil
}
