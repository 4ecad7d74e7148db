package brokerage

import (
	marketdata "watchdeck/internal/domain/entity/marketdata"
	session "watchdeck/internal/domain/entity/session"
	watchlist "watchdeck/internal/domain/entity/watchlist"
)

// Upstream responses arrive wrapped in a {data, context} envelope with
// hyphenated field names.

type sessionEnvelope struct {
	Data    sessionData `json:"data"`
	Context string      `json:"context"`
}

type sessionData struct {
	User              session.User `json:"user"`
	SessionExpiration string       `json:"session-expiration"`
	SessionToken      string       `json:"session-token"`
}

func (d sessionData) toDomain() *session.Session {
	return &session.Session{
		Token:      d.SessionToken,
		Expiration: d.SessionExpiration,
		User:       d.User,
	}
}

type watchlistsEnvelope struct {
	Data struct {
		Items []watchlist.Watchlist `json:"items"`
	} `json:"data"`
	Context string `json:"context"`
}

type watchlistDetailEnvelope struct {
	Data    watchlist.Detail `json:"data"`
	Context string           `json:"context"`
}

type symbolSearchEnvelope struct {
	Data struct {
		Items []watchlist.SymbolMatch `json:"items"`
	} `json:"data"`
	Context string `json:"context"`
}

type quoteEnvelope struct {
	Data    marketdata.Quote `json:"data"`
	Context string           `json:"context"`
}

type createSessionRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createWatchlistRequest struct {
	Name      string            `json:"name"`
	GroupName string            `json:"group-name,omitempty"`
	Entries   []watchlist.Entry `json:"watchlist-entries"`
}
