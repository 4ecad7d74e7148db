package session

import (
	"testing"
	"time"
)

func TestExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration string
		want       bool
	}{
		{"future", "2026-09-01T13:00:00Z", false},
		{"past", "2026-09-01T11:00:00Z", true},
		{"exactly now", "2026-09-01T12:00:00Z", true},
		{"unparseable", "tomorrow-ish", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Expiration: tt.expiration}
			if got := s.Expired(now); got != tt.want {
				t.Errorf("Expired(%q) = %v, want %v", tt.expiration, got, tt.want)
			}
		})
	}
}
