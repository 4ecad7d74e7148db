package session

import "time"

// User identifies the brokerage account holder behind a session.
type User struct {
	Email             string `json:"email"`
	ExternalID        string `json:"external-id"`
	Username          string `json:"username"`
	IsConfirmed       bool   `json:"is-confirmed"`
	TwoFactorEnforced bool   `json:"is-two-factor-sessions-enforced"`
}

// Session is the authenticated state carried in the session cookie. The
// token authorizes every upstream brokerage call; Expiration is the
// upstream-issued expiry in RFC 3339 form.
type Session struct {
	Token      string `json:"sessionToken"`
	Expiration string `json:"sessionExpiration"`
	User       User   `json:"user"`
}

// Expired reports whether the embedded expiration timestamp is at or
// before now. An unparseable timestamp counts as expired.
func (s *Session) Expired(now time.Time) bool {
	exp, err := time.Parse(time.RFC3339, s.Expiration)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
