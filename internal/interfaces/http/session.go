package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	session "watchdeck/internal/domain/entity/session"
)

const (
	sessionCookieName = "wd-session"

	// The cookie TTL is fixed at 24 hours regardless of the embedded
	// expiration; whichever is shorter ends the session first.
	sessionCookieMaxAge = 24 * 60 * 60
)

// SessionStore is the single component allowed to touch the raw session
// cookie. A session is either fully well-formed and unexpired or treated
// as absent; malformed and expired cookies are cleared on read.
type SessionStore struct {
	secure bool
	log    *logrus.Entry
}

// NewSessionStore builds the cookie codec. secure should be false only in
// local development.
func NewSessionStore(secure bool, logger *logrus.Logger) *SessionStore {
	return &SessionStore{
		secure: secure,
		log:    logger.WithField("component", "session_store"),
	}
}

// Create serializes the session into the cookie: HTTP-only, strict
// same-site, path /, 24h max-age. The JSON value is base64-encoded so it
// survives cookie value restrictions.
func (s *SessionStore) Create(c *gin.Context, sess *session.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	value := base64.RawURLEncoding.EncodeToString(raw)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, value, sessionCookieMaxAge, "/", "", s.secure, true)
	return nil
}

// Get returns the session carried by the request, or nil when the cookie
// is missing, malformed, or its embedded expiration has passed. Malformed
// and expired cookies are cleared as a side effect.
func (s *SessionStore) Get(c *gin.Context) *session.Session {
	value, err := c.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		s.log.WithError(err).Warn("failed to decode session cookie, clearing")
		s.Destroy(c)
		return nil
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.WithError(err).Warn("failed to parse session cookie, clearing")
		s.Destroy(c)
		return nil
	}

	if sess.Expired(time.Now()) {
		s.Destroy(c)
		return nil
	}
	return &sess
}

// Destroy clears the session cookie unconditionally.
func (s *SessionStore) Destroy(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.secure, true)
}

// IsAuthenticated reports whether the request carries a live session.
func (s *SessionStore) IsAuthenticated(c *gin.Context) bool {
	return s.Get(c) != nil
}
