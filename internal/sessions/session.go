package sessions

import "time"

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// DefaultTTL is how long an admin login stays valid.
const DefaultTTL = 12 * time.Hour

// Session is one admin login: a random 256-bit token and its expiry.
// The cookie carries the token plus an HMAC signature; only the token
// is stored server-side.
type Session struct {
	Token     string    `json:"token" bson:"_id"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
