package domain

import (
	"errors"
	"time"
)

// ErrInvalidSession covers every token defect: malformed, expired, or a
// signature that does not verify. Callers treat it as "not authenticated".
var ErrInvalidSession = errors.New("invalid session")

// Session is the per-request proof of prior authentication, reconstituted
// from the token the client presents. It is never persisted server-side.
type Session struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Active reports whether the session window covers the given instant.
func (s Session) Active(at time.Time) bool {
	return !at.Before(s.IssuedAt) && at.Before(s.ExpiresAt)
}
