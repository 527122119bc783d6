package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

// SessionTTL is the validity window of an issued session token.
const SessionTTL = 30 * 24 * time.Hour

// SessionService mints HS256 session tokens and reconstitutes sessions from
// them. It holds no state beyond the server secret, so any number of requests
// can resolve concurrently.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the authenticated identity into a signed, time-bound token.
func (s *SessionService) Issue(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   identity.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Resolve verifies signature and expiry, then hydrates a Session from the
// claims. Malformed, expired and tampered tokens all come back as
// domain.ErrInvalidSession; Resolve never panics on hostile input.
func (s *SessionService) Resolve(token string) (*domain.Session, error) {
	claims, err := s.decode(token)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	return hydrate(claims)
}

// decode is the pure token stage: parse and verify, no session semantics.
func (s *SessionService) decode(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}
	return claims, nil
}

// hydrate is the session stage: attach the claims to a typed Session.
func hydrate(claims *jwt.RegisteredClaims) (*domain.Session, error) {
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidSession
	}

	session := &domain.Session{
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}
