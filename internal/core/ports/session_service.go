package ports

import "github.com/reelhub/reelhub-api/internal/core/domain"

// SessionService mints and resolves session tokens. It is stateless aside
// from reading the server secret: Issue encodes the identity into a signed,
// time-bound token and Resolve reconstitutes a Session from it on every
// request. Resolve returns domain.ErrInvalidSession for any defective token.
type SessionService interface {
	Issue(identity domain.Identity) (string, error)
	Resolve(token string) (*domain.Session, error)
}
