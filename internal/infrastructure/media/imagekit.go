// Package media implements the upload-authorization providers. The client
// uploads files straight to the provider; this API only hands out the
// short-lived ticket that authorizes the transfer.
package media

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// defaultTicketTTL matches the provider's maximum accepted expiry window.
const defaultTicketTTL = 30 * time.Minute

// SignatureProvider issues ImageKit-style upload tickets: a one-time token,
// a unix expiry, and signature = HMAC-SHA1(token + expire, private key).
// The signature scheme is the provider's documented wire contract, so it is
// computed here rather than delegated to a token library.
type SignatureProvider struct {
	privateKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewSignatureProvider(privateKey string, ttl time.Duration) *SignatureProvider {
	if ttl <= 0 {
		ttl = defaultTicketTTL
	}
	return &SignatureProvider{
		privateKey: []byte(privateKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// IssueTicket mints a fresh ticket. Each call produces a new token, so a
// ticket authorizes exactly one upload attempt.
func (p *SignatureProvider) IssueTicket(_ context.Context) (*ports.UploadTicket, error) {
	token := uuid.NewString()
	expire := p.now().Add(p.ttl).Unix()

	mac := hmac.New(sha1.New, p.privateKey)
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &ports.UploadTicket{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}
