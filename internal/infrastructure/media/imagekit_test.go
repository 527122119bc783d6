package media

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"
)

func TestSignatureProvider_TicketVerifies(t *testing.T) {
	p := NewSignatureProvider("private-key", 30*time.Minute)

	ticket, err := p.IssueTicket(context.Background())
	if err != nil {
		t.Fatalf("IssueTicket returned error: %v", err)
	}

	if ticket.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if ticket.UploadURL != "" {
		t.Fatalf("signature provider must not presign a URL")
	}

	// The signature must be HMAC-SHA1(token + expire, key), hex-encoded.
	mac := hmac.New(sha1.New, []byte("private-key"))
	mac.Write([]byte(ticket.Token + strconv.FormatInt(ticket.Expire, 10)))
	want := hex.EncodeToString(mac.Sum(nil))
	if ticket.Signature != want {
		t.Fatalf("signature mismatch: got %s, want %s", ticket.Signature, want)
	}
}

func TestSignatureProvider_ExpiryWindow(t *testing.T) {
	p := NewSignatureProvider("private-key", 10*time.Minute)
	issued := time.Now()

	ticket, err := p.IssueTicket(context.Background())
	if err != nil {
		t.Fatalf("IssueTicket returned error: %v", err)
	}

	expire := time.Unix(ticket.Expire, 0)
	if expire.Before(issued) {
		t.Fatalf("ticket already expired at issuance")
	}
	if expire.After(issued.Add(11 * time.Minute)) {
		t.Fatalf("expiry beyond configured window: %v", expire)
	}
}

func TestSignatureProvider_TokensAreUnique(t *testing.T) {
	p := NewSignatureProvider("private-key", 0)

	first, err := p.IssueTicket(context.Background())
	if err != nil {
		t.Fatalf("IssueTicket returned error: %v", err)
	}
	second, err := p.IssueTicket(context.Background())
	if err != nil {
		t.Fatalf("IssueTicket returned error: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("two tickets share a token")
	}
}
