package ports

import "context"

// UploadTicket authorizes one direct-to-provider upload. Token identifies the
// request, Expire is a unix timestamp, and Signature is the provider-specific
// proof. UploadURL is set by providers that presign a destination (S3); the
// signature-based provider leaves it empty and the client uses its SDK default.
type UploadTicket struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	UploadURL string `json:"upload_url,omitempty"`
}

// UploadService issues short-lived tickets that let the client upload a file
// straight to the media provider without routing bytes through this API.
type UploadService interface {
	IssueTicket(ctx context.Context) (*UploadTicket, error)
}
