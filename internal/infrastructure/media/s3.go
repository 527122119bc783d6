package media

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// S3Config holds the settings for the S3-compatible media bucket. BaseEndpoint
// is optional and allows pointing at MinIO or another compatible store.
type S3Config struct {
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	TicketTTL    time.Duration
}

// S3Provider issues upload tickets as presigned PUT URLs. The presigned URL
// carries its own signature, so the ticket's Signature field stays empty and
// the client PUTs the file directly to UploadURL.
type S3Provider struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewS3Provider(ctx context.Context, cfg S3Config) (*S3Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, &domain.UpstreamError{Category: domain.UpstreamInvalidRequest, Err: err}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
	})

	ttl := cfg.TicketTTL
	if ttl <= 0 {
		ttl = defaultTicketTTL
	}
	return &S3Provider{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

// IssueTicket presigns a PUT for a fresh object key under uploads/.
func (p *S3Provider) IssueTicket(ctx context.Context) (*ports.UploadTicket, error) {
	key := storageKey()

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return nil, &domain.UpstreamError{Category: domain.UpstreamServerError, Err: err}
	}

	return &ports.UploadTicket{
		Token:     key,
		Expire:    time.Now().Add(p.ttl).Unix(),
		UploadURL: req.URL,
	}, nil
}

// storageKey partitions objects by date so buckets stay browsable.
func storageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}
