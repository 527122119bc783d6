package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=reelhub"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig selects and configures the upload-authorization provider.
// Provider "imagekit" signs tickets locally with MediaPrivateKey; "s3"
// presigns PUT URLs against the configured bucket.
type MediaConfig struct {
	Provider   string `env:"MEDIA_PROVIDER, default=imagekit"`
	PrivateKey string `env:"MEDIA_PRIVATE_KEY"`
	PublicKey  string `env:"MEDIA_PUBLIC_KEY"`

	S3Region    string `env:"MEDIA_S3_REGION, default=us-east-1"`
	S3Bucket    string `env:"MEDIA_S3_BUCKET"`
	S3AccessKey string `env:"MEDIA_S3_ACCESS_KEY"`
	S3SecretKey string `env:"MEDIA_S3_SECRET_KEY"`
	S3Endpoint  string `env:"MEDIA_S3_ENDPOINT"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate checks the invariants that must hold before the server starts.
// A missing JWT secret makes every session operation impossible, so it is a
// fatal startup condition rather than a per-request error.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	switch c.Media.Provider {
	case "imagekit":
		if c.Media.PrivateKey == "" {
			return errors.New("MEDIA_PRIVATE_KEY must be set for the imagekit provider")
		}
	case "s3":
		if c.Media.S3Bucket == "" {
			return errors.New("MEDIA_S3_BUCKET must be set for the s3 provider")
		}
	default:
		return fmt.Errorf("unknown MEDIA_PROVIDER %q", c.Media.Provider)
	}
	return nil
}
