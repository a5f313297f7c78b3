package signedquery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to every environment variable read by
// ConfigFromEnv.
const envPrefix = "PAYSIGN_"

// Config holds the settings needed to build a SignedQuery.
type Config struct {
	// SecretKey is the private API key used as the HMAC key.
	SecretKey string `yaml:"secret_key" env:"SECRET_KEY"`

	// AutoStamp adds a nonce and timestamp at signing time when missing.
	AutoStamp bool `yaml:"auto_stamp" env:"AUTO_STAMP"`
}

// LoadConfig reads a YAML configuration file. Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return cfg, nil
}

// ConfigFromEnv reads PAYSIGN_SECRET_KEY and PAYSIGN_AUTO_STAMP. Any dotenv
// files given are loaded first; they never override variables already set
// in the environment.
func ConfigFromEnv(files ...string) (Config, error) {
	var cfg Config

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// NewFromConfig returns an empty SignedQuery built from cfg. opts are
// applied after the settings taken from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*SignedQuery, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithAutoStamp(cfg.AutoStamp))
	all = append(all, opts...)

	return New([]byte(cfg.SecretKey), all...)
}
