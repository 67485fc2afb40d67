package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR"      envDefault:":8080"`
	Environment   string `env:"ENVIRONMENT"    envDefault:"development"`
	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"campushubx"`

	Token TokenConfig
}

// TokenConfig holds JWT validation configuration.
type TokenConfig struct {
	AccessTokenSecret string `env:"JWT_ACCESS_TOKEN_SECRET"`
	Issuer            string `env:"JWT_ISSUER"   envDefault:"campushubx"`
	Audience          string `env:"JWT_AUDIENCE" envDefault:"campushubx"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("missing MONGO_DATABASE environment variable")
	}
	if c.Token.AccessTokenSecret == "" {
		return fmt.Errorf("missing JWT_ACCESS_TOKEN_SECRET environment variable")
	}

	return nil
}
