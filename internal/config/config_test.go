package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_TOKEN_SECRET", "secret")

		cfg := New(&logger)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "campushubx", cfg.MongoDatabase)
		assert.Equal(t, "campushubx", cfg.Token.Issuer)
		assert.Equal(t, "campushubx", cfg.Token.Audience)
	})

	t.Run("reads the token audience and issuer independently", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("JWT_ISSUER", "auth.campushubx.example")
		t.Setenv("JWT_AUDIENCE", "api.campushubx.example")

		cfg := New(&logger)
		assert.Equal(t, "auth.campushubx.example", cfg.Token.Issuer)
		assert.Equal(t, "api.campushubx.example", cfg.Token.Audience)
	})
}
