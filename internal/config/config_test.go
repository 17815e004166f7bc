package config

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("NEO4J_URI", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load(quietLogger())

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jURI)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.NotEmpty(t, cfg.JWTSecret, "a missing secret must be replaced, never left blank")
	assert.False(t, cfg.SeedSampleData)
	assert.False(t, cfg.ServeStatic)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")
	t.Setenv("JWT_SECRET_KEY", "fixed-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "120")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SEED_SAMPLE_DATA", "true")
	t.Setenv("SERVE_STATIC", "true")

	cfg := Load(quietLogger())

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4jURI)
	assert.Equal(t, "fixed-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.SeedSampleData)
	assert.True(t, cfg.ServeStatic)
}

func TestLoadIgnoresInvalidTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "fixed-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := Load(quietLogger())

	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
