package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: storefront
  debug: true
  log:
    pretty: false
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
postgres:
  host: localhost
  port: 5432
  user: storefront
  password: secret
  dbname: storefront
  sslmode: disable
  maxOpenConns: 10
  maxIdleConns: 5
  connMaxLifetime: 30m
auth:
  jwtSecret: test-secret
  tokenTTL: 1h
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FromFile(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_JWTSECRET", "override-secret")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "override-secret", cfg.Auth.JWTSecret)

	// Values without an override keep their file values.
	assert.Equal(t, "storefront", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nope")
	assert.Error(t, err)
}
