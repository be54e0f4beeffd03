package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPConfigDefaults(t *testing.T) {
	t.Setenv(httpHostEnvName, "")
	t.Setenv(httpPortEnvName, "")
	t.Setenv(corsOriginsEnvName, "https://a.example, https://b.example,")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Address())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestPGConfigOptional(t *testing.T) {
	t.Setenv(dsnName, "")
	_, err := NewPGConfig()
	assert.ErrorIs(t, err, ErrPGNotConfigured)

	t.Setenv(dsnName, "postgres://localhost/scratch")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/scratch", cfg.DSN())
}

func TestJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
	assert.Equal(t, defaultAccessTokenDuration, cfg.AccessTokenDuration())

	t.Setenv(accessTokenDurationEnvName, "soon")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestAdminConfig(t *testing.T) {
	t.Setenv(adminUserEnvName, "")
	t.Setenv(adminPassEnvName, "")
	_, err := NewAdminConfig()
	assert.Error(t, err)

	t.Setenv(adminPassEnvName, "hunter2")
	cfg, err := NewAdminConfig()
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Username())
	assert.Equal(t, "hunter2", cfg.Password())
}

func TestPayoutConfig(t *testing.T) {
	t.Setenv(payoutURLEnvName, "")
	_, err := NewPayoutConfig()
	assert.ErrorIs(t, err, ErrPayoutNotConfigured)

	t.Setenv(payoutURLEnvName, "http://gateway:8545")
	t.Setenv(payoutTimeoutEnvName, "5s")
	t.Setenv(payoutResolveTimeoutEnvName, "")
	t.Setenv(tokenDecimalsEnvName, "")
	t.Setenv(payoutRPSEnvName, "")
	cfg, err := NewPayoutConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, 10*time.Second, cfg.ResolveTimeout())
	assert.Equal(t, int32(18), cfg.TokenDecimals())
	assert.Equal(t, 5, cfg.RPS())

	t.Setenv(tokenDecimalsEnvName, "99")
	_, err = NewPayoutConfig()
	assert.Error(t, err)
}

func TestChainConfig(t *testing.T) {
	t.Setenv(chainIDDecEnvName, "56")
	t.Setenv(chainIDHexEnvName, "0x38")
	cfg, err := NewChainConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(56), cfg.ChainIDDecimal())
	assert.Equal(t, "0x38", cfg.ChainIDHex())

	t.Setenv(chainIDDecEnvName, "bsc")
	_, err = NewChainConfig()
	assert.Error(t, err)
}

func TestRateLimitConfig(t *testing.T) {
	t.Setenv(rateLimitRPSEnvName, "")
	t.Setenv(rateLimitBurstEnvName, "")
	cfg, err := NewRateLimitConfig()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.RPS())
	assert.Equal(t, 10, cfg.Burst())

	t.Setenv(rateLimitBurstEnvName, "0")
	_, err = NewRateLimitConfig()
	assert.Error(t, err)
}

func TestStorageConfig(t *testing.T) {
	t.Setenv(badgerDirEnvName, "")
	t.Setenv(catalogFileEnvName, "")
	cfg, err := NewStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, "data/claims", cfg.BadgerDir())
	assert.Equal(t, "catalog.yaml", cfg.CatalogFile())

	t.Setenv(badgerDirEnvName, "memory")
	cfg, err = NewStorageConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.BadgerDir())
}
