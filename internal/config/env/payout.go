package env

import (
	"errors"
	"fmt"
	"time"

	"scratch_backend/internal/config"
)

const (
	payoutURLEnvName            = "PAYOUT_GATEWAY_URL"
	payoutAPIKeyEnvName         = "PAYOUT_API_KEY"
	payoutTimeoutEnvName        = "PAYOUT_TIMEOUT"
	payoutResolveTimeoutEnvName = "PAYOUT_RESOLVE_TIMEOUT"
	tokenDecimalsEnvName        = "TOKEN_DECIMALS"
	payoutRPSEnvName            = "PAYOUT_RPS"
)

// ErrPayoutNotConfigured PAYOUT_GATEWAY_URL не задан, выплаты отклоняются
var ErrPayoutNotConfigured = errors.New("payout gateway url not found")

type payoutConfig struct {
	url            string
	apiKey         string
	timeout        time.Duration
	resolveTimeout time.Duration
	decimals       int32
	rps            int
}

func NewPayoutConfig() (config.PayoutConfig, error) {
	url := getString(payoutURLEnvName, "")
	if url == "" {
		return nil, ErrPayoutNotConfigured
	}

	timeout, err := getDuration(payoutTimeoutEnvName, 30*time.Second)
	if err != nil {
		return nil, err
	}
	resolveTimeout, err := getDuration(payoutResolveTimeoutEnvName, 10*time.Second)
	if err != nil {
		return nil, err
	}
	decimals, err := getInt(tokenDecimalsEnvName, 18)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals > 36 {
		return nil, fmt.Errorf("%s out of range: %d", tokenDecimalsEnvName, decimals)
	}
	rps, err := getInt(payoutRPSEnvName, 5)
	if err != nil {
		return nil, err
	}

	return &payoutConfig{
		url:            url,
		apiKey:         getString(payoutAPIKeyEnvName, ""),
		timeout:        timeout,
		resolveTimeout: resolveTimeout,
		decimals:       int32(decimals),
		rps:            rps,
	}, nil
}

func (cfg *payoutConfig) URL() string                   { return cfg.url }
func (cfg *payoutConfig) APIKey() string                { return cfg.apiKey }
func (cfg *payoutConfig) Timeout() time.Duration        { return cfg.timeout }
func (cfg *payoutConfig) ResolveTimeout() time.Duration { return cfg.resolveTimeout }
func (cfg *payoutConfig) TokenDecimals() int32          { return cfg.decimals }
func (cfg *payoutConfig) RPS() int                      { return cfg.rps }
