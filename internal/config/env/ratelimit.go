package env

import (
	"fmt"

	"scratch_backend/internal/config"
)

const (
	rateLimitRPSEnvName   = "RATE_LIMIT_RPS"
	rateLimitBurstEnvName = "RATE_LIMIT_BURST"
)

type rateLimitConfig struct {
	rps   float64
	burst int
}

func NewRateLimitConfig() (config.RateLimitConfig, error) {
	rps, err := getFloat(rateLimitRPSEnvName, 5)
	if err != nil {
		return nil, err
	}
	burst, err := getInt(rateLimitBurstEnvName, 10)
	if err != nil {
		return nil, err
	}
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rate limit must be positive: rps=%v burst=%d", rps, burst)
	}
	return &rateLimitConfig{rps: rps, burst: burst}, nil
}

func (cfg *rateLimitConfig) RPS() float64 { return cfg.rps }
func (cfg *rateLimitConfig) Burst() int   { return cfg.burst }
