package env

import (
	"scratch_backend/internal/config"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level string
}

func NewLogConfig() (config.LogConfig, error) {
	return &logConfig{level: getString(logLevelEnvName, "info")}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
