package env

import (
	"errors"

	"scratch_backend/internal/config"
)

const (
	natsURLEnvName     = "NATS_URL"
	natsSubjectEnvName = "NATS_SUBJECT"
)

// ErrNATSNotConfigured NATS_URL не задан, события не публикуются
var ErrNATSNotConfigured = errors.New("nats url not found")

type natsConfig struct {
	url     string
	subject string
}

func NewNATSConfig() (config.NATSConfig, error) {
	url := getString(natsURLEnvName, "")
	if url == "" {
		return nil, ErrNATSNotConfigured
	}
	return &natsConfig{
		url:     url,
		subject: getString(natsSubjectEnvName, "scratch"),
	}, nil
}

func (cfg *natsConfig) URL() string           { return cfg.url }
func (cfg *natsConfig) SubjectPrefix() string { return cfg.subject }
