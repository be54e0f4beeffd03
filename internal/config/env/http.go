package env

import (
	"net"
	"strings"

	"scratch_backend/internal/config"
)

const (
	httpHostEnvName    = "HTTP_HOST"
	httpPortEnvName    = "HTTP_PORT"
	corsOriginsEnvName = "CORS_ORIGINS"
)

type httpConfig struct {
	host    string
	port    string
	origins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	origins := make([]string, 0)
	for _, o := range strings.Split(getString(corsOriginsEnvName, "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &httpConfig{
		host:    getString(httpHostEnvName, ""),
		port:    getString(httpPortEnvName, "3000"),
		origins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.origins
}
