package env

import (
	"errors"

	"scratch_backend/internal/config"
)

const (
	adminUserEnvName = "ADMIN_USER"
	adminPassEnvName = "ADMIN_PASS"
)

type adminConfig struct {
	username string
	password string
}

func NewAdminConfig() (config.AdminConfig, error) {
	password := getString(adminPassEnvName, "")
	if password == "" {
		return nil, errors.New("admin password not found")
	}
	return &adminConfig{
		username: getString(adminUserEnvName, "admin"),
		password: password,
	}, nil
}

func (cfg *adminConfig) Username() string {
	return cfg.username
}

func (cfg *adminConfig) Password() string {
	return cfg.password
}
