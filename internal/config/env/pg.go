package env

import (
	"errors"

	"scratch_backend/internal/config"
)

const (
	dsnName = "PG_DSN"
)

// ErrPGNotConfigured PG_DSN не задан, аккаунты хранятся в памяти
var ErrPGNotConfigured = errors.New("pg dsn not found")

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := getString(dsnName, "")
	if len(dsn) == 0 {
		return nil, ErrPGNotConfigured
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
