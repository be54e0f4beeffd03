package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type AdminConfig interface {
	Username() string
	// Password bcrypt-хэш или открытый пароль
	Password() string
}

type PayoutConfig interface {
	URL() string
	APIKey() string
	Timeout() time.Duration
	ResolveTimeout() time.Duration
	TokenDecimals() int32
	RPS() int
}

// ChainConfig публичные параметры сети и токена, отдаются фронту как есть
type ChainConfig interface {
	TokenContractAddress() string
	ReceiveAddress() string
	ChainIDHex() string
	ChainIDDecimal() int64
	RPCURL() string
	ExplorerURL() string
}

type NATSConfig interface {
	URL() string
	SubjectPrefix() string
}

type StorageConfig interface {
	BadgerDir() string
	CatalogFile() string
}

type RateLimitConfig interface {
	RPS() float64
	Burst() int
}

type LogConfig interface {
	Level() string
}
