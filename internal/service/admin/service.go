package admin

import (
	"context"
	"crypto/subtle"
	"fmt"

	"scratch_backend/internal/config"
	"scratch_backend/internal/model"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/logger"
	"scratch_backend/pkg/pass"
	"scratch_backend/pkg/token"
)

type serv struct {
	username     string
	passwordHash string
	jwtConfig    config.JWTConfig
	overrideRepo repository.OverrideRepository
	statsRepo    repository.StatsRepository
}

// NewAdminService пароль из конфига может быть bcrypt-хэшем или открытым текстом.
// Открытый пароль хэшируется один раз при старте
func NewAdminService(
	adminConfig config.AdminConfig,
	jwtConfig config.JWTConfig,
	overrideRepo repository.OverrideRepository,
	statsRepo repository.StatsRepository,
) (service.AdminService, error) {
	hash := adminConfig.Password()
	if !pass.IsHash(hash) {
		var err error
		hash, err = pass.HashPassword(hash)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	return &serv{
		username:     adminConfig.Username(),
		passwordHash: hash,
		jwtConfig:    jwtConfig,
		overrideRepo: overrideRepo,
		statsRepo:    statsRepo,
	}, nil
}

// Login проверяет учетные данные оператора и выдает access токен
func (s *serv) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// Хэш сверяется и при неверном логине
	passOK := pass.VerifyPassword(s.passwordHash, password)
	if !userOK || !passOK {
		logger.Warn("admin login failed", "username", username)
		return "", fmt.Errorf("%w: invalid credentials", model.ErrUnauthorized)
	}

	return token.GenerateAccessToken(
		s.username,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration(),
	)
}

func (s *serv) SetOverride(ctx context.Context, enabled bool) bool {
	s.overrideRepo.Set(enabled)
	logger.Info("admin override changed", "enabled", enabled)
	return s.overrideRepo.Peek()
}

func (s *serv) OverrideStatus(ctx context.Context) bool {
	return s.overrideRepo.Peek()
}

func (s *serv) Stats(ctx context.Context) model.PlayStats {
	if s.statsRepo == nil {
		return model.PlayStats{Classes: map[model.TicketClass]model.ClassStats{}}
	}
	return s.statsRepo.Snapshot()
}
