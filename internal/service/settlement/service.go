package settlement

import (
	"context"
	"sync"
	"time"

	"scratch_backend/internal/client"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/events"
)

type Config struct {
	// ResolveTimeout сколько запрос ждет подтверждения перевода, принятого шлюзом
	ResolveTimeout time.Duration
	// PollInterval начальный интервал опроса статуса перевода
	PollInterval time.Duration
	// BackgroundTimeout сколько фоновая проверка опрашивает шлюз, прежде чем сдаться
	BackgroundTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.ResolveTimeout <= 0 {
		c.ResolveTimeout = 10 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.BackgroundTimeout <= 0 {
		c.BackgroundTimeout = 15 * time.Minute
	}
	return c
}

type serv struct {
	cfg         Config
	gateway     client.PayoutGateway
	accountRepo repository.AccountRepository
	statsRepo   repository.StatsRepository
	emitter     events.Emitter

	// Фоновые проверки переводов в статусе pending
	bgCtx    context.Context
	bgCancel context.CancelFunc
	wg       sync.WaitGroup
}

// NewSettlementService gateway может быть nil, тогда каждая выплата завершается ErrConfigurationMissing
func NewSettlementService(
	cfg Config,
	gateway client.PayoutGateway,
	accountRepo repository.AccountRepository,
	statsRepo repository.StatsRepository,
	emitter events.Emitter,
) service.SettlementService {
	if emitter == nil {
		emitter = events.Nop()
	}
	bgCtx, bgCancel := context.WithCancel(context.Background())
	return &serv{
		cfg:         cfg.withDefaults(),
		gateway:     gateway,
		accountRepo: accountRepo,
		statsRepo:   statsRepo,
		emitter:     emitter,
		bgCtx:       bgCtx,
		bgCancel:    bgCancel,
	}
}

// Close останавливает фоновые проверки. Блокировки неразрешенных выплат остаются выставленными
func (s *serv) Close() {
	s.bgCancel()
	s.wg.Wait()
}
