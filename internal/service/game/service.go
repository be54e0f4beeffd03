package game

import (
	"scratch_backend/internal/catalog"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/service"
	"scratch_backend/internal/service/draw"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/random"
)

type serv struct {
	catalogs     catalog.Set
	engine       *draw.Engine
	rnd          random.Source
	accountRepo  repository.AccountRepository
	overrideRepo repository.OverrideRepository
	statsRepo    repository.StatsRepository
	emitter      events.Emitter
}

// NewGameService игра в билеты 4x4. rnd общий для розыгрыша и раскладки
func NewGameService(
	catalogs catalog.Set,
	rnd random.Source,
	accountRepo repository.AccountRepository,
	overrideRepo repository.OverrideRepository,
	statsRepo repository.StatsRepository,
	emitter events.Emitter,
) service.GameService {
	if emitter == nil {
		emitter = events.Nop()
	}
	rnd = random.Locked(rnd)
	return &serv{
		catalogs:     catalogs,
		engine:       draw.NewEngine(catalogs, rnd),
		rnd:          rnd,
		accountRepo:  accountRepo,
		overrideRepo: overrideRepo,
		statsRepo:    statsRepo,
		emitter:      emitter,
	}
}
