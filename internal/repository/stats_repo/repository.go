package stats_repo

import (
	"sync"

	"scratch_backend/internal/model"
	repoModel "scratch_backend/internal/repository/stats_repo/model"
)

// DefaultWindowSize количество последних игр в окне
const DefaultWindowSize = 500

// StatsRepo статистика игр в памяти процесса
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.State
}

// NewStatsRepository windowSize <= 0 - окно по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.State{
			Classes:    make(map[string]*repoModel.ClassState),
			WindowSize: windowSize,
		},
	}
}

// Record Обновление статистики после игры
func (r *StatsRepo) Record(stat model.PlayStat) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	cs, ok := r.state.Classes[string(stat.Class)]
	if !ok {
		cs = &repoModel.ClassState{Window: make([]repoModel.PlayResult, 0, r.state.WindowSize)}
		r.state.Classes[string(stat.Class)] = cs
	}

	cs.Plays++
	if stat.Win {
		cs.Wins++
	}
	cs.TokensAwarded += stat.Tokens
	cs.SpecialPrizes += int64(stat.SpecialPrizes)

	// Поддерживаем размер окна
	cs.Window = append(cs.Window, repoModel.PlayResult{Win: stat.Win, Tokens: stat.Tokens})
	if len(cs.Window) > r.state.WindowSize {
		cs.Window = cs.Window[len(cs.Window)-r.state.WindowSize:]
	}
}

func (r *StatsRepo) RecordPity(amount int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.PityGrants++
	r.state.PityTokens += amount
}

func (r *StatsRepo) RecordSettlement(amount int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.Settlements++
	r.state.TokensPaid += amount
}

// Snapshot Копия статистики с пересчитанными показателями окна
func (r *StatsRepo) Snapshot() model.PlayStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := model.PlayStats{
		Classes:     make(map[model.TicketClass]model.ClassStats, len(r.state.Classes)),
		PityGrants:  r.state.PityGrants,
		PityTokens:  r.state.PityTokens,
		Settlements: r.state.Settlements,
		TokensPaid:  r.state.TokensPaid,
	}
	for class, cs := range r.state.Classes {
		stats := model.ClassStats{
			Plays:         cs.Plays,
			Wins:          cs.Wins,
			TokensAwarded: cs.TokensAwarded,
			SpecialPrizes: cs.SpecialPrizes,
		}
		if n := len(cs.Window); n > 0 {
			var wins, tokens int64
			for _, p := range cs.Window {
				if p.Win {
					wins++
				}
				tokens += p.Tokens
			}
			stats.WindowWinRate = float64(wins) / float64(n)
			stats.WindowAvgWin = float64(tokens) / float64(n)
		}
		res.Classes[model.TicketClass(class)] = stats
	}
	return res
}
