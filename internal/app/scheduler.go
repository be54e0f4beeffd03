package app

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"scratch_backend/internal/api/middleware"
	"scratch_backend/internal/repository/stats_repo"
	"scratch_backend/pkg/logger"
)

const (
	limiterCleanupEvery = 5 * time.Minute
	limiterMaxIdle      = 10 * time.Minute
	statsLogEvery       = time.Minute
)

// newScheduler фоновые задачи: чистка лимитера клиентов и строка статистики в лог
func newScheduler(limiter *middleware.RateLimiter, stats *stats_repo.StatsRepo) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(limiterCleanupEvery),
		gocron.NewTask(func() {
			if removed := limiter.Cleanup(limiterMaxIdle); removed > 0 {
				logger.Debug("rate limiter cleanup", "removed", removed, "tracked", limiter.Size())
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(statsLogEvery),
		gocron.NewTask(func() {
			snap := stats.Snapshot()
			for class, cs := range snap.Classes {
				logger.Info("play stats",
					"class", class,
					"plays", cs.Plays,
					"wins", cs.Wins,
					"tokens_awarded", cs.TokensAwarded,
					"special_prizes", cs.SpecialPrizes,
					"window_win_rate", cs.WindowWinRate,
					"window_avg_win", cs.WindowAvgWin,
				)
			}
			if snap.PityGrants > 0 || snap.Settlements > 0 {
				logger.Info("payout stats",
					"pity_grants", snap.PityGrants,
					"pity_tokens", snap.PityTokens,
					"settlements", snap.Settlements,
					"tokens_paid", snap.TokensPaid,
				)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
