package repository

import (
	"context"

	"scratch_backend/internal/model"
)

// AccountUpdateFunc изменяет аккаунт внутри критической секции.
// Если функция вернула ошибку, изменения не сохраняются
type AccountUpdateFunc func(acc *model.Account) error

type AccountRepository interface {
	// Get возвращает снимок аккаунта, при первом обращении аккаунт создается
	Get(ctx context.Context, address string) (model.Account, error)
	// Update выполняет fn под блокировкой аккаунта и возвращает сохраненное состояние
	Update(ctx context.Context, address string, fn AccountUpdateFunc) (model.Account, error)
}

type OverrideRepository interface {
	Set(enabled bool)
	Peek() bool
	// Consume атомарно переводит флаг true -> false
	Consume() bool
}

type ClaimRepository interface {
	Save(ctx context.Context, claim model.FulfillmentClaim) error
	// List последние заявки, новые первыми. limit <= 0 - все
	List(ctx context.Context, limit int) ([]model.FulfillmentClaim, error)
}

type StatsRepository interface {
	Record(stat model.PlayStat)
	RecordPity(amount int64)
	RecordSettlement(amount int64)
	Snapshot() model.PlayStats
}
