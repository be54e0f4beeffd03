package override_repo

import (
	"scratch_backend/internal/repository"

	"go.uber.org/atomic"
)

// Одноразовый флаг принудительного спецприза
type repo struct {
	flag *atomic.Bool
}

func NewOverrideRepository() repository.OverrideRepository {
	return &repo{
		flag: atomic.NewBool(false),
	}
}

func (r *repo) Set(enabled bool) {
	r.flag.Store(enabled)
}

func (r *repo) Peek() bool {
	return r.flag.Load()
}

// Consume - только один из конкурентных вызовов получит true
func (r *repo) Consume() bool {
	return r.flag.CompareAndSwap(true, false)
}
