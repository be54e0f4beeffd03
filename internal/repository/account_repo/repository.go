package account_repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scratch_backend/internal/model"
	"scratch_backend/internal/repository"
)

type entry struct {
	mtx sync.Mutex
	acc model.Account
}

// Хранилище аккаунтов в памяти процесса. Блокировка на каждый аккаунт,
// разные аккаунты обрабатываются параллельно
type repo struct {
	mtx      sync.RWMutex
	accounts map[string]*entry
	now      func() time.Time
}

func NewAccountRepository() repository.AccountRepository {
	return &repo{
		accounts: make(map[string]*entry),
		now:      time.Now,
	}
}

// Get - снимок аккаунта
func (r *repo) Get(ctx context.Context, address string) (model.Account, error) {
	e, err := r.entry(address)
	if err != nil {
		return model.Account{}, err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.acc.Clone(), nil
}

// Update - изменяет копию аккаунта и сохраняет ее, только если fn вернула nil
func (r *repo) Update(ctx context.Context, address string, fn repository.AccountUpdateFunc) (model.Account, error) {
	e, err := r.entry(address)
	if err != nil {
		return model.Account{}, err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	if err = ctx.Err(); err != nil {
		return model.Account{}, err
	}

	acc := e.acc.Clone()
	if err = fn(&acc); err != nil {
		return e.acc.Clone(), err
	}
	acc.UpdatedAt = r.now()
	e.acc = acc
	return acc.Clone(), nil
}

// Ленивое создание записи аккаунта
func (r *repo) entry(address string) (*entry, error) {
	key := model.NormalizeAddress(address)
	if key == "" {
		return nil, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}

	r.mtx.RLock()
	e, ok := r.accounts[key]
	r.mtx.RUnlock()
	if ok {
		return e, nil
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	if e, ok = r.accounts[key]; ok {
		return e, nil
	}
	e = &entry{acc: model.NewAccount(key)}
	e.acc.UpdatedAt = r.now()
	r.accounts[key] = e
	return e, nil
}
