package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/repository/account_repo"
	"scratch_backend/internal/repository/override_repo"
	"scratch_backend/internal/repository/stats_repo"
	"scratch_backend/internal/service"
	"scratch_backend/internal/service/ledger"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

const addr = "0xAbC0000000000000000000000000000000000001"

type fixture struct {
	serv     service.GameService
	accounts repository.AccountRepository
	override repository.OverrideRepository
	stats    *stats_repo.StatsRepo
	events   *events.Recorder
	catalogs catalog.Set
}

func newFixture(t *testing.T, rnd random.Source) *fixture {
	t.Helper()
	f := &fixture{
		accounts: account_repo.NewAccountRepository(),
		override: override_repo.NewOverrideRepository(),
		stats:    stats_repo.NewStatsRepository(0),
		events:   &events.Recorder{},
		catalogs: catalog.Default(),
	}
	f.serv = NewGameService(f.catalogs, rnd, f.accounts, f.override, f.stats, f.events)
	return f
}

func (f *fixture) credit(t *testing.T, class model.TicketClass, n int) {
	t.Helper()
	_, err := f.serv.CreditTickets(context.Background(), model.TicketCredit{Address: addr, Class: class, Quantity: n})
	require.NoError(t, err)
}

// Источник, при котором количество выигрышных ячеек всегда 0
func alwaysLose() random.Source {
	return &random.Scripted{Values: []int{0}}
}

func TestPlay_ValidatesInputBeforeTouchingState(t *testing.T) {
	f := newFixture(t, alwaysLose())
	ctx := context.Background()

	_, err := f.serv.Play(ctx, model.PlayRequest{Address: " ", Class: model.TicketStandard})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: "platinum"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPlay_InsufficientTickets(t *testing.T) {
	f := newFixture(t, alwaysLose())
	ctx := context.Background()

	_, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketPremium})
	require.ErrorIs(t, err, model.ErrInsufficientTickets)

	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Zero(t, acc.ConsecutiveLosses)
	assert.Empty(t, f.events.Events())
}

func TestPlay_LossDeductsTicketAndCountsStreak(t *testing.T) {
	f := newFixture(t, alwaysLose())
	f.credit(t, model.TicketStandard, 2)

	res, err := f.serv.Play(context.Background(), model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)

	assert.False(t, res.IsWin)
	assert.Zero(t, res.WinAmount)
	assert.False(t, res.WonSpecial)
	assert.Empty(t, res.WonTierIDs)
	assert.Equal(t, noPrizeText, res.PrizeName)
	assert.Equal(t, 1, res.RemainingTickets)
	assert.Equal(t, 1, res.ConsecutiveLosses)
	require.Len(t, res.Grid, catalog.GridSize)
	for _, cell := range res.Grid {
		assert.Contains(t, cell, "/No Prize")
	}

	assert.Len(t, f.events.OfType(events.TypePlay), 1)
	assert.Equal(t, int64(1), f.stats.Snapshot().Classes[model.TicketStandard].Plays)
}

func TestPlay_WinCreditsBalanceAndResetsStreak(t *testing.T) {
	// Проигрыш расходует 32 значения: количество выигрышей, 15 на перестановку, 16 на заглушки.
	// Второй билет: 7000 -> одна ячейка, 4999 -> пятый приз
	values := make([]int, 34)
	values[32], values[33] = 7000, 4999
	f := newFixture(t, &random.Scripted{Values: values})
	f.credit(t, model.TicketStandard, 2)
	ctx := context.Background()

	res, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)
	require.False(t, res.IsWin)
	require.Equal(t, 1, res.ConsecutiveLosses)

	res, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)
	assert.True(t, res.IsWin)
	assert.Equal(t, int64(50000), res.WinAmount)
	assert.Equal(t, int64(50000), res.ClaimableTokens)
	assert.Equal(t, []string{"fifth"}, res.WonTierIDs)
	assert.Equal(t, "50,000 tokens", res.PrizeName)
	assert.Zero(t, res.ConsecutiveLosses)
	assert.Zero(t, res.RemainingTickets)
}

// Сценарий: 10 проигрышей подряд, затем гарантированный приз
func TestPity_AfterTenLosses(t *testing.T) {
	f := newFixture(t, alwaysLose())
	f.credit(t, model.TicketStandard, 12)
	ctx := context.Background()

	for i := 1; i <= 9; i++ {
		res, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
		require.NoError(t, err)
		require.Equal(t, i, res.ConsecutiveLosses)
	}

	_, err := f.serv.ClaimPity(ctx, addr)
	require.ErrorIs(t, err, model.ErrPityNotMet)

	res, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)
	require.Equal(t, ledger.PityThreshold, res.ConsecutiveLosses)

	// Серия выше 10 не растет, гарантия остается
	res, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)
	require.Equal(t, ledger.PityThreshold, res.ConsecutiveLosses)

	pity, err := f.serv.ClaimPity(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, ledger.PityReward, pity.Granted)
	assert.Equal(t, ledger.PityReward, pity.ClaimableTokens)

	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Zero(t, acc.ConsecutiveLosses)
	assert.Equal(t, 1, acc.Tickets[model.TicketStandard])

	_, err = f.serv.ClaimPity(ctx, addr)
	assert.ErrorIs(t, err, model.ErrPityNotMet)
	assert.Len(t, f.events.OfType(events.TypePity), 1)
	assert.Equal(t, int64(1), f.stats.Snapshot().PityGrants)
}

func TestPity_ConcurrentClaimsGrantOnce(t *testing.T) {
	f := newFixture(t, alwaysLose())
	ctx := context.Background()
	_, err := f.accounts.Update(ctx, addr, func(acc *model.Account) error {
		acc.ConsecutiveLosses = ledger.PityThreshold
		return nil
	})
	require.NoError(t, err)

	granted := atomic.NewInt32(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.serv.ClaimPity(ctx, addr); err == nil {
				granted.Inc()
			} else {
				assert.ErrorIs(t, err, model.ErrPityNotMet)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), granted.Load())
	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, ledger.PityReward, acc.ClaimableTokens)
}

// Сценарий: флаг администратора дает спецприз ровно один раз и только премиум билету
func TestPlay_OverrideForcesSpecialPrizeOnce(t *testing.T) {
	f := newFixture(t, alwaysLose())
	f.credit(t, model.TicketStandard, 1)
	f.credit(t, model.TicketPremium, 2)
	ctx := context.Background()
	f.override.Set(true)

	res, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	require.NoError(t, err)
	assert.False(t, res.WonSpecial)
	assert.True(t, f.override.Peek())

	res, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketPremium})
	require.NoError(t, err)
	assert.True(t, res.WonSpecial)
	assert.Equal(t, 1, res.SpecialPrizes)
	assert.Equal(t, []string{"grand"}, res.WonTierIDs)
	assert.Equal(t, catalog.SpecialPrizeName, res.PrizeName)
	assert.False(t, f.override.Peek())

	premium := f.catalogs[model.TicketPremium]
	special, _ := premium.SpecialTier()
	specialCells := 0
	for _, cell := range res.Grid {
		if cell == premium.ImageRef(special.Image) {
			specialCells++
		}
	}
	assert.Equal(t, 1, specialCells)

	res, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketPremium})
	require.NoError(t, err)
	assert.False(t, res.WonSpecial)

	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, 1, acc.ClaimableSpecialPrizes)
}

// Хранилище, которое выполняет fn и затем не может сохранить результат
type failingCommit struct {
	repository.AccountRepository
}

func (r failingCommit) Update(ctx context.Context, address string, fn repository.AccountUpdateFunc) (model.Account, error) {
	acc, err := r.AccountRepository.Get(ctx, address)
	if err != nil {
		return model.Account{}, err
	}
	if err = fn(&acc); err != nil {
		return model.Account{}, err
	}
	return model.Account{}, errors.New("commit failed")
}

func TestPlay_OverrideRestoredWhenPlayNotSaved(t *testing.T) {
	f := newFixture(t, alwaysLose())
	f.credit(t, model.TicketPremium, 1)
	f.override.Set(true)
	f.serv = NewGameService(f.catalogs, alwaysLose(), failingCommit{f.accounts}, f.override, f.stats, f.events)

	_, err := f.serv.Play(context.Background(), model.PlayRequest{Address: addr, Class: model.TicketPremium})
	require.Error(t, err)
	assert.True(t, f.override.Peek())

	acc, err := f.accounts.Get(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, 1, acc.Tickets[model.TicketPremium])
	assert.Zero(t, acc.ClaimableSpecialPrizes)
}

func TestPlay_RejectedWhileSettlementInFlight(t *testing.T) {
	f := newFixture(t, alwaysLose())
	f.credit(t, model.TicketStandard, 1)
	ctx := context.Background()
	_, err := f.accounts.Update(ctx, addr, func(acc *model.Account) error {
		acc.SettlementInFlight = true
		acc.ConsecutiveLosses = ledger.PityThreshold
		return nil
	})
	require.NoError(t, err)

	_, err = f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard})
	assert.ErrorIs(t, err, model.ErrSettlementBusy)
	_, err = f.serv.ClaimPity(ctx, addr)
	assert.ErrorIs(t, err, model.ErrSettlementBusy)

	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, 1, acc.Tickets[model.TicketStandard])
	assert.Equal(t, ledger.PityThreshold, acc.ConsecutiveLosses)
}

func TestPlay_ConcurrentPlaysNeverOverspend(t *testing.T) {
	f := newFixture(t, random.Seeded(99))
	f.credit(t, model.TicketStandard, 20)
	ctx := context.Background()

	ok := atomic.NewInt32(0)
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.serv.Play(ctx, model.PlayRequest{Address: addr, Class: model.TicketStandard}); err == nil {
				ok.Inc()
			} else {
				assert.ErrorIs(t, err, model.ErrInsufficientTickets)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(20), ok.Load())
	acc, err := f.serv.AccountInfo(ctx, addr)
	require.NoError(t, err)
	assert.Zero(t, acc.Tickets[model.TicketStandard])
	assert.Equal(t, int64(20), f.stats.Snapshot().Classes[model.TicketStandard].Plays)
}

func TestCreditTickets(t *testing.T) {
	f := newFixture(t, alwaysLose())
	ctx := context.Background()

	acc, err := f.serv.CreditTickets(ctx, model.TicketCredit{Address: strings.ToUpper(addr), Class: model.TicketPremium, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, acc.Tickets[model.TicketPremium])

	_, err = f.serv.CreditTickets(ctx, model.TicketCredit{Address: addr, Class: model.TicketPremium})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = f.serv.CreditTickets(ctx, model.TicketCredit{Address: addr, Class: "x", Quantity: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
