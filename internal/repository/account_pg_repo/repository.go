package account_pg_repo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"scratch_backend/internal/model"
	"scratch_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table                 = "scratch_accounts"
	colAddress            = "address"
	colTickets            = "tickets"
	colClaimableTokens    = "claimable_tokens"
	colClaimableSpecial   = "claimable_special"
	colConsecutiveLosses  = "consecutive_losses"
	colSettlementInFlight = "settlement_in_flight"
	colUpdatedAt          = "updated_at"
)

//go:embed schema.sql
var schema string

// Хранилище аккаунтов в Postgres. Критическая секция аккаунта - транзакция с SELECT ... FOR UPDATE
type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.AccountRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// EnsureSchema - создает таблицу аккаунтов, если ее нет
func EnsureSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// Get - снимок аккаунта, при первом обращении создает пустую запись
func (r *repo) Get(ctx context.Context, address string) (model.Account, error) {
	key := model.NormalizeAddress(address)
	if key == "" {
		return model.Account{}, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}

	var acc model.Account
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := r.create(txCtx, key); err != nil {
			return err
		}
		var err error
		acc, err = r.selectAccount(txCtx, key, false)
		return err
	})
	if err != nil {
		return model.Account{}, err
	}
	return acc, nil
}

// Update - блокирует строку аккаунта до конца транзакции, применяет fn и сохраняет результат.
// Ошибка fn откатывает транзакцию
func (r *repo) Update(ctx context.Context, address string, fn repository.AccountUpdateFunc) (model.Account, error) {
	key := model.NormalizeAddress(address)
	if key == "" {
		return model.Account{}, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}

	var acc model.Account
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := r.create(txCtx, key); err != nil {
			return err
		}

		current, err := r.selectAccount(txCtx, key, true)
		if err != nil {
			return err
		}
		acc = current

		next := current.Clone()
		if err = fn(&next); err != nil {
			return err
		}
		next.UpdatedAt = time.Now()

		if err = r.save(txCtx, next); err != nil {
			return err
		}
		acc = next
		return nil
	})
	if err != nil {
		return acc, err
	}
	return acc, nil
}

func (r *repo) create(ctx context.Context, address string) error {
	query := sq.Insert(table).
		Columns(colAddress).
		Values(address).
		Suffix("ON CONFLICT (" + colAddress + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) selectAccount(ctx context.Context, address string, forUpdate bool) (model.Account, error) {
	query := sq.Select(colAddress, colTickets, colClaimableTokens, colClaimableSpecial,
		colConsecutiveLosses, colSettlementInFlight, colUpdatedAt).
		From(table).
		Where(sq.Eq{colAddress: address}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.Account{}, err
	}

	acc := model.NewAccount(address)
	var tickets []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&acc.Address,
		&tickets,
		&acc.ClaimableTokens,
		&acc.ClaimableSpecialPrizes,
		&acc.ConsecutiveLosses,
		&acc.SettlementInFlight,
		&acc.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	stored := make(map[model.TicketClass]int)
	if err = json.Unmarshal(tickets, &stored); err != nil {
		return model.Account{}, fmt.Errorf("decode tickets of %s: %w", address, err)
	}
	for class, n := range stored {
		acc.Tickets[class] = n
	}
	return acc, nil
}

func (r *repo) save(ctx context.Context, acc model.Account) error {
	tickets, err := json.Marshal(acc.Tickets)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colTickets, tickets).
		Set(colClaimableTokens, acc.ClaimableTokens).
		Set(colClaimableSpecial, acc.ClaimableSpecialPrizes).
		Set(colConsecutiveLosses, acc.ConsecutiveLosses).
		Set(colSettlementInFlight, acc.SettlementInFlight).
		Set(colUpdatedAt, acc.UpdatedAt).
		Where(sq.Eq{colAddress: acc.Address}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
