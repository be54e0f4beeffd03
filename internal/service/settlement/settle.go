package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scratch_backend/internal/metrics"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/logger"
	"scratch_backend/pkg/retry"

	"github.com/google/uuid"
)

const (
	resultConfirmed    = "confirmed"
	resultPending      = "pending"
	resultRejected     = "rejected"
	resultBusy         = "busy"
	resultNothing      = "nothing"
	resultUnconfigured = "unconfigured"

	ledgerWriteAttempts = 5
	ledgerWriteInterval = 100 * time.Millisecond
)

var errStillPending = errors.New("transfer still pending")

// Settle выплачивает весь накопленный баланс.
// Флаг settlementInFlight держится, пока исход перевода неизвестен
func (s *serv) Settle(ctx context.Context, address string) (*model.Receipt, error) {
	address = model.NormalizeAddress(address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}

	// Захват: выставляем флаг и запоминаем сумму, баланс пока не трогаем
	var amount int64
	_, err := s.accountRepo.Update(ctx, address, func(acc *model.Account) error {
		if acc.ClaimableTokens <= 0 {
			return model.ErrNothingToClaim
		}
		if acc.SettlementInFlight {
			return model.ErrSettlementBusy
		}
		acc.SettlementInFlight = true
		amount = acc.ClaimableTokens
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSettlementBusy):
			metrics.RecordSettlement(resultBusy, 0)
		case errors.Is(err, model.ErrNothingToClaim):
			metrics.RecordSettlement(resultNothing, 0)
		}
		return nil, err
	}

	start := time.Now()
	// Дальше выплата не должна зависеть от того, что клиент оборвал соединение
	ctx = context.WithoutCancel(ctx)
	log := logger.With("address", address, "amount", amount)

	if s.gateway == nil {
		s.release(ctx, address)
		metrics.RecordSettlement(resultUnconfigured, time.Since(start))
		log.Error("settlement attempted without payout gateway")
		return nil, model.ErrConfigurationMissing
	}

	req := model.TransferRequest{
		Reference: uuid.NewString(),
		To:        address,
		Amount:    amount,
	}
	log = log.With("reference", req.Reference)

	tr, err := s.transfer(ctx, req)
	if err != nil {
		s.release(ctx, address)
		metrics.RecordSettlement(resultRejected, time.Since(start))
		log.Error("payout failed, balance kept", "error", err)
		s.emit(address, req, model.Transfer{Status: model.TransferRejected, Reason: err.Error()})
		if errors.Is(err, model.ErrPayoutRejected) || errors.Is(err, model.ErrConfigurationMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", model.ErrPayoutRejected, err)
	}

	if tr.Status == model.TransferPending {
		resolved, err := s.await(ctx, tr.ID, s.cfg.ResolveTimeout)
		if err != nil {
			log.Warn("payout accepted but not confirmed yet, settlement stays locked", "transfer", tr.ID)
			metrics.RecordSettlement(resultPending, time.Since(start))
			s.resolveInBackground(address, req, tr.ID, start)
			return nil, fmt.Errorf("%w: transfer %s", model.ErrSettlementPending, tr.ID)
		}
		tr = resolved
	}

	return s.complete(ctx, address, req, tr, start)
}

// complete применяет окончательный статус перевода к аккаунту
func (s *serv) complete(ctx context.Context, address string, req model.TransferRequest, tr model.Transfer, start time.Time) (*model.Receipt, error) {
	log := logger.With("address", address, "amount", req.Amount, "reference", req.Reference, "transfer", tr.ID)
	s.emit(address, req, tr)

	if tr.Status != model.TransferConfirmed {
		s.release(ctx, address)
		metrics.RecordSettlement(resultRejected, time.Since(start))
		log.Error("payout rejected by gateway, balance kept", "reason", tr.Reason)
		return nil, fmt.Errorf("%w: %s", model.ErrPayoutRejected, tr.Reason)
	}

	s.finalize(ctx, address)
	metrics.RecordSettlement(resultConfirmed, time.Since(start))
	if s.statsRepo != nil {
		s.statsRepo.RecordSettlement(req.Amount)
	}
	log.Info("payout confirmed")

	return &model.Receipt{
		Address:    address,
		Amount:     req.Amount,
		TransferID: tr.ID,
		SettledAt:  time.Now().UTC(),
	}, nil
}

// transfer вызывает шлюз. Паника шлюза считается отказом
func (s *serv) transfer(ctx context.Context, req model.TransferRequest) (tr model.Transfer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: gateway panic: %v", model.ErrPayoutRejected, r)
		}
	}()
	return s.gateway.Transfer(ctx, req)
}

func (s *serv) status(ctx context.Context, id string) (tr model.Transfer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: gateway panic: %v", model.ErrPayoutRejected, r)
		}
	}()
	return s.gateway.Status(ctx, id)
}

// await опрашивает статус перевода, пока он не станет confirmed или rejected
func (s *serv) await(ctx context.Context, id string, timeout time.Duration) (model.Transfer, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var resolved model.Transfer
	err := retry.ExponentialContext(ctx, func() error {
		tr, err := s.status(ctx, id)
		if err != nil {
			return err
		}
		if tr.Status == model.TransferPending {
			return errStillPending
		}
		resolved = tr
		return nil
	}, retry.ExponentialConfig{
		InitialInterval: s.cfg.PollInterval,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  timeout,
	})
	if err != nil {
		return model.Transfer{}, err
	}
	if resolved.ID == "" {
		resolved.ID = id
	}
	return resolved, nil
}

func (s *serv) resolveInBackground(address string, req model.TransferRequest, id string, start time.Time) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		tr, err := s.await(s.bgCtx, id, s.cfg.BackgroundTimeout)
		if err != nil {
			logger.Error("payout outcome unknown, settlement lock kept for manual reconciliation",
				"address", address, "amount", req.Amount, "transfer", id, "error", err)
			return
		}
		_, _ = s.complete(context.Background(), address, req, tr, start)
	}()
}

// release снимает флаг и оставляет баланс
func (s *serv) release(ctx context.Context, address string) {
	s.writeLedger(ctx, address, "release", func(acc *model.Account) error {
		acc.SettlementInFlight = false
		return nil
	})
}

// finalize обнуляет баланс после подтвержденной выплаты и снимает флаг
func (s *serv) finalize(ctx context.Context, address string) {
	s.writeLedger(ctx, address, "finalize", func(acc *model.Account) error {
		acc.ClaimableTokens = 0
		acc.SettlementInFlight = false
		return nil
	})
}

func (s *serv) writeLedger(ctx context.Context, address, op string, fn func(acc *model.Account) error) {
	err := retry.Constant(func() error {
		_, err := s.accountRepo.Update(ctx, address, fn)
		return err
	}, ledgerWriteInterval, ledgerWriteAttempts)
	if err != nil {
		// Флаг остается выставленным: повторная выплата невозможна до ручной сверки
		logger.Error("failed to update ledger after payout", "op", op, "address", address, "error", err)
	}
}

func (s *serv) emit(address string, req model.TransferRequest, tr model.Transfer) {
	err := s.emitter.Emit(events.Event{
		Type:    events.TypeSettlement,
		Address: address,
		Data: map[string]any{
			"reference": req.Reference,
			"amount":    req.Amount,
			"transfer":  tr.ID,
			"status":    tr.Status,
			"reason":    tr.Reason,
		},
	})
	if err != nil {
		logger.Warn("failed to emit settlement event", "error", err)
	}
}
