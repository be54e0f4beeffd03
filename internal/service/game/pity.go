package game

import (
	"context"
	"fmt"

	"scratch_backend/internal/metrics"
	"scratch_backend/internal/model"
	"scratch_backend/internal/service/ledger"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/logger"
)

// ClaimPity выдает гарантированный приз после серии проигрышей.
// Проверка серии и сброс атомарны, поэтому одну серию нельзя обменять дважды
func (s *serv) ClaimPity(ctx context.Context, address string) (*model.PityResult, error) {
	address = model.NormalizeAddress(address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}

	var granted int64
	acc, err := s.accountRepo.Update(ctx, address, func(acc *model.Account) error {
		if acc.SettlementInFlight {
			return model.ErrSettlementBusy
		}
		var err error
		granted, err = ledger.ClaimPity(acc)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPityGrant()
	if s.statsRepo != nil {
		s.statsRepo.RecordPity(granted)
	}
	logger.Info("pity reward granted", "address", address, "tokens", granted, "claimable", acc.ClaimableTokens)
	if err = s.emitter.Emit(events.Event{
		Type:    events.TypePity,
		Address: address,
		Data:    map[string]int64{"tokens": granted},
	}); err != nil {
		logger.Warn("failed to emit pity event", "error", err)
	}

	return &model.PityResult{
		Granted:         granted,
		ClaimableTokens: acc.ClaimableTokens,
	}, nil
}
