package game

import (
	"context"
	"fmt"

	"scratch_backend/internal/metrics"
	"scratch_backend/internal/model"
	"scratch_backend/internal/service/draw"
	"scratch_backend/internal/service/grid"
	"scratch_backend/internal/service/ledger"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/logger"
)

// Play вскрывает один билет: списание, розыгрыш, раскладка и начисление
// выполняются в одной критической секции аккаунта
func (s *serv) Play(ctx context.Context, req model.PlayRequest) (*model.PlayResult, error) {
	address := model.NormalizeAddress(req.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}
	cat, err := s.catalogs.Get(req.Class)
	if err != nil {
		return nil, err
	}

	var override draw.Override
	if s.overrideRepo != nil {
		override = s.overrideRepo
	}

	var (
		drawn draw.Result
		cells []string
	)
	acc, err := s.accountRepo.Update(ctx, address, func(acc *model.Account) error {
		if acc.SettlementInFlight {
			return model.ErrSettlementBusy
		}
		if err := ledger.DeductTicket(acc, req.Class); err != nil {
			return err
		}

		var err error
		drawn, err = s.engine.Draw(req.Class, override)
		if err != nil {
			return err
		}
		cells, err = grid.Compose(s.rnd, cat, drawn.Tiers)
		if err != nil {
			return err
		}

		ledger.ApplyOutcome(acc, ledger.Outcome{
			IsWin:         drawn.IsWin(),
			TotalTokens:   drawn.TotalTokens,
			SpecialPrizes: drawn.SpecialPrizes,
		})
		return nil
	})
	if err != nil {
		if drawn.OverrideConsumed {
			// розыгрыш не сохранен, флаг возвращается
			s.overrideRepo.Set(true)
			logger.Warn("play not saved, override restored", "address", address, "error", err)
		}
		return nil, err
	}

	if drawn.ConfigErr != nil {
		logger.Error("catalog configuration error, fell back to normal draw", "class", req.Class, "error", drawn.ConfigErr)
	}
	if drawn.OverrideConsumed {
		metrics.RecordOverrideConsumed()
		logger.Info("admin override consumed", "address", address, "class", req.Class)
	}

	res := &model.PlayResult{
		Grid:              cells,
		IsWin:             drawn.IsWin(),
		WinAmount:         drawn.TotalTokens,
		WonSpecial:        drawn.SpecialPrizes > 0,
		SpecialPrizes:     drawn.SpecialPrizes,
		WonTierIDs:        drawn.TierIDs(),
		PrizeName:         describe(drawn),
		RemainingTickets:  acc.Tickets[req.Class],
		ClaimableTokens:   acc.ClaimableTokens,
		ConsecutiveLosses: acc.ConsecutiveLosses,
	}

	s.recordPlay(address, req.Class, res)
	return res, nil
}

func (s *serv) recordPlay(address string, class model.TicketClass, res *model.PlayResult) {
	metrics.RecordPlay(string(class), res.IsWin, res.WinAmount, res.SpecialPrizes)
	if s.statsRepo != nil {
		s.statsRepo.Record(model.PlayStat{
			Class:         class,
			Win:           res.IsWin,
			Tokens:        res.WinAmount,
			SpecialPrizes: res.SpecialPrizes,
		})
	}

	logger.Info("ticket played",
		"address", address,
		"class", class,
		"win", res.IsWin,
		"tokens", res.WinAmount,
		"special", res.SpecialPrizes,
		"losses", res.ConsecutiveLosses,
	)

	err := s.emitter.Emit(events.Event{
		Type:    events.TypePlay,
		Address: address,
		Data: map[string]any{
			"class":   class,
			"win":     res.IsWin,
			"tokens":  res.WinAmount,
			"special": res.SpecialPrizes,
			"tiers":   res.WonTierIDs,
		},
	})
	if err != nil {
		logger.Warn("failed to emit play event", "error", err)
	}
}
