package fulfillment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scratch_backend/internal/metrics"
	"scratch_backend/internal/model"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/logger"

	"github.com/google/uuid"
)

type serv struct {
	accountRepo repository.AccountRepository
	claimRepo   repository.ClaimRepository
	emitter     events.Emitter
	now         func() time.Time
}

func NewFulfillmentService(
	accountRepo repository.AccountRepository,
	claimRepo repository.ClaimRepository,
	emitter events.Emitter,
) service.FulfillmentService {
	if emitter == nil {
		emitter = events.Nop()
	}
	return &serv{
		accountRepo: accountRepo,
		claimRepo:   claimRepo,
		emitter:     emitter,
		now:         time.Now,
	}
}

func validate(req model.FulfillmentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}
	switch req.Kind {
	case model.FulfillmentShipping:
		if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.ShippingAddress) == "" {
			return fmt.Errorf("%w: phone and shipping address are required", model.ErrInvalidInput)
		}
	case model.FulfillmentExchange:
		if strings.TrimSpace(req.ExchangeAddress) == "" {
			return fmt.Errorf("%w: exchange address is required", model.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown fulfillment type %q", model.ErrInvalidInput, req.Kind)
	}
	return nil
}

// Submit принимает заявку на спецприз. Приз списывается до записи заявки,
// если заявка не сохранилась, приз возвращается на аккаунт
func (s *serv) Submit(ctx context.Context, req model.FulfillmentRequest) (*model.FulfillmentClaim, error) {
	address := model.NormalizeAddress(req.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	claim := model.FulfillmentClaim{
		ID:              uuid.NewString(),
		Address:         address,
		Kind:            req.Kind,
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		ExchangeAddress: strings.TrimSpace(req.ExchangeAddress),
	}

	acc, err := s.accountRepo.Update(ctx, address, func(acc *model.Account) error {
		if acc.ClaimableSpecialPrizes <= 0 {
			return model.ErrNoSpecialPrize
		}
		acc.ClaimableSpecialPrizes--
		return nil
	})
	if err != nil {
		return nil, err
	}

	claim.CreatedAt = s.now().UTC()
	if err = s.claimRepo.Save(ctx, claim); err != nil {
		s.refund(address, claim.ID)
		return nil, fmt.Errorf("save claim: %w", err)
	}

	metrics.RecordFulfillment(string(claim.Kind))
	logger.Info("special prize claim submitted",
		"address", address,
		"kind", claim.Kind,
		"claim", claim.ID,
		"remaining", acc.ClaimableSpecialPrizes,
	)
	if err = s.emitter.Emit(events.Event{
		Type:    events.TypeFulfillment,
		Address: address,
		Data:    map[string]any{"claim": claim.ID, "kind": claim.Kind},
	}); err != nil {
		logger.Warn("failed to emit fulfillment event", "error", err)
	}

	return &claim, nil
}

// refund возвращает списанный спецприз. Контекст запроса мог быть уже отменен
func (s *serv) refund(address, claimID string) {
	_, err := s.accountRepo.Update(context.Background(), address, func(acc *model.Account) error {
		acc.ClaimableSpecialPrizes++
		return nil
	})
	if err != nil {
		logger.Error("failed to refund special prize", "address", address, "claim", claimID, "error", err)
		return
	}
	logger.Warn("special prize refunded, claim not saved", "address", address, "claim", claimID)
}

// List история заявок, новые первыми
func (s *serv) List(ctx context.Context, limit int) ([]model.FulfillmentClaim, error) {
	return s.claimRepo.List(ctx, limit)
}
