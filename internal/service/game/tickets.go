package game

import (
	"context"
	"fmt"

	"scratch_backend/internal/model"
	"scratch_backend/internal/service/ledger"
	"scratch_backend/pkg/logger"
)

// CreditTickets зачисляет билеты после внешнего подтверждения оплаты.
// Платеж здесь не проверяется, вызывающая сторона доверенная
func (s *serv) CreditTickets(ctx context.Context, credit model.TicketCredit) (model.Account, error) {
	address := model.NormalizeAddress(credit.Address)
	if address == "" {
		return model.Account{}, fmt.Errorf("%w: address is required", model.ErrInvalidInput)
	}
	if _, err := s.catalogs.Get(credit.Class); err != nil {
		return model.Account{}, err
	}

	acc, err := s.accountRepo.Update(ctx, address, func(acc *model.Account) error {
		return ledger.CreditTickets(acc, credit.Class, credit.Quantity)
	})
	if err != nil {
		return model.Account{}, err
	}

	logger.Info("tickets credited",
		"address", address,
		"class", credit.Class,
		"quantity", credit.Quantity,
		"tx", credit.TxHash,
		"balance", acc.Tickets[credit.Class],
	)
	return acc, nil
}

// AccountInfo снимок аккаунта
func (s *serv) AccountInfo(ctx context.Context, address string) (model.Account, error) {
	return s.accountRepo.Get(ctx, address)
}
