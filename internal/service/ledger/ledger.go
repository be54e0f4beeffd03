package ledger

import (
	"fmt"

	"scratch_backend/internal/model"
)

const (
	// PityThreshold проигрышей подряд для гарантированного приза. Счетчик выше не растет
	PityThreshold = 10
	// PityReward размер гарантированного приза в токенах
	PityReward int64 = 500000
)

// Outcome итог игры, который применяется к аккаунту
type Outcome struct {
	IsWin         bool
	TotalTokens   int64
	SpecialPrizes int
}

// ApplyOutcome обновляет серию проигрышей и начисляет выигрыш.
// Вызывается внутри критической секции аккаунта вместе со списанием билета
func ApplyOutcome(acc *model.Account, out Outcome) {
	if out.IsWin {
		acc.ConsecutiveLosses = 0
	} else if acc.ConsecutiveLosses < PityThreshold {
		acc.ConsecutiveLosses++
	}
	acc.ClaimableTokens += out.TotalTokens
	acc.ClaimableSpecialPrizes += out.SpecialPrizes
}

// ClaimPity выдает гарантированный приз и сбрасывает серию
func ClaimPity(acc *model.Account) (int64, error) {
	if acc.ConsecutiveLosses < PityThreshold {
		return 0, fmt.Errorf("%w: %d of %d losses", model.ErrPityNotMet, acc.ConsecutiveLosses, PityThreshold)
	}
	acc.ClaimableTokens += PityReward
	acc.ConsecutiveLosses = 0
	return PityReward, nil
}

// DeductTicket списывает один билет класса
func DeductTicket(acc *model.Account, class model.TicketClass) error {
	if acc.Tickets[class] <= 0 {
		return fmt.Errorf("%w: %s", model.ErrInsufficientTickets, class)
	}
	acc.Tickets[class]--
	return nil
}

// CreditTickets зачисляет купленные билеты
func CreditTickets(acc *model.Account, class model.TicketClass, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", model.ErrInvalidInput)
	}
	if acc.Tickets == nil {
		acc.Tickets = make(map[model.TicketClass]int)
	}
	acc.Tickets[class] += quantity
	return nil
}
