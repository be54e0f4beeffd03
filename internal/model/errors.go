package model

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientTickets  = errors.New("no tickets available")
	ErrNothingToClaim       = errors.New("no reward to claim")
	ErrPityNotMet           = errors.New("pity condition not met")
	ErrSettlementBusy       = errors.New("settlement in progress")
	ErrSettlementPending    = errors.New("payout accepted, awaiting confirmation")
	ErrPayoutRejected       = errors.New("payout rejected")
	ErrConfigurationMissing = errors.New("payout not configured")
	ErrConfigurationError   = errors.New("catalog configuration error")
	ErrNoSpecialPrize       = errors.New("no special prize pending")
	ErrUnauthorized         = errors.New("unauthorized")
)
