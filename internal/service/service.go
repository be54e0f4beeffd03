package service

import (
	"context"

	"scratch_backend/internal/model"
)

type GameService interface {
	Play(ctx context.Context, req model.PlayRequest) (*model.PlayResult, error)
	ClaimPity(ctx context.Context, address string) (*model.PityResult, error)
	CreditTickets(ctx context.Context, credit model.TicketCredit) (model.Account, error)
	AccountInfo(ctx context.Context, address string) (model.Account, error)
}

type SettlementService interface {
	Settle(ctx context.Context, address string) (*model.Receipt, error)
	// Close дожидается фоновых проверок принятых шлюзом переводов
	Close()
}

type FulfillmentService interface {
	Submit(ctx context.Context, req model.FulfillmentRequest) (*model.FulfillmentClaim, error)
	List(ctx context.Context, limit int) ([]model.FulfillmentClaim, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	SetOverride(ctx context.Context, enabled bool) bool
	OverrideStatus(ctx context.Context) bool
	Stats(ctx context.Context) model.PlayStats
}
