package client

import (
	"context"

	"scratch_backend/internal/model"
)

// PayoutGateway внешний механизм перевода токенов
type PayoutGateway interface {
	// Transfer отправляет перевод. Статус pending значит, что шлюз принял перевод, но еще не подтвердил
	Transfer(ctx context.Context, req model.TransferRequest) (model.Transfer, error)
	// Status текущее состояние ранее принятого перевода
	Status(ctx context.Context, transferID string) (model.Transfer, error)
}
