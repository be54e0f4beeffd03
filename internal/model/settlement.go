package model

import "time"

// TransferStatus состояние перевода на стороне платежного шлюза
type TransferStatus string

const (
	TransferConfirmed TransferStatus = "confirmed"
	TransferPending   TransferStatus = "pending"
	TransferRejected  TransferStatus = "rejected"
)

// TransferRequest заявка на перевод. Reference уникален для каждой попытки выплаты
type TransferRequest struct {
	Reference string
	To        string
	Amount    int64
}

// Transfer перевод токенов во внешнем шлюзе
type Transfer struct {
	ID     string
	To     string
	Amount int64
	Status TransferStatus
	Reason string
}

// Receipt квитанция об успешной выплате
type Receipt struct {
	Address    string
	Amount     int64
	TransferID string
	SettledAt  time.Time
}
