package model

import "time"

// FulfillmentKind способ получения специального приза
type FulfillmentKind string

const (
	FulfillmentShipping FulfillmentKind = "shipping" // Физическая доставка
	FulfillmentExchange FulfillmentKind = "exchange" // Обмен на криптовалюту
)

// FulfillmentRequest заявка на получение специального приза
type FulfillmentRequest struct {
	Address         string
	Kind            FulfillmentKind
	Name            string
	Phone           string
	ShippingAddress string
	ExchangeAddress string
}

// FulfillmentClaim сохраненная заявка
type FulfillmentClaim struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	Address         string          `json:"address"`
	Kind            FulfillmentKind `json:"kind"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	ShippingAddress string          `json:"shipping_address"`
	ExchangeAddress string          `json:"exchange_address"`
}
