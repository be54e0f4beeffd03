package fulfillment

type ShippingInfo struct {
	Type            string `json:"type"` // shipping | exchange
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ExchangeAddress string `json:"exchangeAddress"`
}

type SubmitRequest struct {
	Address      string       `json:"address"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	ClaimID string `json:"claimId"`
	Message string `json:"message"`
}
