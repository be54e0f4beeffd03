package settlement

type ClaimRequest struct {
	Address string `json:"address"`
}

type ClaimResponse struct {
	Success   bool   `json:"success"`
	Amount    int64  `json:"amount"`
	TxHash    string `json:"txHash"` // Идентификатор перевода в шлюзе
	SettledAt int64  `json:"settledAt"`
	Message   string `json:"message"`
}
