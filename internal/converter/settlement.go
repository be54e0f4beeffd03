package converter

import (
	"fmt"

	"scratch_backend/internal/api/dto/settlement"
	"scratch_backend/internal/model"
)

func ToClaimResponse(receipt model.Receipt) settlement.ClaimResponse {
	return settlement.ClaimResponse{
		Success:   true,
		Amount:    receipt.Amount,
		TxHash:    receipt.TransferID,
		SettledAt: receipt.SettledAt.Unix(),
		Message:   fmt.Sprintf("sent %d tokens to %s", receipt.Amount, receipt.Address),
	}
}
