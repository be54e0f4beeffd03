package converter

import (
	"strings"

	"scratch_backend/internal/api/dto/fulfillment"
	"scratch_backend/internal/model"
)

func ToFulfillmentRequest(req fulfillment.SubmitRequest) model.FulfillmentRequest {
	info := req.ShippingInfo
	return model.FulfillmentRequest{
		Address:         req.Address,
		Kind:            model.FulfillmentKind(strings.ToLower(strings.TrimSpace(info.Type))),
		Name:            info.Name,
		Phone:           info.Phone,
		ShippingAddress: info.Address,
		ExchangeAddress: info.ExchangeAddress,
	}
}

func ToSubmitResponse(claim model.FulfillmentClaim) fulfillment.SubmitResponse {
	msg := "shipping address received, the prize will be sent soon"
	if claim.Kind == model.FulfillmentExchange {
		msg = "exchange request received, it will be processed soon"
	}
	return fulfillment.SubmitResponse{
		Success: true,
		ClaimID: claim.ID,
		Message: msg,
	}
}
