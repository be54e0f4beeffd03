package converter

import (
	"testing"
	"time"

	"scratch_backend/internal/api/dto/fulfillment"
	"scratch_backend/internal/api/dto/game"
	"scratch_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestToTicketCreditDefaults(t *testing.T) {
	credit := ToTicketCredit(game.VerifyPaymentRequest{Address: "0xA", Type: "金色刮刮乐"})
	assert.Equal(t, model.TicketPremium, credit.Class)
	assert.Equal(t, 1, credit.Quantity)

	credit = ToTicketCredit(game.VerifyPaymentRequest{Address: "0xA", Type: "mystery", Quantity: 3})
	assert.Equal(t, model.TicketStandard, credit.Class)
	assert.Equal(t, 3, credit.Quantity)
}

func TestToPlayRequestKeepsUnknownClass(t *testing.T) {
	assert.Equal(t, model.TicketStandard, ToPlayRequest(game.PlayRequest{Type: "colorful"}).Class)
	assert.Equal(t, model.TicketClass("mystery"), ToPlayRequest(game.PlayRequest{Type: "mystery"}).Class)
}

func TestToUserInfoResponse(t *testing.T) {
	acc := model.NewAccount("0xa")
	acc.Tickets[model.TicketPremium] = 2
	acc.ConsecutiveLosses = 10
	acc.ClaimableTokens = 700

	res := ToUserInfoResponse(acc)
	assert.Equal(t, map[string]int{"standard": 0, "premium": 2}, res.Tickets)
	assert.True(t, res.PityAvailable)
	assert.Equal(t, int64(700), res.PendingReward)
}

func TestFulfillmentConversion(t *testing.T) {
	req := ToFulfillmentRequest(fulfillment.SubmitRequest{
		Address: "0xa",
		ShippingInfo: fulfillment.ShippingInfo{
			Type:    " Shipping ",
			Name:    "Li",
			Phone:   "123",
			Address: "Road 1",
		},
	})
	assert.Equal(t, model.FulfillmentShipping, req.Kind)
	assert.Equal(t, "Road 1", req.ShippingAddress)

	res := ToSubmitResponse(model.FulfillmentClaim{ID: "c1", Kind: model.FulfillmentExchange, CreatedAt: time.Now()})
	assert.Equal(t, "c1", res.ClaimID)
	assert.Contains(t, res.Message, "exchange")
}
