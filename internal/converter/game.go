package converter

import (
	"strings"

	"scratch_backend/internal/api/dto/game"
	"scratch_backend/internal/model"
	"scratch_backend/internal/service/ledger"
)

// ToPlayRequest неизвестный класс передается как есть, сервис вернет ErrInvalidInput
func ToPlayRequest(req game.PlayRequest) model.PlayRequest {
	class, ok := model.ParseTicketClass(req.Type)
	if !ok {
		class = model.TicketClass(strings.TrimSpace(req.Type))
	}
	return model.PlayRequest{
		Address: req.Address,
		Class:   class,
	}
}

func ToPlayResponse(res model.PlayResult) game.PlayResponse {
	return game.PlayResponse{
		Success:            true,
		Grid:               res.Grid,
		IsWin:              res.IsWin,
		WinAmount:          res.WinAmount,
		WonGold:            res.WonSpecial,
		PrizeName:          res.PrizeName,
		RemainingTickets:   res.RemainingTickets,
		TotalPendingReward: res.ClaimableTokens,
		ConsecutiveLosses:  res.ConsecutiveLosses,
	}
}

// ToTicketCredit для покупки неизвестный класс зачисляется как стандартный
func ToTicketCredit(req game.VerifyPaymentRequest) model.TicketCredit {
	class, ok := model.ParseTicketClass(req.Type)
	if !ok {
		class = model.TicketStandard
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return model.TicketCredit{
		Address:  req.Address,
		Class:    class,
		Quantity: quantity,
		TxHash:   req.TxHash,
	}
}

func ToPityResponse(res model.PityResult, message string) game.ClaimPityResponse {
	return game.ClaimPityResponse{
		Success:          true,
		Granted:          res.Granted,
		NewPendingReward: res.ClaimableTokens,
		Message:          message,
	}
}

func ToTickets(tickets map[model.TicketClass]int) map[string]int {
	res := make(map[string]int, len(tickets))
	for class, n := range tickets {
		res[string(class)] = n
	}
	return res
}

func ToUserInfoResponse(acc model.Account) game.UserInfoResponse {
	return game.UserInfoResponse{
		Address:           acc.Address,
		Tickets:           ToTickets(acc.Tickets),
		PendingReward:     acc.ClaimableTokens,
		PendingGoldBeans:  acc.ClaimableSpecialPrizes,
		ConsecutiveLosses: acc.ConsecutiveLosses,
		IsClaiming:        acc.SettlementInFlight,
		PityAvailable:     acc.ConsecutiveLosses >= ledger.PityThreshold,
	}
}
