package httperr

import (
	"errors"
	"net/http"

	"scratch_backend/internal/model"
	"scratch_backend/pkg/logger"
	"scratch_backend/pkg/resp"
)

type mapping struct {
	err    error
	status int
	code   string
}

// Порядок важен: ErrPayoutRejected может оборачивать другие ошибки шлюза
var mappings = []mapping{
	{model.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{model.ErrInsufficientTickets, http.StatusBadRequest, "insufficient_tickets"},
	{model.ErrNothingToClaim, http.StatusBadRequest, "nothing_to_claim"},
	{model.ErrPityNotMet, http.StatusBadRequest, "pity_not_met"},
	{model.ErrNoSpecialPrize, http.StatusBadRequest, "no_special_prize"},
	{model.ErrSettlementBusy, http.StatusTooManyRequests, "settlement_busy"},
	{model.ErrSettlementPending, http.StatusAccepted, "settlement_pending"},
	{model.ErrConfigurationMissing, http.StatusServiceUnavailable, "configuration_missing"},
	{model.ErrPayoutRejected, http.StatusBadGateway, "payout_rejected"},
	{model.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
}

// Classify статус и код ответа для ошибки сервиса
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// Write пишет ошибку сервиса. Внутренние ошибки не раскрываются клиенту
func Write(w http.ResponseWriter, err error) {
	status, code := Classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		msg = "internal error"
	}
	resp.WriteJSONError(w, status, code, msg)
}

// BadRequest ошибка разбора тела запроса
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteJSONError(w, http.StatusBadRequest, "invalid_input", err.Error())
}
