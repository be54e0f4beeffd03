package game

import (
	"fmt"
	"net/http"
	"strings"

	dto "scratch_backend/internal/api/dto/game"
	"scratch_backend/internal/api/httperr"
	"scratch_backend/internal/converter"
	"scratch_backend/internal/model"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/req"
	"scratch_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play списывает билет и вскрывает его
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToPlayRequest(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(*result))
}

func (h *Handler) ClaimPity(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ClaimPityRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	result, err := h.serv.ClaimPity(r.Context(), payload.Address)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	msg := fmt.Sprintf("guarantee reward granted: %d tokens added to the claimable balance", result.Granted)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPityResponse(*result, msg))
}

// VerifyPayment зачисляет купленные билеты. Транзакция в сети не проверяется
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyPaymentRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}
	if strings.TrimSpace(payload.Address) == "" || strings.TrimSpace(payload.Type) == "" {
		httperr.Write(w, fmt.Errorf("%w: address and type are required", model.ErrInvalidInput))
		return
	}

	acc, err := h.serv.CreditTickets(r.Context(), converter.ToTicketCredit(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.VerifyPaymentResponse{
		Success: true,
		Tickets: converter.ToTickets(acc.Tickets),
	})
}

func (h *Handler) UserInfo(w http.ResponseWriter, r *http.Request) {
	acc, err := h.serv.AccountInfo(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserInfoResponse(acc))
}
