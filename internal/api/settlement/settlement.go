package settlement

import (
	"net/http"

	dto "scratch_backend/internal/api/dto/settlement"
	"scratch_backend/internal/api/httperr"
	"scratch_backend/internal/converter"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/req"
	"scratch_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SettlementService
}

type Handler struct {
	serv service.SettlementService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Claim выводит весь накопленный баланс токенов.
// Перевод, принятый шлюзом но еще не подтвержденный, отвечает 202 settlement_pending
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ClaimRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	receipt, err := h.serv.Settle(r.Context(), payload.Address)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*receipt))
}
