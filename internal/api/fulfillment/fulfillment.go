package fulfillment

import (
	"net/http"

	dto "scratch_backend/internal/api/dto/fulfillment"
	"scratch_backend/internal/api/httperr"
	"scratch_backend/internal/converter"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/req"
	"scratch_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.FulfillmentService
}

type Handler struct {
	serv service.FulfillmentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Submit принимает адрес доставки или обмена для специального приза
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SubmitRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	claim, err := h.serv.Submit(r.Context(), converter.ToFulfillmentRequest(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSubmitResponse(*claim))
}
