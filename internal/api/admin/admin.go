package admin

import (
	"net/http"
	"strconv"

	dto "scratch_backend/internal/api/dto/admin"
	"scratch_backend/internal/api/httperr"
	"scratch_backend/internal/service"
	"scratch_backend/pkg/req"
	"scratch_backend/pkg/resp"
)

const (
	defaultClaimsLimit = 100
	maxClaimsLimit     = 1000
)

type HandlerDeps struct {
	Serv            service.AdminService
	FulfillmentServ service.FulfillmentService
}

type Handler struct {
	serv            service.AdminService
	fulfillmentServ service.FulfillmentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, fulfillmentServ: deps.FulfillmentServ}
}

// Login выдает access токен оператора
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	accessToken, err := h.serv.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Success:     true,
		AccessToken: accessToken,
	})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{
		NextGoldBeanTrigger: h.serv.OverrideStatus(r.Context()),
	})
}

// Override включает или выключает принудительный спецприз на следующем премиум билете
func (h *Handler) Override(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OverrideRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.OverrideResponse{
		Success:             true,
		NextGoldBeanTrigger: h.serv.SetOverride(r.Context(), payload.Enable),
	})
}

// Claims история заявок на спецпризы, новые первыми. ?limit=N
func (h *Handler) Claims(w http.ResponseWriter, r *http.Request) {
	limit := defaultClaimsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			resp.WriteJSONError(w, http.StatusBadRequest, "invalid_input", "limit must be a positive integer")
			return
		}
		limit = min(n, maxClaimsLimit)
	}

	claims, err := h.fulfillmentServ.List(r.Context(), limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ClaimsResponse{Claims: claims})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, h.serv.Stats(r.Context()))
}
