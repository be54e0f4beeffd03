package chain

import (
	"net/http"

	dto "scratch_backend/internal/api/dto/chain"
	"scratch_backend/internal/config"
	"scratch_backend/pkg/resp"
)

type HandlerDeps struct {
	Cfg config.ChainConfig
}

type Handler struct {
	cfg config.ChainConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{cfg: deps.Cfg}
}

// Config публичные параметры сети для кошелька на фронте
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.ConfigResponse{
		TokenContractAddress: h.cfg.TokenContractAddress(),
		ReceiveAddress:       h.cfg.ReceiveAddress(),
		BscChainIDHex:        h.cfg.ChainIDHex(),
		BscChainIDDecimal:    h.cfg.ChainIDDecimal(),
		BscRPCURL:            h.cfg.RPCURL(),
		BscExplorerURL:       h.cfg.ExplorerURL(),
	})
}
