package payout

import (
	"encoding/json"
	"fmt"
)

const (
	methodTransfer = "payout_transfer"
	methodStatus   = "payout_status"
)

type rpcRequest struct {
	ID      int64  `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	ID      any             `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError ошибка, которую вернул шлюз
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

type transferParams struct {
	Reference string `json:"reference"`
	To        string `json:"to"`
	Token     string `json:"token,omitempty"`
	Amount    string `json:"amount"` // В минимальных единицах токена
}

type statusParams struct {
	ID string `json:"id"`
}

type transferResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
