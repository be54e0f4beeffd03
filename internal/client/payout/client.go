package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"scratch_backend/internal/client"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

type Config struct {
	URL           string
	APIKey        string
	TokenContract string
	Decimals      int32
	Timeout       time.Duration
	RPS           int
}

// Клиент JSON-RPC платежного шлюза
type gateway struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter

	mtx   sync.Mutex
	rpcID int64
}

func NewGateway(cfg Config) client.PayoutGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	return &gateway{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), cfg.RPS),
		rpcID:      1,
	}
}

// ToBaseUnits целое количество токенов в минимальные единицы (10^decimals)
func ToBaseUnits(amount int64, decimals int32) string {
	return decimal.NewFromInt(amount).Shift(decimals).String()
}

func (g *gateway) Transfer(ctx context.Context, req model.TransferRequest) (model.Transfer, error) {
	if req.Amount <= 0 {
		return model.Transfer{}, fmt.Errorf("%w: amount must be positive", model.ErrInvalidInput)
	}

	var res transferResult
	err := g.call(ctx, methodTransfer, transferParams{
		Reference: req.Reference,
		To:        req.To,
		Token:     g.cfg.TokenContract,
		Amount:    ToBaseUnits(req.Amount, g.cfg.Decimals),
	}, &res)
	if err != nil {
		return model.Transfer{}, err
	}
	return toTransfer(res, req.To, req.Amount)
}

func (g *gateway) Status(ctx context.Context, transferID string) (model.Transfer, error) {
	var res transferResult
	if err := g.call(ctx, methodStatus, statusParams{ID: transferID}, &res); err != nil {
		return model.Transfer{}, err
	}
	if res.ID == "" {
		res.ID = transferID
	}
	return toTransfer(res, "", 0)
}

func toTransfer(res transferResult, to string, amount int64) (model.Transfer, error) {
	status := model.TransferStatus(strings.ToLower(res.Status))
	switch status {
	case model.TransferConfirmed, model.TransferPending, model.TransferRejected:
	default:
		return model.Transfer{}, fmt.Errorf("%w: unknown transfer status %q", model.ErrPayoutRejected, res.Status)
	}
	if res.ID == "" && status != model.TransferRejected {
		return model.Transfer{}, fmt.Errorf("%w: gateway returned no transfer id", model.ErrPayoutRejected)
	}
	return model.Transfer{
		ID:     res.ID,
		To:     to,
		Amount: amount,
		Status: status,
		Reason: res.Reason,
	}, nil
}

// call выполняет один JSON-RPC вызов. Любая ошибка транспорта или шлюза - ErrPayoutRejected
func (g *gateway) call(ctx context.Context, method string, params, out any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit: %v", model.ErrPayoutRejected, err)
	}

	g.mtx.Lock()
	id := g.rpcID
	g.rpcID++
	g.mtx.Unlock()

	body, err := json.Marshal(rpcRequest{ID: id, JSONRPC: "2.0", Method: method, Params: params})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrConfigurationMissing, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrPayoutRejected, method, err)
	}
	defer resp.Body.Close()
	logger.Debug("payout gateway call", "method", method, "status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", model.ErrPayoutRejected, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d: %s", model.ErrPayoutRejected, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(data, &rpcResp); err != nil {
		return fmt.Errorf("%w: unmarshal RPC response: %v", model.ErrPayoutRejected, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%w: %w", model.ErrPayoutRejected, rpcResp.Error)
	}
	if err = json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%w: unmarshal result: %v", model.ErrPayoutRejected, err)
	}
	return nil
}
