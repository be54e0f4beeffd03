package env

import (
	"scratch_backend/internal/config"
)

const (
	tokenContractEnvName  = "TOKEN_CONTRACT_ADDRESS"
	receiveAddressEnvName = "RECEIVE_ADDRESS"
	chainIDHexEnvName     = "BSC_CHAIN_ID_HEX"
	chainIDDecEnvName     = "BSC_CHAIN_ID_DECIMAL"
	rpcURLEnvName         = "BSC_RPC_URL"
	explorerURLEnvName    = "BSC_EXPLORER_URL"
)

type chainConfig struct {
	tokenContract  string
	receiveAddress string
	chainIDHex     string
	chainIDDecimal int64
	rpcURL         string
	explorerURL    string
}

// NewChainConfig все значения необязательные, пустые отдаются фронту как есть
func NewChainConfig() (config.ChainConfig, error) {
	chainID, err := getInt(chainIDDecEnvName, 0)
	if err != nil {
		return nil, err
	}
	return &chainConfig{
		tokenContract:  getString(tokenContractEnvName, ""),
		receiveAddress: getString(receiveAddressEnvName, ""),
		chainIDHex:     getString(chainIDHexEnvName, ""),
		chainIDDecimal: int64(chainID),
		rpcURL:         getString(rpcURLEnvName, ""),
		explorerURL:    getString(explorerURLEnvName, ""),
	}, nil
}

func (cfg *chainConfig) TokenContractAddress() string { return cfg.tokenContract }
func (cfg *chainConfig) ReceiveAddress() string       { return cfg.receiveAddress }
func (cfg *chainConfig) ChainIDHex() string           { return cfg.chainIDHex }
func (cfg *chainConfig) ChainIDDecimal() int64        { return cfg.chainIDDecimal }
func (cfg *chainConfig) RPCURL() string               { return cfg.rpcURL }
func (cfg *chainConfig) ExplorerURL() string          { return cfg.explorerURL }
