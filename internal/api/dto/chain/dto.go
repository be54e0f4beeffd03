package chain

// ConfigResponse только публичные параметры, ключи сюда не попадают
type ConfigResponse struct {
	TokenContractAddress string `json:"tokenContractAddress"`
	ReceiveAddress       string `json:"receiveAddress"`
	BscChainIDHex        string `json:"bscChainIdHex"`
	BscChainIDDecimal    int64  `json:"bscChainIdDecimal"`
	BscRPCURL            string `json:"bscRpcUrl"`
	BscExplorerURL       string `json:"bscExplorerUrl"`
}
