package game

type PlayRequest struct {
	Address string `json:"address"`
	Type    string `json:"type"` // standard | premium, старые названия тоже принимаются
}

type PlayResponse struct {
	Success            bool     `json:"success"`
	Grid               []string `json:"grid"`               // 16 ссылок на картинки, построчно
	IsWin              bool     `json:"isWin"`              // Хотя бы одна выигрышная ячейка
	WinAmount          int64    `json:"winAmount"`          // Токенов за билет
	WonGold            bool     `json:"wonGold"`            // Выигран специальный приз
	PrizeName          string   `json:"prizeName"`          // Описание выигрыша
	RemainingTickets   int      `json:"remainingTickets"`   // Остаток билетов этого класса
	TotalPendingReward int64    `json:"totalPendingReward"` // Баланс к выводу
	ConsecutiveLosses  int      `json:"consecutiveLosses"`  // Серия проигрышей
}

type ClaimPityRequest struct {
	Address string `json:"address"`
}

type ClaimPityResponse struct {
	Success          bool   `json:"success"`
	Granted          int64  `json:"granted"`
	NewPendingReward int64  `json:"newPendingReward"`
	Message          string `json:"message"`
}

type VerifyPaymentRequest struct {
	Address  string `json:"address"`
	Type     string `json:"type"`
	TxHash   string `json:"txHash"`
	Quantity int    `json:"quantity"` // <= 0 считается как 1
}

type VerifyPaymentResponse struct {
	Success bool           `json:"success"`
	Tickets map[string]int `json:"tickets"`
}

type UserInfoResponse struct {
	Address           string         `json:"address"`
	Tickets           map[string]int `json:"tickets"`
	PendingReward     int64          `json:"pendingReward"`
	PendingGoldBeans  int            `json:"pendingGoldBeans"`
	ConsecutiveLosses int            `json:"consecutiveLosses"`
	IsClaiming        bool           `json:"isClaiming"`
	PityAvailable     bool           `json:"pityAvailable"`
}
