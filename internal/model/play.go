package model

// PlayRequest запрос на вскрытие билета
type PlayRequest struct {
	Address string
	Class   TicketClass
}

// PlayResult результат одной игры
type PlayResult struct {
	Grid              []string
	IsWin             bool
	WinAmount         int64
	WonSpecial        bool
	SpecialPrizes     int
	WonTierIDs        []string
	PrizeName         string
	RemainingTickets  int
	ClaimableTokens   int64
	ConsecutiveLosses int
}

// PityResult результат выдачи гарантированного приза
type PityResult struct {
	Granted         int64
	ClaimableTokens int64
}
