package model

// PlayStat одна игра для статистики
type PlayStat struct {
	Class         TicketClass
	Win           bool
	Tokens        int64
	SpecialPrizes int
}

// ClassStats накопленная статистика по классу билетов
type ClassStats struct {
	Plays         int64   `json:"plays"`
	Wins          int64   `json:"wins"`
	TokensAwarded int64   `json:"tokens_awarded"`
	SpecialPrizes int64   `json:"special_prizes"`
	WindowWinRate float64 `json:"window_win_rate"`
	WindowAvgWin  float64 `json:"window_avg_win"`
}

// PlayStats статистика по всем классам
type PlayStats struct {
	Classes     map[TicketClass]ClassStats `json:"classes"`
	PityGrants  int64                      `json:"pity_grants"`
	PityTokens  int64                      `json:"pity_tokens"`
	Settlements int64                      `json:"settlements"`
	TokensPaid  int64                      `json:"tokens_paid"`
}
