package model

// Накопленное состояние по одному классу билетов
type ClassState struct {
	Plays         int64 // Сколько билетов вскрыто
	Wins          int64 // Сколько билетов выиграло
	TokensAwarded int64 // Сумма выигрышей в токенах
	SpecialPrizes int64 // Сколько выпало спецпризов

	Window []PlayResult // Окно последних игр
}

// Результат игры для окна
type PlayResult struct {
	Win    bool
	Tokens int64
}

// Состояние игры целиком
type State struct {
	Classes map[string]*ClassState

	PityGrants  int64 // Выдано гарантированных призов
	PityTokens  int64 // Токенов выдано гарантией
	Settlements int64 // Успешных выплат
	TokensPaid  int64 // Токенов выплачено

	WindowSize int // Размер окна для анализа
}
