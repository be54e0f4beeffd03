package model

import (
	"strings"
	"time"
)

// Account состояние игрока
type Account struct {
	Address                string
	Tickets                map[TicketClass]int
	ClaimableTokens        int64
	ClaimableSpecialPrizes int
	ConsecutiveLosses      int
	SettlementInFlight     bool
	UpdatedAt              time.Time
}

// NewAccount создает пустой аккаунт
func NewAccount(address string) Account {
	tickets := make(map[TicketClass]int, len(TicketClasses()))
	for _, class := range TicketClasses() {
		tickets[class] = 0
	}
	return Account{
		Address: address,
		Tickets: tickets,
	}
}

// Clone глубокая копия, чтобы снаружи нельзя было поменять карту билетов в хранилище
func (a Account) Clone() Account {
	tickets := make(map[TicketClass]int, len(a.Tickets))
	for class, n := range a.Tickets {
		tickets[class] = n
	}
	a.Tickets = tickets
	return a
}

// NormalizeAddress адреса сравниваются без учета регистра
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
