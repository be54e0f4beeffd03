package model

import "strings"

// TicketClass класс билета. Определяет каталог призов и распределение количества выигрышей
type TicketClass string

const (
	TicketStandard TicketClass = "standard"
	TicketPremium  TicketClass = "premium"
)

// Старые названия классов, которые до сих пор присылает фронт
var ticketClassAliases = map[string]TicketClass{
	"standard": TicketStandard,
	"colorful": TicketStandard,
	"premium":  TicketPremium,
	"golden":   TicketPremium,
	"金色刮刮乐":    TicketPremium,
}

// ParseTicketClass возвращает класс билета по его названию или алиасу
func ParseTicketClass(s string) (TicketClass, bool) {
	class, ok := ticketClassAliases[strings.ToLower(strings.TrimSpace(s))]
	return class, ok
}

// TicketClasses все известные классы билетов в порядке отображения
func TicketClasses() []TicketClass {
	return []TicketClass{TicketStandard, TicketPremium}
}

// TicketCredit зачисление купленных билетов (подтверждение покупки приходит извне)
type TicketCredit struct {
	Address  string
	Class    TicketClass
	Quantity int
	TxHash   string
}
