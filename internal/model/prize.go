package model

// NoPrizeID идентификатор тира "ячейка не выиграла"
const NoPrizeID = "NO_PRIZE"

// PrizeTier уровень приза
type PrizeTier struct {
	ID      string
	Name    string
	Value   int64 // Выплата в токенах, для специального приза 0
	Special bool  // Физический приз (золотой боб), копится отдельно от токенов
	Weight  int
	Image   string
}

// IsNoPrize тир-заполнитель до суммы весов каталога
func (t PrizeTier) IsNoPrize() bool {
	return t.ID == NoPrizeID
}

// WinCountWeight вес для количества выигрышных ячеек на билете
type WinCountWeight struct {
	Count  int
	Weight int
}
