package catalog

import "math"

// Odds расчетные показатели каталога на один билет
type Odds struct {
	WinRate        float64 // Вероятность хотя бы одной выигрышной ячейки
	ExpectedWins   float64 // Среднее число выигрышных ячеек
	ExpectedTokens float64 // Средняя выплата токенами
	SpecialChance  float64 // Вероятность выиграть специальный приз
}

// Odds считает показатели по двухступенчатому розыгрышу без учета override
func (c *Catalog) Odds() Odds {
	var countTotal, zeroWeight int
	for _, wc := range c.WinCounts {
		countTotal += wc.Weight
		if wc.Count == 0 {
			zeroWeight += wc.Weight
		}
	}
	if countTotal == 0 {
		return Odds{}
	}

	var tierTotal, specialWeight int
	var valueSum float64
	for _, t := range c.WinningTiers() {
		tierTotal += t.Weight
		valueSum += float64(t.Weight) * float64(t.Value)
		if t.Special {
			specialWeight += t.Weight
		}
	}

	var res Odds
	res.WinRate = 1 - float64(zeroWeight)/float64(countTotal)
	for _, wc := range c.WinCounts {
		p := float64(wc.Weight) / float64(countTotal)
		res.ExpectedWins += p * float64(wc.Count)
		if tierTotal > 0 {
			missSpecial := 1 - float64(specialWeight)/float64(tierTotal)
			res.SpecialChance += p * (1 - math.Pow(missSpecial, float64(wc.Count)))
		}
	}
	if tierTotal > 0 {
		res.ExpectedTokens = res.ExpectedWins * valueSum / float64(tierTotal)
	}
	return res
}
