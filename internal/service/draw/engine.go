package draw

import (
	"fmt"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/random"
)

// Override одноразовый флаг администратора. Consume атомарно проверяет и сбрасывает флаг
type Override interface {
	Consume() bool
}

// Result призы одной игры
type Result struct {
	Tiers            []model.PrizeTier // В порядке розыгрыша
	TotalTokens      int64
	SpecialPrizes    int
	OverrideConsumed bool
	// ConfigErr ошибка конфигурации каталога. Розыгрыш при этом валиден, ошибку нужно только залогировать
	ConfigErr error
}

// IsWin выиграла хотя бы одна ячейка
func (r Result) IsWin() bool {
	return len(r.Tiers) > 0
}

// TierIDs идентификаторы выигранных тиров
func (r Result) TierIDs() []string {
	ids := make([]string, len(r.Tiers))
	for i, t := range r.Tiers {
		ids[i] = t.ID
	}
	return ids
}

// Engine двухэтапный розыгрыш: сначала количество выигрышных ячеек, потом приз для каждой
type Engine struct {
	catalogs catalog.Set
	rnd      random.Source
}

// NewEngine каталоги должны быть провалидированы заранее
func NewEngine(catalogs catalog.Set, rnd random.Source) *Engine {
	return &Engine{
		catalogs: catalogs,
		rnd:      rnd,
	}
}

// Draw разыгрывает призы одного билета. Состояние аккаунта не меняет
func (e *Engine) Draw(class model.TicketClass, override Override) (Result, error) {
	cat, err := e.catalogs.Get(class)
	if err != nil {
		return Result{}, err
	}

	// Принудительный спецприз только для премиум билетов, флаг сгорает в момент решения
	if class == model.TicketPremium && override != nil && override.Consume() {
		special, ok := cat.SpecialTier()
		if ok {
			return Result{
				Tiers:            []model.PrizeTier{special},
				SpecialPrizes:    1,
				OverrideConsumed: true,
			}, nil
		}

		res := e.drawNormal(cat)
		res.OverrideConsumed = true
		res.ConfigErr = fmt.Errorf("%w: %s catalog has no special prize tier", model.ErrConfigurationError, class)
		return res, nil
	}

	return e.drawNormal(cat), nil
}

func (e *Engine) drawNormal(cat *catalog.Catalog) Result {
	var res Result

	count := e.pickWinCount(cat.WinCounts)
	if count == 0 {
		return res
	}

	winning := cat.WinningTiers()
	total := 0
	for _, t := range winning {
		total += t.Weight
	}

	res.Tiers = make([]model.PrizeTier, 0, count)
	for i := 0; i < count; i++ {
		tier := e.pickTier(winning, total)
		res.Tiers = append(res.Tiers, tier)
		if tier.Special {
			res.SpecialPrizes++
		} else {
			res.TotalTokens += tier.Value
		}
	}
	return res
}

// Выбор количества выигрышных ячеек по накопленным весам
func (e *Engine) pickWinCount(counts []model.WinCountWeight) int {
	total := 0
	for _, wc := range counts {
		total += wc.Weight
	}
	if total <= 0 {
		return 0
	}

	r := e.rnd.IntN(total)
	for _, wc := range counts {
		if r < wc.Weight {
			return wc.Count
		}
		r -= wc.Weight
	}
	return counts[len(counts)-1].Count
}

// Выбор тира по накопленным весам. Если скан не нашел тир, берем последний
func (e *Engine) pickTier(tiers []model.PrizeTier, total int) model.PrizeTier {
	r := e.rnd.IntN(total)
	for _, t := range tiers {
		if r < t.Weight {
			return t
		}
		r -= t.Weight
	}
	return tiers[len(tiers)-1]
}
