package grid

import (
	"fmt"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/random"
)

// Compose раскладывает выигранные тиры по случайным различным ячейкам 4x4,
// остальные ячейки заполняются случайными картинками-заглушками (повторы допустимы)
func Compose(rnd random.Source, cat *catalog.Catalog, won []model.PrizeTier) ([]string, error) {
	if len(won) > catalog.GridSize {
		return nil, fmt.Errorf("%w: %d winning cells do not fit a %d-cell grid", model.ErrInvalidInput, len(won), catalog.GridSize)
	}
	if len(cat.Fillers) == 0 {
		return nil, fmt.Errorf("%w: %s catalog has no filler images", model.ErrConfigurationError, cat.Class)
	}

	positions := shuffle(rnd, catalog.GridSize)
	cells := make([]string, catalog.GridSize)
	for i, tier := range won {
		cells[positions[i]] = cat.ImageRef(tier.Image)
	}
	for _, pos := range positions[len(won):] {
		cells[pos] = cat.ImageRef(cat.Fillers[rnd.IntN(len(cat.Fillers))])
	}
	return cells, nil
}

// Fisher–Yates по индексам 0..n-1
func shuffle(rnd random.Source, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
