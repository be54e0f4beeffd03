package catalog

import (
	"errors"
	"fmt"

	"scratch_backend/internal/model"
)

const (
	// TotalWeight сумма весов тиров в каталоге любого класса
	TotalWeight = 10000
	// GridSize количество ячеек на билете 4x4
	GridSize = 16
)

// Catalog таблица призов одного класса билетов
type Catalog struct {
	Class     model.TicketClass
	ImagePath string
	Tiers     []model.PrizeTier
	WinCounts []model.WinCountWeight
	Fillers   []string
}

// Set каталоги по классам
type Set map[model.TicketClass]*Catalog

// Validate проверяет инварианты каталога. Вызывается при загрузке, до старта сервера
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%s: no prize tiers", c.Class)
	}

	sum, noPrize, winning := 0, 0, 0
	seen := make(map[string]struct{}, len(c.Tiers))
	for _, t := range c.Tiers {
		if t.ID == "" {
			return fmt.Errorf("%s: tier without id", c.Class)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%s: duplicate tier %q", c.Class, t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.Weight <= 0 {
			return fmt.Errorf("%s: tier %q has non-positive weight %d", c.Class, t.ID, t.Weight)
		}
		sum += t.Weight
		if t.IsNoPrize() {
			noPrize++
			continue
		}
		winning++
		if t.Image == "" {
			return fmt.Errorf("%s: tier %q has no image", c.Class, t.ID)
		}
		if !t.Special && t.Value <= 0 {
			return fmt.Errorf("%s: tier %q has no payout value", c.Class, t.ID)
		}
	}
	if sum != TotalWeight {
		return fmt.Errorf("%s: tier weights sum to %d, want %d", c.Class, sum, TotalWeight)
	}
	if noPrize != 1 {
		return fmt.Errorf("%s: want exactly one %s tier, got %d", c.Class, model.NoPrizeID, noPrize)
	}
	if winning == 0 {
		return fmt.Errorf("%s: no winning tiers", c.Class)
	}

	if len(c.WinCounts) == 0 {
		return fmt.Errorf("%s: empty win-count table", c.Class)
	}
	counts := make(map[int]struct{}, len(c.WinCounts))
	for _, wc := range c.WinCounts {
		if wc.Count < 0 || wc.Count > GridSize {
			return fmt.Errorf("%s: win count %d out of range [0, %d]", c.Class, wc.Count, GridSize)
		}
		if wc.Weight <= 0 {
			return fmt.Errorf("%s: win count %d has non-positive weight", c.Class, wc.Count)
		}
		if _, ok := counts[wc.Count]; ok {
			return fmt.Errorf("%s: duplicate win count %d", c.Class, wc.Count)
		}
		counts[wc.Count] = struct{}{}
	}

	if len(c.Fillers) == 0 {
		return fmt.Errorf("%s: no filler images", c.Class)
	}
	// филлер не должен совпадать с картинкой выигрышного тира
	prizes := make(map[string]string, winning)
	for _, t := range c.Tiers {
		if !t.IsNoPrize() {
			prizes[c.ImageRef(t.Image)] = t.ID
		}
	}
	for _, f := range c.Fillers {
		if f == "" {
			return fmt.Errorf("%s: empty filler image", c.Class)
		}
		if id, ok := prizes[c.ImageRef(f)]; ok {
			return fmt.Errorf("%s: filler %q collides with tier %q", c.Class, f, id)
		}
	}
	return nil
}

// WinningTiers тиры без NO_PRIZE в порядке каталога
func (c *Catalog) WinningTiers() []model.PrizeTier {
	res := make([]model.PrizeTier, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		if !t.IsNoPrize() {
			res = append(res, t)
		}
	}
	return res
}

// SpecialTier тир специального приза, если он есть в каталоге
func (c *Catalog) SpecialTier() (model.PrizeTier, bool) {
	for _, t := range c.Tiers {
		if t.Special {
			return t, true
		}
	}
	return model.PrizeTier{}, false
}

// Contains проверяет, что тир принадлежит каталогу
func (c *Catalog) Contains(id string) bool {
	for _, t := range c.Tiers {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ImageRef ссылка на картинку относительно корня статики
func (c *Catalog) ImageRef(file string) string {
	if c.ImagePath == "" {
		return file
	}
	return c.ImagePath + "/" + file
}

// Get каталог класса
func (s Set) Get(class model.TicketClass) (*Catalog, error) {
	c, ok := s[class]
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: unknown ticket class %q", model.ErrInvalidInput, class)
	}
	return c, nil
}

// Validate проверяет, что каталог есть для каждого класса и каждый корректен
func (s Set) Validate() error {
	for _, class := range model.TicketClasses() {
		c, ok := s[class]
		if !ok {
			return fmt.Errorf("missing catalog for %s", class)
		}
		if c.Class != class {
			return fmt.Errorf("catalog registered as %s declares class %s", class, c.Class)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
