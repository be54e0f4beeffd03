package catalog

import (
	"fmt"

	"scratch_backend/internal/model"
)

// SpecialPrizeName название специального приза
const SpecialPrizeName = "1g gold bean"

const fillerCount = 22

// Default встроенные каталоги. Используются, если рядом нет catalog.yaml
func Default() Set {
	return Set{
		model.TicketStandard: {
			Class:     model.TicketStandard,
			ImagePath: "Prize Icons/Colorful Scratch",
			Tiers: []model.PrizeTier{
				{ID: "first", Value: 1000000, Weight: 10, Image: "First Prize.webp"},    // 0.1%
				{ID: "second", Value: 500000, Weight: 40, Image: "Second Prize.webp"},   // 0.4%
				{ID: "third", Value: 200000, Weight: 150, Image: "Third Prize.webp"},    // 1.5%
				{ID: "fourth", Value: 100000, Weight: 800, Image: "Fourth Prize.webp"},  // 8%
				{ID: "fifth", Value: 50000, Weight: 4000, Image: "Fifth Prize.webp"},    // 40%
				{ID: model.NoPrizeID, Weight: 5000},                                     // 50%
			},
			WinCounts: []model.WinCountWeight{
				{Count: 0, Weight: 7000},
				{Count: 1, Weight: 2500},
				{Count: 2, Weight: 400},
				{Count: 3, Weight: 90},
				{Count: 4, Weight: 10},
			},
			Fillers: defaultFillers(),
		},
		model.TicketPremium: {
			Class:     model.TicketPremium,
			ImagePath: "Prize Icons/Golden Scratch",
			Tiers: []model.PrizeTier{
				{ID: "grand", Name: SpecialPrizeName, Special: true, Weight: 5, Image: "Grand Prize.webp"}, // 0.05%
				{ID: "first", Value: 1000000, Weight: 45, Image: "First Prize.webp"},                      // 0.45%
				{ID: "second", Value: 500000, Weight: 150, Image: "Second Prize.webp"},                    // 1.5%
				{ID: "third", Value: 200000, Weight: 300, Image: "Third Prize.webp"},                      // 3%
				{ID: "fourth", Value: 100000, Weight: 1000, Image: "Fourth Prize.webp"},                   // 10%
				{ID: "fifth", Value: 50000, Weight: 2500, Image: "Fifth Prize.webp"},                      // 25%
				{ID: model.NoPrizeID, Weight: 6000},                                                       // 60%
			},
			WinCounts: []model.WinCountWeight{
				{Count: 0, Weight: 6000},
				{Count: 1, Weight: 3000},
				{Count: 2, Weight: 400},
				{Count: 3, Weight: 90},
				{Count: 4, Weight: 10},
			},
			Fillers: defaultFillers(),
		},
	}
}

func defaultFillers() []string {
	files := make([]string, 0, fillerCount)
	files = append(files, "No Prize.webp")
	for i := 2; i <= fillerCount; i++ {
		files = append(files, fmt.Sprintf("No Prize (%d).webp", i))
	}
	return files
}
