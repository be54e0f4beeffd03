package game

import (
	"testing"

	"scratch_backend/internal/model"
	"scratch_backend/internal/service/draw"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	fifth := model.PrizeTier{ID: "fifth", Value: 50000}
	first := model.PrizeTier{ID: "first", Value: 1000000}
	grand := model.PrizeTier{ID: "grand", Special: true, Name: "1g gold bean"}

	cases := []struct {
		name string
		res  draw.Result
		want string
	}{
		{"loss", draw.Result{}, "no prize"},
		{"single", draw.Result{Tiers: []model.PrizeTier{fifth}, TotalTokens: 50000}, "50,000 tokens"},
		{"pair", draw.Result{Tiers: []model.PrizeTier{first, grand}, TotalTokens: 1000000, SpecialPrizes: 1}, "1,000,000 tokens + 1g gold bean"},
		{"summary", draw.Result{Tiers: []model.PrizeTier{fifth, fifth, first}, TotalTokens: 1100000}, "3 prizes, 1,100,000 tokens total"},
		{"summary with gold", draw.Result{Tiers: []model.PrizeTier{grand, fifth, grand}, TotalTokens: 50000, SpecialPrizes: 2}, "3 prizes, 50,000 tokens total + gold bean"},
		{"summary gold only", draw.Result{Tiers: []model.PrizeTier{grand, grand, grand}, SpecialPrizes: 3}, "3 prizes + gold bean"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describe(tc.res))
		})
	}
}
