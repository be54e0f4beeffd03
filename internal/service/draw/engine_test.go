package draw

import (
	"testing"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flagOverride struct {
	set      bool
	consumed int
}

func (f *flagOverride) Consume() bool {
	if !f.set {
		return false
	}
	f.set = false
	f.consumed++
	return true
}

func TestDraw_ZeroWinCountSkipsPrizeStage(t *testing.T) {
	src := &random.Scripted{Values: []int{0}}
	e := NewEngine(catalog.Default(), src)

	res, err := e.Draw(model.TicketStandard, nil)
	require.NoError(t, err)
	assert.False(t, res.IsWin())
	assert.Empty(t, res.Tiers)
	assert.Zero(t, res.TotalTokens)
	assert.Zero(t, res.SpecialPrizes)
}

func TestDraw_SingleWinPicksByCumulativeWeight(t *testing.T) {
	// 7000 -> одна выигрышная ячейка, 4999 -> последний тир без NO_PRIZE
	src := &random.Scripted{Values: []int{7000, 4999}}
	e := NewEngine(catalog.Default(), src)

	res, err := e.Draw(model.TicketStandard, nil)
	require.NoError(t, err)
	require.Len(t, res.Tiers, 1)
	assert.Equal(t, "fifth", res.Tiers[0].ID)
	assert.Equal(t, int64(50000), res.TotalTokens)
	assert.Equal(t, []string{"fifth"}, res.TierIDs())
}

func TestDraw_MaxWinCountSumsValues(t *testing.T) {
	src := &random.Scripted{Values: []int{9999, 0, 0, 0, 0}}
	e := NewEngine(catalog.Default(), src)

	res, err := e.Draw(model.TicketStandard, nil)
	require.NoError(t, err)
	require.Len(t, res.Tiers, 4)
	assert.Equal(t, int64(4*1000000), res.TotalTokens)
}

func TestDraw_SpecialTierCountsInsteadOfValue(t *testing.T) {
	src := &random.Scripted{Values: []int{6000, 0}}
	e := NewEngine(catalog.Default(), src)

	res, err := e.Draw(model.TicketPremium, nil)
	require.NoError(t, err)
	require.Len(t, res.Tiers, 1)
	assert.True(t, res.Tiers[0].Special)
	assert.Equal(t, 1, res.SpecialPrizes)
	assert.Zero(t, res.TotalTokens)
}

func TestDraw_OverrideForcesSpecialOnceForPremium(t *testing.T) {
	src := &random.Scripted{Values: []int{0}}
	e := NewEngine(catalog.Default(), src)
	ov := &flagOverride{set: true}

	res, err := e.Draw(model.TicketPremium, ov)
	require.NoError(t, err)
	assert.True(t, res.OverrideConsumed)
	require.Len(t, res.Tiers, 1)
	assert.Equal(t, "grand", res.Tiers[0].ID)
	assert.Equal(t, 1, res.SpecialPrizes)
	assert.False(t, ov.set)

	res, err = e.Draw(model.TicketPremium, ov)
	require.NoError(t, err)
	assert.False(t, res.OverrideConsumed)
	assert.False(t, res.IsWin())
	assert.Equal(t, 1, ov.consumed)
}

func TestDraw_OverrideIgnoredForStandard(t *testing.T) {
	src := &random.Scripted{Values: []int{0}}
	e := NewEngine(catalog.Default(), src)
	ov := &flagOverride{set: true}

	res, err := e.Draw(model.TicketStandard, ov)
	require.NoError(t, err)
	assert.False(t, res.OverrideConsumed)
	assert.True(t, ov.set)
}

func TestDraw_OverrideWithoutSpecialTierFallsBack(t *testing.T) {
	set := catalog.Default()
	premium := set[model.TicketPremium]
	tiers := make([]model.PrizeTier, 0, len(premium.Tiers))
	for _, tier := range premium.Tiers {
		if tier.Special {
			continue
		}
		if tier.IsNoPrize() {
			tier.Weight += 5
		}
		tiers = append(tiers, tier)
	}
	premium.Tiers = tiers
	require.NoError(t, premium.Validate())

	src := &random.Scripted{Values: []int{0}}
	e := NewEngine(set, src)
	ov := &flagOverride{set: true}

	res, err := e.Draw(model.TicketPremium, ov)
	require.NoError(t, err)
	assert.True(t, res.OverrideConsumed)
	assert.ErrorIs(t, res.ConfigErr, model.ErrConfigurationError)
	assert.False(t, res.IsWin())
	assert.False(t, ov.set)
}

func TestDraw_UnknownClass(t *testing.T) {
	e := NewEngine(catalog.Default(), random.Seeded(1))
	_, err := e.Draw(model.TicketClass("platinum"), nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDraw_TiersAlwaysBelongToCatalog(t *testing.T) {
	set := catalog.Default()
	e := NewEngine(set, random.Seeded(7))

	for _, class := range model.TicketClasses() {
		cat := set[class]
		for i := 0; i < 20000; i++ {
			res, err := e.Draw(class, nil)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Tiers), 4)

			var tokens int64
			special := 0
			for _, tier := range res.Tiers {
				require.True(t, cat.Contains(tier.ID))
				require.False(t, tier.IsNoPrize())
				if tier.Special {
					special++
				} else {
					tokens += tier.Value
				}
			}
			assert.Equal(t, tokens, res.TotalTokens)
			assert.Equal(t, special, res.SpecialPrizes)
		}
	}
}

func TestDraw_WinRateMatchesTable(t *testing.T) {
	e := NewEngine(catalog.Default(), random.Seeded(2024))

	const plays = 200000
	cases := map[model.TicketClass]float64{
		model.TicketStandard: 0.30,
		model.TicketPremium:  0.40,
	}
	for class, want := range cases {
		wins := 0
		for i := 0; i < plays; i++ {
			res, err := e.Draw(class, nil)
			require.NoError(t, err)
			if res.IsWin() {
				wins++
			}
		}
		assert.InDelta(t, want, float64(wins)/plays, 0.01, class)
	}
}
