package grid

import (
	"strings"
	"testing"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillerSet(cat *catalog.Catalog) map[string]struct{} {
	set := make(map[string]struct{}, len(cat.Fillers))
	for _, f := range cat.Fillers {
		set[cat.ImageRef(f)] = struct{}{}
	}
	return set
}

func TestCompose_ExactlyKWinningCells(t *testing.T) {
	cat := catalog.Default()[model.TicketStandard]
	fillers := fillerSet(cat)
	winning := cat.WinningTiers()
	rnd := random.Seeded(11)

	for k := 0; k <= catalog.GridSize; k++ {
		won := make([]model.PrizeTier, k)
		for i := range won {
			won[i] = winning[i%len(winning)]
		}

		cells, err := Compose(rnd, cat, won)
		require.NoError(t, err)
		require.Len(t, cells, catalog.GridSize)

		nonFiller := 0
		for _, c := range cells {
			require.NotEmpty(t, c)
			if _, ok := fillers[c]; !ok {
				nonFiller++
			}
		}
		assert.Equal(t, k, nonFiller, "k=%d", k)
	}
}

func TestCompose_WinningCellsKeepDrawOrder(t *testing.T) {
	cat := catalog.Default()[model.TicketPremium]
	special, ok := cat.SpecialTier()
	require.True(t, ok)

	// При нулях Fisher–Yates дает перестановку [1, 2, ..., 15, 0]
	cells, err := Compose(&random.Scripted{Values: []int{0}}, cat, []model.PrizeTier{special})
	require.NoError(t, err)

	count := 0
	for _, c := range cells {
		if c == cat.ImageRef(special.Image) {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, cat.ImageRef(special.Image), cells[1])
	assert.True(t, strings.HasPrefix(cells[0], cat.ImagePath+"/No Prize"))
}

func TestCompose_NoWinsAllFillers(t *testing.T) {
	cat := catalog.Default()[model.TicketStandard]
	fillers := fillerSet(cat)

	cells, err := Compose(random.Seeded(3), cat, nil)
	require.NoError(t, err)
	for _, c := range cells {
		assert.Contains(t, fillers, c)
	}
}

func TestCompose_TooManyWins(t *testing.T) {
	cat := catalog.Default()[model.TicketStandard]
	won := make([]model.PrizeTier, catalog.GridSize+1)

	_, err := Compose(random.Seeded(1), cat, won)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestShuffle_IsPermutation(t *testing.T) {
	rnd := random.Seeded(5)
	for i := 0; i < 100; i++ {
		idx := shuffle(rnd, catalog.GridSize)
		seen := make(map[int]bool, len(idx))
		for _, v := range idx {
			require.False(t, seen[v])
			seen[v] = true
		}
		assert.Len(t, seen, catalog.GridSize)
	}
}
