package pact

import (
	"testing"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/KirkDiggler/oraculo/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func countPacts(pacts []models.Pact) map[models.Pact]int {
	counts := make(map[models.Pact]int)
	for _, p := range pacts {
		counts[p]++
	}
	return counts
}

func TestGenerateRespectsCaps(t *testing.T) {
	modes := []models.PactMode{models.PactModeBalanced, models.PactModeChaotic, models.PactModeStrategic}

	for seed := int64(1); seed <= 200; seed++ {
		src := random.New(&random.Config{Seed: seed})
		for count := models.MinPlayers; count <= models.MaxPlayers; count++ {
			for _, mode := range modes {
				pacts := Generate(src, count, mode)
				counts := countPacts(pacts)

				require.Len(t, pacts, count, "seed %d count %d mode %s", seed, count, mode)
				for _, p := range pacts {
					assert.Contains(t, models.Pacts, p)
				}
				if mode == models.PactModeChaotic {
					assert.LessOrEqual(t, counts[models.PactLoki], MaxChaoticLokis)
				} else {
					assert.Equal(t, 1, counts[models.PactLoki])
				}
				assert.LessOrEqual(t, counts[models.PactAtenea], MaxPerSharedPact)
				assert.LessOrEqual(t, counts[models.PactLongwang], MaxPerSharedPact)
			}
		}
	}
}

func TestGenerateChaoticCoversAllLokiCounts(t *testing.T) {
	seen := make(map[int]bool)
	src := random.New(&random.Config{Seed: 99})
	for i := 0; i < 300; i++ {
		seen[countPacts(Generate(src, 5, models.PactModeChaotic))[models.PactLoki]] = true
	}
	assert.True(t, seen[0])
	assert.True(t, seen[1])
	assert.True(t, seen[2])
}

func TestGenerateTerminatesWhenCapsReached(t *testing.T) {
	src := random.New(&random.Config{Seed: 3})

	pacts := Generate(src, 10, models.PactModeBalanced)

	counts := countPacts(pacts)
	assert.Len(t, pacts, 7)
	assert.Equal(t, 1, counts[models.PactLoki])
	assert.Equal(t, MaxPerSharedPact, counts[models.PactAtenea])
	assert.Equal(t, MaxPerSharedPact, counts[models.PactLongwang])
}

func TestGenerateWithScriptedSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	// Chaotic roll of two Lokis, then Atenea, Longwang
	gomock.InOrder(
		src.EXPECT().IntN(MaxChaoticLokis+1).Return(2),
		src.EXPECT().IntN(2).Return(0),
		src.EXPECT().IntN(2).Return(1),
		src.EXPECT().Shuffle(4, gomock.Any()),
	)

	pacts := Generate(src, 4, models.PactModeChaotic)

	assert.Equal(t, []models.Pact{
		models.PactLoki,
		models.PactLoki,
		models.PactAtenea,
		models.PactLongwang,
	}, pacts)
}
