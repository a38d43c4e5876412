// Package pact deals the secret pacts for a table.
package pact

import (
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
)

// MaxPerSharedPact caps how many players may hold Atenea or Longwang
const MaxPerSharedPact = 3

// MaxChaoticLokis is the upper bound of Lokis dealt in chaotic mode
const MaxChaoticLokis = 2

// LokiCount returns how many Lokis a table dealt in mode receives
func LokiCount(src random.Source, mode models.PactMode) int {
	if mode == models.PactModeChaotic {
		return src.IntN(MaxChaoticLokis + 1)
	}
	return 1
}

// Generate deals count pacts for mode. Atenea and Longwang never exceed
// MaxPerSharedPact each; the result is shorter than count only when the caps
// make count unreachable. Order is random.
func Generate(src random.Source, count int, mode models.PactMode) []models.Pact {
	lokis := LokiCount(src, mode)
	if lokis > count {
		lokis = count
	}

	pacts := make([]models.Pact, 0, count)
	for i := 0; i < lokis; i++ {
		pacts = append(pacts, models.PactLoki)
	}

	held := map[models.Pact]int{}
	for len(pacts) < count {
		eligible := make([]models.Pact, 0, 2)
		for _, p := range []models.Pact{models.PactAtenea, models.PactLongwang} {
			if held[p] < MaxPerSharedPact {
				eligible = append(eligible, p)
			}
		}
		if len(eligible) == 0 {
			break
		}

		chosen := random.Pick(src, eligible)
		held[chosen]++
		pacts = append(pacts, chosen)
	}

	return random.Shuffled(src, pacts)
}
