// Package scoring turns end-of-game tallies into scores and ranks the table.
package scoring

import (
	"github.com/KirkDiggler/oraculo/internal/models"
)

// Coefficients weight each tally for a pact
type Coefficients struct {
	Relics  int
	Plagues int
	Powers  int
}

// PactCoefficients is the fixed scoring table
var PactCoefficients = map[models.Pact]Coefficients{
	models.PactAtenea:   {Relics: 3, Plagues: -2, Powers: 1},
	models.PactLoki:     {Relics: 2, Plagues: 2, Powers: 0},
	models.PactLongwang: {Relics: 2, Plagues: -1, Powers: 2},
}

// Result is a computed score with the tallies it came from
type Result struct {
	Total   int
	Details models.Tallies
}

// ComputeScore applies the pact's formula to the tallies. Unknown pacts
// score zero.
func ComputeScore(pact models.Pact, tallies models.Tallies) Result {
	c := PactCoefficients[pact]
	return Result{
		Total:   c.Relics*tallies.Relics + c.Plagues*tallies.Plagues + c.Powers*tallies.Powers,
		Details: tallies,
	}
}

// ApplyScore returns a copy of the player carrying the computed score
func ApplyScore(player *models.Player, tallies models.Tallies) *models.Player {
	scored := player.Clone()
	result := ComputeScore(player.Pact, tallies)
	total := result.Total
	details := result.Details
	scored.Score = &total
	scored.ScoreDetails = &details
	return scored
}
