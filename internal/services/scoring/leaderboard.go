package scoring

import (
	"sort"

	"github.com/KirkDiggler/oraculo/internal/models"
)

// Categories returns the honor categories present in the log: minigames
// first, then vote categories in name order. A vote category may not reuse
// the minigames ID.
func Categories(log *models.GameLog) []string {
	out := []string{models.CategoryMinigames}
	if log == nil {
		return out
	}

	var votes []string
	for category := range log.MentionVotes {
		if category != models.CategoryMinigames {
			votes = append(votes, category)
		}
	}
	sort.Strings(votes)
	return append(out, votes...)
}

// categoryCounts returns the counts recorded for a category
func categoryCounts(category string, log *models.GameLog) map[string]int {
	if log == nil {
		return nil
	}
	if category == models.CategoryMinigames {
		return log.MinigameWins
	}
	return log.MentionVotes[category]
}

// leaders returns the roster players tied at the highest positive count, in
// roster order, and that count
func leaders(players []*models.Player, counts map[string]int) ([]*models.Player, int) {
	best := 0
	for _, p := range players {
		if counts[p.ID] > best {
			best = counts[p.ID]
		}
	}
	if best == 0 {
		return nil, 0
	}

	var tied []*models.Player
	for _, p := range players {
		if counts[p.ID] == best {
			tied = append(tied, p)
		}
	}
	return tied, best
}

// HonorCounts returns, per player ID, how many categories the player tied
// for first in. Categories nobody scored in award nothing.
func HonorCounts(players []*models.Player, log *models.GameLog) map[string]int {
	honors := make(map[string]int, len(players))
	for _, p := range players {
		honors[p.ID] = 0
	}

	for _, category := range Categories(log) {
		tied, _ := leaders(players, categoryCounts(category, log))
		for _, p := range tied {
			honors[p.ID]++
		}
	}
	return honors
}

// TopHonor returns the single displayed holder of a category. Ties on the
// count go to the higher score, then to roster order.
func TopHonor(category string, players []*models.Player, log *models.GameLog) (*models.Honor, bool) {
	tied, best := leaders(players, categoryCounts(category, log))
	if len(tied) == 0 {
		return nil, false
	}

	holder := tied[0]
	for _, p := range tied[1:] {
		if p.ScoreValue() > holder.ScoreValue() {
			holder = p
		}
	}

	return &models.Honor{
		Category: category,
		PlayerID: holder.ID,
		Count:    best,
	}, true
}

// TopHonors returns the displayed holder of every category that has one
func TopHonors(players []*models.Player, log *models.GameLog) []models.Honor {
	var out []models.Honor
	for _, category := range Categories(log) {
		if honor, ok := TopHonor(category, players, log); ok {
			out = append(out, *honor)
		}
	}
	return out
}

// Rank orders players by score, then honor count, both descending, keeping
// roster order for full ties. Fully tied players share the rank of the first
// of their group, so ranks skip after a tie.
func Rank(players []*models.Player, honors map[string]int) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, models.LeaderboardEntry{
			Player: p.Clone(),
			Honors: honors[p.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := entries[i].Player.ScoreValue(), entries[j].Player.ScoreValue()
		if si != sj {
			return si > sj
		}
		return entries[i].Honors > entries[j].Honors
	})

	for i := range entries {
		if i > 0 && tiedEntries(entries[i-1], entries[i]) {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries
}

func tiedEntries(a, b models.LeaderboardEntry) bool {
	return a.Player.ScoreValue() == b.Player.ScoreValue() && a.Honors == b.Honors
}
