package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/services/deck"
	"github.com/KirkDiggler/oraculo/internal/services/game"
	"github.com/KirkDiggler/oraculo/internal/services/roster"
	"github.com/KirkDiggler/oraculo/internal/services/scoring"
)

// renderPlayer formats one player; pacts stay hidden unless asked for or
// the player has been scored
func renderPlayer(p *models.Player, showPact bool) string {
	s := fmt.Sprintf("%s (%s) [%s]", p.Name, p.Color, p.ID)
	if showPact || p.Score != nil {
		s += fmt.Sprintf(" %s", p.Pact)
	}
	if p.Score != nil {
		s += fmt.Sprintf(": %d", *p.Score)
	}
	return s
}

func renderPlayers(title string, players []*models.Player) string {
	var sb strings.Builder
	sb.WriteString(title)
	for i, p := range players {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, renderPlayer(p, false))
	}
	return sb.String()
}

func renderRosterState(state roster.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Step: %s\n", state.Step)
	fmt.Fprintf(&sb, "Table: %d players, %s pacts, %s names\n",
		state.Config.PlayerCount, state.Config.PactMode, state.Config.NameMode)

	switch state.Step {
	case models.StepInputNames:
		if state.LastReason != roster.ReasonNone {
			fmt.Fprintf(&sb, "Last error: %s\n", state.LastReason)
		}
		if state.EditingID != "" {
			fmt.Fprintf(&sb, "Editing: %s\n", state.EditingID)
		}
		if !state.ReviewOpen {
			fmt.Fprintf(&sb, "Next color: %s\n", state.Draft.Color)
		}
	case models.StepRevealPacts:
		if state.Reveal.Cursor < len(state.Players) {
			fmt.Fprintf(&sb, "Revealing for: %s\n", state.Players[state.Reveal.Cursor].Name)
		}
		if state.Reveal.Locked {
			sb.WriteString("Card locked\n")
		}
	}

	sb.WriteString(renderPlayers(fmt.Sprintf("Players (%d)", len(state.Players)), state.Players))
	return sb.String()
}

func renderFilters(categories, active []string) string {
	on := make(map[string]bool, len(active))
	for _, c := range active {
		on[c] = true
	}

	var sb strings.Builder
	sb.WriteString("Categories:")
	for _, c := range categories {
		mark := " "
		if on[c] {
			mark = "x"
		}
		fmt.Fprintf(&sb, "\n  [%s] %s", mark, c)
	}
	return sb.String()
}

func renderDraw(deckID string, output *deck.DrawOutput) string {
	switch {
	case output.CoolingDown:
		return "The deck is still settling"
	case output.Empty:
		return fmt.Sprintf("No %s cards match the active filters", deckID)
	case output.Reset:
		return fmt.Sprintf("Deck %s exhausted and reshuffled, draw again", deckID)
	case output.Item == nil:
		return ""
	}

	item := output.Item
	s := fmt.Sprintf("[%s] %s", item.Category, item.Title)
	if item.Text != "" {
		s += "\n" + item.Text
	}
	return s + fmt.Sprintf("\n(%d left)", output.Remaining)
}

func renderLog(players []*models.Player, log *models.GameLog) string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	var sb strings.Builder
	sb.WriteString("Minigame wins")
	for _, p := range players {
		if wins := log.MinigameWins[p.ID]; wins > 0 {
			fmt.Fprintf(&sb, "\n  %s: %d", p.Name, wins)
		}
	}
	for _, category := range scoring.Categories(log)[1:] {
		votes := log.MentionVotes[category]
		fmt.Fprintf(&sb, "\nVotes for %s", category)
		for _, p := range players {
			if n := votes[p.ID]; n > 0 {
				fmt.Fprintf(&sb, "\n  %s: %d", names[p.ID], n)
			}
		}
	}
	return sb.String()
}

func renderLeaderboard(output *game.GetLeaderboardOutput, players []*models.Player) string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	var sb strings.Builder
	sb.WriteString("Leaderboard")
	for _, e := range output.Entries {
		fmt.Fprintf(&sb, "\n  #%d %s %s: %d", e.Rank, e.Player.Name, e.Player.Pact, e.Player.ScoreValue())
		if e.Honors > 0 {
			fmt.Fprintf(&sb, " (%d honors)", e.Honors)
		}
	}
	if len(output.Honors) > 0 {
		sb.WriteString("\nHonors")
		for _, h := range output.Honors {
			fmt.Fprintf(&sb, "\n  %s: %s (%d)", h.Category, names[h.PlayerID], h.Count)
		}
	}
	return sb.String()
}
