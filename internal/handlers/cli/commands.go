package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/services/deck"
	"github.com/KirkDiggler/oraculo/internal/services/game"
	"github.com/KirkDiggler/oraculo/internal/services/messaging"
	"github.com/KirkDiggler/oraculo/internal/services/roster"
)

func (c *Console) builtinCommands() []CommandHandler {
	return []CommandHandler{
		// Registration
		newCommand("state", "state", c.handleState),
		newCommand("config", "config <players|pacts|names> <value>", c.handleConfig),
		newCommand("confirm", "confirm", c.handleConfirm),
		newCommand("draft", "draft <color> [pact]", c.handleDraft),
		newCommand("add", "add <name> [color] [pact]", c.handleAdd),
		newCommand("back", "back", c.handleBack),
		newCommand("review", "review", c.handleReview),
		newCommand("edit", "edit <player>", c.handleEdit),
		newCommand("extra", "extra", c.handleExtra),
		newCommand("save", "save <player> [name=<name>] [color=<color>] [pact=<pact>]", c.handleSave),
		newCommand("cancel", "cancel", c.handleCancel),
		newCommand("delete", "delete <player>", c.handleDelete),
		newCommand("finalize", "finalize", c.handleFinalize),
		newCommand("reset", "reset", c.handleReset),

		// Pact reveal
		newCommand("reveal", "reveal", c.handleReveal),
		newCommand("next", "next", c.handleNext),
		newCommand("quit", "quit", c.handleQuit),
		newCommand("stay", "stay", c.handleStay),
		newCommand("abandon", "abandon", c.handleAbandon),

		// Decks and arbitration
		newCommand("draw", "draw <deck>", c.handleDraw),
		newCommand("filter", "filter <deck> [category]", c.handleFilter),
		newCommand("shuffle", "shuffle <deck>", c.handleShuffle),
		newCommand("pick", "pick [public|private] [excluded players...]", c.handlePick),
		newCommand("view", "view <player>", c.handleView),
		newCommand("result", "result", c.handleResult),

		// Play log and scoring
		newCommand("win", "win <player>", c.handleWin),
		newCommand("vote", "vote <category> <player>", c.handleVote),
		newCommand("log", "log", c.handleLog),
		newCommand("stats", "stats <player> <relics> <plagues> <powers>", c.handleStats),
		newCommand("finish", "finish", c.handleFinish),
		newCommand("leaderboard", "leaderboard", c.handleLeaderboard),
	}
}

func (c *Console) handleState(_ context.Context, _ []string) (string, error) {
	return renderRosterState(c.roster.State()), nil
}

func (c *Console) handleConfig(_ context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", ErrUsage
	}

	var update roster.ConfigUpdate
	value := strings.ToLower(args[1])
	switch strings.ToLower(args[0]) {
	case "players":
		count, err := strconv.Atoi(value)
		if err != nil {
			return "", ErrUsage
		}
		update.PlayerCount = &count
	case "pacts":
		mode := models.PactMode(value)
		if !mode.IsValid() {
			return "", fmt.Errorf("unknown pact mode %q", value)
		}
		update.PactMode = &mode
	case "names":
		mode := models.NameMode(value)
		if mode != models.NameModeCustom && mode != models.NameModeRandom {
			return "", fmt.Errorf("unknown name mode %q", value)
		}
		update.NameMode = &mode
	default:
		return "", ErrUsage
	}

	cfg := c.roster.UpdateConfig(update)
	return fmt.Sprintf("%d players, %s pacts, %s names", cfg.PlayerCount, cfg.PactMode, cfg.NameMode), nil
}

func (c *Console) handleConfirm(_ context.Context, _ []string) (string, error) {
	output := c.roster.ConfirmConfig()
	if output.ReviewOpen {
		return renderPlayers("Review", output.Players), nil
	}
	return "Enter player names with add", nil
}

func (c *Console) handleAdd(_ context.Context, args []string) (string, error) {
	if len(args) < 1 || len(args) > 3 {
		return "", ErrUsage
	}

	draft := c.roster.State().Draft
	draft.Name = args[0]
	if len(args) > 1 {
		draft.Color = models.TokenColor(strings.ToLower(args[1]))
	}
	if len(args) > 2 {
		draft.Pact = models.Pact(strings.ToLower(args[2]))
	}

	output := c.roster.AddPlayer(draft)
	if !output.Success {
		if output.ReviewOpen {
			return "Roster is full\n" + renderPlayers("Review", c.roster.State().Players), nil
		}
		return "", fmt.Errorf("cannot add player: %s", output.Reason)
	}

	msg := fmt.Sprintf("Added %s", renderPlayer(output.Player, false))
	if output.ReviewOpen {
		msg += "\n" + renderPlayers("Review", c.roster.State().Players)
	}
	return msg, nil
}

func (c *Console) handleDraft(_ context.Context, args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", ErrUsage
	}

	draft := c.roster.State().Draft
	draft.Color = models.TokenColor(strings.ToLower(args[0]))
	if !draft.Color.IsValid() {
		return "", fmt.Errorf("unknown color %q", args[0])
	}
	if len(args) == 2 {
		draft.Pact = models.Pact(strings.ToLower(args[1]))
		if !draft.Pact.IsValid() {
			return "", fmt.Errorf("unknown pact %q, choose one of %s", args[1], pactNames())
		}
	}

	c.roster.SetDraft(draft)
	return fmt.Sprintf("Next player: %s, %s", draft.Color, draft.Pact), nil
}

func pactNames() string {
	names := make([]string, len(models.Pacts))
	for i, p := range models.Pacts {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func (c *Console) handleBack(_ context.Context, _ []string) (string, error) {
	output := c.roster.GoBackOneStep()
	if output.Removed != nil {
		return fmt.Sprintf("Removed %s", output.Removed.Name), nil
	}
	return fmt.Sprintf("Back to %s", output.Step), nil
}

func (c *Console) handleReview(_ context.Context, _ []string) (string, error) {
	c.roster.OpenReview()
	return renderPlayers("Review", c.roster.State().Players), nil
}

func (c *Console) handleEdit(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}

	player, err := findPlayer(c.roster.State().Players, args[0])
	if err != nil {
		return "", err
	}
	if !c.roster.StartEditing(player.ID) {
		return "", fmt.Errorf("cannot edit %s", player.Name)
	}
	return fmt.Sprintf("Editing %s", renderPlayer(player, true)), nil
}

func (c *Console) handleExtra(_ context.Context, _ []string) (string, error) {
	output := c.roster.AddPlayerInReview()
	if !output.Success {
		return "", fmt.Errorf("cannot add player: %s", output.Reason)
	}
	return fmt.Sprintf("Editing new player %s", renderPlayer(output.Player, true)), nil
}

func (c *Console) handleSave(_ context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrUsage
	}

	player, err := findPlayer(c.roster.State().Players, args[0])
	if err != nil {
		return "", err
	}

	input := &roster.SavePlayerChangesInput{PlayerID: player.ID}
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return "", ErrUsage
		}
		switch strings.ToLower(key) {
		case "name":
			input.Name = &value
		case "color":
			color := models.TokenColor(strings.ToLower(value))
			input.Color = &color
		case "pact":
			p := models.Pact(strings.ToLower(value))
			input.Pact = &p
		default:
			return "", ErrUsage
		}
	}

	output := c.roster.SavePlayerChanges(input)
	if !output.Success {
		return "", fmt.Errorf("cannot save %s: %s", player.Name, output.Reason)
	}
	return fmt.Sprintf("Saved %s", renderPlayer(output.Player, true)), nil
}

func (c *Console) handleCancel(_ context.Context, _ []string) (string, error) {
	c.roster.CancelEditing()
	return renderPlayers("Review", c.roster.State().Players), nil
}

func (c *Console) handleDelete(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}

	player, err := findPlayer(c.roster.State().Players, args[0])
	if err != nil {
		return "", err
	}
	if !c.roster.DeletePlayer(player.ID) {
		return "", fmt.Errorf("cannot delete %s: the roster is locked", player.Name)
	}
	return fmt.Sprintf("Deleted %s", player.Name), nil
}

func (c *Console) handleFinalize(ctx context.Context, _ []string) (string, error) {
	output := c.roster.FinalizeReview()
	if !output.Success {
		return "", fmt.Errorf("cannot finalize: %s", output.Reason)
	}
	if output.Ready {
		return c.startSession(ctx, output.Players)
	}
	return fmt.Sprintf("Pacts dealt. Pass the phone to %s and reveal", output.Players[0].Name), nil
}

func (c *Console) handleReset(_ context.Context, _ []string) (string, error) {
	c.roster.Reset()
	return "Registration reset", nil
}

func (c *Console) handleReveal(ctx context.Context, _ []string) (string, error) {
	output := c.roster.RevealCurrentCard()
	if !output.Revealed {
		return "Nothing to reveal right now", nil
	}

	msg, err := c.oracle.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		PlayerName: output.Player.Name,
		Pact:       output.Player.Pact,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, your pact is %s\n%s", output.Player.Name, output.Player.Pact, msg.Message), nil
}

func (c *Console) handleNext(ctx context.Context, _ []string) (string, error) {
	output := c.roster.AdvanceReveal()
	if output.Complete {
		return c.startSession(ctx, output.Players)
	}
	if !output.Advanced {
		return "Wait for the card to be read", nil
	}

	players := c.roster.State().Players
	if output.Cursor < len(players) {
		return fmt.Sprintf("Pass the phone to %s", players[output.Cursor].Name), nil
	}
	return "", nil
}

func (c *Console) handleQuit(_ context.Context, _ []string) (string, error) {
	c.roster.RequestQuit()
	if !c.roster.State().Reveal.QuitPrompt {
		return "Nothing to quit", nil
	}
	return "Abandon the reveal? Use abandon or stay", nil
}

func (c *Console) handleStay(_ context.Context, _ []string) (string, error) {
	c.roster.DismissQuit()
	return "Reveal continues", nil
}

func (c *Console) handleAbandon(_ context.Context, _ []string) (string, error) {
	c.roster.ConfirmQuit()
	state := c.roster.State()
	if state.Step == models.StepRevealPacts {
		return "Use quit first", nil
	}
	return renderPlayers("Review", state.Players), nil
}

func (c *Console) startSession(ctx context.Context, players []*models.Player) (string, error) {
	output, err := c.game.StartSession(ctx, &game.StartSessionInput{Players: players})
	if err != nil {
		return "", err
	}
	return renderPlayers("Session ready", output.Players), nil
}

func (c *Console) deckEngine(id string) (*deck.Engine, error) {
	engine, ok := c.decks[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", id)
	}
	return engine, nil
}

func (c *Console) handleDraw(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	engine, err := c.deckEngine(args[0])
	if err != nil {
		return "", err
	}

	output, err := engine.Draw(ctx)
	if err != nil {
		return "", err
	}
	if output.Reset {
		msg, err := c.oracle.GetDeckResetMessage(ctx, &messaging.GetDeckResetMessageInput{DeckID: engine.DeckID()})
		if err != nil {
			return "", err
		}
		return renderDraw(engine.DeckID(), output) + "\n" + msg.Message, nil
	}
	return renderDraw(engine.DeckID(), output), nil
}

func (c *Console) handleFilter(_ context.Context, args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", ErrUsage
	}
	engine, err := c.deckEngine(args[0])
	if err != nil {
		return "", err
	}

	if len(args) == 2 {
		engine.ToggleFilter(strings.ToLower(args[1]))
	}
	return renderFilters(engine.Categories(), engine.Filters()), nil
}

func (c *Console) handleShuffle(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	engine, err := c.deckEngine(args[0])
	if err != nil {
		return "", err
	}

	if err := engine.ResetUsed(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deck %s reshuffled", engine.DeckID()), nil
}

func (c *Console) handlePick(ctx context.Context, args []string) (string, error) {
	players, err := c.sessionPlayers(ctx)
	if err != nil {
		return "", err
	}

	mode := deck.RevealPublic
	if len(args) > 0 {
		switch deck.RevealMode(strings.ToLower(args[0])) {
		case deck.RevealPublic:
			args = args[1:]
		case deck.RevealPrivate:
			mode = deck.RevealPrivate
			args = args[1:]
		}
	}

	var excluded []string
	for _, ref := range args {
		player, err := findPlayer(players, ref)
		if err != nil {
			return "", err
		}
		excluded = append(excluded, player.ID)
	}

	output := c.picker.Pick(&deck.PickInput{
		Candidates:  players,
		ExcludedIDs: excluded,
		Mode:        mode,
	})
	if output.NoCandidates {
		return "Everyone is excluded", nil
	}
	if output.Chosen != nil {
		msg, err := c.oracle.GetPickMessage(ctx, &messaging.GetPickMessageInput{PlayerName: output.Chosen.Name})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("The oracle chooses %s\n%s", output.Chosen.Name, msg.Message), nil
	}
	return renderPlayers("Each of these players must view their outcome", output.Eligible), nil
}

func (c *Console) handleView(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	players, err := c.sessionPlayers(ctx)
	if err != nil {
		return "", err
	}
	player, err := findPlayer(players, args[0])
	if err != nil {
		return "", err
	}

	output := c.picker.ViewOutcome(player.ID)
	if !output.Eligible {
		return fmt.Sprintf("%s is not part of this pick", player.Name), nil
	}

	msg := fmt.Sprintf("%s is safe", player.Name)
	if output.Chosen {
		msg = fmt.Sprintf("%s has been chosen", player.Name)
	}
	if output.AllViewed {
		msg += "\nEveryone has looked, use result"
	}
	return msg, nil
}

func (c *Console) handleResult(ctx context.Context, _ []string) (string, error) {
	chosen, ok := c.picker.Result()
	if !ok {
		pending := c.picker.Pending()
		if len(pending) == 0 {
			return "No pick in progress", nil
		}
		return renderPlayers("Still waiting on", pending), nil
	}

	msg, err := c.oracle.GetPickMessage(ctx, &messaging.GetPickMessageInput{
		PlayerName: chosen.Name,
		Private:    c.picker.Mode() == deck.RevealPrivate,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("The oracle chose %s\n%s", chosen.Name, msg.Message), nil
}

func (c *Console) sessionPlayers(ctx context.Context) ([]*models.Player, error) {
	output, err := c.game.GetPlayers(ctx, &game.GetPlayersInput{})
	if err != nil {
		return nil, err
	}
	if len(output.Players) == 0 {
		return nil, game.ErrNoSession
	}
	return output.Players, nil
}

func (c *Console) handleWin(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	player, err := c.sessionPlayer(ctx, args[0])
	if err != nil {
		return "", err
	}

	output, err := c.game.RecordMinigameWin(ctx, &game.RecordMinigameWinInput{PlayerID: player.ID})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has %d minigame wins", player.Name, output.Wins), nil
}

func (c *Console) handleVote(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", ErrUsage
	}
	player, err := c.sessionPlayer(ctx, args[1])
	if err != nil {
		return "", err
	}

	category := strings.ToLower(args[0])
	output, err := c.game.RecordMentionVote(ctx, &game.RecordMentionVoteInput{
		Category: category,
		PlayerID: player.ID,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has %d votes for %s", player.Name, output.Votes, category), nil
}

func (c *Console) handleLog(ctx context.Context, _ []string) (string, error) {
	players, err := c.sessionPlayers(ctx)
	if err != nil {
		return "", err
	}
	output, err := c.game.GetLog(ctx, &game.GetLogInput{})
	if err != nil {
		return "", err
	}
	return renderLog(players, output.Log), nil
}

func (c *Console) handleStats(ctx context.Context, args []string) (string, error) {
	if len(args) != 4 {
		return "", ErrUsage
	}
	player, err := c.sessionPlayer(ctx, args[0])
	if err != nil {
		return "", err
	}

	var values [3]int
	for i, raw := range args[1:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", ErrUsage
		}
		values[i] = v
	}

	_, err = c.game.UpdateStats(ctx, &game.UpdateStatsInput{
		PlayerID: player.ID,
		Tallies: models.Tallies{
			Relics:  values[0],
			Plagues: values[1],
			Powers:  values[2],
		},
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Recorded %s: %d relics, %d plagues, %d powers", player.Name, values[0], values[1], values[2]), nil
}

func (c *Console) handleFinish(ctx context.Context, _ []string) (string, error) {
	output, err := c.game.FinishGame(ctx, &game.FinishGameInput{})
	if err != nil {
		return "", err
	}
	msg := renderPlayers("Final scores", output.Results)
	if output.Duration > 0 {
		msg += fmt.Sprintf("\nPlayed for %s", output.Duration.Round(time.Second))
	}
	return msg, nil
}

func (c *Console) handleLeaderboard(ctx context.Context, _ []string) (string, error) {
	output, err := c.game.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		return "", err
	}

	players := make([]*models.Player, 0, len(output.Entries))
	var winners []string
	for _, e := range output.Entries {
		players = append(players, e.Player)
		if e.Rank == 1 {
			winners = append(winners, e.Player.Name)
		}
	}

	msg, err := c.oracle.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{PlayerNames: winners})
	if err != nil {
		return "", err
	}
	return renderLeaderboard(output, players) + "\n" + msg.Message, nil
}

func (c *Console) sessionPlayer(ctx context.Context, ref string) (*models.Player, error) {
	players, err := c.sessionPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return findPlayer(players, ref)
}

// findPlayer matches a player by ID or, ignoring case, by name
func findPlayer(players []*models.Player, ref string) (*models.Player, error) {
	for _, p := range players {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", game.ErrPlayerNotFound, ref)
}
