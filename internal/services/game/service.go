// Package game runs the persisted part of a session: the roster, the play
// log, end-of-game tallies and the final leaderboard.
package game

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/repositories/document"
	"github.com/KirkDiggler/oraculo/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	mu    sync.Mutex
	repo  document.Repository
	clock clock.Clock
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:  cfg.Repository,
		clock: cfg.Clock,
	}, nil
}

// StartSession persists the roster, zeroes the stats and drops the previous
// log and results. Each document is written independently.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}
	if len(input.Players) < models.MinPlayers || len(input.Players) > models.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidRosterSize, len(input.Players))
	}

	players := make([]*models.Player, 0, len(input.Players))
	stats := make(map[string]models.Tallies, len(input.Players))
	for _, p := range input.Players {
		if p == nil || p.ID == "" {
			return nil, ErrPlayerNotFound
		}
		if _, ok := stats[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		stats[p.ID] = models.Tallies{}

		player := p.Clone()
		player.Score = nil
		player.ScoreDetails = nil
		players = append(players, player)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := document.SaveJSON(ctx, s.repo, document.KeyPlayers, players); err != nil {
		return nil, fmt.Errorf("failed to save players: %w", err)
	}
	if err := document.SaveJSON(ctx, s.repo, document.KeyStats, stats); err != nil {
		return nil, fmt.Errorf("failed to save stats: %w", err)
	}
	gameLog := models.NewGameLog()
	gameLog.StartedAt = s.clock.Now()
	if err := document.SaveJSON(ctx, s.repo, document.KeyLog, gameLog); err != nil {
		return nil, fmt.Errorf("failed to save log: %w", err)
	}
	if err := s.repo.Delete(ctx, &document.DeleteInput{Key: document.KeyResults}); err != nil {
		return nil, fmt.Errorf("failed to clear results: %w", err)
	}

	log.Printf("Session started with %d players", len(players))

	return &StartSessionOutput{
		Players: models.ClonePlayers(players),
	}, nil
}

// GetPlayers returns the persisted roster
func (s *service) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadPlayersLocked(ctx)
	if err != nil {
		return nil, err
	}

	return &GetPlayersOutput{
		Players: players,
	}, nil
}

// RecordMinigameWin credits a player with a deck minigame victory
func (s *service) RecordMinigameWin(ctx context.Context, input *RecordMinigameWinInput) (*RecordMinigameWinOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayerLocked(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	gameLog, err := s.loadLogLocked(ctx)
	if err != nil {
		return nil, err
	}

	gameLog.MinigameWins[input.PlayerID]++
	if err := document.SaveJSON(ctx, s.repo, document.KeyLog, gameLog); err != nil {
		return nil, fmt.Errorf("failed to save log: %w", err)
	}

	return &RecordMinigameWinOutput{
		Wins: gameLog.MinigameWins[input.PlayerID],
	}, nil
}

// RecordMentionVote adds a vote for a player in an honor category
func (s *service) RecordMentionVote(ctx context.Context, input *RecordMentionVoteInput) (*RecordMentionVoteOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if category == models.CategoryMinigames {
		return nil, fmt.Errorf("%w: %s", ErrReservedCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayerLocked(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	gameLog, err := s.loadLogLocked(ctx)
	if err != nil {
		return nil, err
	}

	votes := gameLog.MentionVotes[category]
	if votes == nil {
		votes = make(map[string]int)
		gameLog.MentionVotes[category] = votes
	}
	votes[input.PlayerID]++

	if err := document.SaveJSON(ctx, s.repo, document.KeyLog, gameLog); err != nil {
		return nil, fmt.Errorf("failed to save log: %w", err)
	}

	return &RecordMentionVoteOutput{
		Votes: votes[input.PlayerID],
	}, nil
}

// GetLog returns the game log; empty when nothing was recorded
func (s *service) GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gameLog, err := s.loadLogLocked(ctx)
	if err != nil {
		return nil, err
	}

	return &GetLogOutput{
		Log: gameLog,
	}, nil
}

// UpdateStats replaces a player's tallies
func (s *service) UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayerLocked(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	stats, err := s.loadStatsLocked(ctx)
	if err != nil {
		return nil, err
	}

	stats[input.PlayerID] = input.Tallies
	if err := document.SaveJSON(ctx, s.repo, document.KeyStats, stats); err != nil {
		return nil, fmt.Errorf("failed to save stats: %w", err)
	}

	return &UpdateStatsOutput{
		Stats: stats,
	}, nil
}

// FinishGame scores every player from the persisted stats, overridden by any
// tallies in the input, and saves the results. Players without tallies
// score from zeros.
func (s *service) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadPlayersLocked(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, ErrNoSession
	}

	stats, err := s.loadStatsLocked(ctx)
	if err != nil {
		return nil, err
	}
	if input != nil {
		for id, tallies := range input.Tallies {
			stats[id] = tallies
		}
	}

	results := make([]*models.Player, 0, len(players))
	for _, p := range players {
		results = append(results, scoring.ApplyScore(p, stats[p.ID]))
	}

	if err := document.SaveJSON(ctx, s.repo, document.KeyResults, results); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}

	gameLog, err := s.loadLogLocked(ctx)
	if err != nil {
		return nil, err
	}
	var elapsed time.Duration
	if !gameLog.StartedAt.IsZero() {
		elapsed = s.clock.Now().Sub(gameLog.StartedAt)
	}

	log.Printf("Game finished for %d players after %s", len(results), elapsed.Round(time.Second))

	return &FinishGameOutput{
		Results:  models.ClonePlayers(results),
		Duration: elapsed,
	}, nil
}

// GetLeaderboard ranks the persisted results using the play log for honors
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []*models.Player
	found, err := document.LoadJSON(ctx, s.repo, document.KeyResults, &results)
	if err != nil {
		return nil, err
	}
	if !found || len(results) == 0 {
		return nil, ErrResultsNotFound
	}

	gameLog, err := s.loadLogLocked(ctx)
	if err != nil {
		return nil, err
	}

	honors := scoring.HonorCounts(results, gameLog)

	return &GetLeaderboardOutput{
		Entries: scoring.Rank(results, honors),
		Honors:  scoring.TopHonors(results, gameLog),
	}, nil
}

func (s *service) loadPlayersLocked(ctx context.Context) ([]*models.Player, error) {
	var players []*models.Player
	if _, err := document.LoadJSON(ctx, s.repo, document.KeyPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *service) loadStatsLocked(ctx context.Context) (map[string]models.Tallies, error) {
	stats := make(map[string]models.Tallies)
	if _, err := document.LoadJSON(ctx, s.repo, document.KeyStats, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = make(map[string]models.Tallies)
	}
	return stats, nil
}

func (s *service) loadLogLocked(ctx context.Context) (*models.GameLog, error) {
	gameLog := models.NewGameLog()
	if _, err := document.LoadJSON(ctx, s.repo, document.KeyLog, gameLog); err != nil {
		return nil, err
	}
	gameLog.Normalize()
	return gameLog, nil
}

func (s *service) requirePlayerLocked(ctx context.Context, playerID string) error {
	players, err := s.loadPlayersLocked(ctx)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		return ErrNoSession
	}
	for _, p := range players {
		if p.ID == playerID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}
