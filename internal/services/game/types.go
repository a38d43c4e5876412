package game

import (
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/repositories/document"
)

// Config holds configuration for the game service
type Config struct {
	Repository document.Repository
	Clock      clock.Clock
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	Players []*models.Player
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Players []*models.Player
}

// GetPlayersInput contains parameters for reading the roster
type GetPlayersInput struct{}

// GetPlayersOutput contains the persisted roster; empty when no session exists
type GetPlayersOutput struct {
	Players []*models.Player
}

// RecordMinigameWinInput contains parameters for recording a minigame win
type RecordMinigameWinInput struct {
	PlayerID string
}

// RecordMinigameWinOutput contains the player's updated win count
type RecordMinigameWinOutput struct {
	Wins int
}

// RecordMentionVoteInput contains parameters for recording a vote
type RecordMentionVoteInput struct {
	Category string
	PlayerID string
}

// RecordMentionVoteOutput contains the player's updated vote count
type RecordMentionVoteOutput struct {
	Votes int
}

// GetLogInput contains parameters for reading the game log
type GetLogInput struct{}

// GetLogOutput contains the game log
type GetLogOutput struct {
	Log *models.GameLog
}

// UpdateStatsInput contains parameters for updating a player's tallies
type UpdateStatsInput struct {
	PlayerID string
	Tallies  models.Tallies
}

// UpdateStatsOutput contains every player's tallies
type UpdateStatsOutput struct {
	Stats map[string]models.Tallies
}

// FinishGameInput contains parameters for finishing the game
type FinishGameInput struct {
	// Tallies override the persisted stats per player ID
	Tallies map[string]models.Tallies
}

// FinishGameOutput contains the scored players in roster order
type FinishGameOutput struct {
	Results []*models.Player

	// Duration is the time since the session started, zero when unknown
	Duration time.Duration
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput contains the final standings
type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry

	// Honors holds one holder per category that has one
	Honors []models.Honor
}
