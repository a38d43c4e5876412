package game

import "context"

// Service defines the interface for session lifecycle operations
type Service interface {
	// StartSession persists a finalized roster and clears the previous game
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetPlayers returns the persisted roster
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// RecordMinigameWin credits a player with a deck minigame victory
	RecordMinigameWin(ctx context.Context, input *RecordMinigameWinInput) (*RecordMinigameWinOutput, error)

	// RecordMentionVote adds a vote for a player in an honor category
	RecordMentionVote(ctx context.Context, input *RecordMentionVoteInput) (*RecordMentionVoteOutput, error)

	// GetLog returns what has been recorded during play
	GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error)

	// UpdateStats replaces a player's end-of-game tallies
	UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error)

	// FinishGame scores every player and persists the results
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)

	// GetLeaderboard ranks the results and names the honor holders
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
