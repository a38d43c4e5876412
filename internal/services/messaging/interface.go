package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRevealMessage returns the oracle's line for a revealed pact
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetPickMessage returns the oracle's line for an arbitration pick
	GetPickMessage(ctx context.Context, input *GetPickMessageInput) (*GetPickMessageOutput, error)

	// GetDeckResetMessage returns a line for a reshuffled deck
	GetDeckResetMessage(ctx context.Context, input *GetDeckResetMessageInput) (*GetDeckResetMessageOutput, error)

	// GetWinnerMessage returns a line crowning the leaderboard
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)
}
