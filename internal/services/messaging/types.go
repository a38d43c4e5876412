package messaging

import (
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneSolemn is the oracle's default voice
	ToneSolemn MessageTone = "solemn"

	// ToneMocking teases the table
	ToneMocking MessageTone = "mocking"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	Random random.Source
}

// GetRevealMessageInput contains parameters for a pact reveal line
type GetRevealMessageInput struct {
	PlayerName string
	Pact       models.Pact
}

// GetRevealMessageOutput contains the reveal line
type GetRevealMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetPickMessageInput contains parameters for a pick line
type GetPickMessageInput struct {
	PlayerName string

	// Private picks are announced after everyone has looked
	Private bool
}

// GetPickMessageOutput contains the pick line
type GetPickMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDeckResetMessageInput contains parameters for a reshuffle line
type GetDeckResetMessageInput struct {
	DeckID string
}

// GetDeckResetMessageOutput contains the reshuffle line
type GetDeckResetMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetWinnerMessageInput contains parameters for the winner line
type GetWinnerMessageInput struct {
	// PlayerNames holds every player sharing first place
	PlayerNames []string
}

// GetWinnerMessageOutput contains the winner line
type GetWinnerMessageOutput struct {
	Message string
	Tone    MessageTone
}
