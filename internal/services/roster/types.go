package roster

import (
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/common/uuid"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
)

// DefaultRevealLock is how long a revealed pact card stays locked on screen
const DefaultRevealLock = 800 * time.Millisecond

// Config holds configuration for the roster service
type Config struct {
	// NamePool feeds random names. It must hold at least models.MaxPlayers names.
	NamePool []string

	// RevealLock is the read-lock applied after a pact card is revealed
	RevealLock time.Duration

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// Draft is the player being typed in during name entry
type Draft struct {
	Name  string
	Color models.TokenColor

	// Pact is only honoured in strategic mode
	Pact models.Pact
}

// ConfigUpdate changes the session configuration; nil fields are left alone
type ConfigUpdate struct {
	PlayerCount *int
	PactMode    *models.PactMode
	NameMode    *models.NameMode
}

// RevealState is the position in the pact reveal sequence
type RevealState struct {
	// Cursor indexes the player whose card is on screen
	Cursor int

	// Revealed is true once the current card has been flipped
	Revealed bool

	// Locked blocks advancing while the card is being read
	Locked bool

	// QuitPrompt is true while the quit confirmation is showing
	QuitPrompt bool
}

// State is a snapshot of the registration flow
type State struct {
	Step    models.RegistrationStep
	Config  models.SessionConfig
	Players []*models.Player
	Draft   Draft

	// LastReason is the most recent validation failure, cleared on success
	LastReason Reason

	// EditingID is the player open in the review editor, if any
	EditingID string

	// PendingAddition is true when EditingID was added from the review and
	// has not been saved yet
	PendingAddition bool

	// ReviewOpen is true while the roster review is showing
	ReviewOpen bool

	Reveal RevealState
}

// ConfirmConfigOutput contains the result of confirming the configuration
type ConfirmConfigOutput struct {
	Step       models.RegistrationStep
	Players    []*models.Player
	ReviewOpen bool
}

// AddPlayerOutput contains the result of adding a drafted player
type AddPlayerOutput struct {
	Success bool
	Reason  Reason

	// Player is the added player on success
	Player *models.Player

	// ReviewOpen is true when the roster is complete and the review opened
	ReviewOpen bool
}

// GoBackOutput contains the result of stepping back
type GoBackOutput struct {
	Step models.RegistrationStep

	// Removed is the player taken off the roster, nil when the step changed instead
	Removed *models.Player
}

// AddPlayerInReviewOutput contains the result of adding a player from the review
type AddPlayerInReviewOutput struct {
	Success bool
	Reason  Reason
	Player  *models.Player
}

// SavePlayerChangesInput patches a player; nil fields are left alone
type SavePlayerChangesInput struct {
	PlayerID string
	Name     *string
	Color    *models.TokenColor

	// Pact is only applied in strategic mode
	Pact *models.Pact
}

// SavePlayerChangesOutput contains the result of saving an edit
type SavePlayerChangesOutput struct {
	Success bool
	Reason  Reason
	Player  *models.Player
}

// FinalizeReviewOutput contains the result of closing the review
type FinalizeReviewOutput struct {
	Success bool
	Reason  Reason

	// Ready is true when the roster can start playing without a reveal
	Ready bool

	Players []*models.Player
}

// RevealCardOutput contains the result of flipping the current card
type RevealCardOutput struct {
	// Revealed is false when the call was a no-op
	Revealed bool
	Player   *models.Player
}

// AdvanceRevealOutput contains the result of moving to the next card
type AdvanceRevealOutput struct {
	Advanced bool
	Cursor   int

	// Complete is true when the last card was already showing
	Complete bool
	Players  []*models.Player
}
