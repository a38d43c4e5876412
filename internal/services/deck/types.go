package deck

import (
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/KirkDiggler/oraculo/internal/repositories/document"
)

// DefaultCooldown is how long draws are refused after a successful draw
const DefaultCooldown = 1500 * time.Millisecond

// Config holds configuration for a deck engine
type Config struct {
	// DeckID scopes the persisted draw history
	DeckID string

	// Catalog is the static list of cards
	Catalog []models.DeckItem

	// Cooldown after each draw. Zero uses DefaultCooldown.
	Cooldown time.Duration

	// Dependencies
	Repository document.Repository
	Random     random.Source
	Clock      clock.Clock
}

// DrawOutput contains the result of a draw request
type DrawOutput struct {
	// Item is the drawn card, nil when nothing was drawn
	Item *models.DeckItem

	// Reset is true when the deck was exhausted and the request only
	// cleared the history
	Reset bool

	// CoolingDown is true when the request was refused by the cooldown
	CoolingDown bool

	// Empty is true when no card matches the active filters
	Empty bool

	// Remaining is the number of undrawn cards left under the active filters
	Remaining int
}

// State is a snapshot of a deck
type State struct {
	DeckID string

	// Filters are the active categories
	Filters []string

	// Pool is the undrawn cards matching the active filters
	Pool []models.DeckItem

	// UsedIDs are the cards drawn since the last reset, in draw order
	UsedIDs []string

	// Exhausted is true when cards match the filters but all were drawn
	Exhausted bool

	CoolingDown bool

	// Current is the card on display, if any
	Current *models.DeckItem
}
