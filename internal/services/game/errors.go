package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilRepository     GameError = "repository cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrInvalidRosterSize GameError = "roster size out of range"
	ErrDuplicatePlayer   GameError = "duplicate player id"
	ErrNoSession         GameError = "no session in progress"
	ErrPlayerNotFound    GameError = "player not found"
	ErrEmptyCategory     GameError = "vote category cannot be empty"
	ErrReservedCategory  GameError = "vote category is reserved"
	ErrResultsNotFound   GameError = "game has not been finished"
)
