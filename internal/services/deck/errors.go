package deck

// DeckError is a custom error type for deck construction errors
type DeckError string

// Error implements the error interface
func (e DeckError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       DeckError = "config cannot be nil"
	ErrEmptyDeckID     DeckError = "deck ID cannot be empty"
	ErrNilRepository   DeckError = "document repository cannot be nil"
	ErrNilRandom       DeckError = "random source cannot be nil"
	ErrNilClock        DeckError = "clock cannot be nil"
	ErrDuplicateItem   DeckError = "catalog contains a duplicate item ID"
	ErrInvalidCooldown DeckError = "cooldown cannot be negative"
)
