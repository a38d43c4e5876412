package document

import (
	"encoding/json"
	"errors"
)

// Logical document keys
const (
	KeyPlayers = "players"
	KeyStats   = "stats"
	KeyResults = "results"
	KeyLog     = "log"

	deckHistoryPrefix = "deck-history:"
)

// ErrNotFound is returned when no document is stored under a key
var ErrNotFound = errors.New("document not found")

// DeckHistoryKey is the key holding the drawn item IDs of a deck
func DeckHistoryKey(deckID string) string {
	return deckHistoryPrefix + deckID
}

// LoadInput names the document to read
type LoadInput struct {
	Key string
}

// LoadOutput holds the raw JSON document
type LoadOutput struct {
	Data json.RawMessage
}

// SaveInput holds a raw JSON document and the key to store it under
type SaveInput struct {
	Key  string
	Data json.RawMessage
}

// DeleteInput names the document to remove
type DeleteInput struct {
	Key string
}
