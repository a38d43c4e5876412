package models

// DeckItem is a single card in a content deck
type DeckItem struct {
	// ID is unique within its deck
	ID string `json:"id" yaml:"id"`

	// Category is the filter tag of the card
	Category string `json:"category" yaml:"category"`

	// Title is the short label shown on the card
	Title string `json:"title" yaml:"title"`

	// Text is the body of the card
	Text string `json:"text,omitempty" yaml:"text"`
}
