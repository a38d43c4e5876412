// Package catalog holds the static content decks and the random name pool.
package catalog

import (
	"embed"
	"fmt"

	"github.com/KirkDiggler/oraculo/internal/models"
	"gopkg.in/yaml.v3"
)

// Deck IDs
const (
	DeckMinigames = "minigames"
	DeckOracle    = "oracle"
	DeckDestiny   = "destiny"
)

//go:embed data/*.yaml
var files embed.FS

var deckFiles = map[string]string{
	DeckMinigames: "data/minigames.yaml",
	DeckOracle:    "data/oracle.yaml",
	DeckDestiny:   "data/destiny.yaml",
}

// DeckIDs lists the built-in decks in a stable order
func DeckIDs() []string {
	return []string{DeckMinigames, DeckOracle, DeckDestiny}
}

// Deck returns the cards of a built-in deck
func Deck(deckID string) ([]models.DeckItem, error) {
	path, ok := deckFiles[deckID]
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", deckID)
	}

	raw, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", deckID, err)
	}

	return ParseDeck(raw)
}

// ParseDeck decodes a YAML list of cards, rejecting duplicate or empty IDs
func ParseDeck(raw []byte) ([]models.DeckItem, error) {
	var items []models.DeckItem
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("deck item %q has no id", item.Title)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate deck item id %q", item.ID)
		}
		seen[item.ID] = true
	}

	return items, nil
}

// Names returns the pool random rosters are drawn from
func Names() ([]string, error) {
	raw, err := files.ReadFile("data/names.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}

	var names []string
	if err := yaml.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("failed to parse names: %w", err)
	}

	return names, nil
}

// Categories returns the distinct categories of items in first-seen order
func Categories(items []models.DeckItem) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
