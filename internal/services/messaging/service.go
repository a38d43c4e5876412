// Package messaging voices the oracle: flavor lines for reveals, picks and
// the final standings.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
)

var revealMessages = map[models.Pact][]string{
	models.PactAtenea: {
		"Wisdom walks with you, %s. Hoard the relics and shun the plagues.",
		"Atenea lends you her shield, %s. Do not squander it.",
		"%s, the owl has chosen you. Think before every move.",
	},
	models.PactLoki: {
		"Chaos smiles on you, %s. Every plague is a gift.",
		"%s, lie well. Loki is watching and he loves a show.",
		"The trickster claims you, %s. Trust no one, least of all yourself.",
	},
	models.PactLongwang: {
		"The dragon king rises with you, %s. Power is patience.",
		"%s, Longwang's tide carries you. Gather your powers.",
		"Scales and storms, %s. The sea remembers those who serve it.",
	},
}

var pickMessages = []string{
	"The oracle has spoken: %s.",
	"The smoke clears and it points at %s.",
	"Fate shrugs and chooses %s.",
	"No appeals. It is %s.",
}

var privatePickMessages = []string{
	"Everyone has looked. The burden falls on %s.",
	"The secret is out: %s was chosen all along.",
}

var deckResetMessages = []string{
	"The %s deck is spent. The oracle shuffles it back into being.",
	"Every %s card has been seen. They return, just as hungry.",
}

var winnerMessages = []string{
	"Glory to %s!",
	"The oracle bows before %s.",
	"%s, the table is yours.",
}

// service implements the Service interface
type service struct {
	random random.Source
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: cfg.Random,
	}, nil
}

// GetRevealMessage returns the oracle's line for a revealed pact
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages, ok := revealMessages[input.Pact]
	if !ok {
		return nil, fmt.Errorf("unknown pact %q", input.Pact)
	}

	return &GetRevealMessageOutput{
		Message: fmt.Sprintf(random.Pick(s.random, messages), input.PlayerName),
		Tone:    ToneSolemn,
	}, nil
}

// GetPickMessage returns the oracle's line for an arbitration pick
func (s *service) GetPickMessage(ctx context.Context, input *GetPickMessageInput) (*GetPickMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := pickMessages
	if input.Private {
		messages = privatePickMessages
	}

	return &GetPickMessageOutput{
		Message: fmt.Sprintf(random.Pick(s.random, messages), input.PlayerName),
		Tone:    ToneMocking,
	}, nil
}

// GetDeckResetMessage returns a line for a reshuffled deck
func (s *service) GetDeckResetMessage(ctx context.Context, input *GetDeckResetMessageInput) (*GetDeckResetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetDeckResetMessageOutput{
		Message: fmt.Sprintf(random.Pick(s.random, deckResetMessages), input.DeckID),
		Tone:    ToneSolemn,
	}, nil
}

// GetWinnerMessage returns a line crowning everyone tied for first
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil || len(input.PlayerNames) == 0 {
		return nil, errors.New("at least one winner is required")
	}

	names := input.PlayerNames[0]
	if n := len(input.PlayerNames); n > 1 {
		names = strings.Join(input.PlayerNames[:n-1], ", ") + " and " + input.PlayerNames[n-1]
	}

	return &GetWinnerMessageOutput{
		Message: fmt.Sprintf(random.Pick(s.random, winnerMessages), names),
		Tone:    ToneCelebration,
	}, nil
}
