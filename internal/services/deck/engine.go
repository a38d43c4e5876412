// Package deck draws content cards without repetition until a deck is
// exhausted, and picks players at random for arbitration.
package deck

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/oraculo/internal/catalog"
	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/KirkDiggler/oraculo/internal/repositories/document"
)

// Engine draws from one deck. The draw history is persisted under the
// deck's history key; filters, the displayed card and the cooldown live in
// memory.
type Engine struct {
	mu sync.Mutex

	deckID   string
	catalog  []models.DeckItem
	cooldown time.Duration
	repo     document.Repository
	random   random.Source
	clock    clock.Clock

	filters     map[string]bool
	current     *models.DeckItem
	coolingDown bool
	timer       clock.Timer
	generation  uint64
}

// New creates a deck engine with every catalog category active
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DeckID == "" {
		return nil, ErrEmptyDeckID
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Cooldown < 0 {
		return nil, ErrInvalidCooldown
	}

	seen := make(map[string]bool, len(cfg.Catalog))
	filters := make(map[string]bool)
	for _, item := range cfg.Catalog {
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = true
		filters[item.Category] = true
	}

	cooldown := cfg.Cooldown
	if cooldown == 0 {
		cooldown = DefaultCooldown
	}

	return &Engine{
		deckID:   cfg.DeckID,
		catalog:  append([]models.DeckItem(nil), cfg.Catalog...),
		cooldown: cooldown,
		repo:     cfg.Repository,
		random:   cfg.Random,
		clock:    cfg.Clock,
		filters:  filters,
	}, nil
}

// DeckID returns the deck's identifier
func (e *Engine) DeckID() string {
	return e.deckID
}

// Categories returns every category in the deck in catalog order, active
// or not
func (e *Engine) Categories() []string {
	return catalog.Categories(e.catalog)
}

// Filters returns the active categories in catalog order
func (e *Engine) Filters() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.activeFiltersLocked()
}

// ToggleFilter flips a category and reports whether it is now active. The
// draw history is untouched; the displayed card is cleared.
func (e *Engine) ToggleFilter(category string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.filters[category] = !e.filters[category]
	e.current = nil
	return e.filters[category]
}

// SetFilters replaces the active categories
func (e *Engine) SetFilters(categories []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.filters = make(map[string]bool, len(categories))
	for _, c := range categories {
		e.filters[c] = true
	}
	e.current = nil
}

// Current returns the card on display, if any
func (e *Engine) Current() *models.DeckItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return nil
	}
	item := *e.current
	return &item
}

// AvailablePool returns the undrawn cards matching the active filters
func (e *Engine) AvailablePool(ctx context.Context) ([]models.DeckItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	used, err := e.loadUsedLocked(ctx)
	if err != nil {
		return nil, err
	}

	pool, _ := e.poolLocked(used)
	return pool, nil
}

// IsExhausted reports whether cards match the filters but all were drawn
func (e *Engine) IsExhausted(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	used, err := e.loadUsedLocked(ctx)
	if err != nil {
		return false, err
	}

	pool, filtered := e.poolLocked(used)
	return filtered > 0 && len(pool) == 0, nil
}

// State returns a snapshot of the deck
func (e *Engine) State(ctx context.Context) (*State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	used, err := e.loadUsedLocked(ctx)
	if err != nil {
		return nil, err
	}

	pool, filtered := e.poolLocked(used)
	state := &State{
		DeckID:      e.deckID,
		Filters:     e.activeFiltersLocked(),
		Pool:        pool,
		UsedIDs:     used,
		Exhausted:   filtered > 0 && len(pool) == 0,
		CoolingDown: e.coolingDown,
	}
	if e.current != nil {
		item := *e.current
		state.Current = &item
	}
	return state, nil
}

// Draw picks one undrawn card uniformly at random and records it. While
// the deck is exhausted the request resets the history instead and draws
// nothing; the next request draws from the full pool again. Requests during
// the cooldown are refused.
func (e *Engine) Draw(ctx context.Context) (*DrawOutput, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.coolingDown {
		return &DrawOutput{CoolingDown: true}, nil
	}

	used, err := e.loadUsedLocked(ctx)
	if err != nil {
		return nil, err
	}

	pool, filtered := e.poolLocked(used)
	if filtered == 0 {
		return &DrawOutput{Empty: true}, nil
	}

	if len(pool) == 0 {
		if err := e.resetUsedLocked(ctx); err != nil {
			return nil, err
		}
		return &DrawOutput{
			Reset:     true,
			Remaining: filtered,
		}, nil
	}

	item := random.Pick(e.random, pool)
	used = append(used, item.ID)
	if err := document.SaveJSON(ctx, e.repo, document.DeckHistoryKey(e.deckID), used); err != nil {
		return nil, fmt.Errorf("failed to save %s history: %w", e.deckID, err)
	}

	e.current = &item
	e.startCooldownLocked()

	drawn := item
	return &DrawOutput{
		Item:      &drawn,
		Remaining: len(pool) - 1,
	}, nil
}

// ResetUsed clears the persisted draw history
func (e *Engine) ResetUsed(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetUsedLocked(ctx)
}

// Stop cancels a running cooldown
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.coolingDown = false
}

func (e *Engine) resetUsedLocked(ctx context.Context) error {
	if err := e.repo.Delete(ctx, &document.DeleteInput{Key: document.DeckHistoryKey(e.deckID)}); err != nil {
		return fmt.Errorf("failed to reset %s history: %w", e.deckID, err)
	}
	e.current = nil
	log.Printf("Deck %s reset", e.deckID)
	return nil
}

func (e *Engine) startCooldownLocked() {
	e.generation++
	gen := e.generation
	e.coolingDown = true

	e.timer = e.clock.AfterFunc(e.cooldown, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if gen != e.generation {
			return
		}
		e.coolingDown = false
		e.timer = nil
	})
}

func (e *Engine) loadUsedLocked(ctx context.Context) ([]string, error) {
	var used []string
	if _, err := document.LoadJSON(ctx, e.repo, document.DeckHistoryKey(e.deckID), &used); err != nil {
		return nil, fmt.Errorf("failed to load %s history: %w", e.deckID, err)
	}
	return used, nil
}

// poolLocked returns the undrawn filtered cards and the size of the
// filtered catalog
func (e *Engine) poolLocked(used []string) ([]models.DeckItem, int) {
	drawn := make(map[string]bool, len(used))
	for _, id := range used {
		drawn[id] = true
	}

	var pool []models.DeckItem
	filtered := 0
	for _, item := range e.catalog {
		if !e.filters[item.Category] {
			continue
		}
		filtered++
		if !drawn[item.ID] {
			pool = append(pool, item)
		}
	}
	return pool, filtered
}

func (e *Engine) activeFiltersLocked() []string {
	var out []string
	for _, category := range catalog.Categories(e.catalog) {
		if e.filters[category] {
			out = append(out, category)
		}
	}
	return out
}
