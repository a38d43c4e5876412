package deck

import (
	"sync"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
)

// RevealMode controls who sees a pick and when
type RevealMode string

const (
	// RevealPublic shows the chosen player to everyone at once
	RevealPublic RevealMode = "public"

	// RevealPrivate lets each eligible player check their own outcome; the
	// result is withheld until all of them have looked
	RevealPrivate RevealMode = "private"
)

// PickerConfig holds configuration for the arbitration picker
type PickerConfig struct {
	Random random.Source
}

// PickInput contains parameters for a pick
type PickInput struct {
	// Candidates is the roster to pick from
	Candidates []*models.Player

	// ExcludedIDs are players who sit this pick out
	ExcludedIDs []string

	Mode RevealMode
}

// PickOutput contains the result of a pick
type PickOutput struct {
	// NoCandidates is true when every candidate was excluded
	NoCandidates bool

	// Eligible is the candidate pool after exclusions
	Eligible []*models.Player

	// Chosen is set immediately in public mode only
	Chosen *models.Player
}

// ViewOutcomeOutput contains one player's private outcome
type ViewOutcomeOutput struct {
	// Eligible is false for players outside the pool; they learn nothing
	Eligible bool

	// Chosen tells the viewer whether they were picked
	Chosen bool

	// AllViewed is true once every eligible player has looked
	AllViewed bool
}

// Picker is a one-shot draw over players: the pool is the candidate list
// minus exclusions and nothing carries over between picks.
type Picker struct {
	mu     sync.Mutex
	random random.Source

	mode     RevealMode
	eligible []*models.Player
	chosen   *models.Player
	viewed   map[string]bool
}

// NewPicker creates an arbitration picker
func NewPicker(cfg *PickerConfig) (*Picker, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &Picker{
		random: cfg.Random,
	}, nil
}

// Pick chooses one eligible candidate uniformly at random, replacing any
// previous pick
func (p *Picker) Pick(input *PickInput) *PickOutput {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLocked()
	if input == nil {
		return &PickOutput{NoCandidates: true}
	}

	excluded := make(map[string]bool, len(input.ExcludedIDs))
	for _, id := range input.ExcludedIDs {
		excluded[id] = true
	}

	var eligible []*models.Player
	for _, c := range input.Candidates {
		if c != nil && !excluded[c.ID] {
			eligible = append(eligible, c.Clone())
		}
	}
	if len(eligible) == 0 {
		return &PickOutput{NoCandidates: true}
	}

	mode := input.Mode
	if mode != RevealPrivate {
		mode = RevealPublic
	}

	p.mode = mode
	p.eligible = eligible
	p.chosen = random.Pick(p.random, eligible)
	p.viewed = make(map[string]bool, len(eligible))

	output := &PickOutput{
		Eligible: models.ClonePlayers(eligible),
	}
	if mode == RevealPublic {
		output.Chosen = p.chosen.Clone()
	}
	return output
}

// ViewOutcome records that a player looked at their private outcome
func (p *Picker) ViewOutcome(playerID string) *ViewOutcomeOutput {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chosen == nil || !p.isEligibleLocked(playerID) {
		return &ViewOutcomeOutput{AllViewed: p.allViewedLocked()}
	}

	p.viewed[playerID] = true
	return &ViewOutcomeOutput{
		Eligible:  true,
		Chosen:    p.chosen.ID == playerID,
		AllViewed: p.allViewedLocked(),
	}
}

// Result returns the chosen player once it may be shown to the table: at
// once in public mode, after every eligible player has viewed in private mode
func (p *Picker) Result() (*models.Player, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chosen == nil {
		return nil, false
	}
	if p.mode == RevealPrivate && !p.allViewedLocked() {
		return nil, false
	}
	return p.chosen.Clone(), true
}

// Mode returns the reveal mode of the current pick
func (p *Picker) Mode() RevealMode {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.mode
}

// Pending returns the eligible players who have not viewed yet
func (p *Picker) Pending() []*models.Player {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*models.Player
	for _, e := range p.eligible {
		if !p.viewed[e.ID] {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Clear forgets the current pick
func (p *Picker) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLocked()
}

func (p *Picker) clearLocked() {
	p.mode = ""
	p.eligible = nil
	p.chosen = nil
	p.viewed = nil
}

func (p *Picker) isEligibleLocked(playerID string) bool {
	for _, e := range p.eligible {
		if e.ID == playerID {
			return true
		}
	}
	return false
}

func (p *Picker) allViewedLocked() bool {
	if p.chosen == nil {
		return false
	}
	for _, e := range p.eligible {
		if !p.viewed[e.ID] {
			return false
		}
	}
	return true
}
