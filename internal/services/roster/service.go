package roster

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/common/uuid"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/KirkDiggler/oraculo/internal/services/pact"
)

// service implements the Service interface.
//
// Every exported method takes mu; timer callbacks run on their own goroutine
// and take it too.
type service struct {
	mu sync.Mutex

	random     random.Source
	clock      clock.Clock
	ids        uuid.Generator
	namePool   []string
	revealLock time.Duration

	step       models.RegistrationStep
	config     models.SessionConfig
	players    []*models.Player
	draft      Draft
	lastReason Reason

	editingID    string
	pendingAddID string
	reviewOpen   bool

	reveal    RevealState
	lockTimer clock.Timer

	// generation invalidates callbacks scheduled before a reset
	generation uint64
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if len(uniqueNames(cfg.NamePool)) < models.MaxPlayers {
		return nil, ErrNamePoolTooSmall
	}
	if cfg.RevealLock < 0 {
		return nil, ErrInvalidRevealLock
	}

	lock := cfg.RevealLock
	if lock == 0 {
		lock = DefaultRevealLock
	}

	s := &service{
		random:     cfg.Random,
		clock:      cfg.Clock,
		ids:        cfg.UUIDGenerator,
		namePool:   uniqueNames(cfg.NamePool),
		revealLock: lock,
	}
	s.resetLocked()

	return s, nil
}

// State returns a snapshot of the registration flow
func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.healLocked()

	return State{
		Step:            s.step,
		Config:          s.config,
		Players:         models.ClonePlayers(s.players),
		Draft:           s.draft,
		LastReason:      s.lastReason,
		EditingID:       s.editingID,
		PendingAddition: s.pendingAddID != "",
		ReviewOpen:      s.reviewOpen,
		Reveal:          s.reveal,
	}
}

// Reset starts a fresh registration
func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
}

func (s *service) resetLocked() {
	s.cancelLockLocked()

	s.step = models.StepConfig
	s.config = models.DefaultSessionConfig()
	s.players = nil
	s.lastReason = ReasonNone
	s.editingID = ""
	s.pendingAddID = ""
	s.reviewOpen = false
	s.reveal = RevealState{}
	s.resetDraftLocked()
}

// UpdateConfig changes the session configuration without validation
func (s *service) UpdateConfig(update ConfigUpdate) models.SessionConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.PlayerCount != nil {
		s.config.PlayerCount = *update.PlayerCount
	}
	if update.PactMode != nil {
		s.config.PactMode = *update.PactMode
	}
	if update.NameMode != nil {
		s.config.NameMode = *update.NameMode
	}

	return s.config
}

// ConfirmConfig leaves the configuration step. Random rosters are generated
// immediately and shown for review; custom rosters start empty.
func (s *service) ConfirmConfig() *ConfirmConfigOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.PlayerCount = clampPlayerCount(s.config.PlayerCount)
	s.editingID = ""
	s.pendingAddID = ""
	s.lastReason = ReasonNone
	s.step = models.StepInputNames

	if s.config.NameMode == models.NameModeRandom {
		s.players = s.randomRosterLocked(s.config.PlayerCount)
		s.reviewOpen = true
	} else {
		s.players = nil
		s.reviewOpen = false
	}
	s.resetDraftLocked()

	return &ConfirmConfigOutput{
		Step:       s.step,
		Players:    models.ClonePlayers(s.players),
		ReviewOpen: s.reviewOpen,
	}
}

// SetDraft replaces the player being typed in
func (s *service) SetDraft(draft Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = draft
}

// AddPlayer validates the draft and appends it to the roster
func (s *service) AddPlayer(draft Draft) *AddPlayerOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepInputNames {
		return &AddPlayerOutput{Reason: ReasonWrongStep}
	}

	if len(s.players) >= s.config.PlayerCount {
		s.reviewOpen = true
		return &AddPlayerOutput{ReviewOpen: true}
	}

	s.draft = draft
	name := strings.TrimSpace(draft.Name)
	if reason := s.validateLocked("", name, draft.Color); reason != ReasonNone {
		s.lastReason = reason
		return &AddPlayerOutput{Reason: reason}
	}

	chosenPact := models.DefaultPact
	if s.config.PactMode == models.PactModeStrategic && draft.Pact.IsValid() {
		chosenPact = draft.Pact
	}

	player := &models.Player{
		ID:    s.ids.NewID(),
		Name:  name,
		Color: draft.Color,
		Pact:  chosenPact,
	}
	s.players = append(s.players, player)
	s.lastReason = ReasonNone
	s.draft = Draft{
		Color: s.nextFreeColorLocked(player.Color),
		Pact:  models.DefaultPact,
	}

	if len(s.players) >= s.config.PlayerCount {
		s.reviewOpen = true
	}
	s.healLocked()

	return &AddPlayerOutput{
		Success:    true,
		Player:     player.Clone(),
		ReviewOpen: s.reviewOpen,
	}
}

// GoBackOneStep removes the last added player and puts it back in the
// draft. With an empty roster it returns to the configuration step.
func (s *service) GoBackOneStep() *GoBackOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepInputNames {
		return &GoBackOutput{Step: s.step}
	}

	s.lastReason = ReasonNone
	if len(s.players) == 0 {
		s.step = models.StepConfig
		s.reviewOpen = false
		s.resetDraftLocked()
		return &GoBackOutput{Step: s.step}
	}

	last := s.players[len(s.players)-1]
	s.players = s.players[:len(s.players)-1]
	s.draft = Draft{
		Name:  last.Name,
		Color: last.Color,
		Pact:  last.Pact,
	}
	s.reviewOpen = false
	s.healLocked()

	return &GoBackOutput{
		Step:    s.step,
		Removed: last.Clone(),
	}
}

// OpenReview shows the roster review
func (s *service) OpenReview() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == models.StepInputNames {
		s.reviewOpen = true
	}
}

// StartEditing opens a player in the review editor. A pending addition for
// another player is rolled back first.
func (s *service) StartEditing(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(playerID) < 0 {
		return false
	}

	if s.pendingAddID != "" && s.pendingAddID != playerID {
		s.cancelEditingLocked()
	}
	s.editingID = playerID
	return true
}

// AddPlayerInReview appends a player with a random unused name and color and
// opens it for editing. Cancelling the edit removes it again.
func (s *service) AddPlayerInReview() *AddPlayerInReviewOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepInputNames {
		return &AddPlayerInReviewOutput{Reason: ReasonWrongStep}
	}

	s.cancelEditingLocked()

	if len(s.players) >= models.MaxPlayers {
		return &AddPlayerInReviewOutput{Reason: ReasonRosterFull}
	}

	player := &models.Player{
		ID:    s.ids.NewID(),
		Name:  s.randomUnusedNameLocked(),
		Color: s.nextFreeColorLocked(""),
		Pact:  models.DefaultPact,
	}
	s.players = append(s.players, player)
	s.editingID = player.ID
	s.pendingAddID = player.ID

	return &AddPlayerInReviewOutput{
		Success: true,
		Player:  player.Clone(),
	}
}

// SavePlayerChanges validates and applies an edit. Uniqueness is checked
// against every other player.
func (s *service) SavePlayerChanges(input *SavePlayerChangesInput) *SavePlayerChangesOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input == nil {
		return &SavePlayerChangesOutput{Reason: ReasonPlayerNotFound}
	}

	idx := s.indexOfLocked(input.PlayerID)
	if idx < 0 {
		s.healLocked()
		return &SavePlayerChangesOutput{Reason: ReasonPlayerNotFound}
	}
	current := s.players[idx]

	name := current.Name
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	color := current.Color
	if input.Color != nil {
		color = *input.Color
	}

	if reason := s.validateLocked(current.ID, name, color); reason != ReasonNone {
		s.lastReason = reason
		return &SavePlayerChangesOutput{Reason: reason}
	}

	chosenPact := current.Pact
	if input.Pact != nil && s.config.PactMode == models.PactModeStrategic {
		if !input.Pact.IsValid() {
			s.lastReason = ReasonInvalidPact
			return &SavePlayerChangesOutput{Reason: ReasonInvalidPact}
		}
		chosenPact = *input.Pact
	}

	current.Name = name
	current.Color = color
	current.Pact = chosenPact
	s.lastReason = ReasonNone

	if s.editingID == current.ID {
		s.editingID = ""
		s.pendingAddID = ""
	}

	return &SavePlayerChangesOutput{
		Success: true,
		Player:  current.Clone(),
	}
}

// CancelEditing closes the editor
func (s *service) CancelEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelEditingLocked()
}

func (s *service) cancelEditingLocked() {
	if s.pendingAddID != "" && s.pendingAddID == s.editingID {
		s.removeLocked(s.pendingAddID)
	}
	s.editingID = ""
	s.pendingAddID = ""
	s.lastReason = ReasonNone
}

// DeletePlayer removes a player from the roster. Only the name entry step
// allows it; the dealt roster is fixed once the reveal starts.
func (s *service) DeletePlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepInputNames {
		return false
	}

	removed := s.removeLocked(playerID)
	s.healLocked()
	return removed
}

// ReplacePlayers swaps in a roster mutated outside the flow. A reveal in
// progress is abandoned and the review reopens.
func (s *service) ReplacePlayers(players []*models.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = models.ClonePlayers(players)
	if s.step == models.StepRevealPacts {
		s.abandonRevealLocked()
	}
	s.healLocked()
}

// FinalizeReview closes the review. Strategic rosters already hold their
// final pacts and are ready to play. Otherwise pacts are dealt afresh for
// the actual roster size and the reveal starts.
func (s *service) FinalizeReview() *FinalizeReviewOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepInputNames {
		return &FinalizeReviewOutput{Reason: ReasonWrongStep}
	}

	s.cancelEditingLocked()

	if len(s.players) < models.MinPlayers {
		s.lastReason = ReasonNotEnoughPlayers
		return &FinalizeReviewOutput{
			Reason:  ReasonNotEnoughPlayers,
			Players: models.ClonePlayers(s.players),
		}
	}

	s.config.PlayerCount = len(s.players)
	s.reviewOpen = false

	if s.config.PactMode == models.PactModeStrategic {
		return &FinalizeReviewOutput{
			Success: true,
			Ready:   true,
			Players: models.ClonePlayers(s.players),
		}
	}

	dealt := pact.Generate(s.random, len(s.players), s.config.PactMode)
	for i, p := range s.players {
		if i < len(dealt) {
			p.Pact = dealt[i]
		}
	}

	s.step = models.StepRevealPacts
	s.cancelLockLocked()
	s.reveal = RevealState{}

	return &FinalizeReviewOutput{
		Success: true,
		Players: models.ClonePlayers(s.players),
	}
}

// validateLocked checks a name and color for the player selfID ("" for a
// new player) in the order name required, name taken, color taken.
func (s *service) validateLocked(selfID, name string, color models.TokenColor) Reason {
	if name == "" {
		return ReasonNameRequired
	}

	key := normalizeName(name)
	for _, p := range s.players {
		if p.ID != selfID && normalizeName(p.Name) == key {
			return ReasonNameTaken
		}
	}

	if !color.IsValid() {
		return ReasonInvalidColor
	}
	for _, p := range s.players {
		if p.ID != selfID && p.Color == color {
			return ReasonColorTaken
		}
	}

	return ReasonNone
}

// healLocked drops edit pointers to players that are no longer on the
// roster, and abandons a reveal whose cursor fell off the end
func (s *service) healLocked() {
	if s.step == models.StepRevealPacts && s.reveal.Cursor >= len(s.players) {
		s.abandonRevealLocked()
	}
	if s.editingID != "" && s.indexOfLocked(s.editingID) < 0 {
		s.editingID = ""
		s.pendingAddID = ""
	}
	if s.pendingAddID != "" && s.indexOfLocked(s.pendingAddID) < 0 {
		s.pendingAddID = ""
	}
}

func (s *service) indexOfLocked(playerID string) int {
	if playerID == "" {
		return -1
	}
	for i, p := range s.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *service) removeLocked(playerID string) bool {
	idx := s.indexOfLocked(playerID)
	if idx < 0 {
		return false
	}
	s.players = append(s.players[:idx], s.players[idx+1:]...)
	return true
}

func (s *service) resetDraftLocked() {
	s.draft = Draft{
		Color: s.nextFreeColorLocked(""),
		Pact:  models.DefaultPact,
	}
}

// nextFreeColorLocked returns the first palette color after "after" that no
// player holds, wrapping around. An empty "after" starts at the beginning.
func (s *service) nextFreeColorLocked(after models.TokenColor) models.TokenColor {
	used := make(map[models.TokenColor]bool, len(s.players))
	for _, p := range s.players {
		used[p.Color] = true
	}

	start := 0
	for i, c := range models.TokenColors {
		if c == after {
			start = i + 1
			break
		}
	}

	for i := 0; i < len(models.TokenColors); i++ {
		c := models.TokenColors[(start+i)%len(models.TokenColors)]
		if !used[c] {
			return c
		}
	}
	return ""
}

func (s *service) randomRosterLocked(count int) []*models.Player {
	names := random.Shuffled(s.random, s.namePool)
	pacts := pact.Generate(s.random, count, s.config.PactMode)

	players := make([]*models.Player, 0, count)
	for i := 0; i < count; i++ {
		p := &models.Player{
			ID:    s.ids.NewID(),
			Name:  names[i],
			Color: models.TokenColors[i],
			Pact:  models.DefaultPact,
		}
		if i < len(pacts) {
			p.Pact = pacts[i]
		}
		players = append(players, p)
	}
	return players
}

func (s *service) randomUnusedNameLocked() string {
	taken := make(map[string]bool, len(s.players))
	for _, p := range s.players {
		taken[normalizeName(p.Name)] = true
	}

	var free []string
	for _, name := range s.namePool {
		if !taken[normalizeName(name)] {
			free = append(free, name)
		}
	}
	if len(free) > 0 {
		return random.Pick(s.random, free)
	}

	for n := len(s.players) + 1; ; n++ {
		name := fmt.Sprintf("Jugador %d", n)
		if !taken[normalizeName(name)] {
			return name
		}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func uniqueNames(pool []string) []string {
	seen := make(map[string]bool, len(pool))
	out := make([]string, 0, len(pool))
	for _, name := range pool {
		key := normalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(name))
	}
	return out
}

func clampPlayerCount(count int) int {
	if count < models.MinPlayers {
		return models.MinPlayers
	}
	if count > models.MaxPlayers {
		return models.MaxPlayers
	}
	return count
}
