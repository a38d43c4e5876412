package roster

import (
	"github.com/KirkDiggler/oraculo/internal/models"
)

// RevealCurrentCard flips the current player's card and locks the sequence
// for the reveal lock duration. It is a no-op while locked.
func (s *service) RevealCurrentCard() *RevealCardOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.healLocked()
	if s.step != models.StepRevealPacts || s.reveal.Locked || s.reveal.Cursor >= len(s.players) {
		return &RevealCardOutput{}
	}

	s.reveal.Revealed = true
	s.reveal.Locked = true
	s.scheduleUnlockLocked()

	return &RevealCardOutput{
		Revealed: true,
		Player:   s.players[s.reveal.Cursor].Clone(),
	}
}

// AdvanceReveal hides the current card and moves to the next player. On the
// last player it reports the sequence complete instead. It is a no-op while
// locked or before the current card has been flipped.
func (s *service) AdvanceReveal() *AdvanceRevealOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.healLocked()
	if s.step != models.StepRevealPacts || s.reveal.Locked || !s.reveal.Revealed {
		return &AdvanceRevealOutput{Cursor: s.reveal.Cursor}
	}

	if s.reveal.Cursor >= len(s.players)-1 {
		return &AdvanceRevealOutput{
			Cursor:   s.reveal.Cursor,
			Complete: true,
			Players:  models.ClonePlayers(s.players),
		}
	}

	s.reveal.Cursor++
	s.reveal.Revealed = false

	return &AdvanceRevealOutput{
		Advanced: true,
		Cursor:   s.reveal.Cursor,
	}
}

// RequestQuit shows the quit confirmation during the reveal
func (s *service) RequestQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == models.StepRevealPacts {
		s.reveal.QuitPrompt = true
	}
}

// DismissQuit hides the quit confirmation
func (s *service) DismissQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reveal.QuitPrompt = false
}

// ConfirmQuit abandons the reveal and reopens the review. Pacts are dealt
// again on the next finalize.
func (s *service) ConfirmQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != models.StepRevealPacts || !s.reveal.QuitPrompt {
		return
	}

	s.abandonRevealLocked()
}

// abandonRevealLocked stops the reveal and reopens the review
func (s *service) abandonRevealLocked() {
	s.cancelLockLocked()
	s.reveal = RevealState{}
	s.step = models.StepInputNames
	s.reviewOpen = true
}

func (s *service) scheduleUnlockLocked() {
	s.generation++
	gen := s.generation

	s.lockTimer = s.clock.AfterFunc(s.revealLock, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// A reset or quit happened after scheduling
		if gen != s.generation {
			return
		}
		s.reveal.Locked = false
		s.lockTimer = nil
	})
}

// cancelLockLocked stops a pending unlock and invalidates its callback
func (s *service) cancelLockLocked() {
	s.generation++
	if s.lockTimer != nil {
		s.lockTimer.Stop()
		s.lockTimer = nil
	}
	s.reveal.Locked = false
}
