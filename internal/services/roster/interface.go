package roster

import "github.com/KirkDiggler/oraculo/internal/models"

// Service drives table registration from configuration to pact reveal
type Service interface {
	// State returns a snapshot of the registration flow
	State() State

	// Reset starts a fresh registration and cancels pending timers
	Reset()

	// UpdateConfig changes the session configuration
	UpdateConfig(update ConfigUpdate) models.SessionConfig

	// ConfirmConfig leaves the configuration step
	ConfirmConfig() *ConfirmConfigOutput

	// SetDraft replaces the player being typed in
	SetDraft(draft Draft)

	// AddPlayer validates the draft and appends it to the roster
	AddPlayer(draft Draft) *AddPlayerOutput

	// GoBackOneStep undoes the last added player or returns to configuration
	GoBackOneStep() *GoBackOutput

	// OpenReview shows the roster review
	OpenReview()

	// StartEditing opens a player in the review editor
	StartEditing(playerID string) bool

	// AddPlayerInReview adds a random player and opens it in the editor
	AddPlayerInReview() *AddPlayerInReviewOutput

	// SavePlayerChanges validates and applies an edit
	SavePlayerChanges(input *SavePlayerChangesInput) *SavePlayerChangesOutput

	// CancelEditing closes the editor, rolling back a pending addition
	CancelEditing()

	// DeletePlayer removes a player from the roster. It is refused outside
	// the name entry step.
	DeletePlayer(playerID string) bool

	// ReplacePlayers swaps in a roster mutated outside the flow. A reveal in
	// progress goes back to the review.
	ReplacePlayers(players []*models.Player)

	// FinalizeReview deals pacts and moves to the reveal, or reports ready
	FinalizeReview() *FinalizeReviewOutput

	// RevealCurrentCard flips the current pact card
	RevealCurrentCard() *RevealCardOutput

	// AdvanceReveal hides the current card and moves to the next player
	AdvanceReveal() *AdvanceRevealOutput

	// RequestQuit shows the quit confirmation during the reveal
	RequestQuit()

	// DismissQuit hides the quit confirmation
	DismissQuit()

	// ConfirmQuit abandons the reveal and returns to the review
	ConfirmQuit()
}
