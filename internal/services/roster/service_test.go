package roster

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/oraculo/internal/common/clock"
	clockMocks "github.com/KirkDiggler/oraculo/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/oraculo/internal/common/uuid/mocks"
	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNamePool = []string{"Ariadna", "Perseo", "Casandra", "Ulises", "Medea", "Aquiles", "Freya", "Thor"}

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockTimer *clockMocks.MockTimer
	mockUUID  *uuidMocks.MockGenerator
	svc       *service

	nextID     int
	revealLock time.Duration

	// callbacks captured from AfterFunc, in scheduling order
	scheduled []func()
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockTimer = clockMocks.NewMockTimer(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.nextID = 0
	s.scheduled = nil
	s.revealLock = 500 * time.Millisecond

	s.mockUUID.EXPECT().NewID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("player-%d", s.nextID)
	}).AnyTimes()

	s.mockClock.EXPECT().AfterFunc(s.revealLock, gomock.Any()).DoAndReturn(func(_ time.Duration, f func()) clock.Timer {
		s.scheduled = append(s.scheduled, f)
		return s.mockTimer
	}).AnyTimes()

	svc, err := New(&Config{
		NamePool:      testNamePool,
		RevealLock:    s.revealLock,
		Random:        random.New(&random.Config{Seed: 11}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func ptr[T any](v T) *T {
	return &v
}

func (s *RosterServiceTestSuite) configure(count int, mode models.PactMode, names models.NameMode) {
	s.svc.UpdateConfig(ConfigUpdate{
		PlayerCount: ptr(count),
		PactMode:    ptr(mode),
		NameMode:    ptr(names),
	})
	s.svc.ConfirmConfig()
}

func (s *RosterServiceTestSuite) addCustomPlayers(names ...string) {
	for i, name := range names {
		output := s.svc.AddPlayer(Draft{Name: name, Color: models.TokenColors[i]})
		s.Require().True(output.Success, "adding %s: %s", name, output.Reason)
	}
}

func (s *RosterServiceTestSuite) assertRosterUnique(players []*models.Player) {
	names := make(map[string]bool)
	colors := make(map[models.TokenColor]bool)
	for _, p := range players {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		s.False(names[key], "duplicate name %s", p.Name)
		s.False(colors[p.Color], "duplicate color %s", p.Color)
		names[key] = true
		colors[p.Color] = true
	}
}

func (s *RosterServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID, NamePool: testNamePool})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(&Config{
		Random:        random.New(nil),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		NamePool:      []string{"A", "a", "B"},
	})
	s.ErrorIs(err, ErrNamePoolTooSmall)
}

func (s *RosterServiceTestSuite) TestInitialState() {
	state := s.svc.State()

	s.Equal(models.StepConfig, state.Step)
	s.Equal(models.DefaultSessionConfig(), state.Config)
	s.Empty(state.Players)
	s.Equal(models.ColorRed, state.Draft.Color)
}

func (s *RosterServiceTestSuite) TestConfirmCustomStartsNameInput() {
	s.configure(5, models.PactModeBalanced, models.NameModeCustom)

	state := s.svc.State()
	s.Equal(models.StepInputNames, state.Step)
	s.Equal(5, state.Config.PlayerCount)
	s.Empty(state.Players)
	s.False(state.ReviewOpen)
}

func (s *RosterServiceTestSuite) TestConfirmRandomFillsRoster() {
	s.configure(6, models.PactModeChaotic, models.NameModeRandom)

	state := s.svc.State()
	s.Equal(models.StepInputNames, state.Step)
	s.True(state.ReviewOpen)
	s.Require().Len(state.Players, 6)
	s.assertRosterUnique(state.Players)
	for i, p := range state.Players {
		s.Equal(models.TokenColors[i], p.Color)
		s.True(p.Pact.IsValid())
		s.Contains(testNamePool, p.Name)
	}
}

func (s *RosterServiceTestSuite) TestAddPlayerValidationOrder() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna")

	output := s.svc.AddPlayer(Draft{Name: "   ", Color: models.ColorRed})
	s.False(output.Success)
	s.Equal(ReasonNameRequired, output.Reason)

	output = s.svc.AddPlayer(Draft{Name: "  ariadna ", Color: models.ColorRed})
	s.False(output.Success)
	s.Equal(ReasonNameTaken, output.Reason)

	output = s.svc.AddPlayer(Draft{Name: "Perseo", Color: models.ColorRed})
	s.False(output.Success)
	s.Equal(ReasonColorTaken, output.Reason)
	s.Equal(ReasonColorTaken, s.svc.State().LastReason)

	// Failed attempts leave the roster untouched
	s.Len(s.svc.State().Players, 1)

	output = s.svc.AddPlayer(Draft{Name: " Perseo ", Color: models.ColorBlue})
	s.True(output.Success)
	s.Equal("Perseo", output.Player.Name)
	s.Equal(ReasonNone, s.svc.State().LastReason)
}

func (s *RosterServiceTestSuite) TestAddPlayerForcesDefaultPactOutsideStrategic() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)

	output := s.svc.AddPlayer(Draft{Name: "Medea", Color: models.ColorRed, Pact: models.PactLoki})
	s.Require().True(output.Success)
	s.Equal(models.DefaultPact, output.Player.Pact)
}

func (s *RosterServiceTestSuite) TestAddPlayerKeepsDraftedPactInStrategic() {
	s.configure(4, models.PactModeStrategic, models.NameModeCustom)

	output := s.svc.AddPlayer(Draft{Name: "Medea", Color: models.ColorRed, Pact: models.PactLoki})
	s.Require().True(output.Success)
	s.Equal(models.PactLoki, output.Player.Pact)
}

func (s *RosterServiceTestSuite) TestColorSuggestionAdvances() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)

	s.Require().True(s.svc.AddPlayer(Draft{Name: "Ariadna", Color: models.ColorGreen}).Success)
	s.Equal(models.ColorYellow, s.svc.State().Draft.Color)

	s.Require().True(s.svc.AddPlayer(Draft{Name: "Perseo", Color: models.ColorYellow}).Success)
	s.Equal(models.ColorPurple, s.svc.State().Draft.Color)
}

func (s *RosterServiceTestSuite) TestReviewOpensWhenRosterComplete() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo", "Casandra")
	s.False(s.svc.State().ReviewOpen)

	output := s.svc.AddPlayer(Draft{Name: "Ulises", Color: models.ColorYellow})
	s.True(output.Success)
	s.True(output.ReviewOpen)

	// A further add skips validation entirely and only reopens the review
	output = s.svc.AddPlayer(Draft{Name: "", Color: models.ColorRed})
	s.False(output.Success)
	s.Equal(ReasonNone, output.Reason)
	s.True(output.ReviewOpen)
	s.Len(s.svc.State().Players, 4)
}

func (s *RosterServiceTestSuite) TestGoBackOneStepUndoesLastPlayer() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo")

	output := s.svc.GoBackOneStep()
	s.Require().NotNil(output.Removed)
	s.Equal("Perseo", output.Removed.Name)

	state := s.svc.State()
	s.Len(state.Players, 1)
	s.Equal("Perseo", state.Draft.Name)
	s.Equal(models.ColorBlue, state.Draft.Color)

	// The restored draft can be submitted again unchanged
	s.True(s.svc.AddPlayer(state.Draft).Success)

	s.svc.GoBackOneStep()
	s.svc.GoBackOneStep()
	output = s.svc.GoBackOneStep()
	s.Nil(output.Removed)
	s.Equal(models.StepConfig, output.Step)
	s.Equal(models.StepConfig, s.svc.State().Step)
}

func (s *RosterServiceTestSuite) TestAddPlayerInReviewAndCancelRollsBack() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)

	output := s.svc.AddPlayerInReview()
	s.Require().True(output.Success)

	state := s.svc.State()
	s.Len(state.Players, 5)
	s.Equal(output.Player.ID, state.EditingID)
	s.True(state.PendingAddition)
	s.assertRosterUnique(state.Players)

	s.svc.CancelEditing()

	state = s.svc.State()
	s.Len(state.Players, 4)
	s.Empty(state.EditingID)
	s.False(state.PendingAddition)
}

func (s *RosterServiceTestSuite) TestAddPlayerInReviewSavedIsKept() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)

	added := s.svc.AddPlayerInReview()
	s.Require().True(added.Success)

	saved := s.svc.SavePlayerChanges(&SavePlayerChangesInput{
		PlayerID: added.Player.ID,
		Name:     ptr("Nezha"),
	})
	s.Require().True(saved.Success)

	s.svc.CancelEditing()
	state := s.svc.State()
	s.Len(state.Players, 5)
	s.Equal("Nezha", state.Players[4].Name)
}

func (s *RosterServiceTestSuite) TestAddPlayerInReviewCappedAtMax() {
	s.configure(6, models.PactModeBalanced, models.NameModeRandom)

	output := s.svc.AddPlayerInReview()
	s.False(output.Success)
	s.Equal(ReasonRosterFull, output.Reason)
	s.Len(s.svc.State().Players, models.MaxPlayers)
}

func (s *RosterServiceTestSuite) TestSavePlayerChangesValidatesExcludingSelf() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo", "Casandra", "Ulises")
	players := s.svc.State().Players

	// Keeping your own name and color is fine
	output := s.svc.SavePlayerChanges(&SavePlayerChangesInput{
		PlayerID: players[0].ID,
		Name:     ptr("ARIADNA"),
		Color:    ptr(players[0].Color),
	})
	s.True(output.Success)
	s.Equal("ARIADNA", output.Player.Name)

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: players[0].ID, Name: ptr("perseo")})
	s.Equal(ReasonNameTaken, output.Reason)

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: players[0].ID, Color: ptr(players[1].Color)})
	s.Equal(ReasonColorTaken, output.Reason)

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: players[0].ID, Name: ptr("  ")})
	s.Equal(ReasonNameRequired, output.Reason)

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: "ghost", Name: ptr("Thor")})
	s.Equal(ReasonPlayerNotFound, output.Reason)

	s.assertRosterUnique(s.svc.State().Players)
}

func (s *RosterServiceTestSuite) TestSavePlayerChangesPactOnlyInStrategic() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	id := s.svc.State().Players[0].ID
	before := s.svc.State().Players[0].Pact
	other := models.PactLoki
	if before == models.PactLoki {
		other = models.PactAtenea
	}

	output := s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: id, Pact: ptr(other)})
	s.True(output.Success)
	s.Equal(before, output.Player.Pact)

	s.svc.Reset()
	s.configure(4, models.PactModeStrategic, models.NameModeRandom)
	id = s.svc.State().Players[0].ID

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: id, Pact: ptr(models.PactLongwang)})
	s.True(output.Success)
	s.Equal(models.PactLongwang, output.Player.Pact)

	output = s.svc.SavePlayerChanges(&SavePlayerChangesInput{PlayerID: id, Pact: ptr(models.Pact("hades"))})
	s.Equal(ReasonInvalidPact, output.Reason)
}

func (s *RosterServiceTestSuite) TestDeletingEditedPlayerClearsEditPointer() {
	s.configure(5, models.PactModeBalanced, models.NameModeRandom)
	target := s.svc.State().Players[2].ID

	s.Require().True(s.svc.StartEditing(target))
	s.Equal(target, s.svc.State().EditingID)

	s.True(s.svc.DeletePlayer(target))

	state := s.svc.State()
	s.Empty(state.EditingID)
	s.False(state.PendingAddition)
	s.Len(state.Players, 4)
}

func (s *RosterServiceTestSuite) TestExternalRosterMutationSelfHeals() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)

	added := s.svc.AddPlayerInReview()
	s.Require().True(added.Success)

	players := s.svc.State().Players
	s.svc.ReplacePlayers(players[:4])

	state := s.svc.State()
	s.Empty(state.EditingID)
	s.False(state.PendingAddition)
	s.Len(state.Players, 4)
}

func (s *RosterServiceTestSuite) TestStartEditingUnknownPlayer() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)

	s.False(s.svc.StartEditing("ghost"))
	s.Empty(s.svc.State().EditingID)
}

func (s *RosterServiceTestSuite) TestStartEditingOtherPlayerRollsBackPendingAddition() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	first := s.svc.State().Players[0].ID

	s.Require().True(s.svc.AddPlayerInReview().Success)
	s.Require().True(s.svc.StartEditing(first))

	state := s.svc.State()
	s.Len(state.Players, 4)
	s.Equal(first, state.EditingID)
	s.False(state.PendingAddition)
}

func (s *RosterServiceTestSuite) TestFinalizeDealsFreshPacts() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.AddPlayerInReview().Success)
	s.Require().True(s.svc.SavePlayerChanges(&SavePlayerChangesInput{
		PlayerID: s.svc.State().EditingID,
	}).Success)

	output := s.svc.FinalizeReview()
	s.True(output.Success)
	s.False(output.Ready)
	s.Require().Len(output.Players, 5)

	lokis := 0
	for _, p := range output.Players {
		if p.Pact == models.PactLoki {
			lokis++
		}
	}
	s.Equal(1, lokis)

	state := s.svc.State()
	s.Equal(models.StepRevealPacts, state.Step)
	s.Equal(5, state.Config.PlayerCount)
	s.Equal(RevealState{}, state.Reveal)
}

func (s *RosterServiceTestSuite) TestFinalizeStrategicIsReady() {
	s.configure(4, models.PactModeStrategic, models.NameModeCustom)
	for i, name := range []string{"Ariadna", "Perseo", "Casandra", "Ulises"} {
		pact := models.PactAtenea
		if i == 0 {
			pact = models.PactLoki
		}
		s.Require().True(s.svc.AddPlayer(Draft{Name: name, Color: models.TokenColors[i], Pact: pact}).Success)
	}

	output := s.svc.FinalizeReview()
	s.True(output.Success)
	s.True(output.Ready)
	s.Equal(models.PactLoki, output.Players[0].Pact)
	s.Equal(models.StepInputNames, s.svc.State().Step)
}

func (s *RosterServiceTestSuite) TestFinalizeRejectsShortRoster() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.svc.DeletePlayer(s.svc.State().Players[0].ID)

	output := s.svc.FinalizeReview()
	s.False(output.Success)
	s.Equal(ReasonNotEnoughPlayers, output.Reason)
	s.Equal(models.StepInputNames, s.svc.State().Step)
}

func (s *RosterServiceTestSuite) TestRevealLockBlocksAdvance() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.FinalizeReview().Success)

	// Nothing to advance before the first card is flipped
	s.False(s.svc.AdvanceReveal().Advanced)

	revealed := s.svc.RevealCurrentCard()
	s.True(revealed.Revealed)
	s.True(s.svc.State().Reveal.Locked)
	s.Require().Len(s.scheduled, 1)

	// Locked: both operations are no-ops
	s.False(s.svc.RevealCurrentCard().Revealed)
	s.False(s.svc.AdvanceReveal().Advanced)
	s.Equal(0, s.svc.State().Reveal.Cursor)

	s.scheduled[0]()
	s.False(s.svc.State().Reveal.Locked)

	advanced := s.svc.AdvanceReveal()
	s.True(advanced.Advanced)
	s.Equal(1, advanced.Cursor)
	s.False(s.svc.State().Reveal.Revealed)
}

func (s *RosterServiceTestSuite) TestResetCancelsPendingUnlock() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.FinalizeReview().Success)
	s.svc.RevealCurrentCard()
	stale := s.scheduled[0]

	s.mockTimer.EXPECT().Stop().Return(true)
	s.svc.Reset()
	s.Equal(models.StepConfig, s.svc.State().Step)

	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.FinalizeReview().Success)
	s.svc.RevealCurrentCard()
	s.Require().Len(s.scheduled, 2)

	// The callback from before the reset must not unlock the new session
	stale()
	s.True(s.svc.State().Reveal.Locked)

	s.scheduled[1]()
	s.False(s.svc.State().Reveal.Locked)
}

func (s *RosterServiceTestSuite) TestQuitRevealReturnsToReview() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.FinalizeReview().Success)

	// Quit needs the prompt first
	s.svc.ConfirmQuit()
	s.Equal(models.StepRevealPacts, s.svc.State().Step)

	s.svc.RequestQuit()
	s.True(s.svc.State().Reveal.QuitPrompt)
	s.svc.DismissQuit()
	s.False(s.svc.State().Reveal.QuitPrompt)

	s.svc.RequestQuit()
	s.svc.ConfirmQuit()

	state := s.svc.State()
	s.Equal(models.StepInputNames, state.Step)
	s.True(state.ReviewOpen)
	s.Equal(RevealState{}, state.Reveal)
}

func (s *RosterServiceTestSuite) TestCustomBalancedSessionEndToEnd() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo", "Casandra", "Ulises")

	state := s.svc.State()
	s.True(state.ReviewOpen)
	s.Require().Len(state.Players, 4)

	finalized := s.svc.FinalizeReview()
	s.Require().True(finalized.Success)
	s.False(finalized.Ready)

	lokis := 0
	for _, p := range finalized.Players {
		if p.Pact == models.PactLoki {
			lokis++
		}
	}
	s.Equal(1, lokis)

	var visited []string
	for {
		revealed := s.svc.RevealCurrentCard()
		s.Require().True(revealed.Revealed)
		visited = append(visited, revealed.Player.ID)
		s.scheduled[len(s.scheduled)-1]()

		advanced := s.svc.AdvanceReveal()
		if advanced.Complete {
			s.Len(advanced.Players, 4)
			break
		}
		s.Require().True(advanced.Advanced)
	}

	s.Equal([]string{"player-1", "player-2", "player-3", "player-4"}, visited)
}

func (s *RosterServiceTestSuite) advanceRevealTo(cursor int) {
	for s.svc.State().Reveal.Cursor < cursor {
		s.Require().True(s.svc.RevealCurrentCard().Revealed)
		s.scheduled[len(s.scheduled)-1]()
		s.Require().True(s.svc.AdvanceReveal().Advanced)
	}
}

func (s *RosterServiceTestSuite) TestDeleteRefusedDuringReveal() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo", "Casandra", "Ulises")
	s.Require().True(s.svc.FinalizeReview().Success)
	s.advanceRevealTo(3)

	players := s.svc.State().Players
	s.False(s.svc.DeletePlayer(players[0].ID))

	state := s.svc.State()
	s.Equal(models.StepRevealPacts, state.Step)
	s.Len(state.Players, 4)
	s.Equal(3, state.Reveal.Cursor)

	revealed := s.svc.RevealCurrentCard()
	s.Require().True(revealed.Revealed)
	s.Equal("Ulises", revealed.Player.Name)
	s.scheduled[len(s.scheduled)-1]()

	advanced := s.svc.AdvanceReveal()
	s.True(advanced.Complete)
	s.Len(advanced.Players, 4)
}

func (s *RosterServiceTestSuite) TestDeleteRefusedOutsideNameEntry() {
	s.False(s.svc.DeletePlayer("player-1"))

	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.True(s.svc.DeletePlayer(s.svc.State().Players[0].ID))
}

func (s *RosterServiceTestSuite) TestShrinkingRosterDuringRevealReturnsToReview() {
	s.configure(4, models.PactModeBalanced, models.NameModeCustom)
	s.addCustomPlayers("Ariadna", "Perseo", "Casandra", "Ulises")
	s.Require().True(s.svc.FinalizeReview().Success)
	s.advanceRevealTo(3)

	s.svc.ReplacePlayers(s.svc.State().Players[1:])

	state := s.svc.State()
	s.Equal(models.StepInputNames, state.Step)
	s.True(state.ReviewOpen)
	s.Equal(RevealState{}, state.Reveal)
	s.Len(state.Players, 3)

	// No card to flip and nothing to complete once the reveal is gone
	s.False(s.svc.RevealCurrentCard().Revealed)
	advanced := s.svc.AdvanceReveal()
	s.False(advanced.Complete)
	s.False(advanced.Advanced)

	output := s.svc.FinalizeReview()
	s.False(output.Success)
	s.Equal(ReasonNotEnoughPlayers, output.Reason)
}

func (s *RosterServiceTestSuite) TestReplacingRosterWhileLockedCancelsUnlock() {
	s.configure(4, models.PactModeBalanced, models.NameModeRandom)
	s.Require().True(s.svc.FinalizeReview().Success)
	s.Require().True(s.svc.RevealCurrentCard().Revealed)
	stale := s.scheduled[0]

	s.mockTimer.EXPECT().Stop().Return(true)
	s.svc.ReplacePlayers(s.svc.State().Players)
	s.Equal(models.StepInputNames, s.svc.State().Step)

	s.Require().True(s.svc.FinalizeReview().Success)
	s.Require().True(s.svc.RevealCurrentCard().Revealed)

	stale()
	s.True(s.svc.State().Reveal.Locked)
}

func (s *RosterServiceTestSuite) TestSetDraftIsReflectedInState() {
	s.configure(4, models.PactModeStrategic, models.NameModeCustom)

	s.svc.SetDraft(Draft{Name: "Medea", Color: models.ColorPurple, Pact: models.PactLongwang})

	draft := s.svc.State().Draft
	s.Equal("Medea", draft.Name)
	s.Equal(models.ColorPurple, draft.Color)
	s.Equal(models.PactLongwang, draft.Pact)
}
