package models

import "time"

// CategoryMinigames is the honor category fed by minigame victories
const CategoryMinigames = "minigames"

// GameLog is what happened at the table during play
type GameLog struct {
	// StartedAt is when the session was started; zero for logs written
	// before it was tracked
	StartedAt time.Time `json:"startedAt,omitzero"`

	// MinigameWins counts deck minigame victories per player ID
	MinigameWins map[string]int `json:"minigameWins"`

	// MentionVotes counts votes per category ID, then per player ID
	MentionVotes map[string]map[string]int `json:"mentionVotes"`
}

// NewGameLog returns an empty log with initialised maps
func NewGameLog() *GameLog {
	return &GameLog{
		MinigameWins: make(map[string]int),
		MentionVotes: make(map[string]map[string]int),
	}
}

// Normalize replaces nil maps so a decoded log is safe to write to
func (l *GameLog) Normalize() {
	if l.MinigameWins == nil {
		l.MinigameWins = make(map[string]int)
	}
	if l.MentionVotes == nil {
		l.MentionVotes = make(map[string]map[string]int)
	}
}
