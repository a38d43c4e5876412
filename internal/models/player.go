package models

// Tallies are the raw end-of-game counts entered for a player
type Tallies struct {
	Relics  int `json:"relics"`
	Plagues int `json:"plagues"`
	Powers  int `json:"powers"`
}

// Player represents a seat at the table
type Player struct {
	// ID is the opaque unique identifier of the player
	ID string `json:"id"`

	// Name is the display name, unique within the roster ignoring case
	Name string `json:"name"`

	// Color is the player's token color, unique within the roster
	Color TokenColor `json:"color"`

	// Pact is the secret affiliation; provisional until pacts are dealt
	Pact Pact `json:"pact"`

	// Score is set once the game has been scored
	Score *int `json:"score,omitempty"`

	// ScoreDetails echoes the tallies the score was computed from
	ScoreDetails *Tallies `json:"scoreDetails,omitempty"`
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Score != nil {
		score := *p.Score
		clone.Score = &score
	}
	if p.ScoreDetails != nil {
		details := *p.ScoreDetails
		clone.ScoreDetails = &details
	}
	return &clone
}

// ScoreValue returns the score or zero when the player is unscored
func (p *Player) ScoreValue() int {
	if p == nil || p.Score == nil {
		return 0
	}
	return *p.Score
}

// ClonePlayers deep copies a roster
func ClonePlayers(players []*Player) []*Player {
	out := make([]*Player, 0, len(players))
	for _, p := range players {
		out = append(out, p.Clone())
	}
	return out
}
