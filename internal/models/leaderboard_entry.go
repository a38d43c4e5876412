package models

// LeaderboardEntry is a ranked player on the final leaderboard
type LeaderboardEntry struct {
	// Player is the scored player
	Player *Player

	// Honors is the number of honor categories the player tied for first in
	Honors int

	// Rank is the displayed 1-based rank; fully tied players share it
	Rank int
}

// Honor names the single displayed holder of an honor category
type Honor struct {
	// Category is the honor category ID
	Category string

	// PlayerID is the holder
	PlayerID string

	// Count is the winning vote or win count
	Count int
}
