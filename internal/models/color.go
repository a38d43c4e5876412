package models

// TokenColor is the color of a player's physical token
type TokenColor string

const (
	ColorRed    TokenColor = "red"
	ColorBlue   TokenColor = "blue"
	ColorGreen  TokenColor = "green"
	ColorYellow TokenColor = "yellow"
	ColorPurple TokenColor = "purple"
	ColorOrange TokenColor = "orange"
)

// TokenColors is the fixed palette, in suggestion order
var TokenColors = []TokenColor{
	ColorRed,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorPurple,
	ColorOrange,
}

// IsValid reports whether c belongs to the palette
func (c TokenColor) IsValid() bool {
	for _, known := range TokenColors {
		if known == c {
			return true
		}
	}
	return false
}
