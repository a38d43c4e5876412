package models

// Pact is the secret affiliation dealt to a player
type Pact string

const (
	// PactAtenea rewards relics and punishes plagues
	PactAtenea Pact = "atenea"

	// PactLoki is the trickster pact, profiting from plagues
	PactLoki Pact = "loki"

	// PactLongwang rewards relics and powers
	PactLongwang Pact = "longwang"
)

// DefaultPact is the provisional pact a player holds until pacts are dealt
const DefaultPact = PactAtenea

// Pacts lists every pact in a stable order
var Pacts = []Pact{PactAtenea, PactLoki, PactLongwang}

// IsValid reports whether p is one of the known pacts
func (p Pact) IsValid() bool {
	for _, known := range Pacts {
		if known == p {
			return true
		}
	}
	return false
}

// PactMode controls how pacts are distributed across the table
type PactMode string

const (
	// PactModeBalanced deals exactly one Loki
	PactModeBalanced PactMode = "balanced"

	// PactModeChaotic deals between zero and two Lokis
	PactModeChaotic PactMode = "chaotic"

	// PactModeStrategic lets players choose their own pact; one Loki is suggested
	PactModeStrategic PactMode = "strategic"
)

// IsValid reports whether m is a known pact mode
func (m PactMode) IsValid() bool {
	switch m {
	case PactModeBalanced, PactModeChaotic, PactModeStrategic:
		return true
	}
	return false
}

// NameMode controls how the roster gets its names
type NameMode string

const (
	// NameModeCustom asks for every name one by one
	NameModeCustom NameMode = "custom"

	// NameModeRandom fills the roster from the name pool
	NameModeRandom NameMode = "random"
)
