package models

const (
	// MinPlayers is the smallest table a session can start with
	MinPlayers = 4

	// MaxPlayers is the largest table a session can start with
	MaxPlayers = 6
)

// SessionConfig holds the choices made before registration
type SessionConfig struct {
	// PlayerCount is the expected roster size
	PlayerCount int `json:"playerCount"`

	// PactMode controls pact distribution
	PactMode PactMode `json:"pactMode"`

	// NameMode controls whether names are typed or generated
	NameMode NameMode `json:"nameMode"`
}

// DefaultSessionConfig is the configuration a fresh registration starts from
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PlayerCount: MinPlayers,
		PactMode:    PactModeBalanced,
		NameMode:    NameModeCustom,
	}
}

// RegistrationStep is the coarse position in the registration flow
type RegistrationStep string

const (
	// StepConfig is the table setup step
	StepConfig RegistrationStep = "config"

	// StepInputNames is name entry, including the review modal
	StepInputNames RegistrationStep = "input_names"

	// StepRevealPacts is the pass-the-phone pact reveal
	StepRevealPacts RegistrationStep = "reveal_pacts"
)
