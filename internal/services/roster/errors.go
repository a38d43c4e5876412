package roster

// RosterError is a custom error type for roster construction errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         RosterError = "config cannot be nil"
	ErrNilRandom         RosterError = "random source cannot be nil"
	ErrNilClock          RosterError = "clock cannot be nil"
	ErrNilUUIDGenerator  RosterError = "UUID generator cannot be nil"
	ErrNamePoolTooSmall  RosterError = "name pool must hold at least as many names as the largest table"
	ErrInvalidRevealLock RosterError = "reveal lock cannot be negative"
)

// Reason explains why a roster operation was refused. Reasons are returned
// in outputs, never as errors: the caller corrects the input and retries.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNameRequired     Reason = "name required"
	ReasonNameTaken        Reason = "name taken"
	ReasonColorTaken       Reason = "color taken"
	ReasonInvalidColor     Reason = "invalid color"
	ReasonInvalidPact      Reason = "invalid pact"
	ReasonRosterFull       Reason = "roster full"
	ReasonPlayerNotFound   Reason = "player not found"
	ReasonNotEnoughPlayers Reason = "not enough players"
	ReasonWrongStep        Reason = "not available at this step"
)
