package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/oraculo/internal/common/clock Clock,Timer

// Clock provides the current time and delayed callbacks
type Clock interface {
	Now() time.Time

	// AfterFunc runs f once d has elapsed. The returned Timer cancels it.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on the runtime timer
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
