package clock

import (
	"time"
)

// Clock interface for testable time control
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
