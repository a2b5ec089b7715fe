// Package clock supplies the current instant to time-relative booking rules.
package clock

import (
	"shareit/shared/timezone"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a clock reading the application timezone.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

type fixedClock struct {
	now time.Time
}

// Fixed returns a clock that always reports now.
func Fixed(now time.Time) Clock {
	return fixedClock{now: now}
}

func (c fixedClock) Now() time.Time {
	return c.now
}
