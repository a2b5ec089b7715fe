package model

import (
	"shareit/shared/failure"
	"time"
)

var (
	ErrWrongInterval = failure.BadRequestFromString("wrong date interval")
	ErrStartInPast   = failure.BadRequestFromString("booking start is in the past")
)

type Interval struct {
	Start time.Time
	End   time.Time
}

// Validate checks the interval for a new booking requested at now.
func (i Interval) Validate(now time.Time) error {
	if !i.Start.Before(i.End) {
		return ErrWrongInterval
	}

	if i.Start.Before(now) {
		return ErrStartInPast
	}

	return nil
}

// Intersects uses closed bounds on both sides, so intervals that only touch
// at an endpoint intersect.
func (i Interval) Intersects(other Interval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// Contains is closed on both ends.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}
