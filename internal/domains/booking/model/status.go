package model

import (
	"shareit/shared/failure"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decide is the only transition a booking has: WAITING becomes APPROVED or
// REJECTED. Terminal statuses never move.
func Decide(current Status, approved bool) (Status, error) {
	if current != StatusWaiting {
		return current, failure.NotAllowed("status not WAITING") //nolint:wrapcheck
	}

	if approved {
		return StatusApproved, nil
	}

	return StatusRejected, nil
}
