package model

import (
	"fmt"
	"shareit/shared/failure"
)

// State narrows booking lists. CURRENT, PAST and FUTURE are relative to the
// clock, WAITING and REJECTED match the persisted status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = map[string]State{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

func ParseState(token string) (State, error) {
	if token == "" {
		return StateAll, nil
	}

	state, ok := states[token]
	if !ok {
		return "", failure.BadRequestFromString(fmt.Sprintf("Unknown state: %s", token)) //nolint:wrapcheck
	}

	return state, nil
}

func (s State) String() string {
	return string(s)
}
