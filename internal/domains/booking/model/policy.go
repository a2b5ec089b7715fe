package model

import (
	"fmt"
	"slices"
)

type OverlapPolicy string

const (
	// OverlapExcludeRejected lets every booking except REJECTED ones block a slot.
	OverlapExcludeRejected OverlapPolicy = "exclude_rejected"
	// OverlapApprovedOnly lets only APPROVED bookings block a slot.
	OverlapApprovedOnly OverlapPolicy = "approved_only"
)

func ParseOverlapPolicy(value string) (OverlapPolicy, error) {
	switch OverlapPolicy(value) {
	case "", OverlapExcludeRejected:
		return OverlapExcludeRejected, nil
	case OverlapApprovedOnly:
		return OverlapApprovedOnly, nil
	default:
		return "", fmt.Errorf("unknown overlap policy %q", value)
	}
}

// Blocking returns the statuses that take part in the overlap check.
func (p OverlapPolicy) Blocking() []Status {
	if p == OverlapApprovedOnly {
		return []Status{StatusApproved}
	}

	return []Status{StatusWaiting, StatusApproved}
}

// Blocks reports whether an existing booking in the given status prevents an
// intersecting request.
func (p OverlapPolicy) Blocks(status Status) bool {
	return slices.Contains(p.Blocking(), status)
}
