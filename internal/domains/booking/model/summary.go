package model

import "time"

// LastAndNext picks, among approved bookings of one item, the latest one that
// ended before now and the earliest one that starts after now.
func LastAndNext(bookings []Booking, now time.Time) (last, next *Booking) {
	for idx := range bookings {
		booking := bookings[idx]
		if booking.Status != StatusApproved {
			continue
		}

		if booking.End.Before(now) && (last == nil || booking.End.After(last.End)) {
			last = &booking
		}

		if booking.Start.After(now) && (next == nil || booking.Start.Before(next.Start)) {
			next = &booking
		}
	}

	return last, next
}
