// Package timezone holds the application timezone used for booking dates.
//
// Booking start and end values travel as wall clock strings without an
// offset ("2025-03-01T09:00:00"). Parse reads them in the application zone
// and Format writes them back the same way, so a booking created and read
// through the API keeps the times the client sent.
//
// Call Init once at startup with APP_TIMEZONE (an IANA name such as
// "Europe/Moscow"). Without Init the zone is read from configuration on
// first use. An empty or unknown name falls back to UTC.
package timezone
