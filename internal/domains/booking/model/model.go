package model

import (
	"shareit/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"

	ItemTableName    = "items"
	FieldItemOwnerID = "owner_id"
)

// Booking is a reservation row joined with the reserved item. OwnerID and
// ItemName come from the items table and are never written.
type Booking struct {
	ID       string    `db:"id"`
	ItemID   string    `db:"item_id"`
	BookerID string    `db:"booker_id"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	Status   Status    `db:"status"`
	OwnerID  string    `db:"owner_id"  table:"items"`
	ItemName string    `db:"item_name" table:"items" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id"
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// IsParticipant reports whether the user is the booker or the item owner.
func (b Booking) IsParticipant(userID string) bool {
	return userID == b.BookerID || userID == b.OwnerID
}
