package dto

import (
	"shareit/internal/domains/booking/model"
	"shareit/shared/constant"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Start  string `json:"start"   validate:"required,datetime=2006-01-02T15:04:05"`
	End    string `json:"end"     validate:"required,datetime=2006-01-02T15:04:05"`
}

// Interval parses start and end as wall clock times of the application timezone.
func (c *CreateBookingRequest) Interval() (model.Interval, error) {
	start, err := timezone.Parse(constant.DateTimeFormat, c.Start)
	if err != nil {
		return model.Interval{}, err //nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateTimeFormat, c.End)
	if err != nil {
		return model.Interval{}, err //nolint:wrapcheck
	}

	return model.Interval{Start: start, End: end}, nil
}

func (c *CreateBookingRequest) ToModel(bookerID string, interval model.Interval) model.Booking {
	return model.Booking{
		ID:       uuid.NewString(),
		ItemID:   c.ItemID,
		BookerID: bookerID,
		Start:    interval.Start,
		End:      interval.End,
		Status:   model.StatusWaiting,
		Metadata: gModel.CreatedBy(bookerID),
	}
}

type ItemShort struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookerShort struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID     string      `json:"id"`
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Status string      `json:"status"`
	Item   ItemShort   `json:"item"`
	Booker BookerShort `json:"booker"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Start = timezone.Format(booking.Start, constant.DateTimeFormat)
	r.End = timezone.Format(booking.End, constant.DateTimeFormat)
	r.Status = booking.Status.String()
	r.Item = ItemShort{ID: booking.ItemID, Name: booking.ItemName}
	r.Booker = BookerShort{ID: booking.BookerID}
}

type GetBookingsResponse []BookingResponse

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	res := make(GetBookingsResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	*r = res
}

// BookingShort is what an item view shows for its last and next booking.
type BookingShort struct {
	ID       string `json:"id"`
	BookerID string `json:"booker_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func NewBookingShort(booking *model.Booking) *BookingShort {
	if booking == nil {
		return nil
	}

	return &BookingShort{
		ID:       booking.ID,
		BookerID: booking.BookerID,
		Start:    timezone.Format(booking.Start, constant.DateTimeFormat),
		End:      timezone.Format(booking.End, constant.DateTimeFormat),
	}
}
