package dto

import (
	bookingDto "shareit/internal/domains/booking/model/dto"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model"
)

type ItemResponse struct {
	ID          string                         `json:"id"`
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Available   bool                           `json:"available"`
	LastBooking *bookingDto.BookingShort       `json:"last_booking"`
	NextBooking *bookingDto.BookingShort       `json:"next_booking"`
	Comments    commentDto.GetCommentsResponse `json:"comments"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Available = item.Available
	r.Comments = commentDto.GetCommentsResponse{}
}

type GetItemsResponse []ItemResponse
