package booking

import (
	"net/http"
	"shareit/config"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/validator"
	"shareit/transport/http/middleware"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.Identity
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.Identity, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		cfg:        cfg,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Identify)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
	})
}

// CreateBooking handles a booking request for an item.
// @Summary Request a booking
// @Description Create a WAITING booking of an item for the acting user.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the bookings made by the acting user.
// @Summary List own bookings
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param from query int false "Offset of the first booking"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromOffsetRequest(r, handler.cfg.Booking.DefaultPageSize); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookings, err := handler.service.FindBookingsByState(ctx, user, stateParam(r), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetOwnerBookings lists the bookings of items owned by the acting user.
// @Summary List bookings of own items
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param from query int false "Offset of the first booking"
// @Param size query int false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnerBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromOffsetRequest(r, handler.cfg.Booking.DefaultPageSize); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookings, err := handler.service.FindBookingsOwnerByState(ctx, user, stateParam(r), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owner bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID returns one booking to its booker or to the item owner.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.FindBookingByID(ctx, user, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking records the owner's decision on a waiting booking.
// @Summary Approve or reject a booking
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param approved query bool true "Decision"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	approved := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamApproved))
	if approved == nil {
		err := failure.BadRequestFromString("approved must be true or false")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := handler.service.Update(ctx, user, id, *approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + booking.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

func stateParam(r *http.Request) string {
	if state := r.URL.Query().Get(constant.RequestParamState); state != "" {
		return state
	}

	return constant.DefaultValueState
}
