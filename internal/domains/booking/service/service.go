package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"shareit/config"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/event"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemRepo "shareit/internal/domains/item/repository"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/metrics"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking = "booking:get"

	operationCreate = "create"
	operationUpdate = "update"
)

const (
	msgBookingNotFound     = "booking not found"
	msgUserNotFound        = "user not found"
	msgItemNotFound        = "item not found"
	msgNoOwnedItems        = "no owned items"
	msgNotParticipant      = "neither booker nor owner"
	msgNotOwner            = "only the item owner can approve or reject a booking"
	msgStatusNotWaiting    = "status not WAITING"
	msgItemNotAvailable    = "item is not available"
	msgSelfBooking         = "owner cannot book own item"
	msgIntersecting        = "booking intersects with existing bookings"
	msgInvalidDateTimeForm = "dates must use the format " + constant.DateTimeFormat
)

type Booking interface {
	FindBookingByID(ctx context.Context, actorID, bookingID string) (dto.BookingResponse, error)
	FindBookingsByState(ctx context.Context, bookerID, state string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	FindBookingsOwnerByState(ctx context.Context, ownerID, state string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Create(ctx context.Context, bookerID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, ownerID, bookingID string, approved bool) (dto.BookingResponse, error)
	ExistsValidCompletedBooking(ctx context.Context, userID, itemID string) (bool, error)
}

type serviceImpl struct {
	repo      repository.Booking
	userRepo  userRepo.User
	itemRepo  itemRepo.Item
	publisher event.Publisher
	clock     clock.Clock
	policy    model.OverlapPolicy
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	userRepo userRepo.User,
	itemRepo itemRepo.Item,
	publisher event.Publisher,
	clk clock.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	policy, err := model.ParseOverlapPolicy(cfg.Booking.OverlapPolicy)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to the default overlap policy")

		policy = model.OverlapExcludeRejected
	}

	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		itemRepo:  itemRepo,
		publisher: publisher,
		clock:     clk,
		policy:    policy,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) FindBookingByID(ctx context.Context, actorID, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindBookingByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if !booking.IsParticipant(actorID) {
		return res, failure.NotAllowed(msgNotParticipant) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) FindBookingsByState(ctx context.Context, bookerID, state string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindBookingsByState")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parsed, err := model.ParseState(state)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.requireUser(ctx, bookerID); err != nil {
		return res, err
	}

	bookings, err := s.repo.FindByBookerState(ctx, bookerID, parsed, s.clock.Now(), params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings of booker")

		return res, fmt.Errorf("failed to get bookings of booker: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) FindBookingsOwnerByState(ctx context.Context, ownerID, state string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindBookingsOwnerByState")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parsed, err := model.ParseState(state)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.requireUser(ctx, ownerID); err != nil {
		return res, err
	}

	ownsItems, err := s.itemRepo.ExistsByOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check owned items")

		return res, fmt.Errorf("failed to check owned items: %w", err)
	}

	if !ownsItems {
		return res, failure.NotFound(msgNoOwnedItems) // nolint:wrapcheck
	}

	bookings, err := s.repo.FindByOwnerState(ctx, ownerID, parsed, s.clock.Now(), params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings of owner")

		return res, fmt.Errorf("failed to get bookings of owner: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// Create validates everything before the single locked insert. The
// intersection check runs twice: once here to fail fast and once under the
// item lock.
func (s *serviceImpl) Create(ctx context.Context, bookerID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { metrics.IncBooking(operationCreate, outcome(err)) }()

	if err = s.requireUser(ctx, bookerID); err != nil {
		return res, err
	}

	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	interval, err := req.Interval()
	if err != nil {
		return res, failure.BadRequestFromString(msgInvalidDateTimeForm) // nolint:wrapcheck
	}

	now := s.clock.Now()

	if err = interval.Validate(now); err != nil {
		return res, err //nolint:wrapcheck
	}

	if !item.Available {
		return res, failure.BadRequestFromString(msgItemNotAvailable) // nolint:wrapcheck
	}

	if item.IsOwnedBy(bookerID) {
		return res, failure.BadRequestFromString(msgSelfBooking) // nolint:wrapcheck
	}

	blocking := s.policy.Blocking()

	intersecting, err := s.repo.ExistsIntersecting(ctx, item.ID, interval, blocking)
	if err != nil {
		log.Error().Err(err).Msg("failed to check intersecting bookings")

		return res, fmt.Errorf("failed to check intersecting bookings: %w", err)
	}

	if intersecting {
		return res, failure.BadRequestFromString(msgIntersecting) // nolint:wrapcheck
	}

	booking := req.ToModel(bookerID, interval)

	err = s.repo.CreateWithLock(ctx, booking, blocking)
	if errors.Is(err, repository.ErrIntersecting) {
		return res, failure.BadRequestFromString(msgIntersecting) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.OwnerID = item.OwnerID
	booking.ItemName = item.Name

	s.publish(ctx, event.New(event.TypeCreated, booking, bookerID, now))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, ownerID, bookingID string, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { metrics.IncBooking(operationUpdate, outcome(err)) }()

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if booking.OwnerID != ownerID {
		return res, failure.NotAllowed(msgNotOwner) // nolint:wrapcheck
	}

	next, err := model.Decide(booking.Status, approved)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	err = s.repo.UpdateStatus(ctx, booking.ID, booking.Status, next, ownerID)
	if errors.Is(err, repository.ErrStatusChanged) {
		return res, failure.NotAllowed(msgStatusNotWaiting) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	s.publish(ctx, event.New(event.TypeForDecision(next), booking, ownerID, s.clock.Now()))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ExistsValidCompletedBooking(ctx context.Context, userID, itemID string) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExistsValidCompletedBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = s.repo.ExistsValidCompletedBooking(ctx, userID, itemID, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed bookings")

		return false, fmt.Errorf("failed to check completed bookings: %w", err)
	}

	return exist, nil
}

// getBooking reads through the cache. A cached entry is the joined row, so
// the authorization check after it sees the owner too. Only decided bookings
// are cached: their status can no longer change under a reader.
func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (booking model.Booking, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &booking)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return booking, nil
	}

	booking, err = s.repo.FindByID(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if !booking.Status.IsTerminal() {
		return booking, nil
	}

	if err := s.cache.Save(ctx, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return booking, nil
}

func (s *serviceImpl) requireUser(ctx context.Context, userID string) error {
	exist, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check user")

		return fmt.Errorf("failed to check user: %w", err)
	}

	if !exist {
		return failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	return nil
}

// publish never fails the request. The booking row is already committed.
func (s *serviceImpl) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		log.Warn().Err(err).Str("booking_id", evt.BookingID).Msg("booking event not published")
	}
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	switch failure.GetCode(err) {
	case http.StatusBadRequest, http.StatusNotFound:
		return metrics.OutcomeRejected
	case http.StatusForbidden:
		return metrics.OutcomeNotAllowed
	default:
		return metrics.OutcomeError
	}
}
