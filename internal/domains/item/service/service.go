package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	bookingModel "shareit/internal/domains/booking/model"
	bookingDto "shareit/internal/domains/booking/model/dto"
	bookingRepo "shareit/internal/domains/booking/repository"
	commentModel "shareit/internal/domains/comment/model"
	commentRepo "shareit/internal/domains/comment/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"

	"github.com/rs/zerolog/log"
)

type Item interface {
	GetOwnerItems(ctx context.Context, ownerID string, params gDto.QueryParams) (dto.GetItemsResponse, error)
	Get(ctx context.Context, actorID, itemID string) (dto.ItemResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepo.User
	bookingRepo bookingRepo.Booking
	commentRepo commentRepo.Comment
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Item,
	userRepo userRepo.User,
	bookingRepo bookingRepo.Booking,
	commentRepo commentRepo.Comment,
	clk clock.Clock,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		clock:       clk,
		otel:        otel,
	}
}

// GetOwnerItems lists the owner's items with their last and next approved
// bookings and their comments.
func (s *serviceImpl) GetOwnerItems(ctx context.Context, ownerID string, params gDto.QueryParams) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetOwnerItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireUser(ctx, ownerID); err != nil {
		return res, err
	}

	items, err := s.repo.FindByOwner(ctx, ownerID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owner items")

		return res, fmt.Errorf("failed to get owner items: %w", err)
	}

	res = make(dto.GetItemsResponse, len(items))
	if len(items) == 0 {
		return res, nil
	}

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	bookings, err := s.bookingRepo.FindApprovedByItems(ctx, itemIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item bookings")

		return res, fmt.Errorf("failed to get item bookings: %w", err)
	}

	comments, err := s.commentRepo.FindByItems(ctx, itemIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	bookingsByItem := make(map[string][]bookingModel.Booking, len(items))
	for _, booking := range bookings {
		bookingsByItem[booking.ItemID] = append(bookingsByItem[booking.ItemID], booking)
	}

	commentsByItem := make(map[string][]commentModel.Comment, len(items))
	for _, comment := range comments {
		commentsByItem[comment.ItemID] = append(commentsByItem[comment.ItemID], comment)
	}

	now := s.clock.Now()

	for i, item := range items {
		res[i].FromModel(item)
		res[i].Comments.FromModels(commentsByItem[item.ID])

		last, next := bookingModel.LastAndNext(bookingsByItem[item.ID], now)
		res[i].LastBooking = bookingDto.NewBookingShort(last)
		res[i].NextBooking = bookingDto.NewBookingShort(next)
	}

	return res, nil
}

// Get shows an item to any user. Last and next bookings are visible to the
// owner only.
func (s *serviceImpl) Get(ctx context.Context, actorID, itemID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireUser(ctx, actorID); err != nil {
		return res, err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName + " not found") // nolint:wrapcheck
	}

	comments, err := s.commentRepo.FindByItems(ctx, []string{item.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get item comments")

		return res, fmt.Errorf("failed to get item comments: %w", err)
	}

	res.FromModel(item)
	res.Comments.FromModels(comments)

	if !item.IsOwnedBy(actorID) {
		return res, nil
	}

	bookings, err := s.bookingRepo.FindApprovedByItems(ctx, []string{item.ID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get item bookings")

		return res, fmt.Errorf("failed to get item bookings: %w", err)
	}

	last, next := bookingModel.LastAndNext(bookings, s.clock.Now())
	res.LastBooking = bookingDto.NewBookingShort(last)
	res.NextBooking = bookingDto.NewBookingShort(next)

	return res, nil
}

func (s *serviceImpl) requireUser(ctx context.Context, userID string) error {
	exist, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check user")

		return fmt.Errorf("failed to check user: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	return nil
}
