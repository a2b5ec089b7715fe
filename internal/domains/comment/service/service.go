package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	bookingService "shareit/internal/domains/booking/service"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/repository"
	itemRepo "shareit/internal/domains/item/repository"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared/clock"
	"shareit/shared/constant"
	"shareit/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgNoCompletedBooking = "only users with a completed booking of the item can comment on it"

type Comment interface {
	AddComment(ctx context.Context, authorID, itemID string, req dto.AddCommentRequest) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo     repository.Comment
	userRepo userRepo.User
	itemRepo itemRepo.Item
	bookings bookingService.Booking
	clock    clock.Clock
	otel     otel.Otel
}

func New(
	repo repository.Comment,
	userRepo userRepo.User,
	itemRepo itemRepo.Item,
	bookings bookingService.Booking,
	clk clock.Clock,
	otel otel.Otel,
) Comment {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		bookings: bookings,
		clock:    clk,
		otel:     otel,
	}
}

// AddComment stores a comment from a user whose approved booking of the item
// has already ended.
func (s *serviceImpl) AddComment(ctx context.Context, authorID, itemID string, req dto.AddCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.AddComment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get author")

		return res, fmt.Errorf("failed to get author: %w", err)
	}

	if author.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	completed, err := s.bookings.ExistsValidCompletedBooking(ctx, authorID, itemID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !completed {
		return res, failure.BadRequestFromString(msgNoCompletedBooking) // nolint:wrapcheck
	}

	comment := req.ToModel(author.ID, author.Name, itemID, s.clock.Now())

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to add comment")

		return res, fmt.Errorf("failed to add comment: %w", err)
	}

	res.FromModel(comment)

	return res, nil
}
