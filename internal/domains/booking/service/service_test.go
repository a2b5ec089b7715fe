package service_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"shareit/config"
	otelMocks "shareit/infras/otel/mocks"
	"shareit/internal/domains/booking/event"
	eventMocks "shareit/internal/domains/booking/event/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	"shareit/internal/domains/booking/service"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/shared/cache"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/shared/clock"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookerID   = "42"
	ownerID    = "99"
	itemID     = "7"
	strangerID = "55"
)

var now = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	timezone.Init("UTC")
	os.Exit(m.Run())
}

type fixture struct {
	repo      *bookingMocks.MockBooking
	users     *userMocks.MockUser
	items     *itemMocks.MockItem
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	svc       service.Booking
}

func newFixture(t *testing.T, policy string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.OverlapPolicy = policy

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		users:     userMocks.NewMockUser(ctrl),
		items:     itemMocks.NewMockItem(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.users, f.items, f.publisher, clock.Fixed(now), cfg, f.cache, otelMocks.NewOtel())

	return f
}

func waitingBooking() model.Booking {
	return model.Booking{
		ID:       "b-1",
		ItemID:   itemID,
		BookerID: bookerID,
		OwnerID:  ownerID,
		ItemName: "Drill",
		Start:    time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC),
		Status:   model.StatusWaiting,
	}
}

func availableItem() itemModel.Item {
	return itemModel.Item{ID: itemID, Name: "Drill", Available: true, OwnerID: ownerID}
}

func TestFindBookingByID(t *testing.T) {
	tests := []struct {
		name       string
		actor      string
		setupMock  func(f fixture)
		wantStatus string
		wantCode   int
	}{
		{
			name:  "booker reads from store",
			actor: bookerID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
			},
		},
		{
			name:  "decided booking is cached",
			actor: bookerID,
			setupMock: func(f fixture) {
				booking := waitingBooking()
				booking.Status = model.StatusApproved

				f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(booking, nil)
				f.cache.EXPECT().Save(gomock.Any(), "booking:get:b-1", booking, 3600).Return(nil)
			},
			wantStatus: "APPROVED",
		},
		{
			name:  "owner reads from cache",
			actor: ownerID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Booking) = waitingBooking()

						return nil
					})
			},
		},
		{
			name:  "stranger is not allowed",
			actor: strangerID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:  "unknown booking",
			actor: bookerID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:  "store failure",
			actor: bookerID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(model.Booking{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			tt.setupMock(f)

			res, err := f.svc.FindBookingByID(context.Background(), tt.actor, "b-1")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			wantStatus := tt.wantStatus
			if wantStatus == "" {
				wantStatus = "WAITING"
			}

			require.NoError(t, err)
			assert.Equal(t, "b-1", res.ID)
			assert.Equal(t, wantStatus, res.Status)
			assert.Equal(t, dto.ItemShort{ID: itemID, Name: "Drill"}, res.Item)
			assert.Equal(t, bookerID, res.Booker.ID)
			assert.Equal(t, "2025-01-10T10:00:00", res.Start)
		})
	}
}

func TestFindBookingsByState(t *testing.T) {
	params, err := gDto.NewOffsetParams(0, 10)
	require.NoError(t, err)

	tests := []struct {
		name      string
		state     string
		setupMock func(f fixture)
		wantLen   int
		wantCode  int
	}{
		{
			name:  "all bookings of booker",
			state: "",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.repo.EXPECT().FindByBookerState(gomock.Any(), bookerID, model.StateAll, now, params).
					Return([]model.Booking{waitingBooking()}, nil)
			},
			wantLen: 1,
		},
		{
			name:  "waiting bookings, none found",
			state: "WAITING",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.repo.EXPECT().FindByBookerState(gomock.Any(), bookerID, model.StateWaiting, now, params).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:      "unknown state token",
			state:     "UNSUPPORTED_STATUS",
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "unknown user",
			state: "ALL",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			tt.setupMock(f)

			res, err := f.svc.FindBookingsByState(context.Background(), bookerID, tt.state, params)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestFindBookingsOwnerByState(t *testing.T) {
	params, err := gDto.NewOffsetParams(0, 10)
	require.NoError(t, err)

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "owner with items",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), ownerID).Return(true, nil)
				f.items.EXPECT().ExistsByOwner(gomock.Any(), ownerID).Return(true, nil)
				f.repo.EXPECT().FindByOwnerState(gomock.Any(), ownerID, model.StateFuture, now, params).
					Return([]model.Booking{waitingBooking()}, nil)
			},
		},
		{
			name: "user without items",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), ownerID).Return(true, nil)
				f.items.EXPECT().ExistsByOwner(gomock.Any(), ownerID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), ownerID).Return(true, nil)
				f.items.EXPECT().ExistsByOwner(gomock.Any(), ownerID).Return(true, nil)
				f.repo.EXPECT().FindByOwnerState(gomock.Any(), ownerID, model.StateFuture, now, params).
					Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			tt.setupMock(f)

			res, err := f.svc.FindBookingsOwnerByState(context.Background(), ownerID, "FUTURE", params)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, 1)
		})
	}
}

func TestCreate(t *testing.T) {
	validRequest := dto.CreateBookingRequest{ItemID: itemID, Start: "2025-01-10T10:00:00", End: "2025-01-11T10:00:00"}
	blocking := []model.Status{model.StatusWaiting, model.StatusApproved}

	tests := []struct {
		name      string
		booker    string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name:   "creates a waiting booking",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
				f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), blocking).Return(false, nil)
				f.repo.EXPECT().CreateWithLock(gomock.Any(), gomock.Any(), blocking).
					DoAndReturn(func(_ context.Context, booking model.Booking, _ []model.Status) error {
						assert.Equal(t, model.StatusWaiting, booking.Status)
						assert.Equal(t, bookerID, booking.BookerID)
						assert.NotEmpty(t, booking.ID)

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, evt event.Event) error {
						assert.Equal(t, event.TypeCreated, evt.Type)
						assert.Equal(t, ownerID, evt.OwnerID)

						return nil
					})
			},
		},
		{
			name:   "publish failure does not fail the booking",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
				f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), blocking).Return(false, nil)
				f.repo.EXPECT().CreateWithLock(gomock.Any(), gomock.Any(), blocking).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name:      "malformed date",
			booker:    bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "10/01/2025", End: "2025-01-11T10:00:00"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "unknown booker with malformed date",
			booker: bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "10/01/2025", End: "2025-01-11T10:00:00"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "unknown item with malformed date",
			booker: bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "2025-01-10T10:00:00", End: "tomorrow"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(itemModel.Item{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "unknown booker",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "unknown item",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(itemModel.Item{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "end before start",
			booker: bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "2025-01-11T10:00:00", End: "2025-01-10T10:00:00"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "wrong date interval",
		},
		{
			name:   "start equals end",
			booker: bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "2025-01-10T10:00:00", End: "2025-01-10T10:00:00"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "wrong date interval",
		},
		{
			name:   "start in the past",
			booker: bookerID,
			req:    dto.CreateBookingRequest{ItemID: itemID, Start: "2025-01-09T10:00:00", End: "2025-01-11T10:00:00"},
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "item not available",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				item := availableItem()
				item.Available = false

				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "owner books own item",
			booker: ownerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), ownerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "overlaps an existing booking",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
				f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), blocking).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "booking intersects with existing bookings",
		},
		{
			name:   "overlap appears under the lock",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
				f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), blocking).Return(false, nil)
				f.repo.EXPECT().CreateWithLock(gomock.Any(), gomock.Any(), blocking).Return(repository.ErrIntersecting)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "booking intersects with existing bookings",
		},
		{
			name:   "store failure",
			booker: bookerID,
			req:    validRequest,
			setupMock: func(f fixture) {
				f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
				f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), blocking).Return(false, nil)
				f.repo.EXPECT().CreateWithLock(gomock.Any(), gomock.Any(), blocking).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.booker, tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "WAITING", res.Status)
			assert.Equal(t, dto.ItemShort{ID: itemID, Name: "Drill"}, res.Item)
			assert.Equal(t, bookerID, res.Booker.ID)
			assert.Equal(t, "2025-01-10T10:00:00", res.Start)
			assert.Equal(t, "2025-01-11T10:00:00", res.End)
		})
	}
}

func TestCreate_ApprovedOnlyPolicy(t *testing.T) {
	f := newFixture(t, "approved_only")
	approvedOnly := []model.Status{model.StatusApproved}

	f.users.EXPECT().ExistsByID(gomock.Any(), bookerID).Return(true, nil)
	f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
	f.repo.EXPECT().ExistsIntersecting(gomock.Any(), itemID, gomock.Any(), approvedOnly).Return(false, nil)
	f.repo.EXPECT().CreateWithLock(gomock.Any(), gomock.Any(), approvedOnly).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), bookerID, dto.CreateBookingRequest{
		ItemID: itemID, Start: "2025-01-10T10:00:00", End: "2025-01-11T10:00:00",
	})
	require.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name       string
		actor      string
		approved   bool
		setupMock  func(f fixture)
		wantStatus string
		wantCode   int
	}{
		{
			name:     "owner approves",
			actor:    ownerID,
			approved: true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", model.StatusWaiting, model.StatusApproved, ownerID).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, evt event.Event) error {
						assert.Equal(t, event.TypeApproved, evt.Type)
						assert.Equal(t, ownerID, evt.Actor)

						return nil
					})
			},
			wantStatus: "APPROVED",
		},
		{
			name:     "owner rejects",
			actor:    ownerID,
			approved: false,
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", model.StatusWaiting, model.StatusRejected, ownerID).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: "REJECTED",
		},
		{
			name:     "second decision is not allowed",
			actor:    ownerID,
			approved: true,
			setupMock: func(f fixture) {
				booking := waitingBooking()
				booking.Status = model.StatusApproved

				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(booking, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "booker cannot decide",
			actor:    bookerID,
			approved: true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "concurrent decision wins",
			actor:    ownerID,
			approved: true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", model.StatusWaiting, model.StatusApproved, ownerID).
					Return(repository.ErrStatusChanged)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown booking",
			actor:    ownerID,
			approved: true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), tt.actor, "b-1", tt.approved)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestUpdate_ReadAfterDecision(t *testing.T) {
	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	redisCache := cache.NewRedisCache(client, otelMocks.NewOtel())

	f := newFixture(t, "")
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	svc := service.New(f.repo, f.users, f.items, f.publisher, clock.Fixed(now), cfg, redisCache, otelMocks.NewOtel())

	ctx := context.Background()

	approved := waitingBooking()
	approved.Status = model.StatusApproved

	f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(waitingBooking(), nil).Times(2)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", model.StatusWaiting, model.StatusApproved, ownerID).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().FindByID(gomock.Any(), "b-1").Return(approved, nil)

	res, err := svc.FindBookingByID(ctx, bookerID, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "WAITING", res.Status)
	assert.False(t, server.Exists("booking:get:b-1"))

	// a stale entry must not outlive the decision
	require.NoError(t, redisCache.Save(ctx, "booking:get:b-1", waitingBooking(), 3600))

	res, err = svc.Update(ctx, ownerID, "b-1", true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", res.Status)
	assert.False(t, server.Exists("booking:get:b-1"))

	for range 2 {
		res, err = svc.FindBookingByID(ctx, bookerID, "b-1")
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", res.Status)
	}

	assert.True(t, server.Exists("booking:get:b-1"))
}

func TestExistsValidCompletedBooking(t *testing.T) {
	f := newFixture(t, "")

	f.repo.EXPECT().ExistsValidCompletedBooking(gomock.Any(), bookerID, itemID, now).Return(true, nil)
	f.repo.EXPECT().ExistsValidCompletedBooking(gomock.Any(), strangerID, itemID, now).Return(false, errors.New("db down"))

	exist, err := f.svc.ExistsValidCompletedBooking(context.Background(), bookerID, itemID)
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = f.svc.ExistsValidCompletedBooking(context.Background(), strangerID, itemID)
	require.Error(t, err)
	assert.False(t, exist)
}
