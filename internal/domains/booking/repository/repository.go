package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/logger"
	gRepo "shareit/shared/repository"
	"time"
)

const (
	lockItemQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"
	sortByStart   = model.TableName + "." + model.FieldStartDate
)

var (
	// ErrIntersecting is returned when a blocking booking appeared while the
	// item lock was being acquired.
	ErrIntersecting = errors.New("booking intersects with existing bookings")
	// ErrStatusChanged is returned when the booking left the expected status
	// before the update ran.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	FindByID(ctx context.Context, id string) (model.Booking, error)
	FindByBookerState(ctx context.Context, bookerID string, state model.State, now time.Time, params gDto.QueryParams) ([]model.Booking, error)
	FindByOwnerState(ctx context.Context, ownerID string, state model.State, now time.Time, params gDto.QueryParams) ([]model.Booking, error)
	FindApprovedByItems(ctx context.Context, itemIDs []string) ([]model.Booking, error)
	ExistsIntersecting(ctx context.Context, itemID string, interval model.Interval, blocking []model.Status) (bool, error)
	ExistsValidCompletedBooking(ctx context.Context, userID, itemID string, now time.Time) (bool, error)
	CreateWithLock(ctx context.Context, booking model.Booking, blocking []model.Status) error
	UpdateStatus(ctx context.Context, id string, from, to model.Status, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Booking, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByBookerState(ctx context.Context, bookerID string, state model.State, now time.Time, params gDto.QueryParams) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindByBookerState")
	defer scope.End()

	scope.SetAttribute("state", state.String())

	return r.GetAll(ctx, newestFirst(params), bookerFilter(bookerID, state, now)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByOwnerState(ctx context.Context, ownerID string, state model.State, now time.Time, params gDto.QueryParams) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindByOwnerState")
	defer scope.End()

	scope.SetAttribute("state", state.String())

	return r.GetAll(ctx, newestFirst(params), ownerFilter(ownerID, state, now)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindApprovedByItems(ctx context.Context, itemIDs []string) ([]model.Booking, error) {
	if len(itemIDs) == 0 {
		return []model.Booking{}, nil
	}

	params := gDto.QueryParams{SortBy: sortByStart, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, approvedByItemsFilter(itemIDs)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistsIntersecting(ctx context.Context, itemID string, interval model.Interval, blocking []model.Status) (bool, error) {
	return r.Exist(ctx, intersectingFilter(itemID, interval, blocking)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistsValidCompletedBooking(ctx context.Context, userID, itemID string, now time.Time) (bool, error) {
	return r.Exist(ctx, completedFilter(userID, itemID, now)) //nolint:wrapcheck
}

// CreateWithLock serializes bookings of one item on a transaction scoped
// advisory lock, then repeats the intersection check before inserting.
func (r *repositoryImpl) CreateWithLock(ctx context.Context, booking model.Booking, blocking []model.Status) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithLock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, lockItemQuery, booking.ItemID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock item (%s): %w", model.EntityName, err)
	}

	exist, err := r.ExistTx(ctx, tx, intersectingFilter(booking.ItemID, booking.Interval(), blocking))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if exist {
		err = ErrIntersecting

		return err
	}

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

type statusUpdate struct {
	Status model.Status `db:"status"`
}

// UpdateStatus moves a booking from one status to another only if it is
// still in the from status.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, from, to model.Status, actor string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "from_status", Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	affected, err := r.Update(ctx, shared.TransformFields(statusUpdate{Status: to}, actor), filter)
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return ErrStatusChanged
	}

	return nil
}

func newestFirst(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = sortByStart
	params.SortDir = gDto.SortDirDesc

	return params
}
