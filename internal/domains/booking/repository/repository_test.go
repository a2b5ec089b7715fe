package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"shareit/infras/otel/mocks"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	gDto "shareit/shared/dto"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumns = []string{"id", "item_id", "booker_id", "start_date", "end_date", "status", "owner_id", "item_name", "created_by", "modified_by"}

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:       "b-1",
		ItemID:   "7",
		BookerID: "42",
		Start:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC),
		Status:   model.StatusWaiting,
	}
}

func TestRepository_CreateWithLock(t *testing.T) {
	lockQuery := regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")
	existQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM bookings")
	insertQuery := regexp.QuoteMeta("INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status, created_by, modified_by)")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("7").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(existQuery).ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "intersecting booking found under lock",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs("7").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(existQuery).ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrIntersecting,
		},
		{
			name: "lock failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			anyErr: true,
		},
		{
			name: "insert failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(existQuery).ExpectQuery().WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(insertQuery).WillReturnError(errors.New("check constraint violated"))
				mock.ExpectRollback()
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			err := repo.CreateWithLock(context.Background(), sampleBooking(), model.OverlapExcludeRejected.Blocking())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	updateQuery := regexp.QuoteMeta("UPDATE bookings SET modified_at = $1, modified_by = $2, status = $3  WHERE (bookings.id = $4 AND bookings.status = $5)")

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "waiting booking moves", affected: 1},
		{name: "status already changed", affected: 0, wantErr: repository.ErrStatusChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectExec(updateQuery).
				WithArgs(sqlmock.AnyArg(), "99", model.StatusApproved, "b-1", model.StatusWaiting).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdateStatus(context.Background(), "b-1", model.StatusWaiting, model.StatusApproved, "99")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByOwnerState(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	booking := sampleBooking()

	mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings JOIN items ON items.id = bookings.item_id")+
		".*"+regexp.QuoteMeta("items.owner_id = $1 AND bookings.status = $2 AND bookings.end_date >= $3")+
		".*"+regexp.QuoteMeta("ORDER BY bookings.start_date DESC LIMIT $4 OFFSET $5")).
		ExpectQuery().
		WithArgs("99", model.StatusApproved, now, 10, 10).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			booking.ID, booking.ItemID, booking.BookerID, booking.Start, booking.End,
			"APPROVED", "99", "Drill", "42", "99",
		))

	result, err := repo.FindByOwnerState(context.Background(), "99", model.StateFuture, now, gDto.QueryParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "b-1", result[0].ID)
	assert.Equal(t, "99", result[0].OwnerID)
	assert.Equal(t, "Drill", result[0].ItemName)
	assert.Equal(t, model.StatusApproved, result[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByBookerState(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta("(bookings.booker_id = $1 AND bookings.start_date <= $2 AND bookings.end_date >= $3)") +
		".*" + regexp.QuoteMeta("ORDER BY bookings.start_date DESC LIMIT $4 OFFSET $5")).
		ExpectQuery().
		WithArgs("42", now, now, 10, 0).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	result, err := repo.FindByBookerState(context.Background(), "42", model.StateCurrent, now, gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByBookerState_EveryState(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		state model.State
		where string
		args  []driver.Value
	}{
		{
			state: model.StateAll,
			where: "WHERE (bookings.booker_id = $1)",
			args:  []driver.Value{"42"},
		},
		{
			state: model.StateCurrent,
			where: "WHERE (bookings.booker_id = $1 AND bookings.start_date <= $2 AND bookings.end_date >= $3)",
			args:  []driver.Value{"42", now, now},
		},
		{
			state: model.StatePast,
			where: "WHERE (bookings.booker_id = $1 AND bookings.status = $2 AND bookings.end_date < $3)",
			args:  []driver.Value{"42", "APPROVED", now},
		},
		{
			state: model.StateFuture,
			where: "WHERE (bookings.booker_id = $1 AND bookings.status = $2 AND bookings.end_date >= $3)",
			args:  []driver.Value{"42", "APPROVED", now},
		},
		{
			state: model.StateWaiting,
			where: "WHERE (bookings.booker_id = $1 AND bookings.status = $2)",
			args:  []driver.Value{"42", "WAITING"},
		},
		{
			state: model.StateRejected,
			where: "WHERE (bookings.booker_id = $1 AND bookings.status = $2)",
			args:  []driver.Value{"42", "REJECTED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			repo, mock := newRepository(t)

			next := len(tt.args) + 1
			paging := fmt.Sprintf("ORDER BY bookings.start_date DESC LIMIT $%d OFFSET $%d", next, next+1)

			mock.ExpectPrepare(regexp.QuoteMeta(tt.where) + `\s+` + regexp.QuoteMeta(paging)).
				ExpectQuery().
				WithArgs(append(tt.args, int64(10), int64(0))...).
				WillReturnRows(sqlmock.NewRows(bookingColumns))

			_, err := repo.FindByBookerState(context.Background(), "42", tt.state, now, gDto.QueryParams{Page: 1, Limit: 10})
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsIntersecting(t *testing.T) {
	interval := model.Interval{
		Start: time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 13, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		policy model.OverlapPolicy
		in     string
		args   []driver.Value
	}{
		{
			name:   "waiting and approved block",
			policy: model.OverlapExcludeRejected,
			in:     "bookings.status IN ($4, $5))",
			args:   []driver.Value{"7", interval.End, interval.Start, "WAITING", "APPROVED"},
		},
		{
			name:   "approved only",
			policy: model.OverlapApprovedOnly,
			in:     "bookings.status IN ($4))",
			args:   []driver.Value{"7", interval.End, interval.Start, "APPROVED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectPrepare(regexp.QuoteMeta("WHERE (bookings.item_id = $1 AND bookings.start_date <= $2 AND bookings.end_date >= $3 AND " + tt.in)).
				ExpectQuery().
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			exist, err := repo.ExistsIntersecting(context.Background(), "7", interval, tt.policy.Blocking())
			require.NoError(t, err)
			assert.True(t, exist)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsValidCompletedBooking(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (bookings.booker_id = $1 AND bookings.item_id = $2 AND bookings.status = $3 AND bookings.end_date <= $4)")).
		ExpectQuery().
		WithArgs("42", "7", model.StatusApproved, now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exist, err := repo.ExistsValidCompletedBooking(context.Background(), "42", "7", now)
	require.NoError(t, err)
	assert.False(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindApprovedByItems(t *testing.T) {
	t.Run("no items skips the query", func(t *testing.T) {
		repo, mock := newRepository(t)

		result, err := repo.FindApprovedByItems(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("items", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("bookings.item_id IN ($1, $2)") + ".*" + regexp.QuoteMeta("ORDER BY bookings.start_date ASC")).
			ExpectQuery().
			WithArgs("7", "8", model.StatusApproved).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.FindApprovedByItems(context.Background(), []string{"7", "8"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (bookings.id = $1)")).
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	booking, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
