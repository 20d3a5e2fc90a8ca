package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(sqlx.NewDb(db, "pgx"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func reservationRows(rsv model.Reservation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "car_id", "pick_up_date", "return_date",
		"total_price", "status", "rating_id", "created_at",
	}).AddRow(rsv.ID, rsv.UserID, rsv.CarID, rsv.PickUpDate, rsv.ReturnDate,
		rsv.TotalPrice, rsv.Status, rsv.RatingID, rsv.CreatedAt)
}

func TestCreateReservation(t *testing.T) {
	pickUp := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	rsv := model.Reservation{
		UserID:     7,
		CarID:      3,
		PickUpDate: pickUp,
		ReturnDate: ret,
		TotalPrice: 240,
		Status:     model.StatusPending,
	}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from cars where id = \$1 for update`).
			WithArgs(rsv.CarID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rsv.CarID))
		mock.ExpectQuery(`select exists`).
			WithArgs(rsv.CarID, rsv.ReturnDate, rsv.PickUpDate).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		created := rsv
		created.ID = 11
		created.CreatedAt = time.Now()
		mock.ExpectQuery(`INSERT INTO reservations`).
			WithArgs(rsv.UserID, rsv.CarID, rsv.PickUpDate, rsv.ReturnDate, rsv.TotalPrice, model.StatusPending).
			WillReturnRows(reservationRows(created))
		mock.ExpectCommit()

		got, err := repo.CreateReservation(context.Background(), rsv)
		require.NoError(t, err)
		require.Equal(t, 11, got.ID)
		require.Equal(t, model.StatusPending, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("accepted overlap blocks creation", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from cars where id = \$1 for update`).
			WithArgs(rsv.CarID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rsv.CarID))
		mock.ExpectQuery(`select exists`).
			WithArgs(rsv.CarID, rsv.ReturnDate, rsv.PickUpDate).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.CreateReservation(context.Background(), rsv)
		require.ErrorIs(t, err, errs.ErrDatesConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown car", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from cars where id = \$1 for update`).
			WithArgs(rsv.CarID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.CreateReservation(context.Background(), rsv)
		require.ErrorIs(t, err, errs.ErrCarNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAcceptReservation(t *testing.T) {
	pickUp := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	pending := model.Reservation{
		ID:         5,
		UserID:     7,
		CarID:      3,
		PickUpDate: pickUp,
		ReturnDate: ret,
		TotalPrice: 240,
		Status:     model.StatusPending,
	}

	t.Run("cascades over pending conflicts", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select \* from reservations where id = \$1 for update`).
			WithArgs(pending.ID).
			WillReturnRows(reservationRows(pending))
		mock.ExpectQuery(`select id from cars where id = \$1 for update`).
			WithArgs(pending.CarID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(pending.CarID))
		mock.ExpectQuery(`select exists`).
			WithArgs(pending.CarID, pending.ReturnDate, pending.PickUpDate, pending.ID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`delete from reservations`).
			WithArgs(pending.CarID, pending.ReturnDate, pending.PickUpDate, pending.ID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		accepted := pending
		accepted.Status = model.StatusAccepted
		mock.ExpectQuery(`update reservations set status = 'accepted'`).
			WithArgs(pending.ID).
			WillReturnRows(reservationRows(accepted))
		mock.ExpectCommit()

		got, deleted, err := repo.AcceptReservation(context.Background(), pending.ID)
		require.NoError(t, err)
		require.Equal(t, model.StatusAccepted, got.Status)
		require.Equal(t, 2, deleted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("only pending can be accepted", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		done := pending
		done.Status = model.StatusCompleted
		mock.ExpectBegin()
		mock.ExpectQuery(`select \* from reservations where id = \$1 for update`).
			WithArgs(pending.ID).
			WillReturnRows(reservationRows(done))
		mock.ExpectRollback()

		_, _, err := repo.AcceptReservation(context.Background(), pending.ID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("accepted overlap wins", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select \* from reservations where id = \$1 for update`).
			WithArgs(pending.ID).
			WillReturnRows(reservationRows(pending))
		mock.ExpectQuery(`select id from cars where id = \$1 for update`).
			WithArgs(pending.CarID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(pending.CarID))
		mock.ExpectQuery(`select exists`).
			WithArgs(pending.CarID, pending.ReturnDate, pending.PickUpDate, pending.ID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, _, err := repo.AcceptReservation(context.Background(), pending.ID)
		require.ErrorIs(t, err, errs.ErrDatesConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindConflicts(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	till := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	existing := model.Reservation{
		ID: 2, UserID: 9, CarID: 3,
		PickUpDate: from, ReturnDate: till,
		TotalPrice: 100, Status: model.StatusAccepted,
	}

	mock.ExpectQuery(`SELECT .+ FROM reservations`).
		WithArgs(3, model.StatusPending, model.StatusAccepted, till, from).
		WillReturnRows(reservationRows(existing))

	got, err := repo.FindConflicts(context.Background(), 3, from, till,
		[]model.ReservationStatus{model.StatusPending, model.StatusAccepted})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUnratedFinished(t *testing.T) {
	pickUp := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	t.Run("swept-to-completed rental stays ratable", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		completed := model.Reservation{
			ID: 8, UserID: 7, CarID: 3,
			PickUpDate: pickUp, ReturnDate: ret,
			TotalPrice: 240, Status: model.StatusCompleted,
		}
		mock.ExpectQuery(`SELECT .+ FROM reservations`).
			WithArgs(3, model.StatusAccepted, model.StatusCompleted, 7).
			WillReturnRows(reservationRows(completed))

		got, err := repo.FindUnratedFinished(context.Background(), 3, 7)
		require.NoError(t, err)
		require.Equal(t, 8, got.ID)
		require.Equal(t, model.StatusCompleted, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing unrated", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM reservations`).
			WithArgs(3, model.StatusAccepted, model.StatusCompleted, 7).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindUnratedFinished(context.Background(), 3, 7)
		require.ErrorIs(t, err, errs.ErrNotEligible)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompletePastDue(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`update reservations set status = 'completed'`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.CompletePastDue(context.Background(), now)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
