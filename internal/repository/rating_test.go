package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

func ratingRows(rt model.Rating) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "car_id", "score", "comment", "created_at"}).
		AddRow(rt.ID, rt.UserID, rt.CarID, rt.Score, rt.Comment, rt.CreatedAt)
}

func TestAddRating(t *testing.T) {
	rating := model.Rating{
		UserID:  7,
		CarID:   3,
		Score:   4,
		Comment: "clean car",
	}

	t.Run("links reservation and refreshes aggregates", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		created := rating
		created.ID = 21
		created.CreatedAt = time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO ratings`).
			WithArgs(rating.UserID, rating.CarID, rating.Score, rating.Comment).
			WillReturnRows(ratingRows(created))
		mock.ExpectExec(`update reservations set rating_id`).
			WithArgs(created.ID, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`update cars set`).
			WithArgs(rating.CarID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repo.AddRating(context.Background(), 5, rating)
		require.NoError(t, err)
		require.Equal(t, 21, got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reservation already rated", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		created := rating
		created.ID = 22
		created.CreatedAt = time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO ratings`).
			WithArgs(rating.UserID, rating.CarID, rating.Score, rating.Comment).
			WillReturnRows(ratingRows(created))
		mock.ExpectExec(`update reservations set rating_id`).
			WithArgs(created.ID, 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.AddRating(context.Background(), 5, rating)
		require.ErrorIs(t, err, errs.ErrNotEligible)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteRating(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`delete from ratings where id = \$1 returning car_id`).
		WithArgs(21).
		WillReturnRows(sqlmock.NewRows([]string{"car_id"}).AddRow(3))
	mock.ExpectExec(`update cars set`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRating(context.Background(), 21))
	require.NoError(t, mock.ExpectationsWereMet())
}
