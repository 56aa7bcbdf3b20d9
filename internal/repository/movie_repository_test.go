package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/casting-agency/internal/model"
)

func movieColumns() []string {
	return []string{"id", "title", "release_date", "created_at", "updated_at"}
}

func TestMovieCreate(t *testing.T) {
	_, movies, _, mock := newMock(t)
	now := time.Now()
	release := now.Add(30 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM movies WHERE LOWER\(title\) = \?\)`).
		WithArgs("bullet train").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO movies \(title, release_date\) VALUES \(\?, \?\)`).
		WithArgs("Bullet Train", release).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(`SELECT created_at, updated_at FROM movies WHERE id = \?`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectCommit()

	m := model.Movie{Title: "Bullet Train", ReleaseDate: release}
	require.NoError(t, movies.Create(context.Background(), &m))
	require.Equal(t, uint64(3), m.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieCreateDuplicateTitle(t *testing.T) {
	_, movies, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM movies WHERE LOWER\(title\) = \?\)`).
		WithArgs("bullet train").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectRollback()

	m := model.Movie{Title: "BULLET TRAIN", ReleaseDate: time.Now().Add(time.Hour)}
	err := movies.Create(context.Background(), &m)
	require.ErrorIs(t, err, ErrConflict)
	require.Zero(t, m.ID, "nothing is persisted on conflict")
	require.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent create can slip past the snapshot-read EXISTS check; the
// unique key then rejects the insert and the 1062 error must surface as
// ErrConflict, not as an opaque failure.
func TestMovieCreateDuplicateKeyRace(t *testing.T) {
	_, movies, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM movies WHERE LOWER\(title\) = \?\)`).
		WithArgs("bullet train").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO movies \(title, release_date\) VALUES \(\?, \?\)`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bullet train' for key 'uq_movies_title'"})
	mock.ExpectRollback()

	m := model.Movie{Title: "Bullet Train", ReleaseDate: time.Now().Add(time.Hour)}
	err := movies.Create(context.Background(), &m)
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieUpdateDuplicateKeyRace(t *testing.T) {
	_, movies, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM movies WHERE id = \? FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(4, "Blonde", now.Add(time.Hour), now, now))
	mock.ExpectQuery(`LOWER\(title\) = \? AND id <> \?`).
		WithArgs("bullet train", 4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))
	mock.ExpectExec(`UPDATE movies\s+SET title = \?, release_date = \?, updated_at = CURRENT_TIMESTAMP\s+WHERE id = \?`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bullet train' for key 'uq_movies_title'"})
	mock.ExpectRollback()

	title := "Bullet Train"
	_, err := movies.Update(context.Background(), 4, model.MoviePatch{Title: &title})
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieUpdateTitleConflict(t *testing.T) {
	_, movies, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM movies WHERE id = \? FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(4, "Blonde", now.Add(time.Hour), now, now))
	mock.ExpectQuery(`LOWER\(title\) = \? AND id <> \?`).
		WithArgs("bullet train", 4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectRollback()

	title := "Bullet Train"
	_, err := movies.Update(context.Background(), 4, model.MoviePatch{Title: &title})
	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieUpdateSameTitleSkipsCheck(t *testing.T) {
	_, movies, _, mock := newMock(t)
	now := time.Now()
	release := now.Add(48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM movies WHERE id = \? FOR UPDATE`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(4, "Blonde", now.Add(time.Hour), now, now))
	// Re-casing your own title is not a conflict, so no uniqueness query runs.
	mock.ExpectExec(`UPDATE movies\s+SET title = \?, release_date = \?, updated_at = CURRENT_TIMESTAMP\s+WHERE id = \?`).
		WithArgs("BLONDE", release, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT updated_at FROM movies WHERE id = \?`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	title := "BLONDE"
	got, err := movies.Update(context.Background(), 4, model.MoviePatch{Title: &title, ReleaseDate: &release})
	require.NoError(t, err)
	require.Equal(t, "BLONDE", got.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieUpdateNotFound(t *testing.T) {
	_, movies, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM movies WHERE id = \? FOR UPDATE`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(movieColumns()))
	mock.ExpectRollback()

	_, err := movies.Update(context.Background(), 999, model.MoviePatch{})
	require.ErrorIs(t, err, ErrMovieNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieDeleteCascades(t *testing.T) {
	_, movies, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM movies WHERE id = \? FOR UPDATE`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec(`DELETE FROM performances WHERE movie_id = \?`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM movies WHERE id = \?`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := movies.DeleteByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
