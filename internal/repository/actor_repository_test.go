package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/casting-agency/internal/model"
)

func newMock(t *testing.T) (*ActorRepo, *MovieRepo, *PerformanceRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewActorRepo(db), NewMovieRepo(db), NewPerformanceRepo(db), mock
}

func actorColumns() []string {
	return []string{"id", "name", "gender", "age", "created_at", "updated_at"}
}

func TestActorListAll(t *testing.T) {
	actors, _, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, gender, age, created_at, updated_at\s+FROM actors ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(actorColumns()).
			AddRow(1, "Leonardo DiCaprio", "male", 46, now, now).
			AddRow(2, "Margot Robbie", "female", 31, now, now))

	got, err := actors.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint64(1), got[0].ID)
	require.Equal(t, "Margot Robbie", got[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorGetByIDNotFound(t *testing.T) {
	actors, _, _, mock := newMock(t)

	mock.ExpectQuery(`FROM actors WHERE id = \?`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(actorColumns()))

	_, err := actors.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrActorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorCreate(t *testing.T) {
	actors, _, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO actors \(name, gender, age\) VALUES \(\?, \?, \?\)`).
		WithArgs("Leonardo DiCaprio", "male", 46).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT created_at, updated_at FROM actors WHERE id = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	a := model.Actor{Name: "Leonardo DiCaprio", Gender: "male", Age: 46}
	require.NoError(t, actors.Create(context.Background(), &a))
	require.Equal(t, uint64(7), a.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorUpdatePartial(t *testing.T) {
	actors, _, _, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM actors WHERE id = \? FOR UPDATE`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(actorColumns()).
			AddRow(5, "Leonardo DiCaprio", "male", 46, now, now))
	// Only the name changes; gender and age keep their prior values.
	mock.ExpectExec(`UPDATE actors\s+SET name = \?, gender = \?, age = \?, updated_at = CURRENT_TIMESTAMP\s+WHERE id = \?`).
		WithArgs("Brad Pitt", "male", 46, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT updated_at FROM actors WHERE id = \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	name := "Brad Pitt"
	got, err := actors.Update(context.Background(), 5, model.ActorPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Brad Pitt", got.Name)
	require.Equal(t, "male", got.Gender)
	require.Equal(t, 46, got.Age)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorUpdateNotFound(t *testing.T) {
	actors, _, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM actors WHERE id = \? FOR UPDATE`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(actorColumns()))
	mock.ExpectRollback()

	_, err := actors.Update(context.Background(), 999, model.ActorPatch{})
	require.ErrorIs(t, err, ErrActorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorDeleteCascades(t *testing.T) {
	actors, _, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM actors WHERE id = \? FOR UPDATE`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec(`DELETE FROM performances WHERE actor_id = \?`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM actors WHERE id = \?`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := actors.DeleteByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActorDeleteNotFound(t *testing.T) {
	actors, _, _, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM actors WHERE id = \? FOR UPDATE`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := actors.DeleteByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrActorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
