package repository // repository defines data access for movies

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/casting-agency/internal/model"
)

// ErrMovieNotFound is returned when a movie lookup yields no rows.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all database queries related to movies.  The
// case-insensitive title uniqueness invariant is enforced here, inside the
// same transaction as the write, so a race between two creates of the same
// title produces exactly one success and one ErrConflict.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// ListAll returns every movie in insertion order.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, title, release_date, created_at, updated_at
	           FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by id.  It returns ErrMovieNotFound if no row
// matches.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT id, title, release_date, created_at, updated_at
	           FROM movies WHERE id = ?`
	var m model.Movie
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a new movie after checking that no existing movie carries
// the same title under case-insensitive comparison.  Check and insert run
// in one transaction; a collision returns ErrConflict without persisting.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var taken bool
	const qCheck = `SELECT EXISTS(SELECT 1 FROM movies WHERE LOWER(title) = ?)`
	if err = tx.QueryRowContext(ctx, qCheck, strings.ToLower(m.Title)).Scan(&taken); err != nil {
		return err
	}
	if taken {
		err = ErrConflict
		return err
	}

	const qInsert = `INSERT INTO movies (title, release_date) VALUES (?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, m.Title, m.ReleaseDate)
	if err != nil {
		if isDuplicateKey(err) {
			err = ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM movies WHERE id = ?`
	err = tx.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.CreatedAt, &m.UpdatedAt)
	return err
}

// Update applies a partial update to a movie inside a transaction.  When
// the patch changes the title, the case-insensitive uniqueness check runs
// again excluding the row being updated, so renaming a movie onto another
// movie's title fails with ErrConflict.  Returns ErrMovieNotFound when the
// id does not exist.
func (r *MovieRepo) Update(ctx context.Context, id uint64, p model.MoviePatch) (*model.Movie, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var m model.Movie
	const qSelect = `SELECT id, title, release_date, created_at, updated_at
	                 FROM movies WHERE id = ? FOR UPDATE`
	if err = tx.QueryRowContext(ctx, qSelect, id).
		Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrMovieNotFound
		}
		return nil, err
	}

	if p.Title != nil && !strings.EqualFold(*p.Title, m.Title) {
		var taken bool
		const qCheck = `SELECT EXISTS(SELECT 1 FROM movies WHERE LOWER(title) = ? AND id <> ?)`
		if err = tx.QueryRowContext(ctx, qCheck, strings.ToLower(*p.Title), id).Scan(&taken); err != nil {
			return nil, err
		}
		if taken {
			err = ErrConflict
			return nil, err
		}
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		m.ReleaseDate = *p.ReleaseDate
	}

	const qUpdate = `UPDATE movies
	                 SET title = ?, release_date = ?, updated_at = CURRENT_TIMESTAMP
	                 WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpdate, m.Title, m.ReleaseDate, m.ID); err != nil {
		if isDuplicateKey(err) {
			err = ErrConflict
		}
		return nil, err
	}
	if err = tx.QueryRowContext(ctx, `SELECT updated_at FROM movies WHERE id = ?`, m.ID).
		Scan(&m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteByID removes a movie and cascades to all performances referencing
// it, in one transaction.  It returns the number of performances removed,
// or ErrMovieNotFound when the id does not exist.
func (r *MovieRepo) DeleteByID(ctx context.Context, id uint64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var existing uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM movies WHERE id = ? FOR UPDATE`, id).
		Scan(&existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrMovieNotFound
		}
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM performances WHERE movie_id = ?`, id)
	if err != nil {
		return 0, err
	}
	removed, _ := res.RowsAffected()

	if _, err = tx.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return removed, nil
}
