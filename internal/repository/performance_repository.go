package repository // repository defines data access for performances

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/casting-agency/internal/model"
)

// ErrPerformanceNotFound is returned when a performance lookup yields no rows.
var ErrPerformanceNotFound = errors.New("performance not found")

// PerformanceRepo encapsulates database queries for the join records
// linking actors to movies.  Referential integrity and pair uniqueness are
// checked inside the create transaction; performances have no update
// operation.
type PerformanceRepo struct {
	db *sql.DB
}

// NewPerformanceRepo constructs a PerformanceRepo with the given DB handle.
func NewPerformanceRepo(db *sql.DB) *PerformanceRepo {
	return &PerformanceRepo{db: db}
}

// ListAll returns every performance in insertion order.
func (r *PerformanceRepo) ListAll(ctx context.Context) ([]model.Performance, error) {
	const q = `SELECT id, actor_id, movie_id, created_at
	           FROM performances ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Performance
	for rows.Next() {
		var p model.Performance
		if err := rows.Scan(&p.ID, &p.ActorID, &p.MovieID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new performance after verifying that both referenced
// rows exist and that no performance already links this actor to this
// movie.  The checks and the insert share one transaction.  A missing
// referent returns the matching not-found sentinel; a duplicate pair
// returns ErrConflict.
func (r *PerformanceRepo) Create(ctx context.Context, p *model.Performance) error {
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

	var exists bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM actors WHERE id = ?)`, p.ActorID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		err = ErrActorNotFound
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`, p.MovieID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		err = ErrMovieNotFound
		return err
	}
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM performances WHERE actor_id = ? AND movie_id = ?)`,
		p.ActorID, p.MovieID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		err = ErrConflict
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO performances (actor_id, movie_id) VALUES (?, ?)`, p.ActorID, p.MovieID)
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
	p.ID = uint64(id)

	err = tx.QueryRowContext(ctx,
		`SELECT created_at FROM performances WHERE id = ?`, p.ID).Scan(&p.CreatedAt)
	return err
}

// DeleteByID removes a performance.  A single statement suffices since
// nothing references performances.  Returns ErrPerformanceNotFound when the
// id does not exist.
func (r *PerformanceRepo) DeleteByID(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM performances WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPerformanceNotFound
	}
	return nil
}
