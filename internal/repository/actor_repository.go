package repository // repository defines data access for actors

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/casting-agency/internal/model" // model holds row structs
)

// ErrActorNotFound is returned when an actor lookup yields no rows.
var ErrActorNotFound = errors.New("actor not found")

// ActorRepo encapsulates all database queries related to actors.  It
// depends on a sql.DB connection which is injected at startup and in tests.
type ActorRepo struct {
	db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the given DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo {
	return &ActorRepo{db: db}
}

// ListAll returns every actor in insertion order.
func (r *ActorRepo) ListAll(ctx context.Context) ([]model.Actor, error) {
	const q = `SELECT id, name, gender, age, created_at, updated_at
	           FROM actors ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Actor
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Gender, &a.Age, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches an actor by id.  It returns ErrActorNotFound if no row
// matches.
func (r *ActorRepo) GetByID(ctx context.Context, id uint64) (*model.Actor, error) {
	const q = `SELECT id, name, gender, age, created_at, updated_at
	           FROM actors WHERE id = ?`
	var a model.Actor
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Name, &a.Gender, &a.Age, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new actor.  On success the actor's ID is populated and a
// follow-up SELECT fills the timestamp fields so callers receive a fully
// populated record.
func (r *ActorRepo) Create(ctx context.Context, a *model.Actor) error {
	const qInsert = `INSERT INTO actors (name, gender, age) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, a.Name, a.Gender, a.Age)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM actors WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// Update applies a partial update to an actor inside a transaction.  Only
// non-nil patch fields change; absent fields retain their prior values.
// Returns ErrActorNotFound when the id does not exist.
func (r *ActorRepo) Update(ctx context.Context, id uint64, p model.ActorPatch) (*model.Actor, error) {
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

	// Lock the row so concurrent patches serialize.
	var a model.Actor
	const qSelect = `SELECT id, name, gender, age, created_at, updated_at
	                 FROM actors WHERE id = ? FOR UPDATE`
	if err = tx.QueryRowContext(ctx, qSelect, id).
		Scan(&a.ID, &a.Name, &a.Gender, &a.Age, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrActorNotFound
		}
		return nil, err
	}

	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Age != nil {
		a.Age = *p.Age
	}

	const qUpdate = `UPDATE actors
	                 SET name = ?, gender = ?, age = ?, updated_at = CURRENT_TIMESTAMP
	                 WHERE id = ?`
	if _, err = tx.ExecContext(ctx, qUpdate, a.Name, a.Gender, a.Age, a.ID); err != nil {
		return nil, err
	}
	if err = tx.QueryRowContext(ctx, `SELECT updated_at FROM actors WHERE id = ?`, a.ID).
		Scan(&a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteByID removes an actor and cascades to all performances referencing
// it.  The whole effect is committed in one transaction.  It returns the
// number of performances removed, or ErrActorNotFound when the id does not
// exist.
func (r *ActorRepo) DeleteByID(ctx context.Context, id uint64) (int64, error) {
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

	// Verify the actor exists before cascading.
	var existing uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM actors WHERE id = ? FOR UPDATE`, id).
		Scan(&existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrActorNotFound
		}
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM performances WHERE actor_id = ?`, id)
	if err != nil {
		return 0, err
	}
	removed, _ := res.RowsAffected()

	if _, err = tx.ExecContext(ctx, `DELETE FROM actors WHERE id = ?`, id); err != nil {
		return 0, err
	}
	return removed, nil
}
