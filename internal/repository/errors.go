// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values reused across repositories.
// Sentinel values let handlers distinguish failure scenarios: a not-found
// sentinel becomes a 404, while ErrConflict covers relational conflicts
// (a duplicate movie title, a duplicate actor/movie performance pair) and
// becomes a 422 for interface consistency with schema failures.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrConflict is returned when a create or update cannot proceed because it
// would violate a uniqueness invariant.
var ErrConflict = errors.New("conflict")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (1062).  The in-transaction EXISTS checks are snapshot reads, so two
// concurrent writers can both pass them; the unique keys then reject the
// loser and its error must map to ErrConflict like the check would have.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
