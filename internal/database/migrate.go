package database

import (
	"context"
	"database/sql"
)

// migrations holds the schema statements executed at startup.  Statements
// are idempotent so the service can restart against an existing database.
//
// The unique key on movies.title relies on the default case-insensitive
// utf8mb4 collation, so "Bullet Train" and "bullet train" collide at the
// database level just as they do in the application-level check.  The
// foreign keys on performances carry ON DELETE CASCADE as a race guard; the
// repositories still cascade explicitly inside their delete transactions so
// the behaviour does not depend on the engine.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS actors (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name       VARCHAR(120)    NOT NULL,
		gender     VARCHAR(120)    NOT NULL,
		age        INT             NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS movies (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title        VARCHAR(120)    NOT NULL,
		release_date DATETIME(3)     NOT NULL,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_movies_title (title)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS performances (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		actor_id   BIGINT UNSIGNED NOT NULL,
		movie_id   BIGINT UNSIGNED NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_performances_actor_movie (actor_id, movie_id),
		CONSTRAINT fk_performances_actor FOREIGN KEY (actor_id) REFERENCES actors (id) ON DELETE CASCADE,
		CONSTRAINT fk_performances_movie FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

// Migrate creates the casting-agency tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, q := range migrations {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
