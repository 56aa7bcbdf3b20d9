package model

import "time"

// Movie represents a production the agency casts for.  Titles are unique
// across all movies under case-insensitive comparison and the release date
// must lie in the future at the time it is accepted.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – movie title (1–120 characters, unique ignoring case).
//  ReleaseDate – scheduled release timestamp (UTC).
//  CreatedAt   – timestamp when the row was created.
//  UpdatedAt   – timestamp of last update.
type Movie struct {
    ID          uint64    // movies.id
    Title       string    // movies.title
    ReleaseDate time.Time // movies.release_date
    CreatedAt   time.Time // movies.created_at
    UpdatedAt   time.Time // movies.updated_at
}

// MoviePatch describes a partial update to a movie.  Nil fields are left
// unchanged by the repository.
type MoviePatch struct {
    Title       *string
    ReleaseDate *time.Time
}
