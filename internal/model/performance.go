package model

import "time"

// Performance links an actor to a movie they appear in.  The
// (actor_id, movie_id) pair is unique and a performance exists only while
// both referenced rows exist; deleting either side removes it.  There is
// no update operation for performances, they are immutable once created.
type Performance struct {
    ID        uint64    // performances.id
    ActorID   uint64    // performances.actor_id
    MovieID   uint64    // performances.movie_id
    CreatedAt time.Time // performances.created_at
}
