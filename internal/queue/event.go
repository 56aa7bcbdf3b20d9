// Package queue defines message payloads exchanged over the message broker.
// Events are emitted after a mutation commits; consumers can log, notify or
// feed analytics without querying the primary database.
package queue

// PerformanceCreatedEvent is published when an actor is cast in a movie.
type PerformanceCreatedEvent struct {
    PerformanceID uint64 `json:"performance_id"`
    ActorID       uint64 `json:"actor_id"`
    MovieID       uint64 `json:"movie_id"`
    CreatedAt     string `json:"created_at"`
}

// ActorDeletedEvent is published when an actor is removed, carrying the
// number of performances the cascade took with it.
type ActorDeletedEvent struct {
    ActorID             uint64 `json:"actor_id"`
    RemovedPerformances int64  `json:"removed_performances"`
    DeletedAt           string `json:"deleted_at"`
}

// MovieDeletedEvent is the movie-side counterpart of ActorDeletedEvent.
type MovieDeletedEvent struct {
    MovieID             uint64 `json:"movie_id"`
    RemovedPerformances int64  `json:"removed_performances"`
    DeletedAt           string `json:"deleted_at"`
}
