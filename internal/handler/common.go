package handler // handler defines http handlers

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/model"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/schema"
    queue_publisher "github.com/iliyamo/casting-agency/internal/service"
)

// Handler bundles the repositories backing the casting-agency routes plus
// the optional domain-event publisher.
type Handler struct {
    Actors       *repository.ActorRepo
    Movies       *repository.MovieRepo
    Performances *repository.PerformanceRepo
    Events       *queue_publisher.Publisher // nil disables event publishing
}

// New constructs a Handler and panics if any repository is nil.  The event
// publisher may be nil.
func New(actors *repository.ActorRepo, movies *repository.MovieRepo, performances *repository.PerformanceRepo, events *queue_publisher.Publisher) *Handler {
    if actors == nil || movies == nil || performances == nil {
        panic("nil repository passed to handler.New")
    }
    return &Handler{Actors: actors, Movies: movies, Performances: performances, Events: events}
}

// errorJSON writes the generic error body: {success:false, error, message}.
func errorJSON(c echo.Context, code int) error {
    return c.JSON(code, echo.Map{
        "success": false,
        "error":   code,
        "message": http.StatusText(code),
    })
}

// bindPayload decodes the request body into a raw map for the schema
// validator.  Only the body is read: route params must never leak into the
// payload, or a bodyless PATCH /actors/:id would look like a valid empty
// patch.  A missing, null or malformed body leaves the map nil, which every
// operation kind rejects; the caller never sees an error here.
func bindPayload(c echo.Context) map[string]any {
    var data map[string]any
    if err := json.NewDecoder(c.Request().Body).Decode(&data); err != nil {
        return nil
    }
    return data
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}

// ----- response views -----
//
// Only the public field set of each entity is serialized: id plus semantic
// attributes.  Relationship collections and row timestamps never leave the
// service.

type actorView struct {
    ID     uint64 `json:"id"`
    Name   string `json:"name"`
    Gender string `json:"gender"`
    Age    int    `json:"age"`
}

func viewActor(a model.Actor) actorView {
    return actorView{ID: a.ID, Name: a.Name, Gender: a.Gender, Age: a.Age}
}

type movieView struct {
    ID          uint64 `json:"id"`
    Title       string `json:"title"`
    ReleaseDate string `json:"release_date"`
}

func viewMovie(m model.Movie) movieView {
    return movieView{
        ID:          m.ID,
        Title:       m.Title,
        ReleaseDate: m.ReleaseDate.UTC().Format(schema.ReleaseDateLayout),
    }
}

type performanceView struct {
    ID      uint64 `json:"id"`
    ActorID uint64 `json:"actor_id"`
    MovieID uint64 `json:"movie_id"`
}

func viewPerformance(p model.Performance) performanceView {
    return performanceView{ID: p.ID, ActorID: p.ActorID, MovieID: p.MovieID}
}
