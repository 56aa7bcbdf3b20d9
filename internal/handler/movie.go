package handler // movie handlers

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/schema"
)

// ListMovies handles GET /movies.
func (h *Handler) ListMovies(c echo.Context) error {
    movies, err := h.Movies.ListAll(c.Request().Context())
    if err != nil {
        return errorJSON(c, http.StatusInternalServerError)
    }
    views := make([]movieView, 0, len(movies))
    for _, m := range movies {
        views = append(views, viewMovie(m))
    }
    return c.JSON(http.StatusOK, echo.Map{"movies": views})
}

// GetMovie handles GET /movies/:id.
func (h *Handler) GetMovie(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    m, err := h.Movies.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrMovieNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"movie": viewMovie(*m)})
}

// CreateMovie handles POST /movies.  Title and release date must pass the
// create-movie shape; a title already taken under case-insensitive
// comparison surfaces as a 422 conflict from the store.
func (h *Handler) CreateMovie(c echo.Context) error {
    movie, ok := schema.MovieFrom(bindPayload(c))
    if !ok {
        return errorJSON(c, http.StatusUnprocessableEntity)
    }
    if err := h.Movies.Create(c.Request().Context(), &movie); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return errorJSON(c, http.StatusUnprocessableEntity)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"movie": viewMovie(movie)})
}

// UpdateMovie handles PATCH /movies/:id.  Renaming onto another movie's
// title fails the uniqueness re-check and is a 422 like on create.
func (h *Handler) UpdateMovie(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    patch, ok := schema.MoviePatchFrom(bindPayload(c))
    if !ok {
        return errorJSON(c, http.StatusUnprocessableEntity)
    }
    m, err := h.Movies.Update(c.Request().Context(), id, patch)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrMovieNotFound):
            return errorJSON(c, http.StatusNotFound)
        case errors.Is(err, repository.ErrConflict):
            return errorJSON(c, http.StatusUnprocessableEntity)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"movie": viewMovie(*m)})
}

// DeleteMovie handles DELETE /movies/:id with cascade to performances.
func (h *Handler) DeleteMovie(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    removed, err := h.Movies.DeleteByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrMovieNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    _ = h.Events.MovieDeleted(c.Request().Context(), queue.MovieDeletedEvent{
        MovieID:             id,
        RemovedPerformances: removed,
        DeletedAt:           time.Now().UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
