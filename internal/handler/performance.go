package handler // performance handlers

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/schema"
)

// ListPerformances handles GET /performances.
func (h *Handler) ListPerformances(c echo.Context) error {
    performances, err := h.Performances.ListAll(c.Request().Context())
    if err != nil {
        return errorJSON(c, http.StatusInternalServerError)
    }
    views := make([]performanceView, 0, len(performances))
    for _, p := range performances {
        views = append(views, viewPerformance(p))
    }
    return c.JSON(http.StatusOK, echo.Map{"performances": views})
}

// CreatePerformance handles POST /performances.  A payload referencing a
// missing actor or movie, or duplicating an existing (actor, movie) pair,
// is a 422 — relational conflicts share the unprocessable class with
// schema failures.
func (h *Handler) CreatePerformance(c echo.Context) error {
    perf, ok := schema.PerformanceFrom(bindPayload(c))
    if !ok {
        return errorJSON(c, http.StatusUnprocessableEntity)
    }
    if err := h.Performances.Create(c.Request().Context(), &perf); err != nil {
        switch {
        case errors.Is(err, repository.ErrActorNotFound),
            errors.Is(err, repository.ErrMovieNotFound),
            errors.Is(err, repository.ErrConflict):
            return errorJSON(c, http.StatusUnprocessableEntity)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    _ = h.Events.PerformanceCreated(c.Request().Context(), queue.PerformanceCreatedEvent{
        PerformanceID: perf.ID,
        ActorID:       perf.ActorID,
        MovieID:       perf.MovieID,
        CreatedAt:     time.Now().UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusOK, echo.Map{"performance": viewPerformance(perf)})
}

// DeletePerformance handles DELETE /performances/:id.
func (h *Handler) DeletePerformance(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    if err := h.Performances.DeleteByID(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrPerformanceNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
