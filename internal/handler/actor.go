package handler // actor handlers: the gate between validated payloads and the actor store

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/queue"
    "github.com/iliyamo/casting-agency/internal/repository"
    "github.com/iliyamo/casting-agency/internal/schema"
)

// ListActors handles GET /actors.
func (h *Handler) ListActors(c echo.Context) error {
    actors, err := h.Actors.ListAll(c.Request().Context())
    if err != nil {
        return errorJSON(c, http.StatusInternalServerError)
    }
    views := make([]actorView, 0, len(actors))
    for _, a := range actors {
        views = append(views, viewActor(a))
    }
    return c.JSON(http.StatusOK, echo.Map{"actors": views})
}

// GetActor handles GET /actors/:id.
func (h *Handler) GetActor(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    a, err := h.Actors.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrActorNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"actor": viewActor(*a)})
}

// CreateActor handles POST /actors.  The payload must satisfy the
// create-actor shape; anything else is a 422 before the store is touched.
func (h *Handler) CreateActor(c echo.Context) error {
    actor, ok := schema.ActorFrom(bindPayload(c))
    if !ok {
        return errorJSON(c, http.StatusUnprocessableEntity)
    }
    if err := h.Actors.Create(c.Request().Context(), &actor); err != nil {
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"actor": viewActor(actor)})
}

// UpdateActor handles PATCH /actors/:id.  Only fields present in the
// validated payload change; an empty object is a valid no-op.
func (h *Handler) UpdateActor(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    patch, ok := schema.ActorPatchFrom(bindPayload(c))
    if !ok {
        return errorJSON(c, http.StatusUnprocessableEntity)
    }
    a, err := h.Actors.Update(c.Request().Context(), id, patch)
    if err != nil {
        if errors.Is(err, repository.ErrActorNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    return c.JSON(http.StatusOK, echo.Map{"actor": viewActor(*a)})
}

// DeleteActor handles DELETE /actors/:id.  Deletion cascades to every
// performance referencing the actor; the cascade count goes out on the
// event bus for downstream consumers.
func (h *Handler) DeleteActor(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return errorJSON(c, http.StatusBadRequest)
    }
    removed, err := h.Actors.DeleteByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrActorNotFound) {
            return errorJSON(c, http.StatusNotFound)
        }
        return errorJSON(c, http.StatusInternalServerError)
    }
    _ = h.Events.ActorDeleted(c.Request().Context(), queue.ActorDeletedEvent{
        ActorID:             id,
        RemovedPerformances: removed,
        DeletedAt:           time.Now().UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}
