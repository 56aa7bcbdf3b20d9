package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/casting-agency/internal/auth"
    "github.com/iliyamo/casting-agency/internal/config"
    "github.com/iliyamo/casting-agency/internal/handler"
    "github.com/iliyamo/casting-agency/internal/middleware"
)

// RegisterRoutes wires every endpoint of the API onto the Echo instance.
//
// Each request runs the same pipeline: rate limit, bearer-token
// verification, per-route permission check, then the handler (which in
// turn runs the schema validator before touching the store).  Failures at
// any stage short-circuit with the generic error body.  The health check
// stays outside the authenticated surface.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, jwtSecret string, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
    e.GET("/healthz", handler.Health)

    e.Use(middleware.NewTokenBucket(rlCfg, rdb))

    // Response cache for the listing endpoints.  It sits after the
    // permission check in the route chain, so a HIT still requires a
    // verified token with the read permission.
    cache := middleware.NewRedisCache(cacheCfg, rdb)

    api := e.Group("", middleware.JWTAuth(jwtSecret))

    api.GET("/actors", h.ListActors, middleware.RequirePermission(auth.ReadActors), cache)
    api.POST("/actors", h.CreateActor, middleware.RequirePermission(auth.WriteActors))
    api.GET("/actors/:id", h.GetActor, middleware.RequirePermission(auth.ReadActors))
    api.PATCH("/actors/:id", h.UpdateActor, middleware.RequirePermission(auth.WriteActors))
    api.DELETE("/actors/:id", h.DeleteActor, middleware.RequirePermission(auth.DeleteActors))

    api.GET("/movies", h.ListMovies, middleware.RequirePermission(auth.ReadMovies), cache)
    api.POST("/movies", h.CreateMovie, middleware.RequirePermission(auth.WriteMovies))
    api.GET("/movies/:id", h.GetMovie, middleware.RequirePermission(auth.ReadMovies))
    api.PATCH("/movies/:id", h.UpdateMovie, middleware.RequirePermission(auth.WriteMovies))
    api.DELETE("/movies/:id", h.DeleteMovie, middleware.RequirePermission(auth.DeleteMovies))

    api.GET("/performances", h.ListPerformances, middleware.RequirePermission(auth.ReadPerformances), cache)
    api.POST("/performances", h.CreatePerformance, middleware.RequirePermission(auth.WritePerformances))
    api.DELETE("/performances/:id", h.DeletePerformance, middleware.RequirePermission(auth.DeletePerformances))
}
