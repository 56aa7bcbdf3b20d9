package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/casting-agency/internal/auth"
)

// RequirePermission returns a middleware enforcing that the verified token
// carries the one permission gating this route+verb pair.  It assumes
// JWTAuth already stored the typed permission set in the context; a missing
// set means the request never passed verification and is treated the same
// as a missing permission.  Rejections are 403 Forbidden — the credential
// was valid, it just lacks the capability.
func RequirePermission(p auth.Permission) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            set, ok := c.Get(ctxPermissions).(auth.PermissionSet)
            if !ok || !set.Has(p) {
                return errorJSON(c, http.StatusForbidden)
            }
            return next(c)
        }
    }
}

// errorJSON writes the generic error body shared by every failure mode.
// The handler package carries the same helper; both layers answer clients
// in the one error shape.
func errorJSON(c echo.Context, code int) error {
    return c.JSON(code, echo.Map{
        "success": false,
        "error":   code,
        "message": http.StatusText(code),
    })
}
