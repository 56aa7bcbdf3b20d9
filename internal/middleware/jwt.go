package middleware // middleware provides shared request processing for handlers

import (
    "strings" // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware

    "github.com/iliyamo/casting-agency/internal/auth" // typed permission extraction
)

// Context keys under which JWTAuth stores verified token data.
const (
    ctxSubject     = "subject"     // token subject, used for rate-limit keying
    ctxPermissions = "permissions" // auth.PermissionSet of the verified token
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject and typed permission set into the request
// context.  The secret must match the one the external token issuer signs
// with.  Expiry is enforced by the parser, so an expired token fails
// verification the same way a forged one does.  All failures short-circuit
// with 401 and the generic error body; no later stage runs.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            authz := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(authz, "Bearer ") {
                return errorJSON(c, 401)
            }
            raw := strings.TrimPrefix(authz, "Bearer ")

            // Parse with the HS256 signing method and our secret.  The
            // callback supplies the key and rejects other algorithms.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return errorJSON(c, 401)
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return errorJSON(c, 401)
            }

            // Hand downstream stages only typed data: the subject string
            // and the closed permission set.  Raw claims stop here.
            if sub, ok := claims["sub"].(string); ok {
                c.Set(ctxSubject, sub)
            }
            c.Set(ctxPermissions, auth.PermissionsFromClaim(claims["permissions"]))
            return next(c)
        }
    }
}
