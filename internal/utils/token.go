package utils // package utils provides helper functions for token creation

import (
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/iliyamo/casting-agency/internal/auth"
)

// AccessToken represents a signed JWT access token along with its expiry.
// In production tokens come from the external identity provider; this
// helper exists for operational tooling and tests, and produces tokens in
// the exact claim shape the verification middleware expects.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT carrying a permissions
// claim.  Claims: subject (sub), permissions (array of permission strings),
// expiration (exp) and issued at (iat).
func NewAccessToken(secret, subject string, perms []auth.Permission, ttlMin int) (AccessToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claimPerms := make([]string, 0, len(perms))
    for _, p := range perms {
        claimPerms = append(claimPerms, string(p))
    }
    claims := jwt.MapClaims{
        "sub":         subject,
        "permissions": claimPerms,
        "exp":         exp.Unix(),
        "iat":         time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
