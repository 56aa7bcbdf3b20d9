// Package auth defines the closed set of permissions a verified bearer
// token may carry.  Token issuing and identity live with an external
// provider; this service only consumes the verification result.  Raw claim
// values are converted into typed permissions here so the rest of the code
// never inspects claims.
package auth

// Permission gates exactly one route+verb pair.  The string values are the
// external contract with the token issuer.
type Permission string

const (
    ReadActors         Permission = "read:actors"
    WriteActors        Permission = "write:actors"
    DeleteActors       Permission = "delete:actors"
    ReadMovies         Permission = "read:movies"
    WriteMovies        Permission = "write:movies"
    DeleteMovies       Permission = "delete:movies"
    ReadPerformances   Permission = "read:performances"
    WritePerformances  Permission = "write:performances"
    DeletePerformances Permission = "delete:performances"
)

// known is the closed set; claim values outside it are dropped.
var known = map[Permission]bool{
    ReadActors:         true,
    WriteActors:        true,
    DeleteActors:       true,
    ReadMovies:         true,
    WriteMovies:        true,
    DeleteMovies:       true,
    ReadPerformances:   true,
    WritePerformances:  true,
    DeletePerformances: true,
}

// All returns every defined permission, useful for minting admin tokens.
func All() []Permission {
    out := make([]Permission, 0, len(known))
    for p := range known {
        out = append(out, p)
    }
    return out
}

// PermissionSet is the verified capability set of one request.
type PermissionSet map[Permission]bool

// Has reports whether the set carries the given permission.
func (s PermissionSet) Has(p Permission) bool { return s[p] }

// PermissionsFromClaim converts the raw "permissions" claim of a verified
// token into a typed set.  The claim decodes as []any when it is a JSON
// array; anything else yields an empty set.  Unknown or non-string entries
// are ignored rather than rejected so that tokens carrying permissions for
// other services still work here.
func PermissionsFromClaim(raw any) PermissionSet {
    set := PermissionSet{}
    items, ok := raw.([]any)
    if !ok {
        return set
    }
    for _, item := range items {
        s, ok := item.(string)
        if !ok {
            continue
        }
        if p := Permission(s); known[p] {
            set[p] = true
        }
    }
    return set
}
