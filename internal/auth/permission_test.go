package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionsFromClaim(t *testing.T) {
	raw := []any{"read:actors", "write:movies", "admin:everything", 42, nil}
	set := PermissionsFromClaim(raw)

	require.True(t, set.Has(ReadActors))
	require.True(t, set.Has(WriteMovies))
	require.False(t, set.Has(DeleteActors))
	require.Len(t, set, 2, "unknown and non-string entries are dropped")
}

func TestPermissionsFromClaimNonArray(t *testing.T) {
	require.Empty(t, PermissionsFromClaim("read:actors"))
	require.Empty(t, PermissionsFromClaim(nil))
	require.Empty(t, PermissionsFromClaim(map[string]any{"read:actors": true}))
}

func TestAllCoversEveryRoute(t *testing.T) {
	require.Len(t, All(), 9)
}
