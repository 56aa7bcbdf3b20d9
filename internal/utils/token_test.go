package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/casting-agency/internal/auth"
)

func TestNewAccessTokenClaims(t *testing.T) {
	tok, err := NewAccessToken("secret", "casting-director", []auth.Permission{auth.ReadActors, auth.WriteActors}, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "casting-director", claims["sub"])

	set := auth.PermissionsFromClaim(claims["permissions"])
	require.True(t, set.Has(auth.ReadActors))
	require.True(t, set.Has(auth.WriteActors))
	require.False(t, set.Has(auth.DeleteActors))
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret", "dev", nil, 15)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	require.Error(t, err)
}
