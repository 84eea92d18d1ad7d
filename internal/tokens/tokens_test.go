package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")

	tokenStr, err := NewAccessToken("user-1", "admin", "Sunil", time.Now().Add(time.Hour), secret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(tokenStr, secret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "Sunil", claims.Name)
}

func TestAccessTokenRejectsBadSecret(t *testing.T) {
	tokenStr, err := NewAccessToken("user-1", "user", "Nimal", time.Now().Add(time.Hour), []byte("secret"))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(tokenStr, []byte("other"))
	require.Error(t, err)
}

func TestAccessTokenRejectsExpired(t *testing.T) {
	secret := []byte("secret")
	tokenStr, err := NewAccessToken("user-1", "user", "Nimal", time.Now().Add(-time.Minute), secret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(tokenStr, secret)
	require.Error(t, err)
}

func TestAccessTokenRejectsWrongAlg(t *testing.T) {
	// Tokens signed with anything but HS256 are refused outright.
	claims := AccessClaims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(tokenStr, []byte("secret"))
	require.Error(t, err)
}
