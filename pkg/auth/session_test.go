package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionProbe(t *testing.T, secret, authHeader string) string {
	t.Helper()

	var got string
	h := Session(secret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = DealerID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestSession_ValidToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"dealer_id": "dealer1"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, "dealer1", sessionProbe(t, "secret", "Bearer "+signed))
}

func TestSession_SubClaimFallback(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "dealer2"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, "dealer2", sessionProbe(t, "secret", "Bearer "+signed))
}

func TestSession_MissingHeaderContinuesAnonymously(t *testing.T) {
	assert.Empty(t, sessionProbe(t, "secret", ""))
}

func TestSession_WrongSecretContinuesAnonymously(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"dealer_id": "dealer1"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	assert.Empty(t, sessionProbe(t, "secret", "Bearer "+signed))
}

func TestSession_GarbageTokenContinuesAnonymously(t *testing.T) {
	assert.Empty(t, sessionProbe(t, "secret", "Bearer not.a.jwt"))
}
