package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

func invokeAuthenticate(t *testing.T, verifier TokenVerifier, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(verifier)
	require.NoError(t, m.Authenticate(next)(c))

	return rec, c
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rec, _ := invokeAuthenticate(t, &fakeVerifier{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is required")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	for _, header := range []string{"sometoken", "Basic sometoken", "Bearer a b"} {
		rec, _ := invokeAuthenticate(t, &fakeVerifier{}, header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), "Invalid authorization format")
	}
}

func TestAuthenticateRejectedToken(t *testing.T) {
	verifier := &fakeVerifier{err: fmt.Errorf("token expired")}
	rec, _ := invokeAuthenticate(t, verifier, "Bearer expired-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticateStoresIdentity(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]interface{}{"email": "farmer@example.com"},
	}}

	rec, c := invokeAuthenticate(t, verifier, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.Get("uid"))
	assert.Equal(t, "farmer@example.com", c.Get("email"))
}
