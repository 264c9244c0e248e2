package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

// TokenVerifier is the slice of the Firebase auth client the gate needs;
// tests substitute fakes.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate verifies the bearer token and stores the decoded identity in
// the request context. A missing or malformed header is a 401; a header that
// carries a token Firebase rejects is a 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Message(c, http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Message(c, http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.verifier.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Message(c, http.StatusForbidden, "Invalid or expired token")
		}

		c.Set("uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		return next(c)
	}
}
