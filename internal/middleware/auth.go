// Package middleware holds the per-request authentication gate. Authenticate
// runs on every request and binds a Principal when a valid access token is
// presented; RequireAuth is the authorization boundary that rejects requests
// that reached a protected endpoint without one.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fintrack/expense-tracker/internal/auth/domain"
	"github.com/fintrack/expense-tracker/internal/auth/service"
	"github.com/fintrack/expense-tracker/pkg/constant"
)

const bearerPrefix = "Bearer "

// principalKey is the fiber.Ctx locals key the Principal lives under for the
// duration of a single request.
const principalKey = "principal"

type TokenVerifier interface {
	Verify(tokenString, purpose string) (*service.JWTCustomClaims, error)
}

type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticate extracts and validates the bearer credential. It never aborts
// the request: a missing, malformed, expired or wrong-purpose token leaves the
// request unauthenticated and lets RequireAuth (or a public endpoint) decide.
func Authenticate(tokens TokenVerifier, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return c.Next()
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix), constant.TokenPurposeAccess)
		if err != nil {
			log.Debug().Err(err).Msg("rejected bearer token")
			return c.Next()
		}

		// Re-resolve the subject on every request so account deletion or
		// disablement takes effect without waiting for the token to expire.
		user, err := users.GetByEmail(c.UserContext(), claims.Subject)
		if err != nil {
			log.Error().Err(err).Msg("failed to load token subject")
			return c.Next()
		}
		if user == nil || !user.Enabled {
			log.Debug().Msg("token subject no longer resolves to an enabled user")
			return c.Next()
		}

		c.Locals(principalKey, domain.Principal{UserID: user.ID, Email: user.Email})

		return c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(principalKey).(domain.Principal); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}

// PrincipalFrom returns the identity bound to the current request, if any.
func PrincipalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	p, ok := c.Locals(principalKey).(domain.Principal)
	return p, ok
}
