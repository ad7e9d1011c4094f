package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/expense-tracker/internal/auth/domain"
	"github.com/fintrack/expense-tracker/internal/auth/service"
	"github.com/fintrack/expense-tracker/internal/middleware"
	"github.com/fintrack/expense-tracker/internal/mocks"
)

const testSecret = "test-secret-key-for-middleware"

// newTestApp wires the authentication middleware in front of one public and
// one protected route, the same shape main uses.
func newTestApp(t *testing.T, users middleware.UserLoader) (*fiber.App, *service.TokenService) {
	t.Helper()

	tokens := service.NewTokenService(testSecret, 15, 7*24*60)

	app := fiber.New()
	app.Use(middleware.Authenticate(tokens, users))

	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	protected := app.Group("/protected", middleware.RequireAuth())
	protected.Get("/", func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFrom(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": p.UserID, "email": p.Email})
	})

	return app, tokens
}

func get(t *testing.T, app *fiber.App, path, authHeader string) int {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	return resp.StatusCode
}

func TestAuthenticate_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &domain.User{ID: "user-123", Email: "alice@example.com", Enabled: true}
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

	app, tokens := newTestApp(t, users)

	access, _, err := tokens.GenerateAccess("alice@example.com")
	require.NoError(t, err)

	status := get(t, app, "/protected/", "Bearer "+access)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAuthenticate_NeverAborts(t *testing.T) {
	// None of these credentials authenticate, but public routes must still be
	// served; only the protected group turns the absence into a 401.
	tests := []struct {
		name   string
		header func(tokens *service.TokenService) string
	}{
		{
			name:   "no header",
			header: func(*service.TokenService) string { return "" },
		},
		{
			name:   "not a bearer scheme",
			header: func(*service.TokenService) string { return "Basic dXNlcjpwYXNz" },
		},
		{
			name:   "garbage token",
			header: func(*service.TokenService) string { return "Bearer not-a-jwt" },
		},
		{
			name: "refresh token on an access checkpoint",
			header: func(tokens *service.TokenService) string {
				_, refresh, _, err := tokens.GeneratePair("alice@example.com")
				require.NoError(t, err)
				return "Bearer " + refresh
			},
		},
		{
			name: "token signed with another key",
			header: func(*service.TokenService) string {
				other := service.NewTokenService("a-different-secret", 15, 60)
				access, _, err := other.GenerateAccess("alice@example.com")
				require.NoError(t, err)
				return "Bearer " + access
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The subject is never resolved for a rejected credential.
			users := mocks.NewMockUserRepository(ctrl)

			app, tokens := newTestApp(t, users)
			header := tt.header(tokens)

			assert.Equal(t, fiber.StatusOK, get(t, app, "/public", header))
			assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected/", header))
		})
	}
}

func TestAuthenticate_SubjectGoneOrDisabled(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
	}{
		{name: "deleted since issuance", user: nil},
		{name: "disabled since issuance", user: &domain.User{ID: "user-123", Email: "alice@example.com", Enabled: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mocks.NewMockUserRepository(ctrl)
			users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, nil).Times(2)

			app, tokens := newTestApp(t, users)

			access, _, err := tokens.GenerateAccess("alice@example.com")
			require.NoError(t, err)

			// A still-valid token stops working the moment the account does.
			assert.Equal(t, fiber.StatusOK, get(t, app, "/public", "Bearer "+access))
			assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected/", "Bearer "+access))
		})
	}
}

func TestRequireAuth_WithoutAuthenticate(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	status := get(t, app, "/guarded", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPrincipalFrom_Unauthenticated(t *testing.T) {
	app := fiber.New()
	app.Get("/inspect", func(c *fiber.Ctx) error {
		_, ok := middleware.PrincipalFrom(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	status := get(t, app, "/inspect", "")
	assert.Equal(t, fiber.StatusOK, status)
}
