package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/expense-tracker/internal/auth/domain"
	"github.com/fintrack/expense-tracker/internal/auth/dto"
	"github.com/fintrack/expense-tracker/internal/auth/handler"
	"github.com/fintrack/expense-tracker/internal/auth/service"
	autherror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/mocks"
	"github.com/fintrack/expense-tracker/pkg/constant"
)

type authTestEnv struct {
	app    *fiber.App
	repo   *mocks.MockUserRepository
	tokens *mocks.MockTokenGenerator
	hasher *mocks.MockHasher
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockHasher := mocks.NewMockHasher(ctrl)

	userService := service.NewUserService(mockRepo, mockTokens, mockHasher)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	return &authTestEnv{app: app, repo: mockRepo, tokens: mockTokens, hasher: mockHasher}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newAuthTestEnv(t)

		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(nil, nil)
		env.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		env.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		env.tokens.EXPECT().GeneratePair("test@example.com").
			Return("access-token", "refresh-token", time.Now().Add(15*time.Minute), nil)
		env.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		status, body := postJSON(t, env.app, "/api/v1/auth/register", dto.RegisterInput{
			Email:     "test@example.com",
			Password:  "password123",
			FirstName: "Test",
			LastName:  "User",
		})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "access-token", body["access_token"])
		assert.Equal(t, "refresh-token", body["refresh_token"])
		assert.Equal(t, constant.TokenTypeBearer, body["token_type"])
		assert.Equal(t, float64(900), body["expires_in"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "test@example.com", user["email"])
		assert.Equal(t, "Test", user["first_name"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newAuthTestEnv(t)

		existing := &domain.User{ID: "user-1", Email: "test@example.com"}
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(existing, nil)

		status, body := postJSON(t, env.app, "/api/v1/auth/register", dto.RegisterInput{
			Email:     "test@example.com",
			Password:  "password123",
			FirstName: "Test",
			LastName:  "User",
		})

		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "email already in use", body["error"])
	})

	t.Run("validation failure", func(t *testing.T) {
		env := newAuthTestEnv(t)

		status, body := postJSON(t, env.app, "/api/v1/auth/register", dto.RegisterInput{
			Email:    "not-an-email",
			Password: "short",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newAuthTestEnv(t)

		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newAuthTestEnv(t)

		user := &domain.User{ID: "user-1", Email: "test@example.com", PasswordHash: "hash", Enabled: true}
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		env.hasher.EXPECT().Verify("password123", "hash").Return(true)
		env.tokens.EXPECT().GeneratePair("test@example.com").
			Return("access-token", "refresh-token", time.Now().Add(15*time.Minute), nil)
		env.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		status, body := postJSON(t, env.app, "/api/v1/auth/login", dto.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "access-token", body["access_token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newAuthTestEnv(t)

		user := &domain.User{ID: "user-1", Email: "test@example.com", PasswordHash: "hash", Enabled: true}
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		env.hasher.EXPECT().Verify("wrong-password", "hash").Return(false)

		status, body := postJSON(t, env.app, "/api/v1/auth/login", dto.LoginInput{
			Email:    "test@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid credentials", body["error"])
	})

	t.Run("unknown email gets the same response", func(t *testing.T) {
		env := newAuthTestEnv(t)

		env.repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		status, body := postJSON(t, env.app, "/api/v1/auth/login", dto.LoginInput{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid credentials", body["error"])
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("access token rejected where refresh is required", func(t *testing.T) {
		env := newAuthTestEnv(t)

		// A syntactically valid access token must not pass as a refresh token.
		env.tokens.EXPECT().Verify("an-access-token", constant.TokenPurposeRefresh).
			Return(nil, autherror.ErrInvalidToken)

		status, body := postJSON(t, env.app, "/api/v1/auth/refresh", dto.RefreshInput{
			RefreshToken: "an-access-token",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid token", body["error"])
	})

	t.Run("success", func(t *testing.T) {
		env := newAuthTestEnv(t)

		claims := &service.JWTCustomClaims{
			TokenType:        constant.TokenPurposeRefresh,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "test@example.com"},
		}
		user := &domain.User{ID: "user-1", Email: "test@example.com", Enabled: true}

		env.tokens.EXPECT().Verify("refresh-token", constant.TokenPurposeRefresh).Return(claims, nil)
		env.repo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		env.tokens.EXPECT().GenerateAccess("test@example.com").
			Return("new-access", time.Now().Add(15*time.Minute), nil)
		env.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		status, body := postJSON(t, env.app, "/api/v1/auth/refresh", dto.RefreshInput{
			RefreshToken: "refresh-token",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "new-access", body["access_token"])
		assert.Equal(t, "refresh-token", body["refresh_token"])
	})
}
