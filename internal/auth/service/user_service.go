package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker/internal/auth/domain"
	"github.com/fintrack/expense-tracker/internal/auth/dto"
	"github.com/fintrack/expense-tracker/internal/auth/password"
	autherror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/pkg/constant"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	hasher password.Hasher
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, hasher password.Hasher) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The existence check above races with concurrent registrations of the
	// same email; the unique index on users.email is the authoritative guard.
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return nil, autherror.ErrEmailAlreadyInUse
		}

		return nil, err
	}

	return s.authOutput(user)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthOutput, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	// Unknown email, wrong password and disabled account all collapse into
	// the same error so callers cannot probe which emails are registered.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) || !user.Enabled {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.authOutput(user)
}

// Refresh validates a refresh token and mints a new access token for its
// subject. The identity is re-resolved so a deleted or disabled account
// cannot keep minting access tokens with a still-unexpired refresh token.
// The refresh token itself is returned unchanged; there is no rotation.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthOutput, error) {
	claims, err := s.tokens.Verify(input.RefreshToken, constant.TokenPurposeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Enabled {
		return nil, autherror.ErrUserNotFound
	}

	accessToken, _, err := s.tokens.GenerateAccess(user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
		User:         toUserOutput(user),
	}, nil
}

func (s *UserService) authOutput(user *domain.User) (*dto.AuthOutput, error) {
	accessToken, refreshToken, _, err := s.tokens.GeneratePair(user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
		User:         toUserOutput(user),
	}, nil
}

func toUserOutput(user *domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
