package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/fintrack/expense-tracker/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/pkg/constant"
)

type TokenGenerator interface {
	GeneratePair(subject string) (string, string, time.Time, error)
	GenerateAccess(subject string) (string, time.Time, error)
	Verify(tokenString, purpose string) (*JWTCustomClaims, error)
	AccessTokenTTL() time.Duration
}

// TokenService signs and verifies the stateless bearer credentials. The
// signing key is set once at construction and never mutated; tokens carry all
// state themselves and are valid until their embedded expiry.
type TokenService struct {
	secret             []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		secret:             []byte(secret),
		accessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		refreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// Issue mints a signed token for the subject with the given purpose and ttl.
func (ts *TokenService) Issue(subject, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		TokenType: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// GeneratePair mints one access and one refresh token bound to the subject
// and returns the access token's expiry instant.
func (ts *TokenService) GeneratePair(subject string) (string, string, time.Time, error) {
	accessToken, expiresAt, err := ts.GenerateAccess(subject)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err := ts.Issue(subject, constant.TokenPurposeRefresh, ts.refreshTokenExpiry)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, expiresAt, nil
}

func (ts *TokenService) GenerateAccess(subject string) (string, time.Time, error) {
	token, err := ts.Issue(subject, constant.TokenPurposeAccess, ts.accessTokenExpiry)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, time.Now().Add(ts.accessTokenExpiry), nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessTokenExpiry
}

func (ts *TokenService) RefreshTokenTTL() time.Duration {
	return ts.refreshTokenExpiry
}

// Verify parses the token, checks the signature before trusting any claim,
// enforces expiry and rejects tokens whose purpose differs from the expected
// one. All failure modes surface as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString, purpose string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC so an attacker cannot pick the algorithm.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return ts.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autherror.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	if claims.TokenType != purpose {
		return nil, fmt.Errorf("%w: unexpected token purpose", autherror.ErrInvalidToken)
	}

	return claims, nil
}
