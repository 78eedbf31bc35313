package auth

import (
	"errors"
	"fmt"
	"time"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "stone-ledger-backend"
	tokenLifetime = 24 * time.Hour
)

// AuthService issues and validates JWT access tokens for username/password
// login
type AuthService struct {
	secret []byte
	users  repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID         uuid.UUID       `json:"user_id"`
	Username       string          `json:"username"`
	Role           models.UserRole `json:"role"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	UserID      uuid.UUID       `json:"user_id"`
	Username    string          `json:"username"`
	Role        models.UserRole `json:"role"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, users repository.UserRepositoryInterface) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		users:  users,
	}
}

// Login verifies the credentials and issues an access token. Inactive
// accounts cannot log in.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:         user.ID,
		Username:       user.Username,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
