package auth

import (
	"testing"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	return NewAuthService(testSecret, users), users
}

func activeUser(t *testing.T, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	orgID := uuid.New()
	user := &models.User{
		Username:       "velan-operator",
		Email:          "operator@stoneledger.local",
		PasswordHash:   string(hash),
		Role:           models.UserRoleUser,
		OrganizationID: &orgID,
		IsActive:       true,
	}
	user.ID = uuid.New()
	return user
}

func TestLogin(t *testing.T) {
	svc, users := newAuthService(t)
	user := activeUser(t, "operator123")

	users.EXPECT().GetByUsername("velan-operator").Return(user, nil)

	resp, err := svc.Login(&LoginRequest{Username: "velan-operator", Password: "operator123"})

	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, models.UserRoleUser, resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(&LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users := newAuthService(t)
	user := activeUser(t, "operator123")

	users.EXPECT().GetByUsername("velan-operator").Return(user, nil)

	_, err := svc.Login(&LoginRequest{Username: "velan-operator", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, users := newAuthService(t)
	user := activeUser(t, "operator123")
	user.IsActive = false

	users.EXPECT().GetByUsername("velan-operator").Return(user, nil)

	_, err := svc.Login(&LoginRequest{Username: "velan-operator", Password: "operator123"})

	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestValidateJWT(t *testing.T) {
	svc, users := newAuthService(t)
	user := activeUser(t, "operator123")

	users.EXPECT().GetByUsername("velan-operator").Return(user, nil)

	resp, err := svc.Login(&LoginRequest{Username: "velan-operator", Password: "operator123"})
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)
	require.NotNil(t, claims.OrganizationID)
	assert.Equal(t, *user.OrganizationID, *claims.OrganizationID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	svc, users := newAuthService(t)
	user := activeUser(t, "operator123")

	users.EXPECT().GetByUsername("velan-operator").Return(user, nil)

	resp, err := svc.Login(&LoginRequest{Username: "velan-operator", Password: "operator123"})
	require.NoError(t, err)

	other := NewAuthService("another-secret", nil)
	_, err = other.ValidateJWT(resp.AccessToken)

	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.ValidateJWT("not.a.token")

	assert.Error(t, err)
}
