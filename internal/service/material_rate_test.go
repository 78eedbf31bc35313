package service

import (
	"testing"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newMaterialRateService(t *testing.T) (*MaterialRateService, *mocks.MockMaterialRateRepositoryInterface, *mocks.MockOrganizationRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaterialRateRepositoryInterface(ctrl)
	orgs := mocks.NewMockOrganizationRepositoryInterface(ctrl)
	return NewMaterialRateService(repo, orgs, validator.New()), repo, orgs
}

func rateRequest(orgID uuid.UUID) *CreateMaterialRateRequest {
	return &CreateMaterialRateRequest{
		OrganizationID: orgID,
		MaterialType:   "20mm Jalli",
		RatePerUnit:    decimal.RequireFromString("22000"),
		UnitType:       "load",
	}
}

func TestCreateMaterialRate(t *testing.T) {
	svc, repo, orgs := newMaterialRateService(t)
	orgID := uuid.New()
	org := &models.Organization{Name: "Sri Velan Blue Metals", OwnerID: uuid.New()}
	org.ID = orgID

	orgs.EXPECT().GetByID(orgID).Return(org, nil)
	repo.EXPECT().GetByMaterialType(orgID, "20mm Jalli").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := svc.Create(rateRequest(orgID))

	require.NoError(t, err)
	assert.Equal(t, "20mm Jalli", resp.MaterialType)
	assert.True(t, resp.IsActive)
}

func TestCreateMaterialRateUnknownOrganization(t *testing.T) {
	svc, _, orgs := newMaterialRateService(t)
	orgID := uuid.New()

	orgs.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(rateRequest(orgID))

	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestCreateMaterialRateDuplicate(t *testing.T) {
	svc, repo, orgs := newMaterialRateService(t)
	orgID := uuid.New()
	org := &models.Organization{Name: "Sri Velan Blue Metals", OwnerID: uuid.New()}
	org.ID = orgID
	existing := activeRate(orgID, "20mm Jalli")

	orgs.EXPECT().GetByID(orgID).Return(org, nil)
	repo.EXPECT().GetByMaterialType(orgID, "20mm Jalli").Return(existing, nil)

	_, err := svc.Create(rateRequest(orgID))

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateExists)
}

func TestCreateMaterialRateNegative(t *testing.T) {
	svc, _, _ := newMaterialRateService(t)
	req := rateRequest(uuid.New())
	req.RatePerUnit = decimal.RequireFromString("-100")

	_, err := svc.Create(req)

	assert.ErrorIs(t, err, apperrors.ErrNegativeRate)
}

func TestUpdateMaterialRate(t *testing.T) {
	svc, repo, _ := newMaterialRateService(t)
	rate := activeRate(uuid.New(), "M-Sand")

	repo.EXPECT().GetByID(rate.ID).Return(rate, nil)
	repo.EXPECT().Update(rate).Return(nil)

	resp, err := svc.Update(rate.ID, &UpdateMaterialRateRequest{
		RatePerUnit: decimal.RequireFromString("18500"),
		UnitType:    "load",
		IsActive:    false,
	})

	require.NoError(t, err)
	assert.True(t, resp.RatePerUnit.Equal(decimal.RequireFromString("18500")))
	assert.False(t, resp.IsActive)
}

func TestDeleteMaterialRateNotFound(t *testing.T) {
	svc, repo, _ := newMaterialRateService(t)
	id := uuid.New()

	repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(id)

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateNotFound)
}
