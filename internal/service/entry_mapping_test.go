package service

import (
	"testing"

	"stone-ledger-backend/internal/database/models"
	apperrors "stone-ledger-backend/internal/errors"
	"stone-ledger-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newEntryMappingService(t *testing.T) (*EntryMappingService, *mocks.MockEntryTypeMaterialRepositoryInterface, *mocks.MockMaterialRateRepositoryInterface) {
	ctrl := gomock.NewController(t)
	mappings := mocks.NewMockEntryTypeMaterialRepositoryInterface(ctrl)
	rates := mocks.NewMockMaterialRateRepositoryInterface(ctrl)
	return NewEntryMappingService(mappings, rates), mappings, rates
}

func activeRate(orgID uuid.UUID, materialType string) *models.MaterialRate {
	rate := &models.MaterialRate{
		OrganizationID: orgID,
		MaterialType:   materialType,
		RatePerUnit:    decimal.RequireFromString("22000"),
		UnitType:       "load",
		IsActive:       true,
	}
	rate.ID = uuid.New()
	return rate
}

func TestAddMapping(t *testing.T) {
	svc, mappings, rates := newEntryMappingService(t)
	orgID := uuid.New()
	rate := activeRate(orgID, "20mm Jalli")

	rates.EXPECT().GetByID(rate.ID).Return(rate, nil)
	mappings.EXPECT().Upsert(gomock.Any()).Return(true, nil)

	resp, err := svc.AddMapping(orgID, models.EntryTypeSales, rate.ID)

	require.NoError(t, err)
	assert.Equal(t, orgID, resp.OrganizationID)
	assert.Equal(t, models.EntryTypeSales, resp.EntryType)
	assert.Equal(t, "20mm Jalli", resp.MaterialType)
	assert.True(t, resp.RatePerUnit.Equal(decimal.RequireFromString("22000")))
}

func TestAddMappingInvalidEntryType(t *testing.T) {
	svc, _, _ := newEntryMappingService(t)

	_, err := svc.AddMapping(uuid.New(), models.EntryType("Purchase"), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrInvalidEntryType)
}

func TestAddMappingRateNotFound(t *testing.T) {
	svc, _, rates := newEntryMappingService(t)
	rateID := uuid.New()

	rates.EXPECT().GetByID(rateID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddMapping(uuid.New(), models.EntryTypeSales, rateID)

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateNotFound)
}

func TestAddMappingWrongOrganization(t *testing.T) {
	svc, _, rates := newEntryMappingService(t)
	rate := activeRate(uuid.New(), "M-Sand")

	rates.EXPECT().GetByID(rate.ID).Return(rate, nil)

	_, err := svc.AddMapping(uuid.New(), models.EntryTypeSales, rate.ID)

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateWrongOrg)
}

func TestAddMappingInactiveRate(t *testing.T) {
	svc, _, rates := newEntryMappingService(t)
	orgID := uuid.New()
	rate := activeRate(orgID, "M-Sand")
	rate.IsActive = false

	rates.EXPECT().GetByID(rate.ID).Return(rate, nil)

	_, err := svc.AddMapping(orgID, models.EntryTypeSales, rate.ID)

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateInactive)
}

func TestListMappingsInvalidFilter(t *testing.T) {
	svc, _, _ := newEntryMappingService(t)
	bad := models.EntryType("Purchase")

	_, err := svc.ListMappings(uuid.New(), &bad)

	assert.ErrorIs(t, err, apperrors.ErrInvalidEntryType)
}

func TestRemoveMapping(t *testing.T) {
	svc, mappings, _ := newEntryMappingService(t)
	orgID := uuid.New()
	rateID := uuid.New()

	mappings.EXPECT().Exists(orgID, models.EntryTypeSales, rateID).Return(true, nil)
	mappings.EXPECT().Delete(orgID, models.EntryTypeSales, rateID).Return(nil)

	err := svc.RemoveMapping(orgID, models.EntryTypeSales, rateID)

	assert.NoError(t, err)
}

func TestRemoveMappingNotFound(t *testing.T) {
	svc, mappings, _ := newEntryMappingService(t)
	orgID := uuid.New()
	rateID := uuid.New()

	mappings.EXPECT().Exists(orgID, models.EntryTypeRawStone, rateID).Return(false, nil)

	err := svc.RemoveMapping(orgID, models.EntryTypeRawStone, rateID)

	assert.ErrorIs(t, err, apperrors.ErrEntryTypeMaterialNotFound)
}

func TestIsMaterialMapped(t *testing.T) {
	svc, mappings, _ := newEntryMappingService(t)
	orgID := uuid.New()
	rateID := uuid.New()

	mappings.EXPECT().Exists(orgID, models.EntryTypeSales, rateID).Return(true, nil)

	mapped, err := svc.IsMaterialMapped(orgID, models.EntryTypeSales, rateID)

	require.NoError(t, err)
	assert.True(t, mapped)
}
