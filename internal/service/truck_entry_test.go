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

func newTruckEntryService(t *testing.T) (*TruckEntryService, *mocks.MockTruckEntryRepositoryInterface, *mocks.MockMaterialRateRepositoryInterface, *mocks.MockEntryTypeMaterialRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTruckEntryRepositoryInterface(ctrl)
	rates := mocks.NewMockMaterialRateRepositoryInterface(ctrl)
	mappings := mocks.NewMockEntryTypeMaterialRepositoryInterface(ctrl)
	return NewTruckEntryService(repo, rates, mappings, validator.New()), repo, rates, mappings
}

func salesRequest(orgID uuid.UUID, materialType string) *CreateTruckEntryRequest {
	return &CreateTruckEntryRequest{
		OrganizationID: orgID,
		UserID:         uuid.New(),
		TruckNumber:    "TN21AB1234",
		TruckName:      "Murugan Transport",
		EntryType:      models.EntryTypeSales,
		MaterialType:   &materialType,
		Units:          decimal.RequireFromString("10"),
		RatePerUnit:    decimal.RequireFromString("22000"),
	}
}

func TestCreateSalesEntry(t *testing.T) {
	svc, repo, rates, mappings := newTruckEntryService(t)
	orgID := uuid.New()
	rate := activeRate(orgID, "20mm Jalli")

	rates.EXPECT().GetByMaterialType(orgID, "20mm Jalli").Return(rate, nil)
	mappings.EXPECT().Exists(orgID, models.EntryTypeSales, rate.ID).Return(true, nil)
	repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := svc.Create(salesRequest(orgID, "20mm Jalli"))

	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusActive, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("220000")))
}

func TestCreateSalesEntryWithoutMaterial(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "")
	req.MaterialType = nil

	_, err := svc.Create(req)

	assert.ErrorIs(t, err, apperrors.ErrMaterialTypeRequired)
}

func TestCreateSalesEntryUnknownMaterial(t *testing.T) {
	svc, _, rates, _ := newTruckEntryService(t)
	orgID := uuid.New()

	rates.EXPECT().GetByMaterialType(orgID, "Granite").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(salesRequest(orgID, "Granite"))

	assert.ErrorIs(t, err, apperrors.ErrMaterialRateNotFound)
}

func TestCreateSalesEntryUnmappedMaterial(t *testing.T) {
	svc, _, rates, mappings := newTruckEntryService(t)
	orgID := uuid.New()
	rate := activeRate(orgID, "Raw Stone")

	rates.EXPECT().GetByMaterialType(orgID, "Raw Stone").Return(rate, nil)
	mappings.EXPECT().Exists(orgID, models.EntryTypeSales, rate.ID).Return(false, nil)

	_, err := svc.Create(salesRequest(orgID, "Raw Stone"))

	assert.ErrorIs(t, err, apperrors.ErrMaterialNotMappedForEntry)
}

func TestCreateRawStoneEntry(t *testing.T) {
	svc, repo, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "")
	req.EntryType = models.EntryTypeRawStone
	req.MaterialType = nil
	req.Units = decimal.RequireFromString("4")
	req.RatePerUnit = decimal.RequireFromString("6000")

	repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := svc.Create(req)

	require.NoError(t, err)
	assert.Nil(t, resp.MaterialType)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("24000")))
}

func TestCreateRawStoneEntryRejectsMaterial(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "Raw Stone")
	req.EntryType = models.EntryTypeRawStone

	_, err := svc.Create(req)

	assert.ErrorIs(t, err, apperrors.ErrMaterialTypeNotAllowed)
}

func TestCreateEntryInvalidType(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "20mm Jalli")
	req.EntryType = models.EntryType("Purchase")

	_, err := svc.Create(req)

	assert.ErrorIs(t, err, apperrors.ErrInvalidEntryType)
}

func TestCreateEntryNonPositiveUnits(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "20mm Jalli")
	req.Units = decimal.Zero

	_, err := svc.Create(req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateEntryNegativeRate(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)
	req := salesRequest(uuid.New(), "20mm Jalli")
	req.RatePerUnit = decimal.RequireFromString("-1")

	_, err := svc.Create(req)

	assert.ErrorIs(t, err, apperrors.ErrNegativeRate)
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, _, _ := newTruckEntryService(t)
	entry := &models.TruckEntry{
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		TruckNumber:    "TN21AB1234",
		EntryType:      models.EntryTypeRawStone,
		Units:          decimal.RequireFromString("4"),
		RatePerUnit:    decimal.RequireFromString("6000"),
		TotalAmount:    decimal.RequireFromString("24000"),
		Status:         models.EntryStatusActive,
	}
	entry.ID = uuid.New()

	repo.EXPECT().GetByID(entry.ID).Return(entry, nil)
	repo.EXPECT().Update(entry).Return(nil)

	resp, err := svc.UpdateStatus(entry.ID, models.EntryStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusCompleted, resp.Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, _, _, _ := newTruckEntryService(t)

	_, err := svc.UpdateStatus(uuid.New(), models.EntryStatus("archived"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidEntryStatus)
}

func TestDeleteEntryNotFound(t *testing.T) {
	svc, repo, _, _ := newTruckEntryService(t)
	id := uuid.New()

	repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(id)

	assert.ErrorIs(t, err, apperrors.ErrTruckEntryNotFound)
}
