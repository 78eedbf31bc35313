package diagnostics

import (
	"errors"
	"testing"

	"stone-ledger-backend/internal/database/models"
	"stone-ledger-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mocks.NewMockEntryTypeMaterialRepositoryInterface(ctrl)
	rates := mocks.NewMockMaterialRateRepositoryInterface(ctrl)

	orgID := uuid.New()
	rate := models.MaterialRate{
		OrganizationID: orgID,
		MaterialType:   "20mm Jalli",
		RatePerUnit:    decimal.RequireFromString("22000"),
		UnitType:       "load",
		IsActive:       true,
	}
	rate.ID = uuid.New()

	mapping := models.EntryTypeMaterial{
		OrganizationID: orgID,
		EntryType:      models.EntryTypeSales,
		MaterialRateID: rate.ID,
		MaterialRate:   rate,
	}
	mapping.ID = uuid.New()

	mappings.EXPECT().Count().Return(int64(1), nil)
	mappings.EXPECT().CountByEntryType().Return(map[models.EntryType]int64{models.EntryTypeSales: 1}, nil)
	mappings.EXPECT().ListAll().Return([]models.EntryTypeMaterial{mapping}, nil)
	rates.EXPECT().GetAll().Return([]models.MaterialRate{rate}, nil)

	report, err := NewReporter(mappings, rates).Report()

	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalMappings)
	assert.Equal(t, int64(1), report.CountsByType[models.EntryTypeSales])
	require.Len(t, report.Mappings, 1)
	assert.Equal(t, "20mm Jalli", report.Mappings[0].MaterialType)
	require.Len(t, report.MaterialRates, 1)
	assert.True(t, report.MaterialRates[0].RatePerUnit.Equal(decimal.RequireFromString("22000")))
}

func TestReportCountFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mappings := mocks.NewMockEntryTypeMaterialRepositoryInterface(ctrl)
	rates := mocks.NewMockMaterialRateRepositoryInterface(ctrl)

	mappings.EXPECT().Count().Return(int64(0), errors.New("connection refused"))

	_, err := NewReporter(mappings, rates).Report()

	assert.Error(t, err)
}
