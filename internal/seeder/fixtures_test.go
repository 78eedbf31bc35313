package seeder

import (
	"os"
	"path/filepath"
	"testing"

	"stone-ledger-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMoneyUnmarshalYAML(t *testing.T) {
	var doc struct {
		Amount Money `yaml:"amount"`
	}

	err := yaml.Unmarshal([]byte(`amount: "1500.50"`), &doc)
	require.NoError(t, err)
	assert.True(t, doc.Amount.Equal(decimal.RequireFromString("1500.50")))

	err = yaml.Unmarshal([]byte(`amount: not-a-number`), &doc)
	assert.Error(t, err)
}

func TestDefaultFixtures(t *testing.T) {
	fixtures := DefaultFixtures()

	require.NoError(t, fixtures.Validate())
	assert.Equal(t, "Sri Velan Blue Metals", fixtures.OrganizationName)
	assert.Len(t, fixtures.SalesMaterials, 8)
	assert.Len(t, fixtures.RawStoneMaterials, 1)
	assert.Len(t, fixtures.TruckEntries, 8)
	assert.Len(t, fixtures.Expenses, 3)
}

func TestLoadFixturesEmptyPath(t *testing.T) {
	fixtures, err := LoadFixtures("")

	require.NoError(t, err)
	assert.Equal(t, DefaultFixtures(), fixtures)
}

func TestLoadFixturesFromFile(t *testing.T) {
	content := `
organization_name: Test Quarry
operator_username: test-operator
operator_email: test@example.com
operator_password: secret
sales_materials:
  - material_type: 20mm Jalli
    rate_per_unit: "22000"
    unit_type: load
raw_stone_materials:
  - material_type: Raw Stone
    rate_per_unit: "6000"
    unit_type: load
truck_entries:
  - truck_number: TN21AB1234
    truck_name: Murugan Transport
    entry_type: Sales
    material_type: 20mm Jalli
    units: "10"
    rate_per_unit: "22000"
    days_ago: 0
expenses:
  - expenses_name: Diesel
    amount: "4500"
    days_ago: 1
`
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fixtures, err := LoadFixtures(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Quarry", fixtures.OrganizationName)
	require.Len(t, fixtures.SalesMaterials, 1)
	assert.True(t, fixtures.SalesMaterials[0].RatePerUnit.Equal(decimal.RequireFromString("22000")))
	require.Len(t, fixtures.TruckEntries, 1)
	assert.Equal(t, models.EntryTypeSales, fixtures.TruckEntries[0].EntryType)
}

func TestLoadFixturesMissingFile(t *testing.T) {
	_, err := LoadFixtures("/no/such/fixtures.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsSalesWithoutMaterial(t *testing.T) {
	fixtures := DefaultFixtures()
	fixtures.TruckEntries = append(fixtures.TruckEntries, TruckEntryFixture{
		TruckNumber: "TN00XX0000",
		EntryType:   models.EntryTypeSales,
		Units:       money("1"),
		RatePerUnit: money("1000"),
	})

	err := fixtures.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a material type")
}

func TestValidateRejectsRawStoneWithMaterial(t *testing.T) {
	fixtures := DefaultFixtures()
	fixtures.TruckEntries = append(fixtures.TruckEntries, TruckEntryFixture{
		TruckNumber:  "TN00XX0000",
		EntryType:    models.EntryTypeRawStone,
		MaterialType: "Raw Stone",
		Units:        money("1"),
		RatePerUnit:  money("1000"),
	})

	err := fixtures.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not name a material type")
}

func TestValidateRejectsInvalidEntryType(t *testing.T) {
	fixtures := DefaultFixtures()
	fixtures.TruckEntries = append(fixtures.TruckEntries, TruckEntryFixture{
		TruckNumber: "TN00XX0000",
		EntryType:   models.EntryType("Purchase"),
		Units:       money("1"),
		RatePerUnit: money("1000"),
	})

	err := fixtures.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry type")
}

func TestRandomWorkingTime(t *testing.T) {
	for i := 0; i < 50; i++ {
		ts := randomWorkingTime()
		require.Len(t, ts, 5)
		assert.GreaterOrEqual(t, ts, "09:00")
		assert.LessOrEqual(t, ts, "16:59")
	}
}
