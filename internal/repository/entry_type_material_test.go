//go:build integration
// +build integration

package repository

import (
	"testing"

	"stone-ledger-backend/internal/database/models"
	"stone-ledger-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EntryTypeMaterialRepositoryTestSuite tests the bridge table repository
type EntryTypeMaterialRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EntryTypeMaterialRepository
	rates         *MaterialRateRepository
	users         *UserRepository
	orgs          *OrganizationRepository
	factories     *testutils.FactorySet
}

func (suite *EntryTypeMaterialRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEntryTypeMaterialRepository(suite.baseTestSuite.DB)
	suite.rates = NewMaterialRateRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgs = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EntryTypeMaterialRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EntryTypeMaterialRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EntryTypeMaterialRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrgWithRate seeds an owner, an organization and one material rate
func (suite *EntryTypeMaterialRepositoryTestSuite) createOrgWithRate(materialType string) (*models.Organization, *models.MaterialRate) {
	owner := suite.factories.User.WithRole(models.UserRoleOwner)
	suite.NoError(suite.users.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgs.Create(org))

	rate := suite.factories.MaterialRate.WithMaterialType(org.ID, materialType)
	suite.NoError(suite.rates.Create(rate))

	return org, rate
}

// TestUpsertCreates tests that the first upsert inserts a row
func (suite *EntryTypeMaterialRepositoryTestSuite) TestUpsertCreates() {
	org, rate := suite.createOrgWithRate("20mm Jalli")

	mapping := suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID)
	created, err := suite.repo.Upsert(mapping)

	suite.NoError(err)
	suite.True(created)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpsertIsIdempotent tests that repeating the same triple leaves one row
func (suite *EntryTypeMaterialRepositoryTestSuite) TestUpsertIsIdempotent() {
	org, rate := suite.createOrgWithRate("M-Sand")

	first := suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID)
	created, err := suite.repo.Upsert(first)
	suite.NoError(err)
	suite.True(created)

	second := &models.EntryTypeMaterial{
		OrganizationID: org.ID,
		EntryType:      models.EntryTypeSales,
		MaterialRateID: rate.ID,
	}
	created, err = suite.repo.Upsert(second)
	suite.NoError(err)
	suite.False(created)
	suite.Equal(first.ID, second.ID)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestSameRateUnderBothEntryTypes tests that entry type is part of the key
func (suite *EntryTypeMaterialRepositoryTestSuite) TestSameRateUnderBothEntryTypes() {
	org, rate := suite.createOrgWithRate("Raw Stone")

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeRawStone, rate.ID))
	suite.NoError(err)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestExists tests membership checks on the bridge
func (suite *EntryTypeMaterialRepositoryTestSuite) TestExists() {
	org, rate := suite.createOrgWithRate("GSB")

	exists, err := suite.repo.Exists(org.ID, models.EntryTypeSales, rate.ID)
	suite.NoError(err)
	suite.False(exists)

	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)

	exists, err = suite.repo.Exists(org.ID, models.EntryTypeSales, rate.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(org.ID, models.EntryTypeRawStone, rate.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.Exists(uuid.New(), models.EntryTypeSales, rate.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestListByOrganizationOrdering tests entry type then material type ordering
func (suite *EntryTypeMaterialRepositoryTestSuite) TestListByOrganizationOrdering() {
	org, rateB := suite.createOrgWithRate("Stone Dust")

	rateA := suite.factories.MaterialRate.WithMaterialType(org.ID, "20mm Jalli")
	suite.NoError(suite.rates.Create(rateA))
	rateC := suite.factories.MaterialRate.WithMaterialType(org.ID, "Raw Stone")
	suite.NoError(suite.rates.Create(rateC))

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rateB.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeRawStone, rateC.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rateA.ID))
	suite.NoError(err)

	mappings, err := suite.repo.ListByOrganization(org.ID, nil)
	suite.NoError(err)
	suite.Len(mappings, 3)

	// "RawStone" sorts before "Sales"; within Sales, material type ascending
	suite.Equal(models.EntryTypeRawStone, mappings[0].EntryType)
	suite.Equal(models.EntryTypeSales, mappings[1].EntryType)
	suite.Equal("20mm Jalli", mappings[1].MaterialRate.MaterialType)
	suite.Equal(models.EntryTypeSales, mappings[2].EntryType)
	suite.Equal("Stone Dust", mappings[2].MaterialRate.MaterialType)
}

// TestListByOrganizationFilter tests filtering the list by entry type
func (suite *EntryTypeMaterialRepositoryTestSuite) TestListByOrganizationFilter() {
	org, rate := suite.createOrgWithRate("P-Sand")

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeRawStone, rate.ID))
	suite.NoError(err)

	sales := models.EntryTypeSales
	mappings, err := suite.repo.ListByOrganization(org.ID, &sales)
	suite.NoError(err)
	suite.Len(mappings, 1)
	suite.Equal(models.EntryTypeSales, mappings[0].EntryType)
}

// TestCountByEntryType tests the per-entry-type breakdown
func (suite *EntryTypeMaterialRepositoryTestSuite) TestCountByEntryType() {
	org, rate := suite.createOrgWithRate("Wet Mix")
	rate2 := suite.factories.MaterialRate.WithMaterialType(org.ID, "M-Sand")
	suite.NoError(suite.rates.Create(rate2))

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate2.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeRawStone, rate.ID))
	suite.NoError(err)

	counts, err := suite.repo.CountByEntryType()
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.EntryTypeSales])
	suite.Equal(int64(1), counts[models.EntryTypeRawStone])
}

// TestDeleteTriple tests removing a single mapping
func (suite *EntryTypeMaterialRepositoryTestSuite) TestDeleteTriple() {
	org, rate := suite.createOrgWithRate("40mm Jalli")

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)

	err = suite.repo.Delete(org.ID, models.EntryTypeSales, rate.ID)
	suite.NoError(err)

	exists, err := suite.repo.Exists(org.ID, models.EntryTypeSales, rate.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestDeleteByOrganization tests clearing all mappings for a tenant
func (suite *EntryTypeMaterialRepositoryTestSuite) TestDeleteByOrganization() {
	org, rate := suite.createOrgWithRate("12mm Jalli")
	other, otherRate := suite.createOrgWithRate("12mm Jalli")

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeRawStone, rate.ID))
	suite.NoError(err)
	_, err = suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(other.ID, models.EntryTypeSales, otherRate.ID))
	suite.NoError(err)

	err = suite.repo.DeleteByOrganization(org.ID)
	suite.NoError(err)

	mappings, err := suite.repo.ListByOrganization(org.ID, nil)
	suite.NoError(err)
	suite.Empty(mappings)

	// the other tenant is untouched
	mappings, err = suite.repo.ListByOrganization(other.ID, nil)
	suite.NoError(err)
	suite.Len(mappings, 1)
}

// TestRateDeleteBlockedByMapping tests the RESTRICT constraint: a material
// rate cannot be deleted while a bridge row still references it
func (suite *EntryTypeMaterialRepositoryTestSuite) TestRateDeleteBlockedByMapping() {
	org, rate := suite.createOrgWithRate("20mm Jalli")

	_, err := suite.repo.Upsert(suite.factories.EntryTypeMaterial.Create(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(err)

	err = suite.rates.Delete(rate.ID)
	suite.Error(err)

	// after clearing the mapping the delete goes through
	suite.NoError(suite.repo.Delete(org.ID, models.EntryTypeSales, rate.ID))
	suite.NoError(suite.rates.Delete(rate.ID))

	_, err = suite.rates.GetByID(rate.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestEntryTypeMaterialRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EntryTypeMaterialRepositoryTestSuite))
}
