//go:build integration
// +build integration

package repository

import (
	"testing"

	"stone-ledger-backend/internal/database/models"
	"stone-ledger-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	users         *UserRepository
	rates         *MaterialRateRepository
	factories     *testutils.FactorySet
}

func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.rates = NewMaterialRateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) createOwner() *models.User {
	owner := suite.factories.User.WithRole(models.UserRoleOwner)
	suite.NoError(suite.users.Create(owner))
	return owner
}

// TestCreate tests creating an organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	owner := suite.createOwner()

	org := suite.factories.Organization.Create(owner.ID)
	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotZero(org.CreatedAt)
}

// TestDuplicateName tests the unique index on organization name
func (suite *OrganizationRepositoryTestSuite) TestDuplicateName() {
	owner := suite.createOwner()

	org1 := suite.factories.Organization.WithName(owner.ID, "Sri Velan Blue Metals")
	suite.NoError(suite.repo.Create(org1))

	org2 := suite.factories.Organization.WithName(owner.ID, "Sri Velan Blue Metals")
	err := suite.repo.Create(org2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByName tests the name lookup
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	owner := suite.createOwner()
	org := suite.factories.Organization.WithName(owner.ID, "Kumar Quarry Works")
	suite.NoError(suite.repo.Create(org))

	found, err := suite.repo.GetByName("Kumar Quarry Works")
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetByName("No Such Quarry")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteBlockedByCatalog tests the RESTRICT constraint: an organization
// cannot be deleted while material rates still reference it
func (suite *OrganizationRepositoryTestSuite) TestDeleteBlockedByCatalog() {
	owner := suite.createOwner()
	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.repo.Create(org))

	rate := suite.factories.MaterialRate.Create(org.ID)
	suite.NoError(suite.rates.Create(rate))

	err := suite.repo.Delete(org.ID)
	suite.Error(err)

	// catalog cleared first, then the delete goes through
	suite.NoError(suite.rates.DeleteByOrganization(org.ID))
	suite.NoError(suite.repo.Delete(org.ID))
}

// TestDeleteKeepsUsers tests that deleting an organization detaches its users
// instead of deleting them
func (suite *OrganizationRepositoryTestSuite) TestDeleteKeepsUsers() {
	owner := suite.createOwner()
	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.repo.Create(org))
	suite.NoError(suite.users.SetOrganization(owner.ID, org.ID))

	suite.NoError(suite.repo.Delete(org.ID))

	reloaded, err := suite.users.GetByID(owner.ID)
	suite.NoError(err)
	suite.Nil(reloaded.OrganizationID)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
