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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	orgs          *OrganizationRepository
	factories     *testutils.FactorySet
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgs = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithoutOrganization tests that an owner can exist before their organization
func (suite *UserRepositoryTestSuite) TestCreateWithoutOrganization() {
	user := suite.factories.User.WithRole(models.UserRoleOwner)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.Nil(user.OrganizationID)
}

// TestGetByUsername tests the username lookup
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByUsername("no-such-user")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateUsername tests the unique index on username
func (suite *UserRepositoryTestSuite) TestDuplicateUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	dup.Username = user.Username
	err := suite.repo.Create(dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestSetOrganization tests patching the owner's organization reference
func (suite *UserRepositoryTestSuite) TestSetOrganization() {
	owner := suite.factories.User.WithRole(models.UserRoleOwner)
	suite.NoError(suite.repo.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgs.Create(org))

	suite.NoError(suite.repo.SetOrganization(owner.ID, org.ID))

	reloaded, err := suite.repo.GetByID(owner.ID)
	suite.NoError(err)
	suite.NotNil(reloaded.OrganizationID)
	suite.Equal(org.ID, *reloaded.OrganizationID)
}

// TestSetOrganizationMissingUser tests that patching an unknown user fails
func (suite *UserRepositoryTestSuite) TestSetOrganizationMissingUser() {
	owner := suite.factories.User.WithRole(models.UserRoleOwner)
	suite.NoError(suite.repo.Create(owner))

	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgs.Create(org))

	err := suite.repo.SetOrganization(uuid.New(), org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOrganizationID tests listing users of a tenant
func (suite *UserRepositoryTestSuite) TestGetByOrganizationID() {
	owner := suite.factories.User.WithRole(models.UserRoleOwner)
	suite.NoError(suite.repo.Create(owner))
	org := suite.factories.Organization.Create(owner.ID)
	suite.NoError(suite.orgs.Create(org))

	for i := 0; i < 3; i++ {
		member := suite.factories.User.WithOrganization(org.ID)
		suite.NoError(suite.repo.Create(member))
	}

	users, total, err := suite.repo.GetByOrganizationID(org.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 3)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
