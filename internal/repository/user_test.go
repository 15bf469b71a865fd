package repository

import (
	"context"
	"testing"
	"time"

	"atlas-backend/internal/database/models"
	"atlas-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	testutils.SQLiteTestSuite
	repo      *UserRepository
	factories *testutils.FactorySet
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.SQLiteTestSuite.SetupTest()
	suite.repo = NewUserRepository(suite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()
	user.Email = "  Reviewer@Example.ORG "

	err := suite.repo.Create(suite.ctx, user)

	suite.NoError(err)
	suite.Equal("reviewer@example.org", user.Email)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.User.Create()
	second.Email = first.Email
	err := suite.repo.Create(suite.ctx, second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByEmail tests case-insensitive lookup
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithRole(models.UserRoleReviewer)
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, "  "+user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.Equal(models.UserRoleReviewer, found.Role)

	_, err = suite.repo.GetByEmail(suite.ctx, "nobody@example.org")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByID tests lookup by primary key
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Email, found.Email)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateAndTouchLastLogin tests updates
func (suite *UserRepositoryTestSuite) TestUpdateAndTouchLastLogin() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	hash := "bcrypt-hash"
	user.PasswordHash = &hash
	user.Role = models.UserRoleAdmin
	suite.Require().NoError(suite.repo.Update(suite.ctx, user))

	at := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	suite.Require().NoError(suite.repo.TouchLastLogin(suite.ctx, user.ID, at))

	found, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleAdmin, found.Role)
	suite.Require().NotNil(found.PasswordHash)
	suite.Equal(hash, *found.PasswordHash)
	suite.Require().NotNil(found.LastLogin)
	suite.True(found.LastLogin.Equal(at))
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
