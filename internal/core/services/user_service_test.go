package services_test

import (
	"context"
	"testing"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegisterTenantSuccess() {
	req := dto.RegisterTenantRequest{
		Email:       "jane@example.com",
		FullName:    "Jane Doe",
		PhoneNumber: "+256700000001",
	}

	var storedHash string
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.UserType == domain.UserTypeTenant &&
			!u.IsStaff &&
			u.HasTemporaryPassword &&
			u.UserID != "" &&
			u.CreatedBy == "admin-1"
	}), mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
		storedHash = args.String(2)
	}).Return(nil).Once()

	tenant, tempPassword, err := suite.service.RegisterTenant(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(req.Email, tenant.Email)
	suite.True(tenant.HasTemporaryPassword)
	suite.NotEmpty(tempPassword)
	// the returned plaintext must match the stored hash
	suite.True(utils.CheckPasswordHash(tempPassword, storedHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterTenantDuplicateEmail() {
	req := dto.RegisterTenantRequest{Email: "jane@example.com", FullName: "Jane Doe", PhoneNumber: "+256700000001"}

	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).
		Return(apperrors.ErrDuplicate).Once()

	_, _, err := suite.service.RegisterTenant(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestUpdateUserAppliesOnlyProvidedFields() {
	existing := &domain.User{
		UserID:      "user-1",
		Email:       "jane@example.com",
		FullName:    "Jane Doe",
		PhoneNumber: "+256700000001",
		UserType:    domain.UserTypeTenant,
	}
	newName := "Jane A. Doe"

	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FullName == newName &&
			u.PhoneNumber == "+256700000001" &&
			u.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(suite.ctx, "user-1", dto.UpdateUserRequest{FullName: &newName}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
	suite.Equal("+256700000001", updated.PhoneNumber)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUserSuccess() {
	suite.mockUserRepo.On("MarkUserDeleted", suite.ctx, "user-1", "admin-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeleteUser(suite.ctx, "user-1", "admin-1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUserRejectsSelfDelete() {
	err := suite.service.DeleteUser(suite.ctx, "admin-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func (suite *UserServiceTestSuite) TestAuthenticateSuccess() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Email: "jane@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jane@example.com").Return(user, hash, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, "jane@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateWrongPassword() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Email: "jane@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jane@example.com").Return(user, hash, nil).Once()

	_, err = suite.service.Authenticate(suite.ctx, "jane@example.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUnknownEmail() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "ghost@example.com").
		Return(nil, "", apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(suite.ctx, "ghost@example.com", "anything")

	suite.Require().Error(err)
	// unknown email and wrong password are indistinguishable
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestChangePasswordSuccess() {
	currentHash, err := utils.HashPassword("old-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Email: "jane@example.com", HasTemporaryPassword: true}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").Return(user, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jane@example.com").Return(user, currentHash, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", suite.ctx, "user-1", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password-123", hash)
	}), false, "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err = suite.service.ChangePassword(suite.ctx, "user-1", "old-password", "new-password-123")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePasswordWrongCurrentPassword() {
	currentHash, err := utils.HashPassword("old-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Email: "jane@example.com"}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").Return(user, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "jane@example.com").Return(user, currentHash, nil).Once()

	err = suite.service.ChangePassword(suite.ctx, "user-1", "not-the-password", "new-password-123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
