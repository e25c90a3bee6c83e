package services_test

import (
	"context"
	"testing"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ShopServiceTestSuite struct {
	suite.Suite
	mockShopRepo *MockShopRepository
	mockUserRepo *MockUserRepository
	service      portssvc.ShopSvcFacade
	ctx          context.Context
}

func (suite *ShopServiceTestSuite) SetupTest() {
	suite.mockShopRepo = new(MockShopRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewShopService(suite.mockShopRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *ShopServiceTestSuite) TestCreateShopSuccess() {
	req := dto.CreateShopRequest{
		ShopNumber:  "B-07",
		MonthlyRent: decimal.RequireFromString("750"),
		ShopType:    "retail",
		FloorNumber: 2,
	}

	suite.mockShopRepo.On("SaveShop", suite.ctx, mock.MatchedBy(func(s domain.Shop) bool {
		return s.ShopNumber == "B-07" &&
			s.MonthlyRent.Equal(req.MonthlyRent) &&
			!s.IsOccupied &&
			s.TenantID == nil &&
			s.TotalPaid.IsZero() &&
			s.Balance.IsZero() &&
			s.NextDueDate == nil &&
			s.ShopID != "" &&
			s.CreatedBy == "admin-1"
	})).Return(nil).Once()

	shop, err := suite.service.CreateShop(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("B-07", shop.ShopNumber)
	suite.False(shop.IsOccupied)
	suite.mockShopRepo.AssertExpectations(suite.T())
}

func (suite *ShopServiceTestSuite) TestCreateShopRejectsNonPositiveRent() {
	req := dto.CreateShopRequest{ShopNumber: "B-07", MonthlyRent: decimal.Zero}

	_, err := suite.service.CreateShop(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "SaveShop")
}

func (suite *ShopServiceTestSuite) TestCreateShopDuplicateNumber() {
	req := dto.CreateShopRequest{ShopNumber: "B-07", MonthlyRent: decimal.RequireFromString("750")}

	suite.mockShopRepo.On("SaveShop", suite.ctx, mock.AnythingOfType("domain.Shop")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateShop(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ShopServiceTestSuite) TestGetShopForTenantOwnShop() {
	tenantID := "tenant-1"
	shop := &domain.Shop{ShopID: "shop-1", TenantID: &tenantID, IsOccupied: true}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()

	got, err := suite.service.GetShopForTenant(suite.ctx, tenantID, "shop-1")

	suite.Require().NoError(err)
	suite.Equal("shop-1", got.ShopID)
}

func (suite *ShopServiceTestSuite) TestGetShopForTenantHidesForeignShop() {
	otherTenant := "tenant-2"
	shop := &domain.Shop{ShopID: "shop-1", TenantID: &otherTenant, IsOccupied: true}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()

	_, err := suite.service.GetShopForTenant(suite.ctx, "tenant-1", "shop-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ShopServiceTestSuite) TestAssignTenantSuccess() {
	// totals left over from the previous tenancy must reset
	prevPaid := decimal.RequireFromString("900")
	shop := &domain.Shop{ShopID: "shop-1", ShopNumber: "A-12", IsOccupied: false, TotalPaid: prevPaid, Balance: decimal.RequireFromString("100")}
	tenant := &domain.User{UserID: "tenant-1", UserType: domain.UserTypeTenant}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "tenant-1").Return(tenant, nil).Once()
	suite.mockShopRepo.On("UpdateShop", suite.ctx, mock.MatchedBy(func(s domain.Shop) bool {
		return s.IsOccupied &&
			s.TenantID != nil && *s.TenantID == "tenant-1" &&
			s.TotalPaid.IsZero() &&
			s.Balance.IsZero() &&
			s.NextDueDate == nil &&
			s.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	got, err := suite.service.AssignTenant(suite.ctx, "shop-1", "tenant-1", "admin-1")

	suite.Require().NoError(err)
	suite.True(got.IsOccupied)
	suite.Require().NotNil(got.TenantID)
	suite.Equal("tenant-1", *got.TenantID)
	suite.mockShopRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ShopServiceTestSuite) TestAssignTenantOccupiedShop() {
	occupant := "tenant-9"
	shop := &domain.Shop{ShopID: "shop-1", ShopNumber: "A-12", TenantID: &occupant, IsOccupied: true}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()

	_, err := suite.service.AssignTenant(suite.ctx, "shop-1", "tenant-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "UpdateShop")
}

func (suite *ShopServiceTestSuite) TestAssignTenantRejectsNonTenantUser() {
	shop := &domain.Shop{ShopID: "shop-1", IsOccupied: false}
	admin := &domain.User{UserID: "admin-2", UserType: domain.UserTypeAdmin}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-2").Return(admin, nil).Once()

	_, err := suite.service.AssignTenant(suite.ctx, "shop-1", "admin-2", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "UpdateShop")
}

func (suite *ShopServiceTestSuite) TestAssignTenantUnknownTenant() {
	shop := &domain.Shop{ShopID: "shop-1", IsOccupied: false}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AssignTenant(suite.ctx, "shop-1", "ghost", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ShopServiceTestSuite) TestVacateShopSuccess() {
	occupant := "tenant-1"
	totalPaid := decimal.RequireFromString("1500")
	shop := &domain.Shop{ShopID: "shop-1", ShopNumber: "A-12", TenantID: &occupant, IsOccupied: true, TotalPaid: totalPaid}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()
	suite.mockShopRepo.On("UpdateShop", suite.ctx, mock.MatchedBy(func(s domain.Shop) bool {
		// ledger totals survive the move-out
		return !s.IsOccupied && s.TenantID == nil && s.TotalPaid.Equal(totalPaid)
	})).Return(nil).Once()

	got, err := suite.service.VacateShop(suite.ctx, "shop-1", "admin-1")

	suite.Require().NoError(err)
	suite.False(got.IsOccupied)
	suite.Nil(got.TenantID)
	suite.mockShopRepo.AssertExpectations(suite.T())
}

func (suite *ShopServiceTestSuite) TestVacateShopAlreadyVacant() {
	shop := &domain.Shop{ShopID: "shop-1", ShopNumber: "A-12", IsOccupied: false}

	suite.mockShopRepo.On("FindShopByID", suite.ctx, "shop-1").Return(shop, nil).Once()

	_, err := suite.service.VacateShop(suite.ctx, "shop-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "UpdateShop")
}

func TestShopServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShopServiceTestSuite))
}
