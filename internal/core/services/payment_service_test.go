package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockShopRepo    *MockShopRepository
	service         portssvc.PaymentSvcFacade
	ctx             context.Context
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockShopRepo = new(MockShopRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockShopRepo)
	suite.ctx = context.Background()
}

func (suite *PaymentServiceTestSuite) occupiedShop(tenantID string) *domain.Shop {
	return &domain.Shop{
		ShopID:      "shop-1",
		ShopNumber:  "A-12",
		TenantID:    &tenantID,
		MonthlyRent: decimal.RequireFromString("500"),
		IsOccupied:  true,
		TotalPaid:   decimal.Zero,
		Balance:     decimal.Zero,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentSuccess() {
	tenantID := "tenant-1"
	shop := suite.occupiedShop(tenantID)
	req := dto.RecordPaymentRequest{
		ShopNumber:   "A-12",
		Amount:       decimal.RequireFromString("500"),
		Method:       domain.MethodMobileMoney,
		PaymentMonth: "2026-08",
	}

	savedPayment := &domain.Payment{PaymentID: "pay-1", ShopID: shop.ShopID, TenantID: tenantID, Amount: req.Amount}
	updatedShop := &domain.Shop{ShopID: shop.ShopID, ShopNumber: shop.ShopNumber, Balance: decimal.Zero}

	suite.mockShopRepo.On("FindShopByNumber", suite.ctx, "A-12").Return(shop, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ShopID == shop.ShopID &&
			p.TenantID == tenantID &&
			p.Amount.Equal(req.Amount) &&
			p.Method == domain.MethodMobileMoney &&
			p.Status == domain.PaymentCompleted &&
			p.PaymentMonth == "2026-08" &&
			p.PaymentID != ""
	}), mock.AnythingOfType("time.Time")).Return(savedPayment, updatedShop, nil).Once()

	payment, shopAfter, err := suite.service.RecordPayment(suite.ctx, tenantID, req)

	suite.Require().NoError(err)
	suite.Equal("pay-1", payment.PaymentID)
	suite.Equal(shop.ShopID, shopAfter.ShopID)
	suite.mockShopRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentDefaultsPaymentMonth() {
	tenantID := "tenant-1"
	shop := suite.occupiedShop(tenantID)
	req := dto.RecordPaymentRequest{
		ShopNumber: "A-12",
		Amount:     decimal.RequireFromString("200"),
		Method:     domain.MethodCash,
	}
	currentMonth := time.Now().Format("2006-01")

	suite.mockShopRepo.On("FindShopByNumber", suite.ctx, "A-12").Return(shop, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentMonth == currentMonth
	}), mock.AnythingOfType("time.Time")).Return(&domain.Payment{PaymentID: "pay-2"}, shop, nil).Once()

	_, _, err := suite.service.RecordPayment(suite.ctx, tenantID, req)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentRejectsNonPositiveAmount() {
	req := dto.RecordPaymentRequest{
		ShopNumber: "A-12",
		Amount:     decimal.Zero,
		Method:     domain.MethodCash,
	}

	_, _, err := suite.service.RecordPayment(suite.ctx, "tenant-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShopRepo.AssertNotCalled(suite.T(), "FindShopByNumber")
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentRejectsUnknownMethod() {
	req := dto.RecordPaymentRequest{
		ShopNumber: "A-12",
		Amount:     decimal.RequireFromString("100"),
		Method:     domain.PaymentMethod("barter"),
	}

	_, _, err := suite.service.RecordPayment(suite.ctx, "tenant-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentShopRentedByAnotherTenant() {
	otherTenant := "tenant-2"
	shop := suite.occupiedShop(otherTenant)
	req := dto.RecordPaymentRequest{
		ShopNumber: "A-12",
		Amount:     decimal.RequireFromString("100"),
		Method:     domain.MethodBankTransfer,
	}

	suite.mockShopRepo.On("FindShopByNumber", suite.ctx, "A-12").Return(shop, nil).Once()

	_, _, err := suite.service.RecordPayment(suite.ctx, "tenant-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentVacantShop() {
	shop := &domain.Shop{
		ShopID:      "shop-1",
		ShopNumber:  "A-12",
		MonthlyRent: decimal.RequireFromString("500"),
		IsOccupied:  false,
	}
	req := dto.RecordPaymentRequest{
		ShopNumber: "A-12",
		Amount:     decimal.RequireFromString("100"),
		Method:     domain.MethodCash,
	}

	suite.mockShopRepo.On("FindShopByNumber", suite.ctx, "A-12").Return(shop, nil).Once()

	_, _, err := suite.service.RecordPayment(suite.ctx, "tenant-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentShopNotFound() {
	req := dto.RecordPaymentRequest{
		ShopNumber: "Z-99",
		Amount:     decimal.RequireFromString("100"),
		Method:     domain.MethodCash,
	}

	suite.mockShopRepo.On("FindShopByNumber", suite.ctx, "Z-99").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.RecordPayment(suite.ctx, "tenant-1", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentForTenantOwnReceipt() {
	payment := &domain.Payment{PaymentID: "pay-1", TenantID: "tenant-1", Amount: decimal.RequireFromString("500")}

	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(payment, nil).Once()

	got, err := suite.service.GetPaymentForTenant(suite.ctx, "tenant-1", "pay-1")

	suite.Require().NoError(err)
	suite.Equal("pay-1", got.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestGetPaymentForTenantHidesForeignReceipt() {
	payment := &domain.Payment{PaymentID: "pay-1", TenantID: "tenant-2"}

	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(payment, nil).Once()

	_, err := suite.service.GetPaymentForTenant(suite.ctx, "tenant-1", "pay-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByTenantPassesPageParams() {
	token := "opaque-token"
	next := "next-token"
	payments := []domain.Payment{{PaymentID: "pay-1"}, {PaymentID: "pay-2"}}

	suite.mockPaymentRepo.On("ListPaymentsByTenant", suite.ctx, "tenant-1", 10, &token).
		Return(payments, &next, nil).Once()

	got, gotNext, err := suite.service.ListPaymentsByTenant(suite.ctx, "tenant-1", dto.ListPaymentsParams{Limit: 10, NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Require().NotNil(gotNext)
	suite.Equal(next, *gotNext)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByShopPassesThrough() {
	payments := []domain.Payment{{PaymentID: "pay-1"}}

	suite.mockPaymentRepo.On("ListPaymentsByShop", suite.ctx, "shop-1", 20, (*string)(nil)).
		Return(payments, (*string)(nil), nil).Once()

	got, gotNext, err := suite.service.ListPaymentsByShop(suite.ctx, "shop-1", dto.ListPaymentsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(gotNext)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
