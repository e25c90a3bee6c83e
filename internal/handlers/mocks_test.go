package handlers_test

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest, creatorUserID string) (*domain.User, string, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListTenants(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ShopService ---
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) CreateShop(ctx context.Context, req dto.CreateShopRequest, creatorUserID string) (*domain.Shop, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopService) GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopService) GetShopForTenant(ctx context.Context, tenantID string, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, tenantID, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopService) ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopService) ListAvailableShops(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopService) ListShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopService) AssignTenant(ctx context.Context, shopID string, tenantID string, actorUserID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID, tenantID, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopService) VacateShop(ctx context.Context, shopID string, actorUserID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

var _ portssvc.ShopSvcFacade = (*MockShopService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, tenantID string, req dto.RecordPaymentRequest) (*domain.Payment, *domain.Shop, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*domain.Shop), args.Error(2)
}

func (m *MockPaymentService) GetPaymentForTenant(ctx context.Context, tenantID string, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByTenant(ctx context.Context, tenantID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(*string), args.Error(2)
}

func (m *MockPaymentService) ListPaymentsByShop(ctx context.Context, shopID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, shopID, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(*string), args.Error(2)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ProfileRequestService ---
type MockProfileRequestService struct {
	mock.Mock
}

func (m *MockProfileRequestService) SubmitRequest(ctx context.Context, tenantID string, req dto.SubmitProfileRequestRequest) (*domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileChangeRequest), args.Error(1)
}

func (m *MockProfileRequestService) ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileChangeRequest), args.Error(1)
}

func (m *MockProfileRequestService) ApproveRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, requestID, reviewerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileChangeRequest), args.Error(1)
}

func (m *MockProfileRequestService) RejectRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, requestID, reviewerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileChangeRequest), args.Error(1)
}

var _ portssvc.ProfileRequestSvcFacade = (*MockProfileRequestService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportingService) RecentPayments(ctx context.Context, limit int) ([]domain.PaymentHistoryRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentHistoryRow), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)
