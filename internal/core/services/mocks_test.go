package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserRepository) ListUsersByType(ctx context.Context, userType domain.UserType, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, userType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, temporary bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, temporary, updatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

// MockShopRepository is a mock type for the ShopRepositoryWithTx interface
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) SaveShop(ctx context.Context, shop domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) FindShopByNumber(ctx context.Context, shopNumber string) (*domain.Shop, error) {
	args := m.Called(ctx, shopNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) FindShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) ListAvailableShops(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) UpdateShop(ctx context.Context, shop domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) FindShopByIDForUpdate(ctx context.Context, tx pgx.Tx, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, tx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) UpdateShopLedgerInTx(ctx context.Context, tx pgx.Tx, shop domain.Shop) error {
	args := m.Called(ctx, tx, shop)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepository interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, today time.Time) (*domain.Payment, *domain.Shop, error) {
	args := m.Called(ctx, payment, today)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*domain.Shop), args.Error(2)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, tenantID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(*string), args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByShop(ctx context.Context, shopID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, shopID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(*string), args.Error(2)
}

// MockProfileRequestRepository is a mock type for the ProfileChangeRequestRepository interface
type MockProfileRequestRepository struct {
	mock.Mock
}

func (m *MockProfileRequestRepository) SaveRequest(ctx context.Context, req domain.ProfileChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockProfileRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileChangeRequest), args.Error(1)
}

func (m *MockProfileRequestRepository) ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileChangeRequest), args.Error(1)
}

func (m *MockProfileRequestRepository) ApplyReview(ctx context.Context, req domain.ProfileChangeRequest, updatedTenant *domain.User) error {
	args := m.Called(ctx, req, updatedTenant)
	return args.Error(0)
}
