package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/shopspring/decimal"
)

type shopService struct {
	BaseService
	shopRepo portsrepo.ShopRepositoryWithTx
	userRepo portsrepo.UserRepository
}

// NewShopService creates the shop management service.
func NewShopService(shopRepo portsrepo.ShopRepositoryWithTx, userRepo portsrepo.UserRepository) portssvc.ShopSvcFacade {
	return &shopService{shopRepo: shopRepo, userRepo: userRepo}
}

var _ portssvc.ShopSvcFacade = (*shopService)(nil)

// CreateShop registers a new vacant shop unit. Monthly rent must be
// strictly positive; the ledger update depends on it.
func (s *shopService) CreateShop(ctx context.Context, req dto.CreateShopRequest, creatorUserID string) (*domain.Shop, error) {
	if req.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: monthly rent must be positive, got %s", apperrors.ErrValidation, req.MonthlyRent.String())
	}

	now := time.Now()
	shop := domain.Shop{
		ShopID:      uuid.NewString(),
		ShopNumber:  req.ShopNumber,
		MonthlyRent: req.MonthlyRent,
		ShopType:    req.ShopType,
		FloorNumber: req.FloorNumber,
		IsOccupied:  false,
		TotalPaid:   decimal.Zero,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.shopRepo.SaveShop(ctx, shop); err != nil {
		s.LogError(ctx, err, "failed to save shop", slog.String("shop_number", req.ShopNumber))
		return nil, err
	}

	s.LogInfo(ctx, "shop created", slog.String("shop_id", shop.ShopID), slog.String("shop_number", shop.ShopNumber))
	return &shop, nil
}

// GetShopByID fetches a single shop.
func (s *shopService) GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	return s.shopRepo.FindShopByID(ctx, shopID)
}

// GetShopForTenant fetches a shop only if it is assigned to the tenant.
// A shop that exists but belongs to someone else reports not found, so the
// response does not leak other tenants' shops.
func (s *shopService) GetShopForTenant(ctx context.Context, tenantID string, shopID string) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !shop.OccupiedBy(tenantID) {
		return nil, apperrors.ErrNotFound
	}
	return shop, nil
}

// ListShops lists all shops.
func (s *shopService) ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error) {
	return s.shopRepo.ListShops(ctx, limit, offset)
}

// ListAvailableShops lists unoccupied shops.
func (s *shopService) ListAvailableShops(ctx context.Context) ([]domain.Shop, error) {
	return s.shopRepo.ListAvailableShops(ctx)
}

// ListShopsByTenant lists the shops assigned to a tenant.
func (s *shopService) ListShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error) {
	return s.shopRepo.FindShopsByTenant(ctx, tenantID)
}

// AssignTenant moves a tenant into a vacant shop. The ledger resets so the
// new tenancy starts clean; the rent cycle stays uninitialized until the
// first payment sets the due date.
func (s *shopService) AssignTenant(ctx context.Context, shopID string, tenantID string, actorUserID string) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.IsOccupied {
		return nil, fmt.Errorf("%w: shop %s is already occupied", apperrors.ErrConflict, shop.ShopNumber)
	}

	tenant, err := s.userRepo.FindUserByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant.UserType != domain.UserTypeTenant {
		return nil, fmt.Errorf("%w: user %s is not a tenant", apperrors.ErrValidation, tenantID)
	}

	shop.TenantID = &tenantID
	shop.IsOccupied = true
	shop.TotalPaid = decimal.Zero
	shop.Balance = decimal.Zero
	shop.NextDueDate = nil
	shop.LastUpdatedAt = time.Now()
	shop.LastUpdatedBy = actorUserID

	if err := s.shopRepo.UpdateShop(ctx, *shop); err != nil {
		s.LogError(ctx, err, "failed to assign tenant", slog.String("shop_id", shopID), slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "tenant assigned to shop", slog.String("shop_id", shopID), slog.String("tenant_id", tenantID))
	return shop, nil
}

// VacateShop clears the tenant assignment. Payment history and ledger
// totals stay on the shop record.
func (s *shopService) VacateShop(ctx context.Context, shopID string, actorUserID string) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !shop.IsOccupied {
		return nil, fmt.Errorf("%w: shop %s is already vacant", apperrors.ErrConflict, shop.ShopNumber)
	}

	shop.TenantID = nil
	shop.IsOccupied = false
	shop.LastUpdatedAt = time.Now()
	shop.LastUpdatedBy = actorUserID

	if err := s.shopRepo.UpdateShop(ctx, *shop); err != nil {
		s.LogError(ctx, err, "failed to vacate shop", slog.String("shop_id", shopID))
		return nil, err
	}

	s.LogInfo(ctx, "shop vacated", slog.String("shop_id", shopID))
	return shop, nil
}
