package services

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
)

// ShopSvcFacade defines shop unit management operations.
type ShopSvcFacade interface {
	CreateShop(ctx context.Context, req dto.CreateShopRequest, creatorUserID string) (*domain.Shop, error)
	GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
	// GetShopForTenant fetches a shop only if it is assigned to the tenant;
	// otherwise it reports not found.
	GetShopForTenant(ctx context.Context, tenantID string, shopID string) (*domain.Shop, error)
	ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error)
	ListAvailableShops(ctx context.Context) ([]domain.Shop, error)
	ListShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error)
	// AssignTenant moves a tenant into a vacant shop and resets its ledger
	// state (total paid zero, cycle uninitialized).
	AssignTenant(ctx context.Context, shopID string, tenantID string, actorUserID string) (*domain.Shop, error)
	// VacateShop clears the tenant assignment.
	VacateShop(ctx context.Context, shopID string, actorUserID string) (*domain.Shop, error)
}
