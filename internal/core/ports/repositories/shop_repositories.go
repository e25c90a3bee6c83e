package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	SaveShop(ctx context.Context, shop domain.Shop) error
	FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
	FindShopByNumber(ctx context.Context, shopNumber string) (*domain.Shop, error)
	FindShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error)
	ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error)
	// ListAvailableShops returns unoccupied shops ordered by shop number.
	ListAvailableShops(ctx context.Context) ([]domain.Shop, error)
	// UpdateShop persists tenant assignment and occupancy changes, including
	// the ledger reset a new assignment carries. Payment-driven ledger
	// updates only happen through the payment transaction.
	UpdateShop(ctx context.Context, shop domain.Shop) error
}

// ShopRepositoryWithTx extends ShopRepository with the row-locking
// operations the payment repository needs inside its transaction.
type ShopRepositoryWithTx interface {
	ShopRepository
	// FindShopByIDForUpdate locks the shop row (SELECT ... FOR UPDATE) so
	// that concurrent payments against the same shop serialize.
	FindShopByIDForUpdate(ctx context.Context, tx pgx.Tx, shopID string) (*domain.Shop, error)
	// UpdateShopLedgerInTx writes balance, total_paid and next_due_date
	// within the caller's transaction.
	UpdateShopLedgerInTx(ctx context.Context, tx pgx.Tx, shop domain.Shop) error
}
