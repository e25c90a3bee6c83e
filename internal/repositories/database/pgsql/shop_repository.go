package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/mapping"
)

const shopColumns = `shop_id, shop_number, tenant_id, monthly_rent, shop_type, floor_number, is_occupied, total_paid, balance, next_due_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxShopRepository struct {
	BaseRepository
}

// newPgxShopRepository creates a new repository for shop data.
func newPgxShopRepository(pool *pgxpool.Pool) portsrepo.ShopRepositoryWithTx {
	return &PgxShopRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShopRepository implements portsrepo.ShopRepositoryWithTx
var _ portsrepo.ShopRepositoryWithTx = (*PgxShopRepository)(nil)

// scanShop scans one shops row in shopColumns order.
func scanShop(row pgx.Row) (models.Shop, error) {
	var m models.Shop
	err := row.Scan(
		&m.ShopID,
		&m.ShopNumber,
		&m.TenantID,
		&m.MonthlyRent,
		&m.ShopType,
		&m.FloorNumber,
		&m.IsOccupied,
		&m.TotalPaid,
		&m.Balance,
		&m.NextDueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanShopRows(rows pgx.Rows) ([]models.Shop, error) {
	defer rows.Close()
	shops := []models.Shop{}
	for rows.Next() {
		m, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop row: %w", err)
		}
		shops = append(shops, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shop rows: %w", err)
	}
	return shops, nil
}

// SaveShop inserts a new shop.
func (r *PgxShopRepository) SaveShop(ctx context.Context, shop domain.Shop) error {
	m := mapping.ToModelShop(shop)

	query := `
		INSERT INTO shops (` + shopColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShopID,
		m.ShopNumber,
		m.TenantID,
		m.MonthlyRent,
		m.ShopType,
		m.FloorNumber,
		m.IsOccupied,
		m.TotalPaid,
		m.Balance,
		m.NextDueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: shop number %s already exists", apperrors.ErrDuplicate, m.ShopNumber)
		}
		return fmt.Errorf("failed to save shop %s: %w", m.ShopID, err)
	}
	return nil
}

// FindShopByID retrieves a shop by its ID.
func (r *PgxShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE shop_id = $1;`

	m, err := scanShop(r.Pool.QueryRow(ctx, query, shopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shop by ID %s: %w", shopID, err)
	}

	d := mapping.ToDomainShop(m)
	return &d, nil
}

// FindShopByNumber retrieves a shop by its human-facing shop number.
func (r *PgxShopRepository) FindShopByNumber(ctx context.Context, shopNumber string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE shop_number = $1;`

	m, err := scanShop(r.Pool.QueryRow(ctx, query, shopNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shop by number %s: %w", shopNumber, err)
	}

	d := mapping.ToDomainShop(m)
	return &d, nil
}

// FindShopsByTenant retrieves all shops currently assigned to a tenant.
func (r *PgxShopRepository) FindShopsByTenant(ctx context.Context, tenantID string) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE tenant_id = $1 ORDER BY shop_number;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops for tenant %s: %w", tenantID, err)
	}
	ms, err := scanShopRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainShopSlice(ms), nil
}

// ListShops retrieves a paginated list of shops ordered by shop number.
func (r *PgxShopRepository) ListShops(ctx context.Context, limit int, offset int) ([]domain.Shop, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + shopColumns + ` FROM shops ORDER BY shop_number LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	ms, err := scanShopRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainShopSlice(ms), nil
}

// ListAvailableShops retrieves all unoccupied shops ordered by shop number.
func (r *PgxShopRepository) ListAvailableShops(ctx context.Context) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE is_occupied = FALSE ORDER BY shop_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query available shops: %w", err)
	}
	ms, err := scanShopRows(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainShopSlice(ms), nil
}

// UpdateShop updates tenant assignment, occupancy and the ledger reset that
// comes with a new assignment. Payment-driven ledger updates go through
// UpdateShopLedgerInTx instead.
func (r *PgxShopRepository) UpdateShop(ctx context.Context, shop domain.Shop) error {
	m := mapping.ToModelShop(shop)

	query := `
		UPDATE shops
		SET tenant_id = $2, monthly_rent = $3, shop_type = $4, floor_number = $5, is_occupied = $6, total_paid = $7, balance = $8, next_due_date = $9, last_updated_at = $10, last_updated_by = $11
		WHERE shop_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ShopID,
		m.TenantID,
		m.MonthlyRent,
		m.ShopType,
		m.FloorNumber,
		m.IsOccupied,
		m.TotalPaid,
		m.Balance,
		m.NextDueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update shop %s: %w", m.ShopID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindShopByIDForUpdate retrieves a shop by ID and locks the row for update.
// Must be called within a transaction.
func (r *PgxShopRepository) FindShopByIDForUpdate(ctx context.Context, tx pgx.Tx, shopID string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE shop_id = $1 FOR UPDATE;`

	m, err := scanShop(tx.QueryRow(ctx, query, shopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock shop %s for update: %w", shopID, err)
	}

	d := mapping.ToDomainShop(m)
	return &d, nil
}

// UpdateShopLedgerInTx writes the ledger columns within the caller's
// transaction.
func (r *PgxShopRepository) UpdateShopLedgerInTx(ctx context.Context, tx pgx.Tx, shop domain.Shop) error {
	m := mapping.ToModelShop(shop)

	query := `
		UPDATE shops
		SET total_paid = $2, balance = $3, next_due_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE shop_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.ShopID,
		m.TotalPaid,
		m.Balance,
		m.NextDueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger for shop %s: %w", m.ShopID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The row was locked moments ago, so this should not happen.
		return fmt.Errorf("%w: shop %s not found during ledger update", apperrors.ErrNotFound, m.ShopID)
	}
	return nil
}
