package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/mapping"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/pagination"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/rentcalc"
)

const paymentColumns = `payment_id, shop_id, tenant_id, amount, payment_method, status, payment_month, reference, balance_before, balance_after, payment_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
	shopRepo portsrepo.ShopRepositoryWithTx
}

// newPgxPaymentRepository creates a new repository for payment data. It
// needs the shop repository to lock and update the shop ledger within its
// own transaction.
func newPgxPaymentRepository(pool *pgxpool.Pool, shopRepo portsrepo.ShopRepositoryWithTx) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		shopRepo:       shopRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepository
var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.ShopID,
		&m.TenantID,
		&m.Amount,
		&m.Method,
		&m.Status,
		&m.PaymentMonth,
		&m.Reference,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.PaymentDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment records a payment and applies its ledger effect atomically.
// The shop row is locked first so that concurrent payments against the same
// shop serialize; the payment row snapshots the balance before and after.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, today time.Time) (*domain.Payment, *domain.Shop, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	shop, err := r.shopRepo.FindShopByIDForUpdate(ctx, tx, payment.ShopID)
	if err != nil {
		return nil, nil, err
	}

	// Re-verify the occupant under the lock. The shop may have been vacated
	// or reassigned since the caller's unlocked read, and the assignment
	// reset must not absorb the previous tenant's payment.
	if !shop.OccupiedBy(payment.TenantID) {
		return nil, nil, apperrors.ErrNotFound
	}

	payment.BalanceBefore = shop.Balance
	if err := rentcalc.ApplyPayment(shop, payment.Amount, today); err != nil {
		return nil, nil, err
	}
	payment.BalanceAfter = shop.Balance

	shop.LastUpdatedAt = payment.CreatedAt
	shop.LastUpdatedBy = payment.CreatedBy
	if err := r.shopRepo.UpdateShopLedgerInTx(ctx, tx, *shop); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.ShopID,
		m.TenantID,
		m.Amount,
		m.Method,
		m.Status,
		m.PaymentMonth,
		m.Reference,
		m.BalanceBefore,
		m.BalanceAfter,
		m.PaymentDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, nil, fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return nil, nil, fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	return &payment, shop, nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// ListPaymentsByTenant retrieves a tenant's payments newest first using
// keyset pagination on (payment_date, payment_id).
func (r *PgxPaymentRepository) ListPaymentsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	return r.listPayments(ctx, "tenant_id", tenantID, limit, nextToken)
}

// ListPaymentsByShop retrieves a shop's payments newest first using keyset
// pagination on (payment_date, payment_id).
func (r *PgxPaymentRepository) ListPaymentsByShop(ctx context.Context, shopID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	return r.listPayments(ctx, "shop_id", shopID, limit, nextToken)
}

func (r *PgxPaymentRepository) listPayments(ctx context.Context, filterColumn string, filterValue string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	// Fetch one extra row to detect whether another page exists.
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE ` + filterColumn + ` = $1
	`
	args := []any{filterValue}

	if nextToken != nil && *nextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (payment_date, payment_id) < ($2, $3)`
		args = append(args, afterDate, afterID)
	}
	query += fmt.Sprintf(` ORDER BY payment_date DESC, payment_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments by %s %s: %w", filterColumn, filterValue, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	var token *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		t := pagination.EncodeToken(last.PaymentDate, last.PaymentID)
		token = &t
	}

	return mapping.ToDomainPaymentSlice(payments), token, nil
}
