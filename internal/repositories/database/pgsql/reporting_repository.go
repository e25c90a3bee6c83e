package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard
// aggregations.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardStats aggregates the headline numbers in a single round trip.
// Monthly revenue counts completed payments whose payment_date falls in the
// calendar month containing now.
func (r *PgxReportingRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE user_type = 'tenant' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM shops),
			(SELECT COUNT(*) FROM shops WHERE is_occupied = TRUE),
			(SELECT COUNT(*) FROM shops WHERE is_occupied = FALSE),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed' AND payment_date >= $1 AND payment_date < $2),
			(SELECT COUNT(*) FROM profile_change_requests WHERE status = 'pending');
	`

	var stats domain.DashboardStats
	err := r.Pool.QueryRow(ctx, query, monthStart, monthEnd).Scan(
		&stats.TotalTenants,
		&stats.TotalShops,
		&stats.OccupiedShops,
		&stats.VacantShops,
		&stats.MonthlyRevenue,
		&stats.PendingRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}

	return &stats, nil
}

// GetRecentPayments returns the latest payments joined with tenant and shop
// identity, newest first.
func (r *PgxReportingRepository) GetRecentPayments(ctx context.Context, limit int) ([]domain.PaymentHistoryRow, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT p.payment_id, u.full_name, s.shop_number, p.amount, p.payment_method, p.status, p.payment_date
		FROM payments p
		JOIN users u ON u.user_id = p.tenant_id
		JOIN shops s ON s.shop_id = p.shop_id
		ORDER BY p.payment_date DESC, p.payment_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent payments: %w", err)
	}
	defer rows.Close()

	history := []domain.PaymentHistoryRow{}
	for rows.Next() {
		var row domain.PaymentHistoryRow
		err := rows.Scan(
			&row.PaymentID,
			&row.TenantName,
			&row.ShopNumber,
			&row.Amount,
			&row.Method,
			&row.Status,
			&row.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment history row: %w", err)
		}
		history = append(history, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment history rows: %w", err)
	}

	return history, nil
}
