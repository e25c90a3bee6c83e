package repositories

import (
	"context"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// ReportingRepository provides read-only aggregations for the admin
// dashboard. It never writes through the ledger.
type ReportingRepository interface {
	// GetDashboardStats aggregates tenant/shop counts, pending requests and
	// completed revenue for the calendar month containing now.
	GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
	// GetRecentPayments returns the latest payments joined with tenant and
	// shop identity, newest first.
	GetRecentPayments(ctx context.Context, limit int) ([]domain.PaymentHistoryRow, error)
}
