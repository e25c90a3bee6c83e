package services

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// ReportingSvcFacade provides the admin dashboard aggregations.
type ReportingSvcFacade interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	RecentPayments(ctx context.Context, limit int) ([]domain.PaymentHistoryRow, error)
}
