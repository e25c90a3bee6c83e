package services

import (
	"context"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the admin dashboard service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardStats returns the headline numbers as of now.
func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportingRepo.GetDashboardStats(ctx, time.Now())
}

// RecentPayments returns the latest payments with tenant and shop identity.
func (s *reportingService) RecentPayments(ctx context.Context, limit int) ([]domain.PaymentHistoryRow, error) {
	return s.reportingRepo.GetRecentPayments(ctx, limit)
}
