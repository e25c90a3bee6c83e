package dto

import (
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse carries the admin dashboard headline numbers.
type DashboardStatsResponse struct {
	TotalTenants    int64           `json:"totalTenants"`
	TotalShops      int64           `json:"totalShops"`
	OccupiedShops   int64           `json:"occupiedShops"`
	VacantShops     int64           `json:"vacantShops"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	PendingRequests int64           `json:"pendingRequests"`
}

// ToDashboardStatsResponse converts the domain aggregates.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalTenants:    s.TotalTenants,
		TotalShops:      s.TotalShops,
		OccupiedShops:   s.OccupiedShops,
		VacantShops:     s.VacantShops,
		MonthlyRevenue:  s.MonthlyRevenue,
		PendingRequests: s.PendingRequests,
	}
}

// PaymentHistoryResponse is one row of the admin payment history view.
type PaymentHistoryResponse struct {
	PaymentID   string               `json:"paymentID"`
	TenantName  string               `json:"tenantName"`
	ShopNumber  string               `json:"shopNumber"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      domain.PaymentMethod `json:"method"`
	Status      domain.PaymentState  `json:"status"`
	PaymentDate time.Time            `json:"paymentDate"`
}

// ToPaymentHistoryResponses converts a slice of history rows.
func ToPaymentHistoryResponses(rows []domain.PaymentHistoryRow) []PaymentHistoryResponse {
	res := make([]PaymentHistoryResponse, len(rows))
	for i, r := range rows {
		res[i] = PaymentHistoryResponse{
			PaymentID:   r.PaymentID,
			TenantName:  r.TenantName,
			ShopNumber:  r.ShopNumber,
			Amount:      r.Amount,
			Method:      r.Method,
			Status:      r.Status,
			PaymentDate: r.PaymentDate,
		}
	}
	return res
}
