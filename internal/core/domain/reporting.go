package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the headline numbers for the admin dashboard.
type DashboardStats struct {
	TotalTenants    int64           `json:"totalTenants"`
	TotalShops      int64           `json:"totalShops"`
	OccupiedShops   int64           `json:"occupiedShops"`
	VacantShops     int64           `json:"vacantShops"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"` // Completed payments in the current calendar month
	PendingRequests int64           `json:"pendingRequests"`
}

// PaymentHistoryRow is a payment joined with tenant and shop identity for
// the admin payment history view.
type PaymentHistoryRow struct {
	PaymentID   string          `json:"paymentID"`
	TenantName  string          `json:"tenantName"`
	ShopNumber  string          `json:"shopNumber"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Status      PaymentState    `json:"status"`
	PaymentDate time.Time       `json:"paymentDate"`
}
