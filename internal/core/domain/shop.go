package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop represents a single rentable shop unit in the mall.
//
// Balance is signed: positive means the tenant still owes toward the
// upcoming due date, zero or negative means paid in full or in advance.
// NextDueDate is nil until the first payment initializes the rent cycle,
// and Balance is only meaningful once NextDueDate is set.
type Shop struct {
	ShopID     string  `json:"shopID"`     // Primary Key (UUID)
	ShopNumber string  `json:"shopNumber"` // Unique, stable identity (e.g., "A101")
	TenantID   *string `json:"tenantID"`   // Nullable FK -> users.user_id; nil when vacant
	// MonthlyRent is fixed at shop creation and must be strictly positive;
	// the ledger update relies on this precondition.
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	ShopType    string          `json:"shopType"`
	FloorNumber int             `json:"floorNumber"`
	IsOccupied  bool            `json:"isOccupied"` // Invariant: IsOccupied == (TenantID != nil)
	TotalPaid   decimal.Decimal `json:"totalPaid"`  // Cumulative, monotonically non-decreasing
	Balance     decimal.Decimal `json:"balance"`
	NextDueDate *time.Time      `json:"nextDueDate"`
	AuditFields
}

// OccupiedBy reports whether the shop is currently rented by the given
// tenant. Payments check this both before and inside the ledger
// transaction; vacating and reassigning between the two must not let one
// tenant's payment land on another's ledger.
func (s *Shop) OccupiedBy(tenantID string) bool {
	return s.TenantID != nil && *s.TenantID == tenantID
}
