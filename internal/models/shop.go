package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop represents a row of the shops table. TenantID and NextDueDate are
// nullable; pointers map to SQL NULL.
type Shop struct {
	ShopID      string          `db:"shop_id"`
	ShopNumber  string          `db:"shop_number"`
	TenantID    *string         `db:"tenant_id"`
	MonthlyRent decimal.Decimal `db:"monthly_rent"`
	ShopType    string          `db:"shop_type"`
	FloorNumber int             `db:"floor_number"`
	IsOccupied  bool            `db:"is_occupied"`
	TotalPaid   decimal.Decimal `db:"total_paid"`
	Balance     decimal.Decimal `db:"balance"`
	NextDueDate *time.Time      `db:"next_due_date"`
	AuditFields
}
