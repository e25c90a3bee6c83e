package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table. Rows are append-only.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	ShopID        string          `db:"shop_id"`
	TenantID      string          `db:"tenant_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"payment_method"`
	Status        string          `db:"status"`
	PaymentMonth  string          `db:"payment_month"`
	Reference     string          `db:"reference"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	PaymentDate   time.Time       `db:"payment_date"`
	AuditFields
}
