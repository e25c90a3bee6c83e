package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the supported rent payment channels.
type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "mobile_money"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
)

// IsValid reports whether the method is one of the enumerated values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodMobileMoney, MethodBankTransfer, MethodCash:
		return true
	}
	return false
}

// PaymentState indicates the processing state of a payment.
type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentCompleted PaymentState = "completed"
	PaymentFailed    PaymentState = "failed"
)

// Payment is an append-only record of a single rent payment against a shop.
// BalanceBefore/BalanceAfter snapshot the shop balance around the ledger
// update that this payment triggered; the row is never mutated afterwards.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	ShopID        string          `json:"shopID"`    // FK -> shops.shop_id (Not Null)
	TenantID      string          `json:"tenantID"`  // FK -> users.user_id (Not Null)
	Amount        decimal.Decimal `json:"amount"`    // Positive value; precise decimal type
	Method        PaymentMethod   `json:"method"`
	Status        PaymentState    `json:"status"`
	PaymentMonth  string          `json:"paymentMonth"` // Label, format "YYYY-MM"
	Reference     string          `json:"reference"`    // Optional external reference
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	PaymentDate   time.Time       `json:"paymentDate"`
	AuditFields
}
