package repositories

import (
	"context"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// PaymentRepository defines persistence operations for rent payments.
type PaymentRepository interface {
	// SavePayment runs the whole payment unit atomically: it locks the shop
	// row, applies the ledger update for payment.Amount as of today, inserts
	// the payment with balance_before/balance_after snapshots and persists
	// the new shop state. Either everything commits or nothing does. The
	// returned payment and shop reflect the committed state.
	SavePayment(ctx context.Context, payment domain.Payment, today time.Time) (*domain.Payment, *domain.Shop, error)

	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByTenant returns the tenant's payments newest first, with
	// an opaque token for the next page (nil when exhausted).
	ListPaymentsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListPaymentsByShop returns a shop's payments newest first.
	ListPaymentsByShop(ctx context.Context, shopID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}
