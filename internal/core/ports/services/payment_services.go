package services

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
)

// PaymentSvcFacade defines rent payment operations.
type PaymentSvcFacade interface {
	// RecordPayment validates the request, checks that the shop belongs to
	// the tenant, and applies the ledger update and payment insert as one
	// atomic unit. Returns the created payment and the updated shop.
	RecordPayment(ctx context.Context, tenantID string, req dto.RecordPaymentRequest) (*domain.Payment, *domain.Shop, error)
	// GetPaymentForTenant fetches a single payment receipt only if it
	// belongs to the tenant; otherwise it reports not found.
	GetPaymentForTenant(ctx context.Context, tenantID string, paymentID string) (*domain.Payment, error)
	ListPaymentsByTenant(ctx context.Context, tenantID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
	ListPaymentsByShop(ctx context.Context, shopID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
}
