package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/shopspring/decimal"
)

const paymentMonthLayout = "2006-01"

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
	shopRepo    portsrepo.ShopRepositoryWithTx
}

// NewPaymentService creates the rent payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, shopRepo portsrepo.ShopRepositoryWithTx) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, shopRepo: shopRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment validates the request, resolves the shop and hands the
// atomic ledger unit to the repository. The tenant must be the shop's
// current occupant; a shop rented by someone else reports not found.
func (s *paymentService) RecordPayment(ctx context.Context, tenantID string, req dto.RecordPaymentRequest) (*domain.Payment, *domain.Shop, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
	}
	if !req.Method.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	shop, err := s.shopRepo.FindShopByNumber(ctx, req.ShopNumber)
	if err != nil {
		return nil, nil, err
	}
	if !shop.OccupiedBy(tenantID) {
		return nil, nil, apperrors.ErrNotFound
	}

	now := time.Now()
	paymentMonth := req.PaymentMonth
	if paymentMonth == "" {
		paymentMonth = now.Format(paymentMonthLayout)
	}

	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		ShopID:       shop.ShopID,
		TenantID:     tenantID,
		Amount:       req.Amount,
		Method:       req.Method,
		Status:       domain.PaymentCompleted,
		PaymentMonth: paymentMonth,
		Reference:    req.Reference,
		PaymentDate:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenantID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenantID,
		},
	}

	saved, updatedShop, err := s.paymentRepo.SavePayment(ctx, payment, now)
	if err != nil {
		s.LogError(ctx, err, "failed to record payment",
			slog.String("shop_id", shop.ShopID),
			slog.String("tenant_id", tenantID),
			slog.String("amount", req.Amount.String()))
		return nil, nil, err
	}

	s.LogInfo(ctx, "payment recorded",
		slog.String("payment_id", saved.PaymentID),
		slog.String("shop_id", shop.ShopID),
		slog.String("amount", saved.Amount.String()),
		slog.String("balance_after", saved.BalanceAfter.String()))
	return saved, updatedShop, nil
}

// GetPaymentForTenant returns a single payment receipt. A payment recorded
// by another tenant reports not found, so receipts do not leak.
func (s *paymentService) GetPaymentForTenant(ctx context.Context, tenantID string, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}
	return payment, nil
}

// ListPaymentsByTenant returns a page of the tenant's payment history.
func (s *paymentService) ListPaymentsByTenant(ctx context.Context, tenantID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	return s.paymentRepo.ListPaymentsByTenant(ctx, tenantID, params.Limit, params.NextToken)
}

// ListPaymentsByShop returns a page of a shop's payment history.
func (s *paymentService) ListPaymentsByShop(ctx context.Context, shopID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	return s.paymentRepo.ListPaymentsByShop(ctx, shopID, params.Limit, params.NextToken)
}
