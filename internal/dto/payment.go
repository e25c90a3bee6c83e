package dto

import (
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the payload for recording a rent payment.
// PaymentMonth is optional; when omitted the current month label is used.
type RecordPaymentRequest struct {
	ShopNumber   string               `json:"shopNumber" binding:"required"`
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Method       domain.PaymentMethod `json:"method" binding:"required,oneof=mobile_money bank_transfer cash"`
	PaymentMonth string               `json:"paymentMonth" binding:"omitempty,paymentmonth"`
	Reference    string               `json:"reference"`
}

// PaymentResponse is the payment record returned to clients.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	ShopID        string               `json:"shopID"`
	TenantID      string               `json:"tenantID"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	Status        domain.PaymentState  `json:"status"`
	PaymentMonth  string               `json:"paymentMonth"`
	Reference     string               `json:"reference,omitempty"`
	BalanceBefore decimal.Decimal      `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal      `json:"balanceAfter"`
	PaymentDate   time.Time            `json:"paymentDate"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ShopID:        p.ShopID,
		TenantID:      p.TenantID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		PaymentMonth:  p.PaymentMonth,
		Reference:     p.Reference,
		BalanceBefore: p.BalanceBefore,
		BalanceAfter:  p.BalanceAfter,
		PaymentDate:   p.PaymentDate,
	}
}

// ToPaymentResponses converts a slice of payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// PaymentReceiptResponse is returned after a payment is recorded: the
// created payment plus the updated shop snapshot.
type PaymentReceiptResponse struct {
	Payment PaymentResponse `json:"payment"`
	Shop    ShopResponse    `json:"shop"`
}

// ListPaymentsParams defines query parameters for payment history listings.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments with the next page token.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
