// Package rentcalc holds the pure rent ledger arithmetic shared by the
// payment service and the payment repository. All money math uses
// shopspring decimals; balances accumulate over an unbounded payment
// history and must not drift.
package rentcalc

import (
	"fmt"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyPayment applies a positive rent payment to the shop's ledger state,
// mutating TotalPaid, Balance and NextDueDate in place.
//
// Rules:
//   - First payment ever (NextDueDate nil): the cycle is initialized with
//     NextDueDate = today + 1 month and Balance = MonthlyRent - amount.
//   - Otherwise Balance -= amount.
//   - The balance is then normalized: each full MonthlyRent of credit
//     advances NextDueDate by exactly one month. A leftover credit smaller
//     than one rent stays as a negative balance against the current period;
//     it does not buy an extra month.
//
// After return, Balance always satisfies Balance > -MonthlyRent, TotalPaid
// has grown by exactly amount, and NextDueDate never moves backwards.
func ApplyPayment(shop *domain.Shop, amount decimal.Decimal, today time.Time) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	// MonthlyRent > 0 is enforced at shop creation; the normalization loop
	// below would not terminate without it.
	if shop.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: shop %s has non-positive monthly rent %s", apperrors.ErrInternal, shop.ShopNumber, shop.MonthlyRent.String())
	}

	shop.TotalPaid = shop.TotalPaid.Add(amount)

	if shop.NextDueDate == nil {
		due := DateOnly(today).AddDate(0, 1, 0)
		shop.NextDueDate = &due
		shop.Balance = shop.MonthlyRent.Sub(amount)
	} else {
		shop.Balance = shop.Balance.Sub(amount)
	}

	// Terminates: each iteration increases Balance by MonthlyRent > 0.
	for shop.Balance.LessThanOrEqual(shop.MonthlyRent.Neg()) {
		due := shop.NextDueDate.AddDate(0, 1, 0)
		shop.NextDueDate = &due
		shop.Balance = shop.Balance.Add(shop.MonthlyRent)
	}

	return nil
}

// StatusCode enumerates the possible rent standing of a shop.
type StatusCode string

const (
	StatusNoPayments    StatusCode = "no_payments"
	StatusPaidInAdvance StatusCode = "paid_in_advance"
	StatusOverdue       StatusCode = "overdue"
	StatusDueToday      StatusCode = "due_today"
	StatusDueInDays     StatusCode = "due_in_days"
)

// RentStatus is the answer to "what is this shop's payment status now?".
// Days is only meaningful for the overdue / due-in codes.
type RentStatus struct {
	Code StatusCode
	Days int
}

// String renders the status the way the dashboard and tenant views show it.
func (s RentStatus) String() string {
	switch s.Code {
	case StatusNoPayments:
		return "no payments yet"
	case StatusPaidInAdvance:
		return "paid in advance"
	case StatusOverdue:
		return fmt.Sprintf("overdue by %d days", s.Days)
	case StatusDueToday:
		return "due today"
	case StatusDueInDays:
		return fmt.Sprintf("due in %d days", s.Days)
	}
	return string(s.Code)
}

// StatusFor derives the rent standing from the ledger state. It is a pure
// function of (balance, nextDueDate, today) with no side effects.
func StatusFor(balance decimal.Decimal, nextDueDate *time.Time, today time.Time) RentStatus {
	if nextDueDate == nil {
		return RentStatus{Code: StatusNoPayments}
	}
	if balance.LessThanOrEqual(decimal.Zero) {
		return RentStatus{Code: StatusPaidInAdvance}
	}

	days := daysBetween(*nextDueDate, today)
	switch {
	case days < 0:
		return RentStatus{Code: StatusOverdue, Days: -days}
	case days == 0:
		return RentStatus{Code: StatusDueToday}
	default:
		return RentStatus{Code: StatusDueInDays, Days: days}
	}
}

// DateOnly truncates a timestamp to its calendar date in UTC. Due dates and
// day counts are calendar-level, not clock-level.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from b to a (positive when a
// is in the future relative to b).
func daysBetween(a, b time.Time) int {
	return int(DateOnly(a).Sub(DateOnly(b)).Hours() / 24)
}
