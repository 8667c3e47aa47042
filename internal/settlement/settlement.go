// Package settlement holds the rental money math: what has been paid, what
// is still owed, whether a rental is overdue, and the late fee suggested
// when an operator starts a return. Everything here is a pure function over
// already-fetched records; nothing talks to the backend.
package settlement

import (
	"math"
	"time"

	"rental-console/internal/domain"
)

// Half of the daily rate accrues per late day.
const lateFeeDailyRateFactor = 0.5

// BalanceState classifies the outstanding balance of a rental.
type BalanceState string

const (
	BalanceDue      BalanceState = "Due"
	BalanceOverpaid BalanceState = "Overpaid"
	BalanceSettled  BalanceState = "Paid"
)

// Statement is the financial state of a rental at view time.
type Statement struct {
	TotalAmount     domain.Cents
	SecurityDeposit domain.Cents
	DiscountApplied domain.Cents
	LateFees        domain.Cents
	DamageFees      domain.Cents
	TotalPaid       domain.Cents
	Balance         domain.Cents
	State           BalanceState
}

// TotalPaid sums the amounts of payments whose status is Completed. Pending,
// Failed and Refunded payments never count toward the balance.
func TotalPaid(payments []domain.Payment) domain.Cents {
	var total domain.Cents
	for _, p := range payments {
		if p.Status == domain.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total
}

// Balance computes total_amount + late_fees + damage_fees - total_paid.
// Positive means the customer owes, negative means overpaid.
func Balance(rental domain.Rental, payments []domain.Payment) domain.Cents {
	return rental.TotalAmount + rental.LateFees + rental.DamageFees - TotalPaid(payments)
}

// NewStatement builds the full financial summary for a rental detail view.
// Recomputing from the same snapshot always yields the same statement.
func NewStatement(rental domain.Rental, payments []domain.Payment) Statement {
	paid := TotalPaid(payments)
	balance := rental.TotalAmount + rental.LateFees + rental.DamageFees - paid

	state := BalanceSettled
	switch {
	case balance > 0:
		state = BalanceDue
	case balance < 0:
		state = BalanceOverpaid
	}

	return Statement{
		TotalAmount:     rental.TotalAmount,
		SecurityDeposit: rental.SecurityDeposit,
		DiscountApplied: rental.DiscountApplied,
		LateFees:        rental.LateFees,
		DamageFees:      rental.DamageFees,
		TotalPaid:       paid,
		Balance:         balance,
		State:           state,
	}
}

// IsOverdue reports whether an Active rental is past its scheduled end date.
// Completed and Cancelled rentals are never overdue regardless of dates.
func IsOverdue(rental domain.Rental, now time.Time) bool {
	if rental.Status != domain.RentalStatusActive {
		return false
	}
	return now.After(rental.EndDate.Time)
}

// DaysLate returns the number of chargeable late days at the given instant,
// counting any partial day as a full day. Zero when not past due.
func DaysLate(rental domain.Rental, now time.Time) int {
	if !now.After(rental.EndDate.Time) {
		return 0
	}
	hoursLate := now.Sub(rental.EndDate.Time).Hours()
	return int(math.Ceil(hoursLate / 24))
}

// SuggestedLateFee computes the late fee pre-filled into the return form:
// days late times half the daily rate. The operator may override it before
// submission. Returns when the rental is not yet past due suggest zero.
func SuggestedLateFee(rental domain.Rental, now time.Time) domain.Cents {
	days := DaysLate(rental, now)
	if days == 0 {
		return 0
	}
	fee := float64(days) * float64(rental.DailyRate) * lateFeeDailyRateFactor
	return domain.Cents(math.Round(fee))
}

// Duration returns the rental length in days, using the actual return date
// when the vehicle is back and the scheduled end date otherwise. Partial
// days round up.
func Duration(rental domain.Rental) int {
	end := rental.EndDate.Time
	if rental.ActualReturnDate != nil && !rental.ActualReturnDate.IsZero() {
		end = rental.ActualReturnDate.Time
	}
	hours := end.Sub(rental.StartDate.Time).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// CompletedRevenue sums total_amount over Completed rentals. Late and damage
// fees are deliberately excluded, matching the dashboard figure this feeds;
// the server-side revenue report is the authoritative number for a range.
func CompletedRevenue(rentals []domain.Rental) domain.Cents {
	var total domain.Cents
	for _, r := range rentals {
		if r.Status == domain.RentalStatusCompleted {
			total += r.TotalAmount
		}
	}
	return total
}
