package settlement

import (
	"testing"
	"time"

	"rental-console/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ts(t time.Time) domain.Timestamp {
	return domain.NewTimestamp(t)
}

func TestTotalPaid(t *testing.T) {
	payments := []domain.Payment{
		{Amount: 30000, Status: domain.PaymentStatusCompleted},
		{Amount: 5000, Status: domain.PaymentStatusPending},
		{Amount: 99999, Status: domain.PaymentStatusFailed},
		{Amount: 2500, Status: domain.PaymentStatusCompleted},
	}
	assert.Equal(t, domain.Cents(32500), TotalPaid(payments))
}

func TestBalance(t *testing.T) {
	rental := domain.Rental{
		TotalAmount:     30000,
		SecurityDeposit: 20000,
		LateFees:        0,
		DamageFees:      0,
	}
	payments := []domain.Payment{
		{Amount: 30000, Status: domain.PaymentStatusCompleted},
	}

	t.Run("Settled", func(t *testing.T) {
		st := NewStatement(rental, payments)
		assert.Equal(t, domain.Cents(0), st.Balance)
		assert.Equal(t, BalanceSettled, st.State)
	})

	t.Run("Failed payment never moves the balance", func(t *testing.T) {
		withFailed := append(payments, domain.Payment{
			Amount: 123456, Status: domain.PaymentStatusFailed,
		})
		assert.Equal(t, Balance(rental, payments), Balance(rental, withFailed))
	})

	t.Run("Fees increase what is due", func(t *testing.T) {
		r := rental
		r.LateFees = 7500
		r.DamageFees = 2500
		st := NewStatement(r, payments)
		assert.Equal(t, domain.Cents(10000), st.Balance)
		assert.Equal(t, BalanceDue, st.State)
	})

	t.Run("Overpaid", func(t *testing.T) {
		st := NewStatement(rental, append(payments, domain.Payment{
			Amount: 5000, Status: domain.PaymentStatusCompleted,
		}))
		assert.Equal(t, domain.Cents(-5000), st.Balance)
		assert.Equal(t, BalanceOverpaid, st.State)
	})

	t.Run("Idempotent across recomputation", func(t *testing.T) {
		first := NewStatement(rental, payments)
		second := NewStatement(rental, payments)
		assert.Equal(t, first, second)
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	past := ts(now.Add(-72 * time.Hour))
	future := ts(now.Add(72 * time.Hour))

	tests := []struct {
		name    string
		status  domain.RentalStatus
		endDate domain.Timestamp
		want    bool
	}{
		{"Active past due", domain.RentalStatusActive, past, true},
		{"Active not yet due", domain.RentalStatusActive, future, false},
		{"Completed past due", domain.RentalStatusCompleted, past, false},
		{"Cancelled past due", domain.RentalStatusCancelled, past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rental := domain.Rental{Status: tt.status, EndDate: tt.endDate}
			assert.Equal(t, tt.want, IsOverdue(rental, now))
		})
	}
}

func TestSuggestedLateFee(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Three days late at fifty per day", func(t *testing.T) {
		rental := domain.Rental{
			Status:    domain.RentalStatusActive,
			EndDate:   ts(now.Add(-72 * time.Hour)),
			DailyRate: 5000,
		}
		assert.Equal(t, 3, DaysLate(rental, now))
		// 3 * $50.00 * 0.5 = $75.00
		assert.Equal(t, domain.Cents(7500), SuggestedLateFee(rental, now))
	})

	t.Run("Partial day counts as a full day", func(t *testing.T) {
		rental := domain.Rental{
			EndDate:   ts(now.Add(-2 * time.Hour)),
			DailyRate: 5000,
		}
		assert.Equal(t, 1, DaysLate(rental, now))
		assert.Equal(t, domain.Cents(2500), SuggestedLateFee(rental, now))
	})

	t.Run("Not past due suggests zero", func(t *testing.T) {
		rental := domain.Rental{
			EndDate:   ts(now.Add(24 * time.Hour)),
			DailyRate: 5000,
		}
		assert.Equal(t, domain.Cents(0), SuggestedLateFee(rental, now))
	})

	t.Run("Due this exact instant suggests zero", func(t *testing.T) {
		rental := domain.Rental{EndDate: ts(now), DailyRate: 5000}
		assert.Equal(t, domain.Cents(0), SuggestedLateFee(rental, now))
	})
}

func TestDuration(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Uses scheduled end while out", func(t *testing.T) {
		rental := domain.Rental{
			StartDate: ts(start),
			EndDate:   ts(start.Add(96 * time.Hour)),
		}
		assert.Equal(t, 4, Duration(rental))
	})

	t.Run("Uses actual return date once back", func(t *testing.T) {
		returned := ts(start.Add(50 * time.Hour))
		rental := domain.Rental{
			StartDate:        ts(start),
			EndDate:          ts(start.Add(96 * time.Hour)),
			ActualReturnDate: &returned,
		}
		assert.Equal(t, 3, Duration(rental)) // 50h rounds up to 3 days
	})
}

func TestCompletedRevenue(t *testing.T) {
	rentals := []domain.Rental{
		{Status: domain.RentalStatusCompleted, TotalAmount: 30000, LateFees: 7500},
		{Status: domain.RentalStatusActive, TotalAmount: 99999},
		{Status: domain.RentalStatusCompleted, TotalAmount: 12000},
		{Status: domain.RentalStatusCancelled, TotalAmount: 50000},
	}
	// Only Completed rentals count, and late fees are excluded.
	assert.Equal(t, domain.Cents(42000), CompletedRevenue(rentals))

	assert.Equal(t, domain.Cents(0), CompletedRevenue(nil))
}
