package validate

import (
	"testing"
	"time"

	"rental-console/internal/backend"
	"rental-console/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		address string
		ok      bool
	}{
		{"a@b.co", true},
		{"first.last@example.com", true},
		{"a@b", false},
		{"a.com", false},
		{"", false},
		{"a @b.co", false},
		{"@b.co", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidEmail(tt.address))
		})
	}
}

func TestCustomer(t *testing.T) {
	valid := domain.CustomerCreate{
		FirstName:     "Alice",
		LastName:      "Nguyen",
		Email:         "alice@example.com",
		Phone:         "555-0101",
		DriverLicense: "DL-100",
	}

	t.Run("Valid form", func(t *testing.T) {
		assert.True(t, Customer(valid).Valid())
	})

	t.Run("Whitespace-only counts as missing", func(t *testing.T) {
		in := valid
		in.FirstName = "   "
		errs := Customer(in)
		assert.False(t, errs.Valid())
		assert.Contains(t, errs, "first_name")
	})

	t.Run("Bad email", func(t *testing.T) {
		in := valid
		in.Email = "alice@nowhere"
		errs := Customer(in)
		assert.Equal(t, "Email is invalid", errs["email"])
	})

	t.Run("Address and date of birth optional", func(t *testing.T) {
		assert.True(t, Customer(valid).Valid())
		in := valid
		in.Address = "12 Main St"
		assert.True(t, Customer(in).Valid())
	})
}

func TestVehicle(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seats := int32(5)
	valid := domain.VehicleCreate{
		Make:            "Toyota",
		Model:           "Corolla",
		LicensePlate:    "ABC-1234",
		Year:            2023,
		DailyRate:       5000,
		SeatingCapacity: &seats,
	}

	t.Run("Valid form", func(t *testing.T) {
		assert.True(t, Vehicle(valid, now).Valid())
	})

	t.Run("Next model year accepted", func(t *testing.T) {
		in := valid
		in.Year = 2026
		assert.True(t, Vehicle(in, now).Valid())
	})

	t.Run("Year bounds", func(t *testing.T) {
		in := valid
		in.Year = 1899
		assert.Contains(t, Vehicle(in, now), "year")
		in.Year = 2027
		assert.Contains(t, Vehicle(in, now), "year")
	})

	t.Run("Seating bounds", func(t *testing.T) {
		bad := int32(21)
		in := valid
		in.SeatingCapacity = &bad
		assert.Contains(t, Vehicle(in, now), "seating_capacity")
	})

	t.Run("Daily rate must be positive", func(t *testing.T) {
		in := valid
		in.DailyRate = 0
		assert.Contains(t, Vehicle(in, now), "daily_rate")
	})
}

func TestDateOrdering(t *testing.T) {
	start := domain.NewTimestamp(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	endBefore := domain.NewTimestamp(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))

	t.Run("Rental end before start always fails", func(t *testing.T) {
		in := domain.RentalCreate{
			CustomerID:       1,
			VehicleID:        1,
			PickupLocationID: 1,
			ReturnLocationID: 1,
			StartDate:        start,
			EndDate:          endBefore,
			DailyRate:        5000,
			TotalAmount:      25000,
		}
		errs := Rental(in)
		assert.Contains(t, errs, "end_date")
	})

	t.Run("Equal dates fail too", func(t *testing.T) {
		in := domain.ReservationCreate{
			CustomerID:       1,
			VehicleID:        1,
			PickupLocationID: 1,
			ReturnLocationID: 1,
			StartDate:        start,
			EndDate:          start,
		}
		errs := Reservation(in)
		assert.Contains(t, errs, "reserved_end_date")
	})
}

func TestReturn(t *testing.T) {
	mileageStart := int32(12000)

	t.Run("Ending mileage below start rejected", func(t *testing.T) {
		end := int32(11000)
		errs := Return(domain.RentalReturn{MileageEnd: &end}, &mileageStart)
		assert.Contains(t, errs, "mileage_end")
	})

	t.Run("Fuel level bounds", func(t *testing.T) {
		fuel := 1.5
		errs := Return(domain.RentalReturn{FuelLevelEnd: &fuel}, nil)
		assert.Contains(t, errs, "fuel_level_end")
	})

	t.Run("Negative fees rejected", func(t *testing.T) {
		errs := Return(domain.RentalReturn{LateFees: -1}, nil)
		assert.Contains(t, errs, "late_fees")
	})

	t.Run("Valid return", func(t *testing.T) {
		end := int32(12500)
		fuel := 0.75
		errs := Return(domain.RentalReturn{
			MileageEnd:   &end,
			FuelLevelEnd: &fuel,
			LateFees:     7500,
		}, &mileageStart)
		assert.True(t, errs.Valid())
	})
}

func TestMapAPIError(t *testing.T) {
	t.Run("Known code maps to field", func(t *testing.T) {
		err := &backend.APIError{Status: 400, Code: backend.CodeEmailTaken, Message: "Email already registered"}
		errs, banner := MapAPIError(err)
		assert.Empty(t, banner)
		assert.Equal(t, "Email already registered", errs["email"])
	})

	t.Run("Unknown code becomes banner", func(t *testing.T) {
		err := &backend.APIError{Status: 500, Code: backend.CodeUnknown, Message: "boom"}
		errs, banner := MapAPIError(err)
		assert.Nil(t, errs)
		assert.NotEmpty(t, banner)
	})

	t.Run("Transport failure becomes banner", func(t *testing.T) {
		err := backend.NewTransportError(assert.AnError)
		_, banner := MapAPIError(err)
		assert.Contains(t, banner, "reach the server")
	})
}
