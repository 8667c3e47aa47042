package validate

import (
	"time"

	"rental-console/internal/domain"
)

// Customer checks the customer form. Date of birth and address stay
// optional.
func Customer(in domain.CustomerCreate) Errors {
	errs := Errors{}
	errs.Required("first_name", in.FirstName, "First name")
	errs.Required("last_name", in.LastName, "Last name")
	errs.Required("email", in.Email, "Email")
	errs.Email("email", in.Email)
	errs.Required("phone", in.Phone, "Phone")
	errs.Required("driver_license", in.DriverLicense, "Driver license")
	return errs
}

// Vehicle checks the vehicle form against sane ranges: seating 1-20,
// year 1900 through next year's models, positive daily rate.
func Vehicle(in domain.VehicleCreate, now time.Time) Errors {
	errs := Errors{}
	errs.Required("make", in.Make, "Make")
	errs.Required("model", in.Model, "Model")
	errs.Required("license_plate", in.LicensePlate, "License plate")
	errs.IntRange("year", in.Year, 1900, MaxVehicleYear(now), "Year")
	errs.PositiveAmount("daily_rate", in.DailyRate, "Daily rate")
	if in.SeatingCapacity != nil {
		errs.IntRange("seating_capacity", *in.SeatingCapacity, 1, 20, "Seating capacity")
	}
	if in.Mileage != nil && *in.Mileage < 0 {
		errs.Add("mileage", "Mileage cannot be negative")
	}
	return errs
}

// Rental checks the rental form; the end date must fall strictly after the
// start date regardless of which other fields are valid.
func Rental(in domain.RentalCreate) Errors {
	errs := Errors{}
	if in.CustomerID <= 0 {
		errs.Add("customer_id", "Customer is required")
	}
	if in.VehicleID <= 0 {
		errs.Add("vehicle_id", "Vehicle is required")
	}
	if in.PickupLocationID <= 0 {
		errs.Add("pickup_location_id", "Pickup location is required")
	}
	if in.ReturnLocationID <= 0 {
		errs.Add("return_location_id", "Return location is required")
	}
	if in.StartDate.IsZero() {
		errs.Add("start_date", "Start date is required")
	}
	if in.EndDate.IsZero() {
		errs.Add("end_date", "End date is required")
	}
	errs.DateOrder("end_date", in.StartDate, in.EndDate)
	errs.PositiveAmount("daily_rate", in.DailyRate, "Daily rate")
	errs.NonNegativeAmount("total_amount", in.TotalAmount, "Total amount")
	return errs
}

// Reservation checks the reservation form, same date ordering rule as
// rentals.
func Reservation(in domain.ReservationCreate) Errors {
	errs := Errors{}
	if in.CustomerID <= 0 {
		errs.Add("customer_id", "Customer is required")
	}
	if in.VehicleID <= 0 {
		errs.Add("vehicle_id", "Vehicle is required")
	}
	if in.PickupLocationID <= 0 {
		errs.Add("pickup_location_id", "Pickup location is required")
	}
	if in.ReturnLocationID <= 0 {
		errs.Add("return_location_id", "Return location is required")
	}
	if in.StartDate.IsZero() {
		errs.Add("reserved_start_date", "Start date is required")
	}
	if in.EndDate.IsZero() {
		errs.Add("reserved_end_date", "End date is required")
	}
	errs.DateOrder("reserved_end_date", in.StartDate, in.EndDate)
	if in.EstimatedTotal != nil {
		errs.NonNegativeAmount("estimated_total", *in.EstimatedTotal, "Estimated total")
	}
	return errs
}

// Employee checks the employee form.
func Employee(in domain.EmployeeCreate) Errors {
	errs := Errors{}
	errs.Required("first_name", in.FirstName, "First name")
	errs.Required("last_name", in.LastName, "Last name")
	errs.Required("email", in.Email, "Email")
	errs.Email("email", in.Email)
	errs.Required("phone", in.Phone, "Phone")
	errs.Required("role", in.Role, "Role")
	if in.HireDate.IsZero() {
		errs.Add("hire_date", "Hire date is required")
	}
	return errs
}

// Location checks the location form.
func Location(in domain.LocationCreate) Errors {
	errs := Errors{}
	errs.Required("name", in.Name, "Name")
	errs.Required("address", in.Address, "Address")
	errs.Required("city", in.City, "City")
	errs.Required("state", in.State, "State")
	errs.Required("zip_code", in.ZipCode, "Zip code")
	return errs
}

// Payment checks the record-payment form.
func Payment(in domain.PaymentCreate) Errors {
	errs := Errors{}
	if in.RentalID <= 0 {
		errs.Add("rental_id", "Rental is required")
	}
	errs.PositiveAmount("amount", in.Amount, "Amount")
	errs.Required("method", in.Method, "Method")
	errs.Required("payment_type", in.PaymentType, "Payment type")
	return errs
}

// Incident checks the incident report form.
func Incident(in domain.IncidentReportCreate) Errors {
	errs := Errors{}
	if in.RentalID <= 0 {
		errs.Add("rental_id", "Rental is required")
	}
	if in.IncidentDate.IsZero() {
		errs.Add("incident_date", "Incident date is required")
	}
	errs.Required("incident_type", in.IncidentType, "Incident type")
	errs.Required("description", in.Description, "Description")
	if in.EstimatedCost != nil {
		errs.NonNegativeAmount("estimated_cost", *in.EstimatedCost, "Estimated cost")
	}
	return errs
}

// Maintenance checks the maintenance schedule form.
func Maintenance(in domain.MaintenanceScheduleCreate) Errors {
	errs := Errors{}
	if in.VehicleID <= 0 {
		errs.Add("vehicle_id", "Vehicle is required")
	}
	errs.Required("maintenance_type", in.MaintenanceType, "Maintenance type")
	if in.ScheduledDate.IsZero() {
		errs.Add("scheduled_date", "Scheduled date is required")
	}
	if in.Cost != nil {
		errs.NonNegativeAmount("cost", *in.Cost, "Cost")
	}
	return errs
}

// Return checks the return-vehicle form. The ending mileage may not fall
// below the recorded starting mileage, fuel level is a 0-1 fraction, and
// operator-entered fees cannot be negative.
func Return(in domain.RentalReturn, mileageStart *int32) Errors {
	errs := Errors{}
	if in.MileageEnd != nil {
		if *in.MileageEnd < 0 {
			errs.Add("mileage_end", "Ending mileage cannot be negative")
		} else if mileageStart != nil && *in.MileageEnd < *mileageStart {
			errs.Add("mileage_end", "Ending mileage cannot be below starting mileage")
		}
	}
	if in.FuelLevelEnd != nil && (*in.FuelLevelEnd < 0 || *in.FuelLevelEnd > 1) {
		errs.Add("fuel_level_end", "Fuel level must be between 0 and 1")
	}
	errs.NonNegativeAmount("late_fees", in.LateFees, "Late fees")
	errs.NonNegativeAmount("damage_fees", in.DamageFees, "Damage fees")
	return errs
}
