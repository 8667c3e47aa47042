package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusCancelled RentalStatus = "Cancelled"
	RentalStatusOverdue   RentalStatus = "Overdue"
)

type Rental struct {
	ID               int32        `json:"rental_id"`
	CustomerID       int32        `json:"customer_id"`
	VehicleID        int32        `json:"vehicle_id"`
	EmployeeID       *int32       `json:"employee_id,omitempty"`
	PickupLocationID int32        `json:"pickup_location_id"`
	ReturnLocationID int32        `json:"return_location_id"`
	StartDate        Timestamp    `json:"start_date"`
	EndDate          Timestamp    `json:"end_date"`
	ActualReturnDate *Timestamp   `json:"actual_return_date,omitempty"`
	DailyRate        Cents        `json:"daily_rate"`
	TotalAmount      Cents        `json:"total_amount"`
	SecurityDeposit  Cents        `json:"security_deposit"`
	MileageStart     *int32       `json:"mileage_start,omitempty"`
	MileageEnd       *int32       `json:"mileage_end,omitempty"`
	FuelLevelStart   *float64     `json:"fuel_level_start,omitempty"`
	FuelLevelEnd     *float64     `json:"fuel_level_end,omitempty"`
	Status           RentalStatus `json:"status"`
	DiscountApplied  Cents        `json:"discount_applied"`
	LateFees         Cents        `json:"late_fees"`
	DamageFees       Cents        `json:"damage_fees"`
	CreatedAt        Timestamp    `json:"created_at"`
}

// RentalWithDetails is the rental detail payload with related records
// resolved server-side.
type RentalWithDetails struct {
	Rental
	Customer        *Customer        `json:"customer,omitempty"`
	Vehicle         *Vehicle         `json:"vehicle,omitempty"`
	Employee        *Employee        `json:"employee,omitempty"`
	PickupLocation  *Location        `json:"pickup_location,omitempty"`
	ReturnLocation  *Location        `json:"return_location,omitempty"`
	Payments        []Payment        `json:"payments"`
	IncidentReports []IncidentReport `json:"incident_reports"`
}

type RentalCreate struct {
	CustomerID       int32        `json:"customer_id"`
	VehicleID        int32        `json:"vehicle_id"`
	EmployeeID       *int32       `json:"employee_id,omitempty"`
	PickupLocationID int32        `json:"pickup_location_id"`
	ReturnLocationID int32        `json:"return_location_id"`
	StartDate        Timestamp    `json:"start_date"`
	EndDate          Timestamp    `json:"end_date"`
	DailyRate        Cents        `json:"daily_rate"`
	TotalAmount      Cents        `json:"total_amount"`
	SecurityDeposit  *Cents       `json:"security_deposit,omitempty"`
	MileageStart     *int32       `json:"mileage_start,omitempty"`
	FuelLevelStart   *float64     `json:"fuel_level_start,omitempty"`
	Status           RentalStatus `json:"status,omitempty"`
}

// RentalReturn is the atomic return/settlement update sent when an operator
// closes out an active rental.
type RentalReturn struct {
	MileageEnd   *int32   `json:"mileage_end,omitempty"`
	FuelLevelEnd *float64 `json:"fuel_level_end,omitempty"`
	LateFees     Cents    `json:"late_fees"`
	DamageFees   Cents    `json:"damage_fees"`
}

type RentalFilters struct {
	CustomerID       *int32
	VehicleID        *int32
	Status           RentalStatus
	StartDateFrom    *Timestamp
	StartDateTo      *Timestamp
	PickupLocationID *int32
	ReturnLocationID *int32
}
