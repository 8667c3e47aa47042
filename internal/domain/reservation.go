package domain

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "Active"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
	ReservationStatusConverted ReservationStatus = "Converted"
)

// Reservation is a future-dated intent to rent, convertible to a Rental.
type Reservation struct {
	ID               int32             `json:"reservation_id"`
	CustomerID       int32             `json:"customer_id"`
	VehicleID        int32             `json:"vehicle_id"`
	PickupLocationID int32             `json:"pickup_location_id"`
	ReturnLocationID int32             `json:"return_location_id"`
	StartDate        Timestamp         `json:"reserved_start_date"`
	EndDate          Timestamp         `json:"reserved_end_date"`
	ReservationDate  Timestamp         `json:"reservation_date"`
	Status           ReservationStatus `json:"status"`
	SpecialRequests  string            `json:"special_requests,omitempty"`
	EstimatedTotal   *Cents            `json:"estimated_total,omitempty"`
}

type ReservationCreate struct {
	CustomerID       int32             `json:"customer_id"`
	VehicleID        int32             `json:"vehicle_id"`
	PickupLocationID int32             `json:"pickup_location_id"`
	ReturnLocationID int32             `json:"return_location_id"`
	StartDate        Timestamp         `json:"reserved_start_date"`
	EndDate          Timestamp         `json:"reserved_end_date"`
	Status           ReservationStatus `json:"status,omitempty"`
	SpecialRequests  string            `json:"special_requests,omitempty"`
	EstimatedTotal   *Cents            `json:"estimated_total,omitempty"`
}
