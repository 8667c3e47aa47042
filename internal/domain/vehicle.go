package domain

import "fmt"

type Vehicle struct {
	ID              int32     `json:"vehicle_id"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	LicensePlate    string    `json:"license_plate"`
	Year            int32     `json:"year"`
	Availability    bool      `json:"availability"`
	DailyRate       Cents     `json:"daily_rate"`
	Mileage         int32     `json:"mileage"`
	FuelType        string    `json:"fuel_type"`
	Transmission    string    `json:"transmission"`
	SeatingCapacity int32     `json:"seating_capacity"`
	LocationID      *int32    `json:"location_id,omitempty"`
	CreatedAt       Timestamp `json:"created_at"`
}

// Label renders "2023 Toyota Corolla" for tables and dropdowns.
func (v Vehicle) Label() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

type VehicleCreate struct {
	Make            string `json:"make"`
	Model           string `json:"model"`
	LicensePlate    string `json:"license_plate"`
	Year            int32  `json:"year"`
	Availability    *bool  `json:"availability,omitempty"`
	DailyRate       Cents  `json:"daily_rate"`
	Mileage         *int32 `json:"mileage,omitempty"`
	FuelType        string `json:"fuel_type,omitempty"`
	Transmission    string `json:"transmission,omitempty"`
	SeatingCapacity *int32 `json:"seating_capacity,omitempty"`
	LocationID      *int32 `json:"location_id,omitempty"`
}

type VehicleWithFeatures struct {
	Vehicle
	Features          []VehicleFeature   `json:"features"`
	MaintenanceRecord *MaintenanceRecord `json:"maintenance_record,omitempty"`
}

type VehicleFeature struct {
	ID          int32  `json:"feature_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type VehicleFeatureCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// MaintenanceRecord is the rolling per-vehicle service summary.
type MaintenanceRecord struct {
	ID               int32      `json:"maintenance_id"`
	VehicleID        int32      `json:"vehicle_id"`
	LastServiceDate  *Timestamp `json:"last_service_date,omitempty"`
	NextServiceDue   *Timestamp `json:"next_service_due,omitempty"`
	TotalCost        Cents      `json:"total_maintenance_cost"`
	ServiceHistory   string     `json:"service_history,omitempty"`
	CurrentCondition string     `json:"current_condition"`
	Alerts           string     `json:"maintenance_alerts,omitempty"`
}

type VehicleFilters struct {
	Make         string
	Model        string
	FuelType     string
	Transmission string
	MinYear      *int32
	MaxYear      *int32
	Availability *bool
	LocationID   *int32
	MinDailyRate *Cents
	MaxDailyRate *Cents
}
