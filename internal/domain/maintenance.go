package domain

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "Cancelled"
)

type MaintenanceSchedule struct {
	ID               int32             `json:"schedule_id"`
	VehicleID        int32             `json:"vehicle_id"`
	MaintenanceType  string            `json:"maintenance_type"`
	ScheduledDate    Timestamp         `json:"scheduled_date"`
	CompletedDate    *Timestamp        `json:"completed_date,omitempty"`
	AssignedMechanic *int32            `json:"assigned_mechanic,omitempty"`
	Cost             *Cents            `json:"cost,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	Status           MaintenanceStatus `json:"status"`
}

type MaintenanceScheduleCreate struct {
	VehicleID        int32             `json:"vehicle_id"`
	MaintenanceType  string            `json:"maintenance_type"`
	ScheduledDate    Date              `json:"scheduled_date"`
	AssignedMechanic *int32            `json:"assigned_mechanic,omitempty"`
	Cost             *Cents            `json:"cost,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	Status           MaintenanceStatus `json:"status,omitempty"`
}
