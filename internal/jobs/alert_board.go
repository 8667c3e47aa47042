package jobs

import (
	"sync"
	"time"

	"rental-console/internal/domain"
)

// AlertBoard is the in-memory snapshot the pollers write and the web layer
// reads. Reads never block on the backend.
type AlertBoard struct {
	mu sync.RWMutex

	overdueRentals []domain.Rental
	vehiclesDue    []domain.Vehicle
	scheduledToday []domain.MaintenanceSchedule
	refreshedAt    time.Time
}

// Alerts is one consistent read of the board.
type Alerts struct {
	OverdueRentals []domain.Rental
	VehiclesDue    []domain.Vehicle
	ScheduledToday []domain.MaintenanceSchedule
	RefreshedAt    time.Time
}

func NewAlertBoard() *AlertBoard {
	return &AlertBoard{}
}

func (b *AlertBoard) SetOverdueRentals(rentals []domain.Rental) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overdueRentals = rentals
	b.refreshedAt = time.Now()
}

func (b *AlertBoard) SetMaintenance(vehicles []domain.Vehicle, scheduled []domain.MaintenanceSchedule) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vehiclesDue = vehicles
	b.scheduledToday = scheduled
	b.refreshedAt = time.Now()
}

// Snapshot copies the current state so callers can render without holding
// the lock.
func (b *AlertBoard) Snapshot() Alerts {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := Alerts{RefreshedAt: b.refreshedAt}
	out.OverdueRentals = append(out.OverdueRentals, b.overdueRentals...)
	out.VehiclesDue = append(out.VehiclesDue, b.vehiclesDue...)
	out.ScheduledToday = append(out.ScheduledToday, b.scheduledToday...)
	return out
}

func timestampToday() domain.Timestamp {
	now := time.Now()
	return domain.NewTimestamp(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))
}
