package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type mockRentalAPI struct {
	mock.Mock
	backend.RentalAPI
}

func (m *mockRentalAPI) Overdue(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type mockVehicleAPI struct {
	mock.Mock
	backend.VehicleAPI
}

func (m *mockVehicleAPI) NeedingMaintenance(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

type mockMaintenanceAPI struct {
	mock.Mock
	backend.MaintenanceAPI
}

func (m *mockMaintenanceAPI) Scheduled(ctx context.Context, targetDate *domain.Timestamp) ([]domain.MaintenanceSchedule, error) {
	args := m.Called(ctx, targetDate)
	return args.Get(0).([]domain.MaintenanceSchedule), args.Error(1)
}

func TestRefreshOverdueRentals(t *testing.T) {
	rentals := new(mockRentalAPI)
	board := NewAlertBoard()
	jr := NewJobRunner(rentals, nil, nil, board, 5*time.Second)

	t.Run("Publishes snapshot", func(t *testing.T) {
		rentals.On("Overdue", mock.Anything).
			Return([]domain.Rental{{ID: 1}, {ID: 2}}, nil).Once()

		jr.RefreshOverdueRentals()

		alerts := board.Snapshot()
		assert.Len(t, alerts.OverdueRentals, 2)
		assert.False(t, alerts.RefreshedAt.IsZero())
	})

	t.Run("Failure keeps previous snapshot", func(t *testing.T) {
		rentals.On("Overdue", mock.Anything).
			Return([]domain.Rental(nil), errors.New("backend down")).Once()

		jr.RefreshOverdueRentals()

		alerts := board.Snapshot()
		assert.Len(t, alerts.OverdueRentals, 2)
	})
}

func TestRefreshMaintenanceAlerts(t *testing.T) {
	vehicles := new(mockVehicleAPI)
	maintenance := new(mockMaintenanceAPI)
	board := NewAlertBoard()
	jr := NewJobRunner(nil, vehicles, maintenance, board, 5*time.Second)

	vehicles.On("NeedingMaintenance", mock.Anything).
		Return([]domain.Vehicle{{ID: 5}}, nil)
	maintenance.On("Scheduled", mock.Anything, mock.Anything).
		Return([]domain.MaintenanceSchedule{{ID: 9}, {ID: 10}}, nil)

	jr.RefreshMaintenanceAlerts()

	alerts := board.Snapshot()
	assert.Len(t, alerts.VehiclesDue, 1)
	assert.Len(t, alerts.ScheduledToday, 2)
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(nil, nil, nil, NewAlertBoard(), time.Second)

	assert.NotPanics(t, func() {
		jr.runWithRecovery("Panicky", func(ctx context.Context) {
			panic("boom")
		})
	})
}
