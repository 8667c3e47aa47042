package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-console/internal/domain"
	"rental-console/internal/service"
)

type stubMaintenance struct {
	schedules []domain.MaintenanceSchedule
	created   *domain.MaintenanceScheduleCreate
	err       error
}

func (s *stubMaintenance) Scheduled(ctx context.Context) ([]domain.MaintenanceSchedule, error) {
	return s.schedules, s.err
}

func (s *stubMaintenance) Create(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &domain.MaintenanceSchedule{ID: 1, VehicleID: in.VehicleID}, nil
}

type stubVehicles struct {
	vehicles []domain.Vehicle
}

func (s *stubVehicles) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *stubVehicles) Detail(ctx context.Context, id int32) (*service.VehicleDetailView, error) {
	return nil, nil
}

func (s *stubVehicles) Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error) {
	return nil, nil
}

func (s *stubVehicles) Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error) {
	return nil, nil
}

func (s *stubVehicles) SetAvailability(ctx context.Context, id int32, available bool) error {
	return nil
}

func (s *stubVehicles) ScheduleMaintenance(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error) {
	return nil, nil
}

type stubDirectory struct {
	employees []domain.Employee
}

func (s *stubDirectory) Employees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees, nil
}

func (s *stubDirectory) CreateEmployee(ctx context.Context, in domain.EmployeeCreate) (*domain.Employee, error) {
	return nil, nil
}

func (s *stubDirectory) Locations(ctx context.Context) ([]domain.Location, error) {
	return nil, nil
}

func (s *stubDirectory) CreateLocation(ctx context.Context, in domain.LocationCreate) (*domain.Location, error) {
	return nil, nil
}

func maintenanceTestServices(maint *stubMaintenance) Services {
	return Services{
		Maintenance: maint,
		Vehicles: &stubVehicles{vehicles: []domain.Vehicle{
			{ID: 4, Year: 2023, Make: "Toyota", Model: "Corolla", LicensePlate: "ABC-123"},
		}},
		Directory: &stubDirectory{employees: []domain.Employee{
			{ID: 7, FirstName: "Dana", LastName: "Reyes", Role: "Mechanic"},
		}},
	}
}

func TestMaintenanceListPage(t *testing.T) {
	maint := &stubMaintenance{schedules: []domain.MaintenanceSchedule{
		{
			ID:              3,
			VehicleID:       4,
			MaintenanceType: "Oil change",
			ScheduledDate:   mustTimestamp(t, "2026-09-15"),
			Status:          domain.MaintenanceStatusScheduled,
		},
	}}
	router := newTestServer(t, maintenanceTestServices(maint)).Router()

	req := httptest.NewRequest(http.MethodGet, "/maintenance", nil)
	req.AddCookie(loginCookie(t, router))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Oil change")
	assert.Contains(t, rr.Body.String(), "2026-09-15")
	assert.Contains(t, rr.Body.String(), "/maintenance/new")
}

func TestMaintenanceFormPage(t *testing.T) {
	router := newTestServer(t, maintenanceTestServices(&stubMaintenance{})).Router()

	req := httptest.NewRequest(http.MethodGet, "/maintenance/new", nil)
	req.AddCookie(loginCookie(t, router))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "2023 Toyota Corolla")
	assert.Contains(t, rr.Body.String(), "Dana Reyes")
}

func TestMaintenanceSchedule(t *testing.T) {
	t.Run("Valid form creates and redirects", func(t *testing.T) {
		maint := &stubMaintenance{}
		router := newTestServer(t, maintenanceTestServices(maint)).Router()

		form := url.Values{
			"vehicle_id":       {"4"},
			"maintenance_type": {"Brake inspection"},
			"scheduled_date":   {"2026-09-15"},
			"cost":             {"120.50"},
		}
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(loginCookie(t, router))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/maintenance", rr.Header().Get("Location"))
		require.NotNil(t, maint.created)
		assert.Equal(t, int32(4), maint.created.VehicleID)
		assert.Equal(t, "2026-09-15", maint.created.ScheduledDate.DateString())
		require.NotNil(t, maint.created.Cost)
		assert.Equal(t, domain.Cents(12050), *maint.created.Cost)
	})

	t.Run("Missing type re-renders with field error", func(t *testing.T) {
		maint := &stubMaintenance{}
		router := newTestServer(t, maintenanceTestServices(maint)).Router()

		form := url.Values{
			"vehicle_id":     {"4"},
			"scheduled_date": {"2026-09-15"},
		}
		req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(loginCookie(t, router))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "Maintenance type is required")
		assert.Nil(t, maint.created)
	})
}

func mustTimestamp(t *testing.T, s string) domain.Timestamp {
	t.Helper()
	ts, err := domain.ParseTimestamp(s)
	require.NoError(t, err)
	return ts
}
