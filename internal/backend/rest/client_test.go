package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

// recorded captures the last request the fake backend saw.
type recorded struct {
	method string
	path   string
	query  map[string]string
	body   []byte
}

// fakeBackend returns a Store pointed at an httptest server that records
// each request and replies with the given status and body.
func fakeBackend(t *testing.T, status int, respBody string) (*Store, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = map[string]string{}
		for key := range r.URL.Query() {
			rec.query[key] = r.URL.Query().Get(key)
		}
		rec.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return NewStore(srv.URL, 5*time.Second), rec
}

func TestCustomerListSendsWindow(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `[
		{"customer_id": 1, "first_name": "Ana", "last_name": "Silva", "email": "ana@example.com"},
		{"customer_id": 2, "first_name": "Ben", "last_name": "Okafor", "email": "ben@example.com"}
	]`)

	customers, err := store.CustomerAPI.List(context.Background(), backend.ListRange{Skip: 20, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/customers/", rec.path)
	assert.Equal(t, "20", rec.query["skip"])
	assert.Equal(t, "10", rec.query["limit"])
	require.Len(t, customers, 2)
	assert.Equal(t, int32(1), customers[0].ID)
	assert.Equal(t, "Ana", customers[0].FirstName)
}

func TestCustomerSearchQuery(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `[]`)

	_, err := store.CustomerAPI.Search(context.Background(), "silva", backend.ListRange{Limit: 100})
	require.NoError(t, err)

	assert.Equal(t, "/customers/search/", rec.path)
	assert.Equal(t, "silva", rec.query["q"])
	assert.Equal(t, "100", rec.query["limit"])
}

func TestCustomerDeleteMethod(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusNoContent, "")

	err := store.CustomerAPI.Delete(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/customers/9", rec.path)
}

func TestRentalReturnIsSinglePatch(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `{
		"rental_id": 7,
		"customer_id": 3,
		"vehicle_id": 4,
		"status": "Completed",
		"late_fees": 25.50,
		"damage_fees": 0
	}`)

	mileage := int32(45210)
	fuel := 0.75
	rental, err := store.RentalAPI.Return(context.Background(), 7, domain.RentalReturn{
		MileageEnd:   &mileage,
		FuelLevelEnd: &fuel,
		LateFees:     domain.Cents(2550),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/rentals/7/return", rec.path)

	var sent domain.RentalReturn
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.NotNil(t, sent.MileageEnd)
	assert.Equal(t, int32(45210), *sent.MileageEnd)
	assert.Equal(t, domain.Cents(2550), sent.LateFees)
	assert.Equal(t, domain.Cents(0), sent.DamageFees)

	assert.Equal(t, domain.RentalStatusCompleted, rental.Status)
	assert.Equal(t, domain.Cents(2550), rental.LateFees)
}

func TestRentalFilterOmitsUnsetFields(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `[]`)

	customerID := int32(3)
	_, err := store.RentalAPI.Filter(context.Background(), domain.RentalFilters{
		CustomerID: &customerID,
		Status:     domain.RentalStatusActive,
	}, backend.ListRange{Limit: 100})
	require.NoError(t, err)

	assert.Equal(t, "/rentals/filter/", rec.path)
	assert.Equal(t, "3", rec.query["customer_id"])
	assert.Equal(t, "Active", rec.query["status"])
	_, hasVehicle := rec.query["vehicle_id"]
	assert.False(t, hasVehicle)
}

func TestReservationConvertPostsRentalBody(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `{"rental_id": 31, "customer_id": 3, "vehicle_id": 4, "status": "Active"}`)

	rental, err := store.ReservationAPI.ConvertToRental(context.Background(), 5, domain.RentalCreate{
		CustomerID:       3,
		VehicleID:        4,
		PickupLocationID: 1,
		ReturnLocationID: 1,
		DailyRate:        domain.Cents(6000),
		TotalAmount:      domain.Cents(18000),
		Status:           domain.RentalStatusActive,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/reservations/5/convert", rec.path)

	var sent domain.RentalCreate
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, domain.Cents(18000), sent.TotalAmount)
	assert.Equal(t, int32(31), rental.ID)
}

func TestRevenueReportDateWindow(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `{"total_revenue": 1250.00, "rental_count": 12}`)

	start := domain.NewTimestamp(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	end := domain.NewTimestamp(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC))
	report, err := store.RentalAPI.RevenueReport(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "/rentals/revenue/report", rec.path)
	assert.Equal(t, "2025-08-01", rec.query["start_date"])
	assert.Equal(t, "2025-08-31", rec.query["end_date"])
	assert.Equal(t, domain.Cents(125000), report.TotalRevenue)
}

func TestLookupEndpointPaths(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		call  func(*Store) error
		path  string
		query map[string]string
	}{
		{
			"employees by role",
			func(s *Store) error { _, err := s.EmployeeAPI.ByRole(ctx, "Mechanic"); return err },
			"/employees/role/Mechanic", nil,
		},
		{
			"employees by location",
			func(s *Store) error { _, err := s.EmployeeAPI.ByLocation(ctx, 2); return err },
			"/employees/location/2", nil,
		},
		{
			"locations by city",
			func(s *Store) error { _, err := s.LocationAPI.ByCity(ctx, "Portland"); return err },
			"/locations/city/Portland", nil,
		},
		{
			"failed payments",
			func(s *Store) error { _, err := s.PaymentAPI.Failed(ctx); return err },
			"/payments/failed", nil,
		},
		{
			"active insurance plans",
			func(s *Store) error { _, err := s.InsuranceAPI.Active(ctx); return err },
			"/insurance-plans/active", nil,
		},
		{
			"vehicle features",
			func(s *Store) error { _, err := s.FeatureAPI.List(ctx); return err },
			"/vehicle-features/", nil,
		},
		{
			"membership tiers",
			func(s *Store) error { _, err := s.MembershipAPI.Tiers(ctx); return err },
			"/membership-tiers/", nil,
		},
		{
			"scheduled maintenance for a day",
			func(s *Store) error {
				target := domain.NewTimestamp(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
				_, err := s.MaintenanceAPI.Scheduled(ctx, &target)
				return err
			},
			"/maintenance/scheduled", map[string]string{"target_date": "2026-09-15"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, rec := fakeBackend(t, http.StatusOK, `[]`)
			require.NoError(t, tc.call(store))

			assert.Equal(t, http.MethodGet, rec.method)
			assert.Equal(t, tc.path, rec.path)
			for key, want := range tc.query {
				assert.Equal(t, want, rec.query[key])
			}
		})
	}
}

func TestMembershipPointsPatch(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `{}`)

	err := store.MembershipAPI.UpdatePoints(context.Background(), 3, 50)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/membership/3/points", rec.path)
	assert.JSONEq(t, `{"points_to_add": 50}`, string(rec.body))
}

func TestMaintenanceCreateSendsBareDate(t *testing.T) {
	store, rec := fakeBackend(t, http.StatusOK, `{"schedule_id": 1, "vehicle_id": 4, "maintenance_type": "Oil change", "scheduled_date": "2026-09-15", "status": "Scheduled"}`)

	_, err := store.MaintenanceAPI.Create(context.Background(), domain.MaintenanceScheduleCreate{
		VehicleID:       4,
		MaintenanceType: "Oil change",
		ScheduledDate:   domain.NewDate(time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/maintenance/", rec.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "2026-09-15", sent["scheduled_date"])
}

func TestNotFoundBecomesAPIError(t *testing.T) {
	store, _ := fakeBackend(t, http.StatusNotFound, `{"detail": "Customer not found"}`)

	_, err := store.CustomerAPI.Get(context.Background(), 404)
	require.Error(t, err)

	apiErr, ok := backend.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Customer not found", apiErr.Message)
}

func TestDetailStringsMapToCodes(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		code   backend.ErrorCode
	}{
		{"duplicate email", http.StatusBadRequest, `{"detail": "Email already registered"}`, backend.CodeEmailTaken},
		{"duplicate plate", http.StatusBadRequest, `{"detail": "License plate already exists"}`, backend.CodePlateTaken},
		{"vehicle booked", http.StatusConflict, `{"detail": "Vehicle is not available for the selected dates"}`, backend.CodeVehicleUnavailable},
		{"convert rejected", http.StatusBadRequest, `{"detail": "Cannot convert reservation with status Cancelled"}`, backend.CodeConvertRejected},
		{"unrecognized detail", http.StatusBadRequest, `{"detail": "something else went wrong"}`, backend.CodeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := fakeBackend(t, tc.status, tc.body)

			_, err := store.CustomerAPI.Create(context.Background(), domain.CustomerCreate{})
			require.Error(t, err)

			apiErr, ok := backend.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, apiErr.Code)
			assert.Equal(t, tc.status, apiErr.Status)
		})
	}
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	store := NewStore(baseURL, time.Second)
	_, err := store.VehicleAPI.List(context.Background(), backend.ListRange{Limit: 100})
	require.Error(t, err)

	apiErr, ok := backend.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, backend.CodeTransport, apiErr.Code)
	assert.Equal(t, 0, apiErr.Status)
}

func TestUndecodableSuccessBodyIsTransportError(t *testing.T) {
	store, _ := fakeBackend(t, http.StatusOK, `<html>proxy error</html>`)

	_, err := store.VehicleAPI.Get(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := backend.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, backend.CodeTransport, apiErr.Code)
}
