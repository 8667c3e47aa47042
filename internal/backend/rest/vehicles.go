package rest

import (
	"context"
	"fmt"
	"strconv"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type vehicleClient struct {
	*core
}

func (c *vehicleClient) List(ctx context.Context, r backend.ListRange) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := c.get(ctx, "/vehicles/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleClient) Available(ctx context.Context, r backend.ListRange) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := c.get(ctx, "/vehicles/available", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleClient) Get(ctx context.Context, id int32) (*domain.VehicleWithFeatures, error) {
	var out domain.VehicleWithFeatures
	if err := c.get(ctx, fmt.Sprintf("/vehicles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *vehicleClient) Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := c.post(ctx, "/vehicles/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *vehicleClient) Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := c.put(ctx, fmt.Sprintf("/vehicles/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *vehicleClient) SetAvailability(ctx context.Context, id int32, available bool) error {
	body := map[string]bool{"available": available}
	return c.patch(ctx, fmt.Sprintf("/vehicles/%d/availability", id), body, nil)
}

func (c *vehicleClient) Filter(ctx context.Context, f domain.VehicleFilters, r backend.ListRange) ([]domain.Vehicle, error) {
	q := rangeQuery(r)
	setStr(q, "make", f.Make)
	setStr(q, "model", f.Model)
	setStr(q, "fuel_type", f.FuelType)
	setStr(q, "transmission", f.Transmission)
	setInt(q, "min_year", f.MinYear)
	setInt(q, "max_year", f.MaxYear)
	setInt(q, "location_id", f.LocationID)
	if f.Availability != nil {
		q.Set("availability", strconv.FormatBool(*f.Availability))
	}
	if f.MinDailyRate != nil {
		q.Set("min_daily_rate", strconv.FormatFloat(f.MinDailyRate.Dollars(), 'f', 2, 64))
	}
	if f.MaxDailyRate != nil {
		q.Set("max_daily_rate", strconv.FormatFloat(f.MaxDailyRate.Dollars(), 'f', 2, 64))
	}

	var out []domain.Vehicle
	if err := c.get(ctx, "/vehicles/filter/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehicleClient) NeedingMaintenance(ctx context.Context) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := c.get(ctx, "/vehicles/maintenance/needed", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
