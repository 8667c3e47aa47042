package rest

import (
	"context"
	"fmt"
	"net/url"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type insuranceClient struct {
	*core
}

func (c *insuranceClient) List(ctx context.Context) ([]domain.InsurancePlan, error) {
	var out []domain.InsurancePlan
	if err := c.get(ctx, "/insurance-plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insuranceClient) Active(ctx context.Context) ([]domain.InsurancePlan, error) {
	var out []domain.InsurancePlan
	if err := c.get(ctx, "/insurance-plans/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insuranceClient) Create(ctx context.Context, in domain.InsurancePlanCreate) (*domain.InsurancePlan, error) {
	var out domain.InsurancePlan
	if err := c.post(ctx, "/insurance-plans/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type incidentClient struct {
	*core
}

func (c *incidentClient) List(ctx context.Context, r backend.ListRange) ([]domain.IncidentReport, error) {
	var out []domain.IncidentReport
	if err := c.get(ctx, "/incidents/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *incidentClient) ByRental(ctx context.Context, rentalID int32) ([]domain.IncidentReport, error) {
	var out []domain.IncidentReport
	if err := c.get(ctx, fmt.Sprintf("/incidents/rental/%d", rentalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *incidentClient) Open(ctx context.Context) ([]domain.IncidentReport, error) {
	var out []domain.IncidentReport
	if err := c.get(ctx, "/incidents/open", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *incidentClient) Create(ctx context.Context, in domain.IncidentReportCreate) (*domain.IncidentReport, error) {
	var out domain.IncidentReport
	if err := c.post(ctx, "/incidents/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type maintenanceClient struct {
	*core
}

func (c *maintenanceClient) Create(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error) {
	var out domain.MaintenanceSchedule
	if err := c.post(ctx, "/maintenance/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *maintenanceClient) ByVehicle(ctx context.Context, vehicleID int32) ([]domain.MaintenanceSchedule, error) {
	var out []domain.MaintenanceSchedule
	if err := c.get(ctx, fmt.Sprintf("/maintenance/vehicle/%d", vehicleID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maintenanceClient) Scheduled(ctx context.Context, targetDate *domain.Timestamp) ([]domain.MaintenanceSchedule, error) {
	var q url.Values
	if targetDate != nil {
		q = url.Values{}
		q.Set("target_date", targetDate.DateString())
	}
	var out []domain.MaintenanceSchedule
	if err := c.get(ctx, "/maintenance/scheduled", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *maintenanceClient) ByMechanic(ctx context.Context, mechanicID int32, start, end domain.Timestamp) ([]domain.MaintenanceSchedule, error) {
	q := url.Values{}
	q.Set("start_date", start.DateString())
	q.Set("end_date", end.DateString())
	var out []domain.MaintenanceSchedule
	if err := c.get(ctx, fmt.Sprintf("/maintenance/mechanic/%d", mechanicID), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type membershipClient struct {
	*core
}

func (c *membershipClient) UpdatePoints(ctx context.Context, customerID int32, pointsToAdd int32) error {
	body := map[string]int32{"points_to_add": pointsToAdd}
	return c.patch(ctx, fmt.Sprintf("/membership/%d/points", customerID), body, nil)
}

func (c *membershipClient) Tiers(ctx context.Context) ([]domain.MembershipTier, error) {
	var out []domain.MembershipTier
	if err := c.get(ctx, "/membership-tiers/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type featureClient struct {
	*core
}

func (c *featureClient) List(ctx context.Context) ([]domain.VehicleFeature, error) {
	var out []domain.VehicleFeature
	if err := c.get(ctx, "/vehicle-features/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *featureClient) Create(ctx context.Context, in domain.VehicleFeatureCreate) (*domain.VehicleFeature, error) {
	var out domain.VehicleFeature
	if err := c.post(ctx, "/vehicle-features/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
