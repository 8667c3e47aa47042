package rest

import (
	"context"
	"fmt"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type employeeClient struct {
	*core
}

func (c *employeeClient) List(ctx context.Context, r backend.ListRange) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.get(ctx, "/employees/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeClient) Active(ctx context.Context, r backend.ListRange) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.get(ctx, "/employees/active", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeClient) Get(ctx context.Context, id int32) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.get(ctx, fmt.Sprintf("/employees/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *employeeClient) ByRole(ctx context.Context, role string) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.get(ctx, "/employees/role/"+role, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeClient) ByLocation(ctx context.Context, locationID int32) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.get(ctx, fmt.Sprintf("/employees/location/%d", locationID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *employeeClient) Create(ctx context.Context, in domain.EmployeeCreate) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.post(ctx, "/employees/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
