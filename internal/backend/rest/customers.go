package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type customerClient struct {
	*core
}

func (c *customerClient) List(ctx context.Context, r backend.ListRange) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.get(ctx, "/customers/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerClient) Get(ctx context.Context, id int32) (*domain.CustomerWithProfile, error) {
	var out domain.CustomerWithProfile
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *customerClient) Create(ctx context.Context, in domain.CustomerCreate) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.post(ctx, "/customers/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *customerClient) Update(ctx context.Context, id int32, in domain.CustomerCreate) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.put(ctx, fmt.Sprintf("/customers/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *customerClient) Delete(ctx context.Context, id int32) error {
	return c.delete(ctx, fmt.Sprintf("/customers/%d", id))
}

func (c *customerClient) Search(ctx context.Context, query string, r backend.ListRange) ([]domain.Customer, error) {
	q := rangeQuery(r)
	q.Set("q", query)
	var out []domain.Customer
	if err := c.get(ctx, "/customers/search/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerClient) TopSpenders(ctx context.Context, limit int) ([]domain.Customer, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var out []domain.Customer
	if err := c.get(ctx, "/customers/top/spending", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
