// Package rest implements the backend interfaces over the rental REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rental-console/internal/backend"
	"rental-console/internal/logger"
)

// core is the shared HTTP plumbing every resource client is built on.
type core struct {
	baseURL string
	http    *http.Client
}

// Store bundles one typed client per backend resource, sharing a single
// HTTP client and base URL.
type Store struct {
	backend.CustomerAPI
	backend.VehicleAPI
	backend.RentalAPI
	backend.ReservationAPI
	backend.EmployeeAPI
	backend.LocationAPI
	backend.PaymentAPI
	backend.InsuranceAPI
	backend.IncidentAPI
	backend.MaintenanceAPI
	backend.MembershipAPI
	backend.FeatureAPI
}

// NewStore builds the full client set against the configured base URL.
func NewStore(baseURL string, timeout time.Duration) *Store {
	c := &core{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
	return &Store{
		CustomerAPI:    &customerClient{c},
		VehicleAPI:     &vehicleClient{c},
		RentalAPI:      &rentalClient{c},
		ReservationAPI: &reservationClient{c},
		EmployeeAPI:    &employeeClient{c},
		LocationAPI:    &locationClient{c},
		PaymentAPI:     &paymentClient{c},
		InsuranceAPI:   &insuranceClient{c},
		IncidentAPI:    &incidentClient{c},
		MaintenanceAPI: &maintenanceClient{c},
		MembershipAPI:  &membershipClient{c},
		FeatureAPI:     &featureClient{c},
	}
}

// do performs one request and decodes the JSON response into out (skipped
// when out is nil). Transport failures and non-2xx responses both come back
// as *backend.APIError.
func (c *core) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.BackendCall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := backend.NewTransportError(err)
		logger.BackendResult(method, path, 0, apiErr)
		return apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := backend.NewTransportError(err)
		logger.BackendResult(method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := backend.NewAPIError(resp.StatusCode, raw)
		logger.BackendResult(method, path, resp.StatusCode, apiErr)
		return apiErr
	}
	logger.BackendResult(method, path, resp.StatusCode, nil)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return backend.NewTransportError(fmt.Errorf("decode %s %s response: %w", method, path, err))
	}
	return nil
}

func (c *core) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *core) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *core) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *core) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *core) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// rangeQuery renders the skip/limit window the list endpoints take.
func rangeQuery(r backend.ListRange) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(r.Skip))
	q.Set("limit", strconv.Itoa(r.Limit))
	return q
}

func setInt(q url.Values, key string, v *int32) {
	if v != nil {
		q.Set(key, strconv.FormatInt(int64(*v), 10))
	}
}

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
