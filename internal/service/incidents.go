package service

import (
	"context"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type incidentService struct {
	incidents backend.IncidentAPI
}

func NewIncidentService(incidents backend.IncidentAPI) IncidentService {
	return &incidentService{incidents: incidents}
}

func (s *incidentService) List(ctx context.Context) ([]domain.IncidentReport, error) {
	return s.incidents.List(ctx, backend.DefaultRange)
}

func (s *incidentService) Create(ctx context.Context, in domain.IncidentReportCreate) (*domain.IncidentReport, error) {
	if in.Status == "" {
		in.Status = domain.IncidentStatusOpen
	}
	return s.incidents.Create(ctx, in)
}
