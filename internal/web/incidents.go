package web

import (
	"fmt"
	"net/http"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/validate"
)

var incidentFields = func(i domain.IncidentReport) []string {
	return []string{
		fmt.Sprintf("%d", i.RentalID),
		i.IncidentType,
		i.Description,
		string(i.Status),
	}
}

type incidentListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.IncidentReport]
	Form     domain.IncidentReportCreate
	Errors   validate.Errors
	Banner   string
}

func (s *Server) handleIncidentList(w http.ResponseWriter, r *http.Request) {
	page, err := s.incidentListData(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "incidents.html", *page)
}

func (s *Server) incidentListData(r *http.Request) (*incidentListPage, error) {
	incidents, err := s.svc.Incidents.List(r.Context())
	if err != nil {
		return nil, err
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	return &incidentListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     listing.FilterPage(incidents, query, prev, formPage(r), s.pageSize, incidentFields),
		Errors:   validate.Errors{},
	}, nil
}

func (s *Server) handleIncidentCreate(w http.ResponseWriter, r *http.Request) {
	in := domain.IncidentReportCreate{
		RentalID:           formInt32(r, "rental_id"),
		ReportedBy:         formInt32Ptr(r, "reported_by"),
		IncidentDate:       formDateOnly(r, "incident_date"),
		IncidentType:       formStr(r, "incident_type"),
		Description:        formStr(r, "description"),
		EstimatedCost:      formCentsPtr(r, "estimated_cost"),
		Photos:             formStr(r, "photos"),
		PoliceReportNumber: formStr(r, "police_report_number"),
	}

	if errs := validate.Incident(in); !errs.Valid() {
		page, err := s.incidentListData(r)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		page.Form = in
		page.Errors = errs
		s.render(w, http.StatusUnprocessableEntity, "incidents.html", *page)
		return
	}

	if _, err := s.svc.Incidents.Create(r.Context(), in); err != nil {
		page, dataErr := s.incidentListData(r)
		if dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		page.Form = in
		page.Errors, page.Banner = validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "incidents.html", *page)
		return
	}

	http.Redirect(w, r, "/incidents", http.StatusSeeOther)
}
