package web

import (
	"fmt"
	"net/http"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/validate"
)

var maintenanceFields = func(m domain.MaintenanceSchedule) []string {
	return []string{
		fmt.Sprintf("%d", m.VehicleID),
		m.MaintenanceType,
		m.Notes,
		string(m.Status),
	}
}

type maintenanceListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.MaintenanceSchedule]
}

type maintenanceFormPage struct {
	Operator  string
	Form      domain.MaintenanceScheduleCreate
	Vehicles  []domain.Vehicle
	Mechanics []domain.Employee
	Errors    validate.Errors
	Banner    string
}

func (s *Server) handleMaintenanceList(w http.ResponseWriter, r *http.Request) {
	schedules, err := s.svc.Maintenance.Scheduled(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	s.render(w, http.StatusOK, "maintenance.html", maintenanceListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     listing.FilterPage(schedules, query, prev, formPage(r), s.pageSize, maintenanceFields),
	})
}

// maintenanceFormData loads the dropdown sources for the new-schedule form.
func (s *Server) maintenanceFormData(r *http.Request, page *maintenanceFormPage) error {
	vehicles, err := s.svc.Vehicles.List(r.Context())
	if err != nil {
		return err
	}
	mechanics, err := s.svc.Directory.Employees(r.Context())
	if err != nil {
		return err
	}
	page.Vehicles = vehicles
	page.Mechanics = mechanics
	return nil
}

func (s *Server) handleMaintenanceForm(w http.ResponseWriter, r *http.Request) {
	page := maintenanceFormPage{Operator: operatorName(r), Errors: validate.Errors{}}
	if err := s.maintenanceFormData(r, &page); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "maintenance_form.html", page)
}

func (s *Server) handleMaintenanceSchedule(w http.ResponseWriter, r *http.Request) {
	in := domain.MaintenanceScheduleCreate{
		VehicleID:        formInt32(r, "vehicle_id"),
		MaintenanceType:  formStr(r, "maintenance_type"),
		ScheduledDate:    formDateOnly(r, "scheduled_date"),
		AssignedMechanic: formInt32Ptr(r, "assigned_mechanic"),
		Cost:             formCentsPtr(r, "cost"),
		Notes:            formStr(r, "notes"),
	}

	page := maintenanceFormPage{Operator: operatorName(r), Form: in}

	if errs := validate.Maintenance(in); !errs.Valid() {
		page.Errors = errs
		if err := s.maintenanceFormData(r, &page); err != nil {
			s.renderError(w, r, err)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "maintenance_form.html", page)
		return
	}

	if _, err := s.svc.Maintenance.Create(r.Context(), in); err != nil {
		page.Errors, page.Banner = validate.MapAPIError(err)
		if dataErr := s.maintenanceFormData(r, &page); dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "maintenance_form.html", page)
		return
	}

	http.Redirect(w, r, "/maintenance", http.StatusSeeOther)
}
