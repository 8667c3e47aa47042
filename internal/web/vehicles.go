package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/service"
	"rental-console/internal/validate"
)

var vehicleFields = func(v domain.Vehicle) []string {
	return []string{v.Make, v.Model, v.LicensePlate, strconv.Itoa(int(v.Year)), v.FuelType, v.Transmission}
}

type vehicleListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.Vehicle]
}

type vehicleDetailPage struct {
	Operator string
	View     *service.VehicleDetailView
	Errors   validate.Errors
	Banner   string
}

type vehicleFormPage struct {
	Operator string
	Editing  bool
	ID       int32
	Form     domain.VehicleCreate
	Errors   validate.Errors
	Banner   string
}

func (s *Server) handleVehicleList(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.svc.Vehicles.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	page := listing.FilterPage(vehicles, query, prev, formPage(r), s.pageSize, vehicleFields)

	s.render(w, http.StatusOK, "vehicles.html", vehicleListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     page,
	})
}

func (s *Server) handleVehicleDetail(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Vehicles.Detail(r.Context(), pathID(r))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "vehicle_detail.html", vehicleDetailPage{
		Operator: operatorName(r),
		View:     view,
		Errors:   validate.Errors{},
	})
}

func (s *Server) handleVehicleForm(w http.ResponseWriter, r *http.Request) {
	page := vehicleFormPage{Operator: operatorName(r), Errors: validate.Errors{}}

	if id := pathID(r); id > 0 {
		view, err := s.svc.Vehicles.Detail(r.Context(), id)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		v := view.Vehicle.Vehicle
		page.Editing = true
		page.ID = id
		page.Form = domain.VehicleCreate{
			Make:            v.Make,
			Model:           v.Model,
			LicensePlate:    v.LicensePlate,
			Year:            v.Year,
			Availability:    &v.Availability,
			DailyRate:       v.DailyRate,
			Mileage:         &v.Mileage,
			FuelType:        v.FuelType,
			Transmission:    v.Transmission,
			SeatingCapacity: &v.SeatingCapacity,
			LocationID:      v.LocationID,
		}
	}

	s.render(w, http.StatusOK, "vehicle_form.html", page)
}

func (s *Server) handleVehicleCreate(w http.ResponseWriter, r *http.Request) {
	s.saveVehicle(w, r, 0)
}

func (s *Server) handleVehicleUpdate(w http.ResponseWriter, r *http.Request) {
	s.saveVehicle(w, r, pathID(r))
}

func (s *Server) saveVehicle(w http.ResponseWriter, r *http.Request, id int32) {
	in := domain.VehicleCreate{
		Make:            formStr(r, "make"),
		Model:           formStr(r, "model"),
		LicensePlate:    formStr(r, "license_plate"),
		Year:            formInt32(r, "year"),
		DailyRate:       formCents(r, "daily_rate"),
		Mileage:         formInt32Ptr(r, "mileage"),
		FuelType:        formStr(r, "fuel_type"),
		Transmission:    formStr(r, "transmission"),
		SeatingCapacity: formInt32Ptr(r, "seating_capacity"),
		LocationID:      formInt32Ptr(r, "location_id"),
	}
	if formStr(r, "availability") != "" {
		avail := formBool(r, "availability")
		in.Availability = &avail
	}

	page := vehicleFormPage{
		Operator: operatorName(r),
		Editing:  id > 0,
		ID:       id,
		Form:     in,
	}

	if errs := validate.Vehicle(in, time.Now()); !errs.Valid() {
		page.Errors = errs
		s.render(w, http.StatusUnprocessableEntity, "vehicle_form.html", page)
		return
	}

	var (
		saved *domain.Vehicle
		err   error
	)
	if id > 0 {
		saved, err = s.svc.Vehicles.Update(r.Context(), id, in)
	} else {
		saved, err = s.svc.Vehicles.Create(r.Context(), in)
	}
	if err != nil {
		page.Errors, page.Banner = validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "vehicle_form.html", page)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/vehicles/%d", saved.ID), http.StatusSeeOther)
}

func (s *Server) handleVehicleAvailability(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if err := s.svc.Vehicles.SetAvailability(r.Context(), id, formBool(r, "available")); err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/vehicles/%d", id), http.StatusSeeOther)
}

// handleMaintenanceCreate schedules service for a vehicle from its detail
// page.
func (s *Server) handleMaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	in := domain.MaintenanceScheduleCreate{
		VehicleID:        id,
		MaintenanceType:  formStr(r, "maintenance_type"),
		ScheduledDate:    formDateOnly(r, "scheduled_date"),
		AssignedMechanic: formInt32Ptr(r, "assigned_mechanic"),
		Cost:             formCentsPtr(r, "cost"),
		Notes:            formStr(r, "notes"),
	}

	if errs := validate.Maintenance(in); !errs.Valid() {
		view, err := s.svc.Vehicles.Detail(r.Context(), id)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "vehicle_detail.html", vehicleDetailPage{
			Operator: operatorName(r),
			View:     view,
			Errors:   errs,
		})
		return
	}

	if _, err := s.svc.Vehicles.ScheduleMaintenance(r.Context(), in); err != nil {
		view, detailErr := s.svc.Vehicles.Detail(r.Context(), id)
		if detailErr != nil {
			s.renderError(w, r, detailErr)
			return
		}
		errs, banner := validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "vehicle_detail.html", vehicleDetailPage{
			Operator: operatorName(r),
			View:     view,
			Errors:   errs,
			Banner:   banner,
		})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/vehicles/%d", id), http.StatusSeeOther)
}
