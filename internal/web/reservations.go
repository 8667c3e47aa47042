package web

import (
	"fmt"
	"net/http"
	"net/url"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/validate"
)

var reservationFields = func(r domain.Reservation) []string {
	return []string{
		fmt.Sprintf("%d", r.ID),
		string(r.Status),
		r.StartDate.DateString(),
		r.EndDate.DateString(),
	}
}

type reservationListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.Reservation]
	Banner   string
}

type reservationFormPage struct {
	Operator  string
	Editing   bool
	ID        int32
	Form      domain.ReservationCreate
	Customers []domain.Customer
	Vehicles  []domain.Vehicle
	Locations []domain.Location
	Errors    validate.Errors
	Banner    string
}

func (s *Server) handleReservationList(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.svc.Reservations.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	page := listing.FilterPage(reservations, query, prev, formPage(r), s.pageSize, reservationFields)

	s.render(w, http.StatusOK, "reservations.html", reservationListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     page,
		Banner:   formStr(r, "banner"),
	})
}

func (s *Server) reservationFormData(r *http.Request, page *reservationFormPage) error {
	customers, err := s.svc.Customers.List(r.Context())
	if err != nil {
		return err
	}
	vehicles, err := s.svc.Vehicles.List(r.Context())
	if err != nil {
		return err
	}
	locations, err := s.svc.Directory.Locations(r.Context())
	if err != nil {
		return err
	}
	page.Customers = customers
	page.Vehicles = vehicles
	page.Locations = locations
	return nil
}

func (s *Server) handleReservationForm(w http.ResponseWriter, r *http.Request) {
	page := reservationFormPage{Operator: operatorName(r), Errors: validate.Errors{}}

	if id := pathID(r); id > 0 {
		reservation, err := s.svc.Reservations.Get(r.Context(), id)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		page.Editing = true
		page.ID = id
		page.Form = domain.ReservationCreate{
			CustomerID:       reservation.CustomerID,
			VehicleID:        reservation.VehicleID,
			PickupLocationID: reservation.PickupLocationID,
			ReturnLocationID: reservation.ReturnLocationID,
			StartDate:        reservation.StartDate,
			EndDate:          reservation.EndDate,
			Status:           reservation.Status,
			SpecialRequests:  reservation.SpecialRequests,
			EstimatedTotal:   reservation.EstimatedTotal,
		}
	}

	if err := s.reservationFormData(r, &page); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "reservation_form.html", page)
}

func (s *Server) handleReservationCreate(w http.ResponseWriter, r *http.Request) {
	s.saveReservation(w, r, 0)
}

func (s *Server) handleReservationUpdate(w http.ResponseWriter, r *http.Request) {
	s.saveReservation(w, r, pathID(r))
}

func (s *Server) saveReservation(w http.ResponseWriter, r *http.Request, id int32) {
	in := domain.ReservationCreate{
		CustomerID:       formInt32(r, "customer_id"),
		VehicleID:        formInt32(r, "vehicle_id"),
		PickupLocationID: formInt32(r, "pickup_location_id"),
		ReturnLocationID: formInt32(r, "return_location_id"),
		StartDate:        formDate(r, "reserved_start_date"),
		EndDate:          formDate(r, "reserved_end_date"),
		SpecialRequests:  formStr(r, "special_requests"),
		EstimatedTotal:   formCentsPtr(r, "estimated_total"),
	}
	if status := formStr(r, "status"); status != "" {
		in.Status = domain.ReservationStatus(status)
	}

	page := reservationFormPage{
		Operator: operatorName(r),
		Editing:  id > 0,
		ID:       id,
		Form:     in,
	}

	if errs := validate.Reservation(in); !errs.Valid() {
		page.Errors = errs
		if err := s.reservationFormData(r, &page); err != nil {
			s.renderError(w, r, err)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "reservation_form.html", page)
		return
	}

	var err error
	if id > 0 {
		_, err = s.svc.Reservations.Update(r.Context(), id, in)
	} else {
		_, err = s.svc.Reservations.Create(r.Context(), in)
	}
	if err != nil {
		page.Errors, page.Banner = validate.MapAPIError(err)
		if dataErr := s.reservationFormData(r, &page); dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "reservation_form.html", page)
		return
	}

	http.Redirect(w, r, "/reservations", http.StatusSeeOther)
}

// handleReservationConvert turns a reservation into a rental and lands on
// the new rental's detail page. Backend rejections surface on the list as
// a banner instead of a dead end.
func (s *Server) handleReservationConvert(w http.ResponseWriter, r *http.Request) {
	rental, err := s.svc.Reservations.Convert(r.Context(), pathID(r))
	if err != nil {
		_, banner := validate.MapAPIError(err)
		if banner == "" {
			banner = "Could not convert this reservation."
		}
		http.Redirect(w, r, "/reservations?banner="+url.QueryEscape(banner), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/rentals/%d", rental.ID), http.StatusSeeOther)
}
