package web

import (
	"fmt"
	"net/http"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/service"
	"rental-console/internal/validate"
)

var customerFields = func(c domain.Customer) []string {
	return []string{c.FirstName, c.LastName, c.Email, c.Phone, c.DriverLicense}
}

type customerListPage struct {
	Operator  string
	Query     string
	PrevQuery string
	Page      listing.Page[domain.Customer]
}

type customerFormPage struct {
	Operator string
	Editing  bool
	ID       int32
	Form     domain.CustomerCreate
	Errors   validate.Errors
	Banner   string
}

type customerDetailPage struct {
	Operator string
	View     *service.CustomerDetailView
}

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	customers, err := s.svc.Customers.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	page := listing.FilterPage(customers, query, prev, formPage(r), s.pageSize, customerFields)

	s.render(w, http.StatusOK, "customers.html", customerListPage{
		Operator:  operatorName(r),
		Query:     query,
		PrevQuery: query,
		Page:      page,
	})
}

func (s *Server) handleCustomerDetail(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Customers.Detail(r.Context(), pathID(r))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "customer_detail.html", customerDetailPage{
		Operator: operatorName(r),
		View:     view,
	})
}

// handleCustomerForm serves both the blank new-customer form and the edit
// form pre-filled from the current record.
func (s *Server) handleCustomerForm(w http.ResponseWriter, r *http.Request) {
	page := customerFormPage{Operator: operatorName(r), Errors: validate.Errors{}}

	if id := pathID(r); id > 0 {
		view, err := s.svc.Customers.Detail(r.Context(), id)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		c := view.Customer.Customer
		page.Editing = true
		page.ID = id
		page.Form = domain.CustomerCreate{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			Phone:         c.Phone,
			Address:       c.Address,
			DriverLicense: c.DriverLicense,
		}
		if c.DateOfBirth != nil {
			dob := domain.Date{Timestamp: *c.DateOfBirth}
			page.Form.DateOfBirth = &dob
		}
	}

	s.render(w, http.StatusOK, "customer_form.html", page)
}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	s.saveCustomer(w, r, 0)
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	s.saveCustomer(w, r, pathID(r))
}

// saveCustomer runs the shared create/update flow: local validation first,
// then the backend call, with backend rejections mapped onto the same form
// error display.
func (s *Server) saveCustomer(w http.ResponseWriter, r *http.Request, id int32) {
	in := domain.CustomerCreate{
		FirstName:     formStr(r, "first_name"),
		LastName:      formStr(r, "last_name"),
		Email:         formStr(r, "email"),
		Phone:         formStr(r, "phone"),
		Address:       formStr(r, "address"),
		DriverLicense: formStr(r, "driver_license"),
	}
	if dob := formDateOnly(r, "date_of_birth"); !dob.IsZero() {
		in.DateOfBirth = &dob
	}

	page := customerFormPage{
		Operator: operatorName(r),
		Editing:  id > 0,
		ID:       id,
		Form:     in,
	}

	if errs := validate.Customer(in); !errs.Valid() {
		page.Errors = errs
		s.render(w, http.StatusUnprocessableEntity, "customer_form.html", page)
		return
	}

	var (
		saved *domain.Customer
		err   error
	)
	if id > 0 {
		saved, err = s.svc.Customers.Update(r.Context(), id, in)
	} else {
		saved, err = s.svc.Customers.Create(r.Context(), in)
	}
	if err != nil {
		page.Errors, page.Banner = validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "customer_form.html", page)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/customers/%d", saved.ID), http.StatusSeeOther)
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Customers.Delete(r.Context(), pathID(r)); err != nil {
		if apiErr, ok := backend.AsAPIError(err); !ok || !apiErr.IsNotFound() {
			s.renderError(w, r, err)
			return
		}
		// Deleting an already-deleted customer still lands on the list.
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (s *Server) handleCustomerPoints(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	points := formInt32(r, "points")
	if points != 0 {
		if err := s.svc.Customers.AddPoints(r.Context(), id, points); err != nil {
			s.renderError(w, r, err)
			return
		}
	}
	http.Redirect(w, r, fmt.Sprintf("/customers/%d", id), http.StatusSeeOther)
}
