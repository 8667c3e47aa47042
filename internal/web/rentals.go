package web

import (
	"fmt"
	"net/http"
	"time"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/service"
	"rental-console/internal/settlement"
	"rental-console/internal/validate"
)

var rentalFields = func(r domain.Rental) []string {
	return []string{
		fmt.Sprintf("%d", r.ID),
		string(r.Status),
		r.StartDate.DateString(),
		r.EndDate.DateString(),
	}
}

type rentalListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.Rental]
}

type rentalDetailPage struct {
	Operator string
	View     *service.RentalDetailView
	Errors   validate.Errors
	Banner   string
}

type rentalFormPage struct {
	Operator  string
	Form      domain.RentalCreate
	Customers []domain.Customer
	Vehicles  []domain.Vehicle
	Locations []domain.Location
	Errors    validate.Errors
	Banner    string
}

type rentalReturnPage struct {
	Operator string
	View     *service.RentalDetailView
	Form     domain.RentalReturn
	Errors   validate.Errors
	Banner   string
}

func (s *Server) handleRentalList(w http.ResponseWriter, r *http.Request) {
	rentals, err := s.svc.Rentals.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	page := listing.FilterPage(rentals, query, prev, formPage(r), s.pageSize, rentalFields)

	s.render(w, http.StatusOK, "rentals.html", rentalListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     page,
	})
}

func (s *Server) handleRentalDetail(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Rentals.Detail(r.Context(), pathID(r), time.Now())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "rental_detail.html", rentalDetailPage{
		Operator: operatorName(r),
		View:     view,
		Errors:   validate.Errors{},
	})
}

// rentalFormData loads the dropdown sources for the new-rental form so the
// operator picks from live records rather than typing ids.
func (s *Server) rentalFormData(r *http.Request, page *rentalFormPage) error {
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

func (s *Server) handleRentalForm(w http.ResponseWriter, r *http.Request) {
	page := rentalFormPage{Operator: operatorName(r), Errors: validate.Errors{}}
	if err := s.rentalFormData(r, &page); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "rental_form.html", page)
}

func (s *Server) handleRentalCreate(w http.ResponseWriter, r *http.Request) {
	in := domain.RentalCreate{
		CustomerID:       formInt32(r, "customer_id"),
		VehicleID:        formInt32(r, "vehicle_id"),
		EmployeeID:       formInt32Ptr(r, "employee_id"),
		PickupLocationID: formInt32(r, "pickup_location_id"),
		ReturnLocationID: formInt32(r, "return_location_id"),
		StartDate:        formDate(r, "start_date"),
		EndDate:          formDate(r, "end_date"),
		DailyRate:        formCents(r, "daily_rate"),
		TotalAmount:      formCents(r, "total_amount"),
		SecurityDeposit:  formCentsPtr(r, "security_deposit"),
		MileageStart:     formInt32Ptr(r, "mileage_start"),
		FuelLevelStart:   formFloatPtr(r, "fuel_level_start"),
	}

	page := rentalFormPage{Operator: operatorName(r), Form: in}

	if errs := validate.Rental(in); !errs.Valid() {
		page.Errors = errs
		if err := s.rentalFormData(r, &page); err != nil {
			s.renderError(w, r, err)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "rental_form.html", page)
		return
	}

	rental, err := s.svc.Rentals.Create(r.Context(), in)
	if err != nil {
		page.Errors, page.Banner = validate.MapAPIError(err)
		if dataErr := s.rentalFormData(r, &page); dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "rental_form.html", page)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/rentals/%d", rental.ID), http.StatusSeeOther)
}

// handleRentalReturnForm shows the settlement form pre-filled with the
// suggested late fee. The operator may override the figures before
// submitting.
func (s *Server) handleRentalReturnForm(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Rentals.Detail(r.Context(), pathID(r), time.Now())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "rental_return.html", rentalReturnPage{
		Operator: operatorName(r),
		View:     view,
		Form: domain.RentalReturn{
			LateFees: view.SuggestedLateFee,
		},
		Errors: validate.Errors{},
	})
}

// handleRentalReturn submits the return as a single atomic update and
// renders the re-fetched state. Nothing on this page is optimistic.
func (s *Server) handleRentalReturn(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	in := domain.RentalReturn{
		MileageEnd:   formInt32Ptr(r, "mileage_end"),
		FuelLevelEnd: formFloatPtr(r, "fuel_level_end"),
		LateFees:     formCents(r, "late_fees"),
		DamageFees:   formCents(r, "damage_fees"),
	}

	view, err := s.svc.Rentals.Detail(r.Context(), id, time.Now())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if errs := validate.Return(in, view.Rental.MileageStart); !errs.Valid() {
		s.render(w, http.StatusUnprocessableEntity, "rental_return.html", rentalReturnPage{
			Operator: operatorName(r),
			View:     view,
			Form:     in,
			Errors:   errs,
		})
		return
	}

	if _, err := s.svc.Rentals.Return(r.Context(), id, in, time.Now()); err != nil {
		errs, banner := validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "rental_return.html", rentalReturnPage{
			Operator: operatorName(r),
			View:     view,
			Form:     in,
			Errors:   errs,
			Banner:   banner,
		})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/rentals/%d", id), http.StatusSeeOther)
}

// handlePaymentCreate records a payment against a rental from its detail
// page.
func (s *Server) handlePaymentCreate(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	in := domain.PaymentCreate{
		RentalID:      id,
		Amount:        formCents(r, "amount"),
		Method:        formStr(r, "method"),
		TransactionID: formStr(r, "transaction_id"),
		PaymentType:   formStr(r, "payment_type"),
	}
	if status := formStr(r, "status"); status != "" {
		in.Status = domain.PaymentStatus(status)
	}

	if errs := validate.Payment(in); !errs.Valid() {
		view, err := s.svc.Rentals.Detail(r.Context(), id, time.Now())
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		s.render(w, http.StatusUnprocessableEntity, "rental_detail.html", rentalDetailPage{
			Operator: operatorName(r),
			View:     view,
			Errors:   errs,
		})
		return
	}

	if _, err := s.svc.Rentals.RecordPayment(r.Context(), in); err != nil {
		view, detailErr := s.svc.Rentals.Detail(r.Context(), id, time.Now())
		if detailErr != nil {
			s.renderError(w, r, detailErr)
			return
		}
		errs, banner := validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "rental_detail.html", rentalDetailPage{
			Operator: operatorName(r),
			View:     view,
			Errors:   errs,
			Banner:   banner,
		})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/rentals/%d", id), http.StatusSeeOther)
}

// balanceLabel keeps the template free of settlement wording decisions.
func balanceLabel(state settlement.BalanceState) string {
	switch state {
	case settlement.BalanceDue:
		return "Balance due"
	case settlement.BalanceOverpaid:
		return "Overpaid"
	default:
		return "Paid in full"
	}
}
