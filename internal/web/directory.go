package web

import (
	"net/http"

	"rental-console/internal/domain"
	"rental-console/internal/listing"
	"rental-console/internal/validate"
)

var employeeFields = func(e domain.Employee) []string {
	return []string{e.FirstName, e.LastName, e.Email, e.Role}
}

var locationFields = func(l domain.Location) []string {
	return []string{l.Name, l.Address, l.City, l.State, l.ZipCode}
}

type employeeListPage struct {
	Operator  string
	Query     string
	Page      listing.Page[domain.Employee]
	Locations []domain.Location
	Form      domain.EmployeeCreate
	Errors    validate.Errors
	Banner    string
}

type locationListPage struct {
	Operator string
	Query    string
	Page     listing.Page[domain.Location]
	Form     domain.LocationCreate
	Errors   validate.Errors
	Banner   string
}

// handleEmployeeList renders the staff directory with the inline add form.
func (s *Server) handleEmployeeList(w http.ResponseWriter, r *http.Request) {
	page, err := s.employeeListData(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "employees.html", *page)
}

func (s *Server) employeeListData(r *http.Request) (*employeeListPage, error) {
	employees, err := s.svc.Directory.Employees(r.Context())
	if err != nil {
		return nil, err
	}
	locations, err := s.svc.Directory.Locations(r.Context())
	if err != nil {
		return nil, err
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	return &employeeListPage{
		Operator:  operatorName(r),
		Query:     query,
		Page:      listing.FilterPage(employees, query, prev, formPage(r), s.pageSize, employeeFields),
		Locations: locations,
		Errors:    validate.Errors{},
	}, nil
}

func (s *Server) handleEmployeeCreate(w http.ResponseWriter, r *http.Request) {
	in := domain.EmployeeCreate{
		FirstName:  formStr(r, "first_name"),
		LastName:   formStr(r, "last_name"),
		Email:      formStr(r, "email"),
		Phone:      formStr(r, "phone"),
		Role:       formStr(r, "role"),
		HireDate:   formDateOnly(r, "hire_date"),
		Salary:     formCentsPtr(r, "salary"),
		LocationID: formInt32Ptr(r, "location_id"),
		ManagerID:  formInt32Ptr(r, "manager_id"),
	}

	if errs := validate.Employee(in); !errs.Valid() {
		page, err := s.employeeListData(r)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		page.Form = in
		page.Errors = errs
		s.render(w, http.StatusUnprocessableEntity, "employees.html", *page)
		return
	}

	if _, err := s.svc.Directory.CreateEmployee(r.Context(), in); err != nil {
		page, dataErr := s.employeeListData(r)
		if dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		page.Form = in
		page.Errors, page.Banner = validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "employees.html", *page)
		return
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

func (s *Server) handleLocationList(w http.ResponseWriter, r *http.Request) {
	page, err := s.locationListData(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "locations.html", *page)
}

func (s *Server) locationListData(r *http.Request) (*locationListPage, error) {
	locations, err := s.svc.Directory.Locations(r.Context())
	if err != nil {
		return nil, err
	}

	query := formStr(r, "q")
	prev := formStr(r, "prev")
	return &locationListPage{
		Operator: operatorName(r),
		Query:    query,
		Page:     listing.FilterPage(locations, query, prev, formPage(r), s.pageSize, locationFields),
		Errors:   validate.Errors{},
	}, nil
}

func (s *Server) handleLocationCreate(w http.ResponseWriter, r *http.Request) {
	in := domain.LocationCreate{
		Name:           formStr(r, "name"),
		Address:        formStr(r, "address"),
		City:           formStr(r, "city"),
		State:          formStr(r, "state"),
		ZipCode:        formStr(r, "zip_code"),
		Phone:          formStr(r, "phone"),
		OperatingHours: formStr(r, "operating_hours"),
		ManagerID:      formInt32Ptr(r, "manager_id"),
	}

	if errs := validate.Location(in); !errs.Valid() {
		page, err := s.locationListData(r)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		page.Form = in
		page.Errors = errs
		s.render(w, http.StatusUnprocessableEntity, "locations.html", *page)
		return
	}

	if _, err := s.svc.Directory.CreateLocation(r.Context(), in); err != nil {
		page, dataErr := s.locationListData(r)
		if dataErr != nil {
			s.renderError(w, r, dataErr)
			return
		}
		page.Form = in
		page.Errors, page.Banner = validate.MapAPIError(err)
		s.render(w, http.StatusUnprocessableEntity, "locations.html", *page)
		return
	}

	http.Redirect(w, r, "/locations", http.StatusSeeOther)
}
