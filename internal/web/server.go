// Package web serves the operator console: a server-rendered HTML frontend
// over the page services, with a signed-cookie session guarding every route
// except login.
package web

import (
	"html/template"
	"time"

	"github.com/gorilla/mux"

	"rental-console/internal/jobs"
	"rental-console/internal/service"
	"rental-console/internal/session"
)

// Services groups the page services the handlers depend on.
type Services struct {
	Dashboard    service.DashboardService
	Rentals      service.RentalService
	Customers    service.CustomerService
	Vehicles     service.VehicleService
	Reservations service.ReservationService
	Directory    service.DirectoryService
	Incidents    service.IncidentService
	Maintenance  service.MaintenanceService
	Reports      service.ReportService
}

// Server holds everything the handlers need.
type Server struct {
	svc        Services
	sessions   session.Manager
	alerts     *jobs.AlertBoard
	pageSize   int
	sessionTTL time.Duration
	templates  *template.Template
}

func NewServer(svc Services, sessions session.Manager, alerts *jobs.AlertBoard, pageSize int, sessionTTL time.Duration) *Server {
	return &Server{
		svc:        svc,
		sessions:   sessions,
		alerts:     alerts,
		pageSize:   pageSize,
		sessionTTL: sessionTTL,
		templates:  parseTemplates(),
	}
}

// Router builds the route table. Everything except the login page sits
// behind the session check.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/login", s.handleLoginPage).Methods("GET")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/logout", s.handleLogout).Methods("POST")

	p := r.NewRoute().Subrouter()
	p.Use(s.requireSession)

	p.HandleFunc("/", s.handleDashboard).Methods("GET")

	p.HandleFunc("/customers", s.handleCustomerList).Methods("GET")
	p.HandleFunc("/customers/new", s.handleCustomerForm).Methods("GET")
	p.HandleFunc("/customers", s.handleCustomerCreate).Methods("POST")
	p.HandleFunc("/customers/{id:[0-9]+}", s.handleCustomerDetail).Methods("GET")
	p.HandleFunc("/customers/{id:[0-9]+}/edit", s.handleCustomerForm).Methods("GET")
	p.HandleFunc("/customers/{id:[0-9]+}", s.handleCustomerUpdate).Methods("POST")
	p.HandleFunc("/customers/{id:[0-9]+}/delete", s.handleCustomerDelete).Methods("POST")
	p.HandleFunc("/customers/{id:[0-9]+}/points", s.handleCustomerPoints).Methods("POST")

	p.HandleFunc("/vehicles", s.handleVehicleList).Methods("GET")
	p.HandleFunc("/vehicles/new", s.handleVehicleForm).Methods("GET")
	p.HandleFunc("/vehicles", s.handleVehicleCreate).Methods("POST")
	p.HandleFunc("/vehicles/{id:[0-9]+}", s.handleVehicleDetail).Methods("GET")
	p.HandleFunc("/vehicles/{id:[0-9]+}/edit", s.handleVehicleForm).Methods("GET")
	p.HandleFunc("/vehicles/{id:[0-9]+}", s.handleVehicleUpdate).Methods("POST")
	p.HandleFunc("/vehicles/{id:[0-9]+}/availability", s.handleVehicleAvailability).Methods("POST")
	p.HandleFunc("/vehicles/{id:[0-9]+}/maintenance", s.handleMaintenanceCreate).Methods("POST")

	p.HandleFunc("/rentals", s.handleRentalList).Methods("GET")
	p.HandleFunc("/rentals/new", s.handleRentalForm).Methods("GET")
	p.HandleFunc("/rentals", s.handleRentalCreate).Methods("POST")
	p.HandleFunc("/rentals/{id:[0-9]+}", s.handleRentalDetail).Methods("GET")
	p.HandleFunc("/rentals/{id:[0-9]+}/return", s.handleRentalReturnForm).Methods("GET")
	p.HandleFunc("/rentals/{id:[0-9]+}/return", s.handleRentalReturn).Methods("POST")
	p.HandleFunc("/rentals/{id:[0-9]+}/payments", s.handlePaymentCreate).Methods("POST")

	p.HandleFunc("/reservations", s.handleReservationList).Methods("GET")
	p.HandleFunc("/reservations/new", s.handleReservationForm).Methods("GET")
	p.HandleFunc("/reservations", s.handleReservationCreate).Methods("POST")
	p.HandleFunc("/reservations/{id:[0-9]+}/edit", s.handleReservationForm).Methods("GET")
	p.HandleFunc("/reservations/{id:[0-9]+}", s.handleReservationUpdate).Methods("POST")
	p.HandleFunc("/reservations/{id:[0-9]+}/convert", s.handleReservationConvert).Methods("POST")

	p.HandleFunc("/employees", s.handleEmployeeList).Methods("GET")
	p.HandleFunc("/employees", s.handleEmployeeCreate).Methods("POST")
	p.HandleFunc("/locations", s.handleLocationList).Methods("GET")
	p.HandleFunc("/locations", s.handleLocationCreate).Methods("POST")

	p.HandleFunc("/incidents", s.handleIncidentList).Methods("GET")
	p.HandleFunc("/incidents", s.handleIncidentCreate).Methods("POST")

	p.HandleFunc("/maintenance", s.handleMaintenanceList).Methods("GET")
	p.HandleFunc("/maintenance/new", s.handleMaintenanceForm).Methods("GET")
	p.HandleFunc("/maintenance", s.handleMaintenanceSchedule).Methods("POST")

	p.HandleFunc("/reports", s.handleReports).Methods("GET")

	return r
}
