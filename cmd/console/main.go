package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-console/internal/backend/rest"
	"rental-console/internal/config"
	"rental-console/internal/jobs"
	"rental-console/internal/logger"
	"rental-console/internal/scheduler"
	"rental-console/internal/service"
	"rental-console/internal/session"
	"rental-console/internal/web"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	hashPassword := flag.String("hash-password", "", "Print the bcrypt hash of the given password and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := session.HashPassword(*hashPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental console...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Backend configuration", "base_url", cfg.Backend.BaseURL, "timeout_seconds", cfg.Backend.TimeoutSeconds)

	backendTimeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	store := rest.NewStore(cfg.Backend.BaseURL, backendTimeout)

	svc := web.Services{
		Dashboard:    service.NewDashboardService(store.CustomerAPI, store.VehicleAPI, store.RentalAPI, cfg.UI.DashboardSample),
		Rentals:      service.NewRentalService(store.RentalAPI, store.PaymentAPI, store.IncidentAPI),
		Customers:    service.NewCustomerService(store.CustomerAPI, store.RentalAPI, store.ReservationAPI, store.MembershipAPI),
		Vehicles:     service.NewVehicleService(store.VehicleAPI, store.MaintenanceAPI),
		Reservations: service.NewReservationService(store.ReservationAPI, store.VehicleAPI),
		Directory:    service.NewDirectoryService(store.EmployeeAPI, store.LocationAPI),
		Incidents:    service.NewIncidentService(store.IncidentAPI),
		Maintenance:  service.NewMaintenanceService(store.MaintenanceAPI),
		Reports:      service.NewReportService(store.RentalAPI, store.PaymentAPI, store.CustomerAPI),
	}

	sessionTTL := time.Duration(cfg.Session.ExpiryMinutes) * time.Minute
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.AdminName, cfg.Session.AdminPasswordHash, sessionTTL)

	board := jobs.NewAlertBoard()
	jobRunner := jobs.NewJobRunner(store.RentalAPI, store.VehicleAPI, store.MaintenanceAPI, board, backendTimeout)

	sched := scheduler.NewScheduler(jobRunner, cfg.Scheduler)
	sched.Start()
	defer sched.Stop()

	// Prime the alert board so the first dashboard render has data.
	go jobRunner.RunAll()

	server := web.NewServer(svc, sessions, board, cfg.UI.PageSize, sessionTTL)
	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("Console listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Shutdown did not finish cleanly", "error", err)
	}
	logger.Info("Console stopped")
}
