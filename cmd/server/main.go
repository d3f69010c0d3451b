package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thinktwice/finance-dashboard-backend/internal/api"
	"github.com/thinktwice/finance-dashboard-backend/internal/config"
	"github.com/thinktwice/finance-dashboard-backend/internal/database"
	"github.com/thinktwice/finance-dashboard-backend/internal/repository"
	"github.com/thinktwice/finance-dashboard-backend/internal/scheduler"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	profileRepo, err := repository.NewProfileRepository(db, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}
	alertRepo := repository.NewAlertRepository(db)

	// Create services
	transactionService := service.NewTransactionService(transactionRepo)
	profileService := service.NewProfileService(profileRepo, cfg.Profile)
	dashboardService := service.NewDashboardService(transactionService, profileService)
	alertService := service.NewAlertService(alertRepo, profileService, service.LogNotifier{})

	// Scheduled refresh + alert sweep
	sched, err := scheduler.New(cfg.Alerting.Schedule, dashboardService, alertService)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(db, dashboardService, transactionService, profileService, alertService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
