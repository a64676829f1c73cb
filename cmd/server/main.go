package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finledger/networth-backend/internal/api"
	"github.com/finledger/networth-backend/internal/config"
	"github.com/finledger/networth-backend/internal/database"
	"github.com/finledger/networth-backend/internal/repository"
	"github.com/finledger/networth-backend/internal/service"
	"github.com/finledger/networth-backend/internal/yahoo"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	accountRepo := repository.NewAccountRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	accountService := service.NewAccountService(accountRepo)
	debtService := service.NewDebtService(debtRepo, transactionRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Secrets.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}
	priceService := service.NewPriceService(priceRepo, transactionRepo, yahoo.NewFinanceClient())
	balanceService := service.NewBalanceService(accountRepo, debtRepo, transactionRepo, settingsService, priceService)
	historyService := service.NewHistoryService(balanceService)

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Account:     accountService,
		Debt:        debtService,
		Transaction: transactionService,
		Balance:     balanceService,
		History:     historyService,
		Settings:    settingsService,
		Price:       priceService,
	}, cfg)

	// Schedule the nightly price refresh
	scheduler := cron.New()
	if cfg.Prices.RefreshSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Prices.RefreshSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := priceService.RefreshAll(ctx); err != nil {
				log.Printf("Scheduled price refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid price refresh schedule %q: %v", cfg.Prices.RefreshSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

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
