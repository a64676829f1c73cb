// Package api wires the HTTP surface: router, handlers, and middleware.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/finledger/networth-backend/internal/api/handlers"
	custommiddleware "github.com/finledger/networth-backend/internal/api/middleware"
	"github.com/finledger/networth-backend/internal/config"
	"github.com/finledger/networth-backend/internal/service"
)

// Services bundles the service dependencies the router hands to handlers.
type Services struct {
	System      *service.SystemService
	Account     *service.AccountService
	Debt        *service.DebtService
	Transaction *service.TransactionService
	Balance     *service.BalanceService
	History     *service.HistoryService
	Settings    *service.SettingsService
	Price       *service.PriceService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(svcs.Account)
			r.Get("/", accountHandler.Accounts)
			r.Post("/", accountHandler.CreateAccount)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", accountHandler.GetAccount)
				r.Put("/", accountHandler.UpdateAccount)
				r.Delete("/", accountHandler.DeleteAccount)
			})
		})

		r.Route("/debts", func(r chi.Router) {
			debtHandler := handlers.NewDebtHandler(svcs.Debt)
			r.Get("/", debtHandler.Debts)
			r.Post("/", debtHandler.CreateDebt)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", debtHandler.GetDebt)
				r.Put("/", debtHandler.UpdateDebt)
				r.Delete("/", debtHandler.DeleteDebt)
				r.Get("/projection", debtHandler.Projection)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svcs.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		balanceHandler := handlers.NewBalanceHandler(svcs.Balance)
		r.Get("/balances", balanceHandler.Balances)

		historyHandler := handlers.NewHistoryHandler(svcs.History)
		r.Get("/history", historyHandler.History)

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings)
			r.Get("/", settingsHandler.Settings)
			r.Put("/", settingsHandler.UpdateSettings)
			r.Put("/price-api-key", settingsHandler.SetPriceAPIKey)
		})

		priceHandler := handlers.NewPriceHandler(svcs.Price)
		r.Post("/prices/refresh", priceHandler.Refresh)
	})

	return r
}
