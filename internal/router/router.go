package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lucasmbarros/wallet-backend/internal/handlers"
	"github.com/lucasmbarros/wallet-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	gate := middleware.NewMiddleware(deps.Firebase).FirebaseAuth

	ah := handlers.NewAuthHandlers(deps)
	ush := handlers.NewUserHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	rh := handlers.NewReceiptHandlers(deps)

	r.Mount("/auth", ah.AuthRoutes(gate))

	// session-gated
	r.Group(func(r chi.Router) {
		r.Use(gate)
		r.Mount("/users", ush.UserRoutes())
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/receipts", rh.ReceiptRoutes())
	})

	return r
}
