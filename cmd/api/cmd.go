package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lucasmbarros/wallet-backend/internal/bootstrap"
	"github.com/lucasmbarros/wallet-backend/internal/config"
	"github.com/lucasmbarros/wallet-backend/internal/handlers"
	"github.com/lucasmbarros/wallet-backend/internal/response"
	"github.com/lucasmbarros/wallet-backend/internal/router"
	"github.com/lucasmbarros/wallet-backend/internal/services"
	"github.com/lucasmbarros/wallet-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	godotenv.Load()
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	rstore := store.NewReceiptStore(bs.Storage, cfg.StorageBucket)

	// services
	aserv := services.NewAuthService(bs.Identity, bs.Firebase, ustore)
	userv := services.NewUserService(ustore)
	tserv := services.NewTransactionService(tstore, rstore)
	rserv := services.NewReceiptService(rstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.AuthSvc = aserv
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.ReceiptSvc = rserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
