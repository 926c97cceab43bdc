package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/lucasmbarros/wallet-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	AuthSvc         authService
	UserSvc         userService
	TransactionSvc  transactionService
	ReceiptSvc      receiptService
}
