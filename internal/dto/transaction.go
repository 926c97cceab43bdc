package dto

import (
	"time"

	"github.com/lucasmbarros/wallet-backend/internal/models"
)

// Type filter values accepted by the transaction list endpoint.
const (
	TypeFilterAll     = "all"
	TypeFilterIncome  = "income"
	TypeFilterExpense = "expense"
)

// TransactionFilter is the client-side filter state applied to a user's
// full transaction set. The zero value matches everything.
type TransactionFilter struct {
	Search   string
	Type     string // "all" (or empty), "income", "expense"
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}

type CreateTransactionRequest struct {
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	Type             string  `json:"type"`
	ReceiptImageURL  *string `json:"receiptImageUrl,omitempty"`
	ReceiptImagePath *string `json:"receiptImagePath,omitempty"`
}

// UpdateTransactionRequest replaces the mutable fields of a transaction.
// TransactionID and CreatedAt are immutable after creation.
type UpdateTransactionRequest struct {
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	Type             string  `json:"type"`
	ReceiptImageURL  *string `json:"receiptImageUrl,omitempty"`
	ReceiptImagePath *string `json:"receiptImagePath,omitempty"`
}

type TransactionPage struct {
	Transactions []models.Transaction `json:"transactions"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"pageSize"`
	TotalCount   int                  `json:"totalCount"`
	HasPrev      bool                 `json:"hasPrev"`
	HasNext      bool                 `json:"hasNext"`
}

// Financial status labels derived from the balance sign.
const (
	StatusHealthy   = "healthy"
	StatusNeutral   = "neutral"
	StatusAttention = "attention"
)

type Summary struct {
	Balance              float64 `json:"balance"`
	TotalIncome          float64 `json:"totalIncome"`
	TotalExpense         float64 `json:"totalExpense"`
	SpendingRatioPercent int     `json:"spendingRatioPercent"`
	Status               string  `json:"status"`
}
