package models

import (
	"time"
)

// Transaction types. Amounts are always positive; direction comes from Type.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	TransactionID    string    `firestore:"transactionId" json:"transactionId"` // Firestore doc ID
	Description      string    `firestore:"description" json:"description"`
	Amount           float64   `firestore:"amount" json:"amount"`
	Type             string    `firestore:"type" json:"type"` // "income" | "expense"
	ReceiptImageURL  *string   `firestore:"receiptImageUrl" json:"receiptImageUrl,omitempty"`
	ReceiptImagePath *string   `firestore:"receiptImagePath" json:"receiptImagePath,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt" json:"updatedAt"`
}
