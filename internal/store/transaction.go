package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// Create persists a new transaction with a store-assigned document ID and a
// server-assigned createdAt, then reads the document back so the caller sees
// the authoritative timestamp rather than the sentinel.
func (s *transactionStore) Create(ctx context.Context, uid string, t *models.Transaction) (*models.Transaction, error) {
	doc := s.collection(uid).NewDoc()
	t.TransactionID = doc.ID
	t.UpdatedAt = time.Now()

	if _, err := doc.Create(ctx, t); err != nil {
		return nil, errs.NewDatabaseError("create", "failed to create transaction", err)
	}

	snap, err := doc.Get(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to read back transaction", err)
	}
	var created models.Transaction
	if err := snap.DataTo(&created); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &created, nil
}

func (s *transactionStore) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	doc, err := s.collection(uid).Doc(transactionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var t models.Transaction
	if err := doc.DataTo(&t); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	return &t, nil
}

// ListAll fetches the user's whole transaction set. Filtering, ordering and
// pagination happen in memory; the set is assumed small enough for that.
func (s *transactionStore) ListAll(ctx context.Context, uid string) ([]models.Transaction, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	txs := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		var t models.Transaction
		if err := d.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// Update replaces the mutable fields only. createdAt and the document ID
// are never touched.
func (s *transactionStore) Update(ctx context.Context, uid string, t *models.Transaction) error {
	_, err := s.collection(uid).Doc(t.TransactionID).Update(ctx, []firestore.Update{
		{Path: "description", Value: t.Description},
		{Path: "amount", Value: t.Amount},
		{Path: "type", Value: t.Type},
		{Path: "receiptImageUrl", Value: t.ReceiptImageURL},
		{Path: "receiptImagePath", Value: t.ReceiptImagePath},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("transaction not found")
		}
		return errs.NewDatabaseError("update", "failed to update transaction", err)
	}
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, uid, transactionID string) error {
	_, err := s.collection(uid).Doc(transactionID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete transaction", err)
	}
	return nil
}
