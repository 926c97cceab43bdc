package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/models"
	"github.com/lucasmbarros/wallet-backend/pkg/helpers"
)

func TestTransactionStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	store := NewTransactionStore(client)
	uid := "user"

	created, err := store.Create(ctx, uid, &models.Transaction{
		Description: "Coffee",
		Amount:      3.5,
		Type:        models.TypeExpense,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.TransactionID == "" {
		t.Fatal("expected store-assigned document ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned createdAt on read-back")
	}

	got, err := store.Get(ctx, uid, created.TransactionID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Description != "Coffee" || got.Amount != 3.5 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	// Update replaces mutable fields but never createdAt.
	got.Description = "Espresso"
	got.Amount = 4
	got.Type = models.TypeExpense
	got.ReceiptImageURL = helpers.Ptr("https://example.com/r.jpg")
	if err := store.Update(ctx, uid, got); err != nil {
		t.Fatalf("update error: %v", err)
	}

	updated, err := store.Get(ctx, uid, created.TransactionID)
	if err != nil {
		t.Fatalf("get after update error: %v", err)
	}
	if updated.Description != "Espresso" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt drifted: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}

	txs, err := store.ListAll(ctx, uid)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}

	if err := store.Delete(ctx, uid, created.TransactionID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	_, err = store.Get(ctx, uid, created.TransactionID)
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
