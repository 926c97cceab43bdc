package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/models"
	"github.com/lucasmbarros/wallet-backend/pkg/logger"
)

type transactionTSStore interface {
	Create(ctx context.Context, uid string, t *models.Transaction) (*models.Transaction, error)
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	ListAll(ctx context.Context, uid string) ([]models.Transaction, error)
	Update(ctx context.Context, uid string, t *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type receiptTSStore interface {
	Delete(ctx context.Context, path string) error
}

type transactionService struct {
	store    transactionTSStore
	receipts receiptTSStore
}

func NewTransactionService(store transactionTSStore, receipts receiptTSStore) *transactionService {
	return &transactionService{store: store, receipts: receipts}
}

func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransactionInput(req.Description, req.Amount, req.Type); err != nil {
		return nil, err
	}

	t := &models.Transaction{
		Description:      strings.TrimSpace(req.Description),
		Amount:           req.Amount,
		Type:             req.Type,
		ReceiptImageURL:  req.ReceiptImageURL,
		ReceiptImagePath: req.ReceiptImagePath,
	}

	created, err := s.store.Create(ctx, uid, t)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("transaction created",
		"transaction_id", created.TransactionID,
		"type", created.Type)
	return created, nil
}

func (s *transactionService) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	return s.store.Get(ctx, uid, transactionID)
}

// List fetches the user's whole set, then filters, sorts and windows it.
func (s *transactionService) List(ctx context.Context, uid string, filter dto.TransactionFilter) (dto.TransactionPage, error) {
	txs, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return dto.TransactionPage{}, err
	}

	filtered := FilterTransactions(txs, filter)
	return PaginateTransactions(filtered, filter.Page, filter.PageSize), nil
}

func (s *transactionService) Summary(ctx context.Context, uid string) (dto.Summary, error) {
	txs, err := s.store.ListAll(ctx, uid)
	if err != nil {
		return dto.Summary{}, err
	}
	return Summarize(txs), nil
}

// Update replaces the mutable fields of an existing transaction. The
// document ID and createdAt survive unchanged.
func (s *transactionService) Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransactionInput(req.Description, req.Amount, req.Type); err != nil {
		return nil, err
	}

	t, err := s.store.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}

	t.Description = strings.TrimSpace(req.Description)
	t.Amount = req.Amount
	t.Type = req.Type
	t.ReceiptImageURL = req.ReceiptImageURL
	t.ReceiptImagePath = req.ReceiptImagePath

	if err := s.store.Update(ctx, uid, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the record and its receipt blob, if any. The two deletes
// are independent, so they run concurrently.
func (s *transactionService) Delete(ctx context.Context, uid, transactionID string) error {
	t, err := s.store.Get(ctx, uid, transactionID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.Delete(gctx, uid, transactionID)
	})
	if t.ReceiptImagePath != nil {
		path := *t.ReceiptImagePath
		g.Go(func() error {
			return s.receipts.Delete(gctx, path)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("transaction deleted", "transaction_id", transactionID)
	return nil
}

func validateTransactionInput(description string, amount float64, txType string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValidationError("description is required")
	}
	if amount <= 0 {
		return errs.NewValidationError("amount must be a positive number")
	}
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return errs.NewValidationError("type must be income or expense")
	}
	return nil
}
