package services

import (
	"context"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/pkg/logger"
)

type receiptRSStore interface {
	Upload(ctx context.Context, uid string, data []byte, contentType string) (path, url string, err error)
}

var receiptContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type receiptService struct {
	store receiptRSStore
}

func NewReceiptService(store receiptRSStore) *receiptService {
	return &receiptService{store: store}
}

// Upload stores a receipt image and returns its path and resolved URL.
// The record write that references the URL happens afterwards, client-side,
// so a failure here aborts the whole attach flow.
func (s *receiptService) Upload(ctx context.Context, uid string, data []byte, contentType string) (dto.ReceiptUpload, error) {
	if len(data) == 0 {
		return dto.ReceiptUpload{}, errs.NewValidationError("receipt image is empty")
	}
	if !receiptContentTypes[contentType] {
		return dto.ReceiptUpload{}, errs.NewValidationError("receipt must be a jpeg, png or webp image")
	}

	path, url, err := s.store.Upload(ctx, uid, data, contentType)
	if err != nil {
		return dto.ReceiptUpload{}, err
	}

	logger.FromContext(ctx).Info("receipt uploaded", "path", path, "bytes", len(data))
	return dto.ReceiptUpload{Path: path, URL: url}, nil
}
