package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/pkg/helpers"
)

type stubReceiptUploader struct {
	path, url string
	err       error
	calls     int
	lastType  string
}

func (s *stubReceiptUploader) Upload(_ context.Context, _ string, _ []byte, contentType string) (string, string, error) {
	s.calls++
	s.lastType = contentType
	return s.path, s.url, s.err
}

func TestReceiptUpload(t *testing.T) {
	store := &stubReceiptUploader{
		path: "transactions/user/abc.jpg",
		url:  "https://storage.googleapis.com/bucket/transactions/user/abc.jpg",
	}
	svc := NewReceiptService(store)

	got, err := svc.Upload(helpers.TestCtx(), "user", []byte{0xff, 0xd8}, "image/jpeg")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if got.Path != store.path || got.URL != store.url {
		t.Fatalf("unexpected result: %+v", got)
	}
	if store.lastType != "image/jpeg" {
		t.Fatalf("content type not forwarded: %q", store.lastType)
	}
}

func TestReceiptUploadRejectsBadInput(t *testing.T) {
	store := &stubReceiptUploader{}
	svc := NewReceiptService(store)
	ctx := helpers.TestCtx()

	if _, err := svc.Upload(ctx, "user", nil, "image/jpeg"); err == nil {
		t.Fatal("expected error for empty payload")
	}
	_, err := svc.Upload(ctx, "user", []byte{1}, "application/pdf")
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for content type, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be called on invalid input, got %d calls", store.calls)
	}
}
