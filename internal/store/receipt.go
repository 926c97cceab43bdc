package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/lucasmbarros/wallet-backend/internal/errs"
)

type receiptStore struct {
	client *storage.Client
	bucket string
}

func NewReceiptStore(client *storage.Client, bucket string) *receiptStore {
	return &receiptStore{client: client, bucket: bucket}
}

// Upload writes the receipt image to transactions/{uid}/{id}.jpg, makes it
// publicly readable, and returns the object path plus the resolved URL.
// The caller persists the URL on the transaction record only after this
// returns, so a failed upload aborts the record write.
func (s *receiptStore) Upload(ctx context.Context, uid string, data []byte, contentType string) (path, url string, err error) {
	path = fmt.Sprintf("transactions/%s/%s.jpg", uid, uuid.New().String())
	obj := s.client.Bucket(s.bucket).Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", "", errs.NewStorageError("upload", "failed to upload receipt", err)
	}
	if err := w.Close(); err != nil {
		return "", "", errs.NewStorageError("upload", "failed to upload receipt", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", "", errs.NewStorageError("upload", "failed to publish receipt", err)
	}

	url = fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path)
	return path, url, nil
}

// Delete removes a receipt object. An already-absent object is not an error;
// the record may reference a receipt that was never uploaded or was cleaned
// up out of band.
func (s *receiptStore) Delete(ctx context.Context, path string) error {
	err := s.client.Bucket(s.bucket).Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return errs.NewStorageError("delete", "failed to delete receipt", err)
	}
	return nil
}
