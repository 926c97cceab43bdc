package bootstrap

import (
	"context"

	"cloud.google.com/go/storage"
)

func InitStorage(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}
