package usecase

import (
	"context"
	"io"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/infrastructure/storage"
)

// StoreCatalogFetcher retrieves the current in-app product catalog from an
// external app store. Implementations are read-only and perform no retries;
// failures are either auth errors or upstream errors. totalSeen counts every
// record the store returned, dropped the records that could not be
// normalized (missing SKU, malformed price) and therefore never reach the
// reconciler.
type StoreCatalogFetcher interface {
	Platform() string
	ListProducts(ctx context.Context) (items []*entity.IapProduct, totalSeen, dropped int, err error)
}

// ObjectStorage stores bytes under a generated key and hands back a URL plus
// size/type metadata.
type ObjectStorage interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (*storage.UploadResult, error)
	DeleteFile(ctx context.Context, fileURL string) error
}
