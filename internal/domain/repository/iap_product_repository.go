package repository

import (
	"context"

	"assetdoor/internal/domain/entity"
)

// IapSyncWrite is one staged upsert. Exactly one of Create and Patch is set:
// Create for SKUs not yet in the store, Patch for existing records. A Patch
// carries store-origin fields only and can never touch link state.
type IapSyncWrite struct {
	SKU    string
	Create *entity.IapProduct
	Patch  *entity.IapSyncPatch
}

type IapProductRepository interface {
	GetBySKU(ctx context.Context, sku string) (*entity.IapProduct, error)
	List(ctx context.Context, platform string, pageSize int, cursor string) ([]*entity.IapProduct, bool, error)
	ListLinked(ctx context.Context) ([]*entity.IapProduct, error)

	// ApplySyncWrites applies staged writes in chunks bounded by the store's
	// batch limit, each chunk independently atomic. Chunk failures are
	// counted and accumulated rather than aborting the run.
	ApplySyncWrites(ctx context.Context, writes []IapSyncWrite) (failed int, err error)

	SetLink(ctx context.Context, sku string, patch entity.IapLinkPatch) error

	SetSyncStatus(ctx context.Context, status *entity.SyncStatus) error
	GetSyncStatus(ctx context.Context) (*entity.SyncStatus, error)
}
