package usecase

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

// IapSyncUseCase reconciles the iapProducts collection against the external
// store catalog. Creates populate store-origin fields with link fields zero;
// updates go through IapSyncPatch and can never touch link fields, so a
// scheduled sync cannot unlink a product that an admin linked in between.
type IapSyncUseCase struct {
	fetcher      StoreCatalogFetcher
	iapRepo      repository.IapProductRepository
	syncInterval time.Duration
}

func NewIapSyncUseCase(fetcher StoreCatalogFetcher, iapRepo repository.IapProductRepository, syncInterval time.Duration) *IapSyncUseCase {
	return &IapSyncUseCase{
		fetcher:      fetcher,
		iapRepo:      iapRepo,
		syncInterval: syncInterval,
	}
}

type SyncResult struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// SyncStoreProducts runs one full reconciliation pass. The whole operation
// is idempotent: with unchanged upstream data only updatedAt/lastSynced
// move. The sync-status sentinel is written even when the fetch fails, so
// the admin UI can always show last-sync state.
func (uc *IapSyncUseCase) SyncStoreProducts(ctx context.Context) (*SyncResult, error) {
	logger.Info("Starting %s IAP product sync", uc.fetcher.Platform())

	items, totalSeen, dropped, err := uc.fetcher.ListProducts(ctx)
	if err != nil {
		uc.writeSyncStatus(ctx, &entity.SyncStatus{
			LastSync: time.Now(),
			Success:  false,
			Platform: uc.fetcher.Platform(),
			Error:    err.Error(),
		})
		return nil, err
	}

	now := time.Now()
	var writes []repository.IapSyncWrite
	created, updated := 0, 0
	failed := dropped

	for _, item := range items {
		item.LastSynced = now

		_, err := uc.iapRepo.GetBySKU(ctx, item.SKU)
		switch {
		case err == nil:
			writes = append(writes, repository.IapSyncWrite{
				SKU: item.SKU,
				Patch: &entity.IapSyncPatch{
					Name:        item.Name,
					Description: item.Description,
					Prices:      item.Prices,
					Status:      item.Status,
					LastSynced:  now,
				},
			})
			updated++
		case errors.Is(err, "NOT_FOUND"):
			writes = append(writes, repository.IapSyncWrite{
				SKU:    item.SKU,
				Create: item,
			})
			created++
		default:
			logger.Error("Failed to look up IAP product %s, skipping: %v", item.SKU, err)
			failed++
		}
	}

	batchFailed, batchErr := uc.iapRepo.ApplySyncWrites(ctx, writes)
	failed += batchFailed

	syncStatus := &entity.SyncStatus{
		LastSync: now,
		Success:  batchErr == nil,
		Platform: uc.fetcher.Platform(),
		Total:    totalSeen,
		Created:  created,
		Updated:  updated,
		Failed:   failed,
	}
	if batchErr != nil {
		syncStatus.Error = batchErr.Error()
	}
	uc.writeSyncStatus(ctx, syncStatus)

	logger.Info("IAP sync completed: %d seen, %d created, %d updated, %d failed", totalSeen, created, updated, failed)

	return &SyncResult{
		Total:   totalSeen,
		Created: created,
		Updated: updated,
		Failed:  failed,
	}, nil
}

func (uc *IapSyncUseCase) GetSyncStatus(ctx context.Context) (*entity.SyncStatus, error) {
	return uc.iapRepo.GetSyncStatus(ctx)
}

func (uc *IapSyncUseCase) writeSyncStatus(ctx context.Context, syncStatus *entity.SyncStatus) {
	if err := uc.iapRepo.SetSyncStatus(ctx, syncStatus); err != nil {
		logger.Error("Failed to record sync status: %v", err)
	}
}

// StartScheduledSync runs the reconciliation on a fixed interval until the
// context is cancelled. A failed run is simply retried on the next tick.
func (uc *IapSyncUseCase) StartScheduledSync(ctx context.Context) {
	ticker := time.NewTicker(uc.syncInterval)

	go func() {
		for {
			select {
			case <-ticker.C:
				if _, err := uc.SyncStoreProducts(ctx); err != nil {
					logger.Error("Scheduled IAP sync error: %v", err)
				}
			case <-ctx.Done():
				ticker.Stop()
				return
			}
		}
	}()

	logger.Info("IAP sync job started (every %s)", uc.syncInterval)
}
