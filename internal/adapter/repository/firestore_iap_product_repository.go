package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

// Firestore caps a write batch at 500 operations.
const maxBatchSize = 500

// syncStatusDocID is the fixed sentinel key inside iapProducts holding
// last-sync state, separate from real product records.
const syncStatusDocID = "_sync_status"

type firestoreIapProductRepository struct {
	client *firestore.Client
}

func NewFirestoreIapProductRepository(client *firestore.Client) repository.IapProductRepository {
	return &firestoreIapProductRepository{
		client: client,
	}
}

func (r *firestoreIapProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.IapProduct, error) {
	doc, err := r.client.Collection("iapProducts").Doc(sku).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("IAP product", err)
		}
		return nil, errors.Internal("Failed to get IAP product", err)
	}

	var product entity.IapProduct
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse IAP product data", err)
	}

	return &product, nil
}

func (r *firestoreIapProductRepository) List(ctx context.Context, platform string, pageSize int, cursor string) ([]*entity.IapProduct, bool, error) {
	query := r.client.Collection("iapProducts").Query
	if platform != "" {
		query = query.Where("platform", "==", platform)
	}

	// The sentinel document carries no lastSynced field, so ordering on it
	// keeps the sentinel out of listings.
	query = query.OrderBy("lastSynced", firestore.Desc).OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != "" {
		cursorDoc, err := r.client.Collection("iapProducts").Doc(cursor).Get(ctx)
		if err == nil {
			lastSynced, _ := cursorDoc.DataAt("lastSynced")
			query = query.StartAfter(lastSynced, cursorDoc.Ref.ID)
		} else {
			logger.Warn("Ignoring stale IAP list cursor %s: %v", cursor, err)
		}
	}

	// Fetch one extra to detect whether another page exists.
	iter := query.Limit(pageSize + 1).Documents(ctx)
	var products []*entity.IapProduct
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, false, errors.Internal("Failed to iterate IAP products", err)
		}

		var product entity.IapProduct
		if err := doc.DataTo(&product); err != nil {
			return nil, false, errors.Internal("Failed to parse IAP product data", err)
		}
		products = append(products, &product)
	}

	hasMore := false
	if len(products) > pageSize {
		hasMore = true
		products = products[:pageSize]
	}

	return products, hasMore, nil
}

func (r *firestoreIapProductRepository) ListLinked(ctx context.Context) ([]*entity.IapProduct, error) {
	iter := r.client.Collection("iapProducts").Where("isLinked", "==", true).Documents(ctx)

	var products []*entity.IapProduct
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate linked IAP products", err)
		}

		var product entity.IapProduct
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse IAP product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreIapProductRepository) ApplySyncWrites(ctx context.Context, writes []repository.IapSyncWrite) (int, error) {
	failed := 0
	var lastErr error

	for start := 0; start < len(writes); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(writes) {
			end = len(writes)
		}
		chunk := writes[start:end]

		if err := r.commitSyncChunk(ctx, chunk); err != nil {
			logger.Error("IAP sync batch of %d writes rejected: %v", len(chunk), err)
			failed += len(chunk)
			lastErr = errors.BatchWrite("IAP sync batch rejected", err)
		}
	}

	return failed, lastErr
}

func (r *firestoreIapProductRepository) commitSyncChunk(ctx context.Context, chunk []repository.IapSyncWrite) error {
	batch := r.client.Batch()
	now := time.Now()

	for _, write := range chunk {
		ref := r.client.Collection("iapProducts").Doc(write.SKU)

		if write.Create != nil {
			created := *write.Create
			created.CreatedAt = now
			created.UpdatedAt = now
			batch.Set(ref, &created)
			continue
		}

		// Updates touch store-origin fields only; linkedProductId and
		// isLinked are deliberately absent.
		batch.Update(ref, []firestore.Update{
			{Path: "name", Value: write.Patch.Name},
			{Path: "description", Value: write.Patch.Description},
			{Path: "prices", Value: write.Patch.Prices},
			{Path: "status", Value: write.Patch.Status},
			{Path: "lastSynced", Value: write.Patch.LastSynced},
			{Path: "syncError", Value: nil},
			{Path: "updatedAt", Value: now},
		})
	}

	_, err := batch.Commit(ctx)
	return err
}

func (r *firestoreIapProductRepository) SetLink(ctx context.Context, sku string, patch entity.IapLinkPatch) error {
	var linkedValue interface{}
	if patch.LinkedProductID != "" {
		linkedValue = patch.LinkedProductID
	}

	_, err := r.client.Collection("iapProducts").Doc(sku).Update(ctx, []firestore.Update{
		{Path: "linkedProductId", Value: linkedValue},
		{Path: "isLinked", Value: patch.IsLinked},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("IAP product", err)
		}
		return errors.Internal("Failed to update IAP product link", err)
	}

	return nil
}

func (r *firestoreIapProductRepository) SetSyncStatus(ctx context.Context, syncStatus *entity.SyncStatus) error {
	_, err := r.client.Collection("iapProducts").Doc(syncStatusDocID).Set(ctx, syncStatus)
	if err != nil {
		return errors.Internal("Failed to write sync status", err)
	}

	return nil
}

func (r *firestoreIapProductRepository) GetSyncStatus(ctx context.Context) (*entity.SyncStatus, error) {
	doc, err := r.client.Collection("iapProducts").Doc(syncStatusDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Sync status", err)
		}
		return nil, errors.Internal("Failed to get sync status", err)
	}

	var syncStatus entity.SyncStatus
	if err := doc.DataTo(&syncStatus); err != nil {
		return nil, errors.Internal("Failed to parse sync status", err)
	}

	return &syncStatus, nil
}
