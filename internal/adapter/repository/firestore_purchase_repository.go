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

type firestorePurchaseRepository struct {
	client *firestore.Client
}

func NewFirestorePurchaseRepository(client *firestore.Client) repository.PurchaseRepository {
	return &firestorePurchaseRepository{
		client: client,
	}
}

func (r *firestorePurchaseRepository) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	doc, err := r.client.Collection("purchases").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Purchase", err)
		}
		return nil, errors.Internal("Failed to get purchase", err)
	}

	var purchase entity.Purchase
	if err := doc.DataTo(&purchase); err != nil {
		return nil, errors.Internal("Failed to parse purchase data", err)
	}

	return &purchase, nil
}

func (r *firestorePurchaseRepository) List(ctx context.Context, filter repository.PurchaseFilter, pageSize int, cursor string) ([]*entity.Purchase, bool, error) {
	query := r.client.Collection("purchases").Query

	if filter.UserID != "" {
		query = query.Where("userId", "==", filter.UserID)
	}
	if filter.ProductID != "" {
		query = query.Where("productId", "==", filter.ProductID)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.
			Where("purchaseDate", ">=", *filter.StartDate).
			Where("purchaseDate", "<=", *filter.EndDate)
	}

	query = query.OrderBy("purchaseDate", firestore.Desc).OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != "" {
		cursorDoc, err := r.client.Collection("purchases").Doc(cursor).Get(ctx)
		if err == nil {
			purchaseDate, _ := cursorDoc.DataAt("purchaseDate")
			query = query.StartAfter(purchaseDate, cursorDoc.Ref.ID)
		} else {
			logger.Warn("Ignoring stale purchase list cursor %s: %v", cursor, err)
		}
	}

	iter := query.Limit(pageSize + 1).Documents(ctx)
	var purchases []*entity.Purchase
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, false, errors.Internal("Failed to iterate purchases", err)
		}

		var purchase entity.Purchase
		if err := doc.DataTo(&purchase); err != nil {
			return nil, false, errors.Internal("Failed to parse purchase data", err)
		}
		purchases = append(purchases, &purchase)
	}

	hasMore := false
	if len(purchases) > pageSize {
		hasMore = true
		purchases = purchases[:pageSize]
	}

	// Status is filtered after the query so it never needs a composite
	// index with the date range.
	if filter.Status != "" {
		filtered := purchases[:0]
		for _, purchase := range purchases {
			if purchase.Status == filter.Status {
				filtered = append(filtered, purchase)
			}
		}
		purchases = filtered
	}

	return purchases, hasMore, nil
}

func (r *firestorePurchaseRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	iter := r.client.Collection("purchases").
		Where("userId", "==", userID).
		OrderBy("purchaseDate", firestore.Desc).
		Documents(ctx)

	var purchases []*entity.Purchase
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate user purchases", err)
		}

		var purchase entity.Purchase
		if err := doc.DataTo(&purchase); err != nil {
			return nil, errors.Internal("Failed to parse purchase data", err)
		}
		purchases = append(purchases, &purchase)
	}

	return purchases, nil
}

func (r *firestorePurchaseRepository) ListAll(ctx context.Context) ([]*entity.Purchase, error) {
	docs, err := r.client.Collection("purchases").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list purchases", err)
	}

	purchases := make([]*entity.Purchase, 0, len(docs))
	for _, doc := range docs {
		var purchase entity.Purchase
		if err := doc.DataTo(&purchase); err != nil {
			return nil, errors.Internal("Failed to parse purchase data", err)
		}
		purchases = append(purchases, &purchase)
	}

	return purchases, nil
}

func (r *firestorePurchaseRepository) ListCompleted(ctx context.Context, startDate, endDate *time.Time) ([]*entity.Purchase, error) {
	query := r.client.Collection("purchases").Where("status", "==", entity.PurchaseStatusCompleted)

	if startDate != nil && endDate != nil {
		query = query.
			Where("purchaseDate", ">=", *startDate).
			Where("purchaseDate", "<=", *endDate)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list completed purchases", err)
	}

	purchases := make([]*entity.Purchase, 0, len(docs))
	for _, doc := range docs {
		var purchase entity.Purchase
		if err := doc.DataTo(&purchase); err != nil {
			return nil, errors.Internal("Failed to parse purchase data", err)
		}
		purchases = append(purchases, &purchase)
	}

	return purchases, nil
}

func (r *firestorePurchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	purchase.UpdatedAt = time.Now()

	_, err := r.client.Collection("purchases").Doc(purchase.ID).Set(ctx, purchase)
	if err != nil {
		return errors.Internal("Failed to update purchase", err)
	}

	return nil
}
