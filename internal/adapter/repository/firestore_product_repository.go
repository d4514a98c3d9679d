package repository

import (
	"context"
	"strings"
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

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	// Generate ID if not provided
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter map[string]interface{}, pageSize int, cursor string) ([]*entity.Product, bool, error) {
	query := r.client.Collection("products").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc).OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != "" {
		cursorDoc, err := r.client.Collection("products").Doc(cursor).Get(ctx)
		if err == nil {
			createdAt, _ := cursorDoc.DataAt("createdAt")
			query = query.StartAfter(createdAt, cursorDoc.Ref.ID)
		} else {
			logger.Warn("Ignoring stale product list cursor %s: %v", cursor, err)
		}
	}

	iter := query.Limit(pageSize + 1).Documents(ctx)
	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, false, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, false, errors.Internal("Failed to parse product data", err)
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

func (r *firestoreProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	docs, err := r.client.Collection("products").Where("categoryId", "==", categoryID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count products by category", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreProductRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	// Firestore has no full-text search; match titles client-side.
	query = strings.ToLower(query)

	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search products", err)
	}

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(product.Title), query) {
			matched = append(matched, &product)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}

	return matched, nil
}
