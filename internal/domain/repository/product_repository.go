package repository

import (
	"context"

	"assetdoor/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, pageSize int, cursor string) ([]*entity.Product, bool, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]*entity.Product, error)
}
