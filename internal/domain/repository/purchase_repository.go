package repository

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
)

type PurchaseFilter struct {
	UserID    string
	ProductID string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type PurchaseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context, filter PurchaseFilter, pageSize int, cursor string) ([]*entity.Purchase, bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error)
	ListAll(ctx context.Context) ([]*entity.Purchase, error)
	ListCompleted(ctx context.Context, startDate, endDate *time.Time) ([]*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
}
