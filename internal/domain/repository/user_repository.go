package repository

import (
	"context"

	"assetdoor/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context, pageSize int, cursor string) ([]*entity.User, bool, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error

	// SaveAll merge-writes user documents in batches, used by the
	// purchase-history backfill.
	SaveAll(ctx context.Context, users []*entity.User) error
}
