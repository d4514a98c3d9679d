package usecase

import (
	"context"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
)

// IapProductUseCase exposes read access to the synced store catalog. All
// writes to this collection go through the sync and link use cases; the admin
// API never edits store-origin fields directly.
type IapProductUseCase struct {
	iapRepo repository.IapProductRepository
}

func NewIapProductUseCase(iapRepo repository.IapProductRepository) *IapProductUseCase {
	return &IapProductUseCase{
		iapRepo: iapRepo,
	}
}

func (uc *IapProductUseCase) GetIapProductBySKU(ctx context.Context, sku string) (*entity.IapProduct, error) {
	return uc.iapRepo.GetBySKU(ctx, sku)
}

func (uc *IapProductUseCase) ListIapProducts(ctx context.Context, platform string, pageSize int, cursor string) ([]*entity.IapProduct, bool, error) {
	return uc.iapRepo.List(ctx, platform, pageSize, cursor)
}

func (uc *IapProductUseCase) ListLinkedIapProducts(ctx context.Context, platform string) ([]*entity.IapProduct, error) {
	linked, err := uc.iapRepo.ListLinked(ctx)
	if err != nil {
		return nil, err
	}

	if platform == "" {
		return linked, nil
	}

	filtered := make([]*entity.IapProduct, 0, len(linked))
	for _, item := range linked {
		if item.Platform == platform {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}
