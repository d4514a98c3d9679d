package usecase

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
)

type PurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewPurchaseUseCase(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

func (uc *PurchaseUseCase) GetPurchaseByID(ctx context.Context, id string) (*entity.Purchase, error) {
	return uc.purchaseRepo.GetByID(ctx, id)
}

func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, filter repository.PurchaseFilter, pageSize int, cursor string) ([]*entity.Purchase, bool, error) {
	return uc.purchaseRepo.List(ctx, filter, pageSize, cursor)
}

type PurchaseUpdateInput struct {
	Status       string
	RefundReason string
	AdminNotes   string
}

func (uc *PurchaseUseCase) UpdatePurchase(ctx context.Context, id string, input PurchaseUpdateInput) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		switch input.Status {
		case entity.PurchaseStatusCompleted, entity.PurchaseStatusPending, entity.PurchaseStatusRefunded:
		default:
			return nil, errors.BadRequest("Invalid purchase status", nil)
		}

		if input.Status == entity.PurchaseStatusRefunded && purchase.Status != entity.PurchaseStatusRefunded {
			now := time.Now()
			purchase.RefundDate = &now
			purchase.RefundReason = input.RefundReason
		}
		purchase.Status = input.Status
	}
	if input.AdminNotes != "" {
		purchase.AdminNotes = input.AdminNotes
	}

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

func (uc *PurchaseUseCase) GetPurchaseStats(ctx context.Context, startDate, endDate *time.Time) (*entity.PurchaseStats, error) {
	purchases, err := uc.purchaseRepo.ListCompleted(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats := &entity.PurchaseStats{
		TotalPurchases: len(purchases),
	}
	for _, purchase := range purchases {
		stats.TotalRevenue += purchase.ProductPrice
	}
	if stats.TotalPurchases > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalPurchases)
	}

	return stats, nil
}

func (uc *PurchaseUseCase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	activeProducts := 0
	for _, product := range products {
		if product.IsActive {
			activeProducts++
		}
	}

	categoryCount, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	userCount, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue := 0.0
	for _, purchase := range purchases {
		if purchase.Status == entity.PurchaseStatusCompleted {
			totalRevenue += purchase.ProductPrice
		}
	}

	return &entity.DashboardStats{
		TotalProducts:   len(products),
		ActiveProducts:  activeProducts,
		TotalCategories: int(categoryCount),
		TotalUsers:      int(userCount),
		TotalPurchases:  len(purchases),
		TotalRevenue:    totalRevenue,
	}, nil
}
