package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdoor/internal/domain/entity"
)

func purchaseFixtures() (*PurchaseUseCase, *fakePurchaseRepo) {
	purchaseRepo := newFakePurchaseRepo()
	uc := NewPurchaseUseCase(purchaseRepo, newFakeProductRepo(), newFakeCategoryRepo(), newFakeUserRepo())
	return uc, purchaseRepo
}

func TestUpdatePurchaseRefundSetsDateAndReason(t *testing.T) {
	uc, purchaseRepo := purchaseFixtures()
	purchaseRepo.add(&entity.Purchase{
		ID:           "p1",
		UserID:       "u1",
		Status:       entity.PurchaseStatusCompleted,
		ProductPrice: 4.99,
		PurchaseDate: time.Now(),
	})

	updated, err := uc.UpdatePurchase(context.Background(), "p1", PurchaseUpdateInput{
		Status:       entity.PurchaseStatusRefunded,
		RefundReason: "accidental purchase",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseStatusRefunded, updated.Status)
	require.NotNil(t, updated.RefundDate)
	assert.Equal(t, "accidental purchase", updated.RefundReason)
}

func TestUpdatePurchaseRejectsUnknownStatus(t *testing.T) {
	uc, purchaseRepo := purchaseFixtures()
	purchaseRepo.add(&entity.Purchase{ID: "p1", Status: entity.PurchaseStatusPending})

	_, err := uc.UpdatePurchase(context.Background(), "p1", PurchaseUpdateInput{Status: "chargeback"})
	require.Error(t, err)
}

func TestPurchaseStatsOverCompletedOnly(t *testing.T) {
	uc, purchaseRepo := purchaseFixtures()
	now := time.Now()
	purchaseRepo.add(&entity.Purchase{ID: "p1", Status: entity.PurchaseStatusCompleted, ProductPrice: 4.0, PurchaseDate: now})
	purchaseRepo.add(&entity.Purchase{ID: "p2", Status: entity.PurchaseStatusCompleted, ProductPrice: 6.0, PurchaseDate: now})
	purchaseRepo.add(&entity.Purchase{ID: "p3", Status: entity.PurchaseStatusRefunded, ProductPrice: 100.0, PurchaseDate: now})

	stats, err := uc.GetPurchaseStats(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPurchases)
	assert.InDelta(t, 10.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 5.0, stats.AverageOrderValue, 0.001)
}

func TestPurchaseStatsDateRange(t *testing.T) {
	uc, purchaseRepo := purchaseFixtures()
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	purchaseRepo.add(&entity.Purchase{ID: "p1", Status: entity.PurchaseStatusCompleted, ProductPrice: 4.0, PurchaseDate: old})
	purchaseRepo.add(&entity.Purchase{ID: "p2", Status: entity.PurchaseStatusCompleted, ProductPrice: 6.0, PurchaseDate: recent})

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stats, err := uc.GetPurchaseStats(context.Background(), &from, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalPurchases)
	assert.InDelta(t, 6.0, stats.TotalRevenue, 0.001)
}

func TestDashboardStats(t *testing.T) {
	purchaseRepo := newFakePurchaseRepo()
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	userRepo := newFakeUserRepo()
	uc := NewPurchaseUseCase(purchaseRepo, productRepo, categoryRepo, userRepo)

	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{Title: "A", IsActive: true}))
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{Title: "B"}))
	categoryRepo.add(&entity.Category{ID: "cat-1"})
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "u1"}))
	purchaseRepo.add(&entity.Purchase{ID: "p1", Status: entity.PurchaseStatusCompleted, ProductPrice: 9.99})
	purchaseRepo.add(&entity.Purchase{ID: "p2", Status: entity.PurchaseStatusPending, ProductPrice: 5.0})

	stats, err := uc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.ActiveProducts)
	assert.Equal(t, 1, stats.TotalCategories)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalPurchases)
	assert.InDelta(t, 9.99, stats.TotalRevenue, 0.001)
}
