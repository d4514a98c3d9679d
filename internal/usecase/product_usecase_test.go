package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdoor/internal/domain/entity"
)

func productFixtures() (*ProductUseCase, *fakeProductRepo, *fakeIapProductRepo) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "cat-1", Name: "Templates", Slug: "templates", IsActive: true})

	iapRepo := newFakeIapProductRepo()
	iap := &entity.IapProduct{
		Platform: entity.PlatformAndroid,
		SKU:      "coin_100",
		Name:     "100 Coins",
		Status:   entity.IapStatusActive,
		Prices: []entity.IapPrice{
			{Currency: "USD", Amount: 1.19, Formatted: "$1.19"},
			{Currency: "INR", Amount: 99, Formatted: "₹99.00"},
		},
	}
	iapRepo.add(iap)

	linkUseCase := NewIapLinkUseCase(iapRepo, productRepo, time.Hour)
	uc := NewProductUseCase(productRepo, categoryRepo, iapRepo, linkUseCase)

	return uc, productRepo, iapRepo
}

func TestCreateProductLinksIap(t *testing.T) {
	uc, _, iapRepo := productFixtures()

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_100",
		IsActive:            true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)

	linked, err := iapRepo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.Equal(t, product.ID, linked.LinkedProductID)
	assert.True(t, linked.IsLinked)
}

func TestCreateProductFreeClearsIapRefs(t *testing.T) {
	uc, _, iapRepo := productFixtures()

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Free Sample",
		CategoryID:          "cat-1",
		IsFree:              true,
		IapProductIDAndroid: "coin_100",
	})
	require.NoError(t, err)

	assert.Empty(t, product.IapProductIDAndroid)
	assert.Empty(t, product.IapProductIDIOS)
	assert.Zero(t, product.DisplayPrice)

	// The stale reference was dropped before linking, so the IAP stays
	// unclaimed.
	iap, err := iapRepo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.False(t, iap.IsLinked)
}

func TestCreateProductDenormalizesPreferredPrice(t *testing.T) {
	uc, _, _ := productFixtures()

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_100",
	})
	require.NoError(t, err)

	// INR beats USD in the preferred currency order.
	assert.Equal(t, 99.0, product.DisplayPrice)
	assert.Equal(t, "INR", product.DisplayCurrency)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	uc, _, _ := productFixtures()

	_, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:      "Landing Page Kit",
		CategoryID: "nope",
	})
	require.Error(t, err)
}

func TestCreateProductRejectsPlatformMismatch(t *testing.T) {
	uc, _, _ := productFixtures()

	_, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:           "Landing Page Kit",
		CategoryID:      "cat-1",
		IapProductIDIOS: "coin_100", // android SKU on the ios slot
	})
	require.Error(t, err)
}

func TestUpdateProductMovesLink(t *testing.T) {
	uc, _, iapRepo := productFixtures()
	iapRepo.add(&entity.IapProduct{
		Platform: entity.PlatformAndroid,
		SKU:      "coin_500",
		Name:     "500 Coins",
		Status:   entity.IapStatusActive,
	})

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_100",
	})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(context.Background(), product.ID, ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_500",
	})
	require.NoError(t, err)

	released, err := iapRepo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.False(t, released.IsLinked)

	claimed, err := iapRepo.GetBySKU(context.Background(), "coin_500")
	require.NoError(t, err)
	assert.Equal(t, product.ID, claimed.LinkedProductID)
}

func TestDeleteProductRevokesLink(t *testing.T) {
	uc, productRepo, iapRepo := productFixtures()

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_100",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(context.Background(), product.ID))

	_, err = productRepo.GetByID(context.Background(), product.ID)
	require.Error(t, err)

	iap, err := iapRepo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.False(t, iap.IsLinked)
	assert.Empty(t, iap.LinkedProductID)
}

func TestLinkFailureDoesNotFailProductWrite(t *testing.T) {
	uc, productRepo, iapRepo := productFixtures()
	iapRepo.linkErr = assert.AnError

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:               "Landing Page Kit",
		CategoryID:          "cat-1",
		IapProductIDAndroid: "coin_100",
	})
	require.NoError(t, err)

	// The product document is the operation of record; the failed link is
	// logged and left for the audit job.
	stored, err := productRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "coin_100", stored.IapProductIDAndroid)
}
