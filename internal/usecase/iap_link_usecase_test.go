package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdoor/internal/domain/entity"
)

func iapForLink(sku, platform string) *entity.IapProduct {
	return &entity.IapProduct{
		Platform: platform,
		SKU:      sku,
		Name:     sku,
		Status:   entity.IapStatusActive,
	}
}

func TestLinkOnCreate(t *testing.T) {
	repo := newFakeIapProductRepo()
	repo.add(iapForLink("coin_100", entity.PlatformAndroid))

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	product := &entity.Product{ID: "prod-1", IapProductIDAndroid: "coin_100"}
	uc.SyncProductLinks(context.Background(), "prod-1", nil, product)

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", after.LinkedProductID)
	assert.True(t, after.IsLinked)
}

func TestRelinkMovesClaim(t *testing.T) {
	repo := newFakeIapProductRepo()
	old := iapForLink("coin_100", entity.PlatformAndroid)
	old.LinkedProductID = "prod-1"
	old.IsLinked = true
	repo.add(old)
	repo.add(iapForLink("coin_500", entity.PlatformAndroid))

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	before := &entity.Product{ID: "prod-1", IapProductIDAndroid: "coin_100"}
	after := &entity.Product{ID: "prod-1", IapProductIDAndroid: "coin_500"}
	uc.SyncProductLinks(context.Background(), "prod-1", before, after)

	released, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.Empty(t, released.LinkedProductID)
	assert.False(t, released.IsLinked)

	claimed, err := repo.GetBySKU(context.Background(), "coin_500")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", claimed.LinkedProductID)
	assert.True(t, claimed.IsLinked)
}

func TestDeleteRevokesBothPlatforms(t *testing.T) {
	repo := newFakeIapProductRepo()
	android := iapForLink("coin_100", entity.PlatformAndroid)
	android.LinkedProductID = "prod-1"
	android.IsLinked = true
	ios := iapForLink("ios_coin_100", entity.PlatformIOS)
	ios.LinkedProductID = "prod-1"
	ios.IsLinked = true
	repo.add(android)
	repo.add(ios)

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	before := &entity.Product{
		ID:                  "prod-1",
		IapProductIDAndroid: "coin_100",
		IapProductIDIOS:     "ios_coin_100",
	}
	uc.SyncProductLinks(context.Background(), "prod-1", before, nil)

	for _, sku := range []string{"coin_100", "ios_coin_100"} {
		after, err := repo.GetBySKU(context.Background(), sku)
		require.NoError(t, err)
		assert.False(t, after.IsLinked, sku)
		assert.Empty(t, after.LinkedProductID, sku)
	}
}

func TestFreeProductTouchesNothing(t *testing.T) {
	repo := newFakeIapProductRepo()
	other := iapForLink("coin_100", entity.PlatformAndroid)
	other.LinkedProductID = "prod-2"
	other.IsLinked = true
	repo.add(other)

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	product := &entity.Product{ID: "prod-1", IsFree: true}
	uc.SyncProductLinks(context.Background(), "prod-1", nil, product)

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.Equal(t, "prod-2", after.LinkedProductID)
}

func TestMissingIapIsSwallowed(t *testing.T) {
	repo := newFakeIapProductRepo()
	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	// Stale dropdown selection: the referenced SKU no longer exists. The
	// product write already succeeded, so this must not panic or error.
	product := &entity.Product{ID: "prod-1", IapProductIDAndroid: "gone_sku"}
	uc.SyncProductLinks(context.Background(), "prod-1", nil, product)
}

func TestRelinkIsSelfHealing(t *testing.T) {
	repo := newFakeIapProductRepo()
	iap := iapForLink("coin_100", entity.PlatformAndroid)
	repo.add(iap)

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)

	// Saving the same product twice with an unchanged SKU re-asserts the
	// link both times.
	product := &entity.Product{ID: "prod-1", IapProductIDAndroid: "coin_100"}
	uc.SyncProductLinks(context.Background(), "prod-1", nil, product)

	// Simulate an interfering write that dropped the link.
	repo.products["coin_100"].IsLinked = false
	repo.products["coin_100"].LinkedProductID = ""

	uc.SyncProductLinks(context.Background(), "prod-1", product, product)

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.True(t, after.IsLinked)
	assert.Equal(t, "prod-1", after.LinkedProductID)
}

func TestAuditClearsOrphanedLink(t *testing.T) {
	repo := newFakeIapProductRepo()
	orphan := iapForLink("coin_100", entity.PlatformAndroid)
	orphan.LinkedProductID = "deleted-product"
	orphan.IsLinked = true
	repo.add(orphan)

	uc := NewIapLinkUseCase(repo, newFakeProductRepo(), time.Hour)
	require.NoError(t, uc.AuditLinks(context.Background()))

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.False(t, after.IsLinked)
	assert.Empty(t, after.LinkedProductID)
}

func TestAuditAssertsMissingLink(t *testing.T) {
	repo := newFakeIapProductRepo()
	repo.add(iapForLink("coin_100", entity.PlatformAndroid))

	productRepo := newFakeProductRepo()
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:                  "prod-1",
		IapProductIDAndroid: "coin_100",
	}))

	uc := NewIapLinkUseCase(repo, productRepo, time.Hour)
	require.NoError(t, uc.AuditLinks(context.Background()))

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.True(t, after.IsLinked)
	assert.Equal(t, "prod-1", after.LinkedProductID)
}

func TestAuditRepointsWrongClaim(t *testing.T) {
	repo := newFakeIapProductRepo()
	stale := iapForLink("coin_100", entity.PlatformAndroid)
	stale.LinkedProductID = "prod-old"
	stale.IsLinked = true
	repo.add(stale)

	productRepo := newFakeProductRepo()
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:                  "prod-new",
		IapProductIDAndroid: "coin_100",
	}))

	uc := NewIapLinkUseCase(repo, productRepo, time.Hour)
	require.NoError(t, uc.AuditLinks(context.Background()))

	after, err := repo.GetBySKU(context.Background(), "coin_100")
	require.NoError(t, err)
	assert.Equal(t, "prod-new", after.LinkedProductID)
}
