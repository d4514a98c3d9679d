package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdoor/internal/domain/entity"
	"assetdoor/pkg/errors"
)

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo(), newFakeProductRepo())

	category, err := uc.CreateCategory(context.Background(), CategoryInput{
		Name:     "UI Kits And Mockups",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ui-kits-and-mockups", category.Slug)
	assert.NotEmpty(t, category.ID)
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "cat-1", Name: "Templates", Slug: "templates"})

	uc := NewCategoryUseCase(categoryRepo, newFakeProductRepo())

	_, err := uc.CreateCategory(context.Background(), CategoryInput{Name: "Templates"})
	require.Error(t, err)
}

func TestDeleteCategoryBlockedByProducts(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "cat-1", Name: "Templates", Slug: "templates"})

	productRepo := newFakeProductRepo()
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		Title:      "Landing Page Kit",
		CategoryID: "cat-1",
	}))

	uc := NewCategoryUseCase(categoryRepo, productRepo)

	err := uc.DeleteCategory(context.Background(), "cat-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// Still present.
	_, err = categoryRepo.GetByID(context.Background(), "cat-1")
	require.NoError(t, err)
}

func TestDeleteEmptyCategory(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "cat-1", Name: "Templates", Slug: "templates"})

	uc := NewCategoryUseCase(categoryRepo, newFakeProductRepo())

	require.NoError(t, uc.DeleteCategory(context.Background(), "cat-1"))

	_, err := categoryRepo.GetByID(context.Background(), "cat-1")
	require.Error(t, err)
}
