package usecase

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	iapRepo      repository.IapProductRepository
	linkUseCase  *IapLinkUseCase
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	iapRepo repository.IapProductRepository,
	linkUseCase *IapLinkUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		iapRepo:      iapRepo,
		linkUseCase:  linkUseCase,
	}
}

type ProductInput struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	CategoryID          string   `json:"category_id"`
	Tags                []string `json:"tags"`
	IsFree              bool     `json:"is_free"`
	IapProductIDAndroid string   `json:"iap_product_id_android"`
	IapProductIDIOS     string   `json:"iap_product_id_ios"`
	IsActive            bool     `json:"is_active"`
	IsFeatured          bool     `json:"is_featured"`

	ImageURL  string `json:"image_url"`
	ImagePath string `json:"image_path"`
	FileURL   string `json:"file_url"`
	FilePath  string `json:"file_path"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileType  string `json:"file_type"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if err := uc.normalizeInput(ctx, &input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Title:               input.Title,
		Description:         input.Description,
		CategoryID:          input.CategoryID,
		Tags:                input.Tags,
		IsFree:              input.IsFree,
		IapProductIDAndroid: input.IapProductIDAndroid,
		IapProductIDIOS:     input.IapProductIDIOS,
		IsActive:            input.IsActive,
		IsFeatured:          input.IsFeatured,
		ImageURL:            input.ImageURL,
		ImagePath:           input.ImagePath,
		FileURL:             input.FileURL,
		FilePath:            input.FilePath,
		FileName:            input.FileName,
		FileSize:            input.FileSize,
		FileType:            input.FileType,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	uc.denormalizeDisplayPrice(ctx, product)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// The product document is durably written; link maintenance happens
	// after and can never roll it back.
	uc.linkUseCase.SyncProductLinks(ctx, product.ID, nil, product)

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	existing, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.normalizeInput(ctx, &input); err != nil {
		return nil, err
	}

	previous := *existing

	existing.Title = input.Title
	existing.Description = input.Description
	existing.CategoryID = input.CategoryID
	existing.Tags = input.Tags
	existing.IsFree = input.IsFree
	existing.IapProductIDAndroid = input.IapProductIDAndroid
	existing.IapProductIDIOS = input.IapProductIDIOS
	existing.IsActive = input.IsActive
	existing.IsFeatured = input.IsFeatured

	if input.ImageURL != "" {
		existing.ImageURL = input.ImageURL
		existing.ImagePath = input.ImagePath
	}
	if input.FileURL != "" {
		existing.FileURL = input.FileURL
		existing.FilePath = input.FilePath
		existing.FileName = input.FileName
		existing.FileSize = input.FileSize
		existing.FileType = input.FileType
	}

	uc.denormalizeDisplayPrice(ctx, existing)

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.linkUseCase.SyncProductLinks(ctx, id, &previous, existing)

	return existing, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	existing, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Deletion revokes both platform links.
	uc.linkUseCase.SyncProductLinks(ctx, id, existing, nil)

	return nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, categoryID string, activeOnly bool, pageSize int, cursor string) ([]*entity.Product, bool, error) {
	filter := map[string]interface{}{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}
	if activeOnly {
		filter["isActive"] = true
	}

	return uc.productRepo.List(ctx, filter, pageSize, cursor)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.productRepo.SearchByTitle(ctx, query, limit)
}

// normalizeInput enforces the free-product constraint and checks that the
// category and any referenced IAP products exist on the right platform.
func (uc *ProductUseCase) normalizeInput(ctx context.Context, input *ProductInput) error {
	if input.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return errors.BadRequest("Invalid category", err)
		}
	}

	// A free product holds no IAP references.
	if input.IsFree {
		input.IapProductIDAndroid = ""
		input.IapProductIDIOS = ""
		return nil
	}

	if input.IapProductIDAndroid != "" {
		if err := uc.checkIapPlatform(ctx, input.IapProductIDAndroid, entity.PlatformAndroid); err != nil {
			return err
		}
	}
	if input.IapProductIDIOS != "" {
		if err := uc.checkIapPlatform(ctx, input.IapProductIDIOS, entity.PlatformIOS); err != nil {
			return err
		}
	}

	return nil
}

func (uc *ProductUseCase) checkIapPlatform(ctx context.Context, sku, platform string) error {
	iap, err := uc.iapRepo.GetBySKU(ctx, sku)
	if err != nil {
		// A stale selection is tolerated; the link maintainer logs it and
		// the product save proceeds.
		logger.Warn("Referenced %s IAP %s not found during validation: %v", platform, sku, err)
		return nil
	}
	if iap.Platform != platform {
		return errors.BadRequest("IAP product platform mismatch", nil)
	}
	return nil
}

// denormalizeDisplayPrice snapshots the linked IAP's preferred price onto
// the product so listings don't need a join.
func (uc *ProductUseCase) denormalizeDisplayPrice(ctx context.Context, product *entity.Product) {
	product.DisplayPrice = 0
	product.DisplayCurrency = ""

	if product.IsFree {
		return
	}

	for _, sku := range []string{product.IapProductIDAndroid, product.IapProductIDIOS} {
		if sku == "" {
			continue
		}
		iap, err := uc.iapRepo.GetBySKU(ctx, sku)
		if err != nil {
			continue
		}
		if price := iap.PreferredPrice(); price != nil {
			product.DisplayPrice = price.Amount
			product.DisplayCurrency = price.Currency
			return
		}
	}
}
