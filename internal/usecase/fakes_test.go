package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
)

// In-memory repository fakes shared by the use case tests.

type fakeIapProductRepo struct {
	products   map[string]*entity.IapProduct
	syncStatus *entity.SyncStatus

	applyErr    error
	applyFailed int
	linkErr     error
	lookupErr   map[string]error
}

func newFakeIapProductRepo() *fakeIapProductRepo {
	return &fakeIapProductRepo{
		products:  map[string]*entity.IapProduct{},
		lookupErr: map[string]error{},
	}
}

func (r *fakeIapProductRepo) add(p *entity.IapProduct) {
	r.products[p.SKU] = p
}

func (r *fakeIapProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.IapProduct, error) {
	if err, ok := r.lookupErr[sku]; ok {
		return nil, err
	}
	p, ok := r.products[sku]
	if !ok {
		return nil, errors.NotFound("IAP product", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeIapProductRepo) List(ctx context.Context, platform string, pageSize int, cursor string) ([]*entity.IapProduct, bool, error) {
	var items []*entity.IapProduct
	for _, p := range r.products {
		if platform == "" || p.Platform == platform {
			copied := *p
			items = append(items, &copied)
		}
	}
	return items, false, nil
}

func (r *fakeIapProductRepo) ListLinked(ctx context.Context) ([]*entity.IapProduct, error) {
	var items []*entity.IapProduct
	for _, p := range r.products {
		if p.IsLinked {
			copied := *p
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (r *fakeIapProductRepo) ApplySyncWrites(ctx context.Context, writes []repository.IapSyncWrite) (int, error) {
	if r.applyErr != nil {
		return r.applyFailed, r.applyErr
	}

	now := time.Now()
	for _, w := range writes {
		switch {
		case w.Create != nil:
			created := *w.Create
			created.CreatedAt = now
			created.UpdatedAt = now
			r.products[w.SKU] = &created
		case w.Patch != nil:
			p, ok := r.products[w.SKU]
			if !ok {
				continue
			}
			p.Name = w.Patch.Name
			p.Description = w.Patch.Description
			p.Prices = w.Patch.Prices
			p.Status = w.Patch.Status
			p.LastSynced = w.Patch.LastSynced
			p.SyncError = ""
			p.UpdatedAt = now
		}
	}
	return 0, nil
}

func (r *fakeIapProductRepo) SetLink(ctx context.Context, sku string, patch entity.IapLinkPatch) error {
	if r.linkErr != nil {
		return r.linkErr
	}
	p, ok := r.products[sku]
	if !ok {
		return errors.NotFound("IAP product", nil)
	}
	p.LinkedProductID = patch.LinkedProductID
	p.IsLinked = patch.IsLinked
	return nil
}

func (r *fakeIapProductRepo) SetSyncStatus(ctx context.Context, status *entity.SyncStatus) error {
	r.syncStatus = status
	return nil
}

func (r *fakeIapProductRepo) GetSyncStatus(ctx context.Context) (*entity.SyncStatus, error) {
	if r.syncStatus == nil {
		return nil, errors.NotFound("Sync status", nil)
	}
	return r.syncStatus, nil
}

type fakeCatalogFetcher struct {
	platform  string
	items     []*entity.IapProduct
	totalSeen int
	dropped   int
	err       error
}

func (f *fakeCatalogFetcher) Platform() string {
	if f.platform == "" {
		return entity.PlatformAndroid
	}
	return f.platform
}

func (f *fakeCatalogFetcher) ListProducts(ctx context.Context) ([]*entity.IapProduct, int, int, error) {
	if f.err != nil {
		return nil, 0, 0, f.err
	}
	return f.items, f.totalSeen, f.dropped, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("prod-%d", r.nextID)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, pageSize int, cursor string) ([]*entity.Product, bool, error) {
	items, err := r.ListAll(ctx)
	return items, false, err
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var items []*entity.Product
	for _, p := range r.products {
		copied := *p
		items = append(items, &copied)
	}
	return items, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) SearchByTitle(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	var items []*entity.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			copied := *p
			items = append(items, &copied)
		}
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context, pageSize int, cursor string) ([]*entity.User, bool, error) {
	var items []*entity.User
	for _, u := range r.users {
		copied := *u
		items = append(items, &copied)
	}
	return items, false, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SaveAll(ctx context.Context, users []*entity.User) error {
	for _, u := range users {
		copied := *u
		r.users[u.ID] = &copied
	}
	return nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}}
}

func (r *fakePurchaseRepo) add(p *entity.Purchase) {
	r.purchases[p.ID] = p
}

func (r *fakePurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, errors.NotFound("Purchase", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, filter repository.PurchaseFilter, pageSize int, cursor string) ([]*entity.Purchase, bool, error) {
	items, err := r.ListAll(ctx)
	return items, false, err
}

func (r *fakePurchaseRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	var items []*entity.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			copied := *p
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (r *fakePurchaseRepo) ListAll(ctx context.Context) ([]*entity.Purchase, error) {
	var items []*entity.Purchase
	for _, p := range r.purchases {
		copied := *p
		items = append(items, &copied)
	}
	return items, nil
}

func (r *fakePurchaseRepo) ListCompleted(ctx context.Context, startDate, endDate *time.Time) ([]*entity.Purchase, error) {
	var items []*entity.Purchase
	for _, p := range r.purchases {
		if p.Status != entity.PurchaseStatusCompleted {
			continue
		}
		if startDate != nil && p.PurchaseDate.Before(*startDate) {
			continue
		}
		if endDate != nil && p.PurchaseDate.After(*endDate) {
			continue
		}
		copied := *p
		items = append(items, &copied)
	}
	return items, nil
}

func (r *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	if _, ok := r.purchases[purchase.ID]; !ok {
		return errors.NotFound("Purchase", nil)
	}
	copied := *purchase
	r.purchases[purchase.ID] = &copied
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	nextID     int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) add(c *entity.Category) {
	r.categories[c.ID] = c
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		r.nextID++
		category.ID = fmt.Sprintf("cat-%d", r.nextID)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return c, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) List(ctx context.Context, pageSize int, cursor string) ([]*entity.Category, bool, error) {
	var items []*entity.Category
	for _, c := range r.categories {
		items = append(items, c)
	}
	return items, false, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errors.NotFound("Category", nil)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return errors.NotFound("Category", nil)
	}
	delete(r.categories, id)
	return nil
}
