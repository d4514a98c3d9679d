package usecase

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/logger"
)

// IapLinkUseCase keeps the iapProducts side of the product↔IAP association
// consistent after product writes. It runs after the product document has
// already committed, so nothing here may fail the caller: every error is
// logged and swallowed.
type IapLinkUseCase struct {
	iapRepo       repository.IapProductRepository
	productRepo   repository.ProductRepository
	auditInterval time.Duration
}

func NewIapLinkUseCase(iapRepo repository.IapProductRepository, productRepo repository.ProductRepository, auditInterval time.Duration) *IapLinkUseCase {
	return &IapLinkUseCase{
		iapRepo:       iapRepo,
		productRepo:   productRepo,
		auditInterval: auditInterval,
	}
}

// SyncProductLinks reconciles link state for one product write. oldProduct is
// nil on create; newProduct is nil on delete. Each platform is handled
// independently so a failure on one cannot block the other, and the link-new
// step always writes even when the link looks correct already, which makes
// the operation idempotent and self-healing after partial failures.
func (uc *IapLinkUseCase) SyncProductLinks(ctx context.Context, productID string, oldProduct, newProduct *entity.Product) {
	for _, platform := range []string{entity.PlatformAndroid, entity.PlatformIOS} {
		uc.syncPlatformLink(ctx, productID, platform, oldProduct.IapProductID(platform), newProduct.IapProductID(platform))
	}
}

func (uc *IapLinkUseCase) syncPlatformLink(ctx context.Context, productID, platform, oldIapID, newIapID string) {
	// Release the previous claim first. The two steps are independent
	// per-document updates, not a transaction: if the link-new step fails
	// the next save repairs it via the unconditional set below.
	if oldIapID != "" && oldIapID != newIapID {
		uc.clearLink(ctx, productID, platform, oldIapID)
	}

	if newIapID == "" {
		return
	}

	if _, err := uc.iapRepo.GetBySKU(ctx, newIapID); err != nil {
		// Stale dropdown selection or store error; the product write has
		// already succeeded and is the operation of record.
		logger.Error("Cannot link %s IAP %s to product %s: %v", platform, newIapID, productID, err)
		return
	}

	err := uc.iapRepo.SetLink(ctx, newIapID, entity.IapLinkPatch{
		LinkedProductID: productID,
		IsLinked:        true,
	})
	if err != nil {
		logger.Error("Failed to link %s IAP %s to product %s: %v", platform, newIapID, productID, err)
		return
	}

	logger.Info("Linked %s IAP %s to product %s", platform, newIapID, productID)
}

func (uc *IapLinkUseCase) clearLink(ctx context.Context, productID, platform, iapID string) {
	if _, err := uc.iapRepo.GetBySKU(ctx, iapID); err != nil {
		// A dangling old reference is not fatal.
		logger.Warn("Old %s IAP %s for product %s not found: %v", platform, iapID, productID, err)
		return
	}

	err := uc.iapRepo.SetLink(ctx, iapID, entity.IapLinkPatch{})
	if err != nil {
		logger.Error("Failed to unlink %s IAP %s from product %s: %v", platform, iapID, productID, err)
		return
	}

	logger.Info("Unlinked %s IAP %s from product %s", platform, iapID, productID)
}

// AuditLinks scans both collections and repairs the link invariant in both
// directions: links whose claimed product is gone or no longer references
// the SKU are cleared, and links that products claim are re-asserted. This
// bounds the lifetime of inconsistencies left behind by racing saves.
func (uc *IapLinkUseCase) AuditLinks(ctx context.Context) error {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	// SKU -> product that currently claims it, last claim wins.
	claims := map[string]string{}
	for _, product := range products {
		for _, platform := range []string{entity.PlatformAndroid, entity.PlatformIOS} {
			if sku := product.IapProductID(platform); sku != "" {
				claims[sku] = product.ID
			}
		}
	}

	linked, err := uc.iapRepo.ListLinked(ctx)
	if err != nil {
		return err
	}

	repaired := 0
	recorded := map[string]bool{}
	for _, iap := range linked {
		recorded[iap.SKU] = true
		claimant, ok := claims[iap.SKU]
		if ok && claimant == iap.LinkedProductID {
			continue
		}

		patch := entity.IapLinkPatch{}
		if ok {
			patch = entity.IapLinkPatch{LinkedProductID: claimant, IsLinked: true}
		}
		if err := uc.iapRepo.SetLink(ctx, iap.SKU, patch); err != nil {
			logger.Error("Link audit failed to repair IAP %s: %v", iap.SKU, err)
			continue
		}
		repaired++
	}

	// Claims whose IAP document is not marked linked at all.
	for sku, claimant := range claims {
		if recorded[sku] {
			continue
		}
		if _, err := uc.iapRepo.GetBySKU(ctx, sku); err != nil {
			logger.Warn("Link audit: product %s references missing IAP %s", claimant, sku)
			continue
		}
		err := uc.iapRepo.SetLink(ctx, sku, entity.IapLinkPatch{
			LinkedProductID: claimant,
			IsLinked:        true,
		})
		if err != nil {
			logger.Error("Link audit failed to assert link on IAP %s: %v", sku, err)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logger.Info("Link audit repaired %d IAP link(s)", repaired)
	}

	return nil
}

// StartLinkAudit runs AuditLinks on a slow schedule until the context is
// cancelled.
func (uc *IapLinkUseCase) StartLinkAudit(ctx context.Context) {
	ticker := time.NewTicker(uc.auditInterval)

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := uc.AuditLinks(ctx); err != nil {
					logger.Error("Link audit error: %v", err)
				}
			case <-ctx.Done():
				ticker.Stop()
				return
			}
		}
	}()

	logger.Info("IAP link audit job started (every %s)", uc.auditInterval)
}
