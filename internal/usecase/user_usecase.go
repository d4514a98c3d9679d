package usecase

import (
	"context"
	"sort"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/internal/infrastructure/firebase"
	"assetdoor/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	authClient   *firebase.FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, purchaseRepo repository.PurchaseRepository, authClient *firebase.FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		authClient:   authClient,
	}
}

func (uc *UserUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// ListUsers pages the users collection. When the collection is still empty
// the user records are derived from purchase history and persisted, so the
// admin screens work before any explicit profile sync has happened.
func (uc *UserUseCase) ListUsers(ctx context.Context, pageSize int, cursor string) ([]*entity.User, bool, error) {
	users, hasMore, err := uc.userRepo.List(ctx, pageSize, cursor)
	if err != nil {
		return nil, false, err
	}
	if len(users) > 0 || cursor != "" {
		return users, hasMore, nil
	}

	backfilled, err := uc.backfillFromPurchases(ctx)
	if err != nil {
		return nil, false, err
	}

	hasMore = len(backfilled) > pageSize
	if hasMore {
		backfilled = backfilled[:pageSize]
	}

	return backfilled, hasMore, nil
}

// backfillFromPurchases groups purchase records by user and persists one
// user document per buyer with first/last purchase dates and spend totals.
func (uc *UserUseCase) backfillFromPurchases(ctx context.Context) ([]*entity.User, error) {
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := map[string]*entity.User{}
	for _, purchase := range purchases {
		if purchase.UserID == "" {
			continue
		}

		user, ok := byID[purchase.UserID]
		if !ok {
			displayName := purchase.UserName
			if displayName == "" {
				displayName = purchase.UserEmail
			}
			if displayName == "" {
				displayName = "User"
			}
			user = &entity.User{
				ID:          purchase.UserID,
				Email:       purchase.UserEmail,
				DisplayName: displayName,
				Role:        "user",
				IsActive:    true,
				CreatedAt:   purchase.PurchaseDate,
				LastLogin:   purchase.PurchaseDate,
			}
			byID[purchase.UserID] = user
		}

		user.TotalPurchases++
		user.TotalSpent += purchase.ProductPrice

		if purchase.PurchaseDate.Before(user.CreatedAt) {
			user.CreatedAt = purchase.PurchaseDate
		}
		if purchase.PurchaseDate.After(user.LastLogin) {
			user.LastLogin = purchase.PurchaseDate
		}
	}

	if len(byID) == 0 {
		return nil, nil
	}

	users := make([]*entity.User, 0, len(byID))
	for _, user := range byID {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	if err := uc.userRepo.SaveAll(ctx, users); err != nil {
		return nil, err
	}
	logger.Info("Backfilled %d users from purchase history", len(users))

	return users, nil
}

func (uc *UserUseCase) GetUserPurchases(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.ListByUserID(ctx, userID)
}

func (uc *UserUseCase) SetUserActive(ctx context.Context, id string, isActive bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = isActive
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Keep the auth provider in step; a failure here is logged, the
	// document is the source of truth for the admin view.
	if err := uc.authClient.DisableUser(ctx, id, !isActive); err != nil {
		logger.Warn("Failed to update auth disabled flag for user %s: %v", id, err)
	}

	return user, nil
}
