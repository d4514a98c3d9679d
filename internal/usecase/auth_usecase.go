package usecase

import (
	"context"
	"time"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/internal/infrastructure/firebase"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

type AuthUseCase struct {
	authClient *firebase.FirebaseAuthClient
	userRepo   repository.UserRepository
}

func NewAuthUseCase(authClient *firebase.FirebaseAuthClient, userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

// SyncProfile fetches the authenticated identity from Firebase and upserts
// the matching user document. Called on login so the users collection tracks
// the auth provider without a separate import step.
func (uc *AuthUseCase) SyncProfile(ctx context.Context, uid string) (*entity.User, error) {
	email, displayName, photoURL, err := uc.authClient.GetUserInfo(ctx, uid)
	if err != nil {
		return nil, errors.Unauthorized("Failed to resolve user identity", err)
	}

	now := time.Now()

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		user = &entity.User{
			ID:          uid,
			Email:       email,
			DisplayName: displayName,
			PhotoURL:    photoURL,
			Role:        "user",
			IsActive:    true,
			LastLogin:   now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if user.DisplayName == "" {
			user.DisplayName = email
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		logger.Info("Created user profile for %s", uid)
		return user, nil
	}

	user.Email = email
	if displayName != "" {
		user.DisplayName = displayName
	}
	if photoURL != "" {
		user.PhotoURL = photoURL
	}
	user.LastLogin = now
	user.UpdatedAt = now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// CheckAdmin reports whether the given uid holds the admin role.
func (uc *AuthUseCase) CheckAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}

	return user.Role == "admin" && user.IsActive, nil
}
