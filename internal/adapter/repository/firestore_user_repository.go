package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) List(ctx context.Context, pageSize int, cursor string) ([]*entity.User, bool, error) {
	query := r.client.Collection("users").Query.
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != "" {
		cursorDoc, err := r.client.Collection("users").Doc(cursor).Get(ctx)
		if err == nil {
			createdAt, _ := cursorDoc.DataAt("createdAt")
			query = query.StartAfter(createdAt, cursorDoc.Ref.ID)
		} else {
			logger.Warn("Ignoring stale user list cursor %s: %v", cursor, err)
		}
	}

	iter := query.Limit(pageSize + 1).Documents(ctx)
	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, false, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, false, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	hasMore := false
	if len(users) > pageSize {
		hasMore = true
		users = users[:pageSize]
	}

	return users, hasMore, nil
}

func (r *firestoreUserRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("users").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) SaveAll(ctx context.Context, users []*entity.User) error {
	for start := 0; start < len(users); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(users) {
			end = len(users)
		}

		batch := r.client.Batch()
		now := time.Now()
		for _, user := range users[start:end] {
			user.UpdatedAt = now
			batch.Set(r.client.Collection("users").Doc(user.ID), user)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return errors.BatchWrite("User backfill batch rejected", err)
		}
	}

	return nil
}
