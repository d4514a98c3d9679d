package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"assetdoor/internal/domain/entity"
	"assetdoor/internal/domain/repository"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
)

var allowedFileTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"application/zip": true,
}

const maxFileSize = 32 << 20 // 32 MB

type FileUseCase struct {
	storage  ObjectStorage
	fileRepo repository.FileMetadataRepository
}

func NewFileUseCase(storage ObjectStorage, fileRepo repository.FileMetadataRepository) *FileUseCase {
	return &FileUseCase{
		storage:  storage,
		fileRepo: fileRepo,
	}
}

type FileUploadInput struct {
	File       io.Reader
	Filename   string
	FileType   string
	FileSize   int64
	EntityType string
	EntityID   string
	UploadedBy string
	IsPublic   bool
}

func (uc *FileUseCase) UploadFile(ctx context.Context, input FileUploadInput) (*entity.FileMetadata, error) {
	if !allowedFileTypes[input.FileType] {
		return nil, errors.BadRequest("Unsupported file type", nil)
	}
	if input.FileSize > maxFileSize {
		return nil, errors.BadRequest("File exceeds the maximum allowed size", nil)
	}

	folder := input.EntityType
	if folder == "" {
		folder = "misc"
	}

	result, err := uc.storage.UploadFile(ctx, input.File, input.FileType, folder, input.IsPublic)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	metadata := &entity.FileMetadata{
		ID:         uuid.New().String(),
		URL:        result.URL,
		ObjectName: result.ObjectName,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		UploadedBy: input.UploadedBy,
		Filename:   input.Filename,
		FileType:   result.FileType,
		FileSize:   result.Size,
		IsPublic:   input.IsPublic,
		CreatedAt:  time.Now(),
	}

	if err := uc.fileRepo.Create(ctx, metadata); err != nil {
		// The object is already durable; keep it and surface the
		// metadata failure so the caller can retry the record.
		logger.Error("Uploaded object %s but failed to store metadata: %v", result.ObjectName, err)
		return nil, err
	}

	return metadata, nil
}

func (uc *FileUseCase) DeleteFile(ctx context.Context, id string) error {
	metadata, err := uc.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.storage.DeleteFile(ctx, metadata.URL); err != nil {
		logger.Warn("Failed to delete object %s from storage: %v", metadata.ObjectName, err)
	}

	return uc.fileRepo.Delete(ctx, id)
}

// DeleteFileByURL removes the stored object behind a URL referenced from a
// product document, plus its metadata record when one exists.
func (uc *FileUseCase) DeleteFileByURL(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	if err := uc.storage.DeleteFile(ctx, url); err != nil {
		logger.Warn("Failed to delete object for URL %s: %v", url, err)
	}

	metadata, err := uc.fileRepo.GetByURL(ctx, url)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	return uc.fileRepo.Delete(ctx, metadata.ID)
}
