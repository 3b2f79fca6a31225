package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/baluflix/baluflix/internal/models"
	"github.com/baluflix/baluflix/internal/storage"
)

// Sentinel errors mapped to HTTP statuses by the API layer.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("video not found")
)

// Store is the persistence port for catalog records. Implementations
// must order List results by CreatedAt descending (insertion order on
// ties) and make Publish an atomic false-to-true transition.
type Store interface {
	Insert(ctx context.Context, video *models.Video) error
	List(ctx context.Context, publishedOnly bool) ([]models.Video, error)
	GetByKey(ctx context.Context, key string) (*models.Video, error)
	Publish(ctx context.Context, key string) (*models.Video, error)
}

// ErrStoreNotFound is returned by Store implementations when no record
// matches the given key.
var ErrStoreNotFound = errors.New("record not found")

// Service implements the catalog workflow over an injected Store and
// file Storage.
type Service struct {
	store            Store
	files            storage.Storage
	defaultPublished bool
}

func NewService(store Store, files storage.Storage, defaultPublished bool) *Service {
	return &Service{
		store:            store,
		files:            files,
		defaultPublished: defaultPublished,
	}
}

// ListPublished returns every published record, newest first.
func (s *Service) ListPublished(ctx context.Context) ([]models.Video, error) {
	videos, err := s.store.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list published videos: %w", err)
	}
	return videos, nil
}

// ListAll returns every record regardless of published state.
func (s *Service) ListAll(ctx context.Context) ([]models.Video, error) {
	videos, err := s.store.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// CreateFromReference inserts a record pointing at an external video
// URL. Whether the record is immediately public follows the service's
// defaultPublished setting.
func (s *Service) CreateFromReference(ctx context.Context, title, url, kind, thumb string) (*models.Video, error) {
	if title == "" || url == "" {
		return nil, fmt.Errorf("%w: title and url are required", ErrValidation)
	}

	video := models.NewReferenceVideo(title, url, models.ParseKind(kind), thumb, s.defaultPublished)
	if err := s.store.Insert(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to insert video: %w", err)
	}
	return video, nil
}

// UploadInput carries the received multipart file for CreateFromUpload.
type UploadInput struct {
	Title       string
	Description string
	File        multipart.File
	Filename    string
	ContentType string
	Size        int64
}

// CreateFromUpload stores the received file and inserts an unpublished
// record owned by the authenticated principal. The stored file is
// removed again if the record insert fails.
func (s *Service) CreateFromUpload(ctx context.Context, in UploadInput, principal string) (*models.Video, error) {
	if in.File == nil {
		return nil, fmt.Errorf("%w: no file uploaded", ErrValidation)
	}

	filename, err := s.files.SaveFile(in.File, storage.FileInfo{
		Filename:    in.Filename,
		ContentType: in.ContentType,
		Size:        in.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	video := models.NewUploadedVideo(in.Title, in.Description, filename, in.Filename, principal)
	if err := s.store.Insert(ctx, video); err != nil {
		s.files.DeleteFile(filename)
		return nil, fmt.Errorf("failed to insert video: %w", err)
	}
	return video, nil
}

// Publish marks the record as published. Publishing an already
// published record is a no-op success.
func (s *Service) Publish(ctx context.Context, key string) (*models.Video, error) {
	video, err := s.store.Publish(ctx, key)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to publish video: %w", err)
	}
	return video, nil
}
