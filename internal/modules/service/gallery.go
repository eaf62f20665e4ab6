package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/infra/blob"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// maxUploadBatch caps a single gallery upload; files beyond the cap are
// ignored, not failed.
const maxUploadBatch = 10

type GalleryService interface {
	List(ctx context.Context) ([]model.GalleryItem, error)
	BulkUpload(ctx context.Context, in BulkUploadInput) (*BulkUploadOutput, error)
	UpdateMeta(ctx context.Context, id uuid.UUID, in UpdateGalleryMetaInput) (*model.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryService struct {
	r     repo.GalleryRepo
	store blob.Store
	log   *zap.Logger
}

func NewGalleryService(r repo.GalleryRepo, store blob.Store, log *zap.Logger) GalleryService {
	return &galleryService{r: r, store: store, log: log}
}

type UploadFile struct {
	Filename string
	Data     []byte
}

type BulkUploadInput struct {
	Files    []UploadFile
	Category string
}

type BulkUploadOutput struct {
	Items []model.GalleryItem `json:"items"`
	// Failed lists filenames that could not be uploaded or inserted; files
	// cut off by the batch cap are not listed, they were never attempted.
	Failed []string `json:"failed,omitempty"`
}

// UpdateGalleryMetaInput patches metadata only; the media itself is immutable
// once uploaded (replace = delete + re-upload).
type UpdateGalleryMetaInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	return s.r.List(ctx)
}

func (s *galleryService) BulkUpload(ctx context.Context, in BulkUploadInput) (*BulkUploadOutput, error) {
	files := in.Files
	if len(files) > maxUploadBatch {
		s.log.Warn("gallery upload batch truncated",
			zap.Int("submitted", len(files)), zap.Int("cap", maxUploadBatch))
		files = files[:maxUploadBatch]
	}

	category := in.Category
	if category == "" {
		category = "general"
	}

	out := &BulkUploadOutput{}
	for _, f := range files {
		url, kind, err := uploadMedia(ctx, s.store, "gallery", f.Data)
		if err != nil {
			s.log.Warn("gallery upload skipped file",
				zap.Error(err), zap.String("filename", f.Filename))
			out.Failed = append(out.Failed, f.Filename)
			continue
		}

		item := model.GalleryItem{
			MediaURL:  url,
			MediaType: kind,
			Category:  category,
		}
		if f.Filename != "" {
			name := f.Filename
			item.Title = &name
		}

		if err := s.r.Create(ctx, &item); err != nil {
			s.log.Error("gallery row insert failed after upload",
				zap.Error(err), zap.String("url", url))
			out.Failed = append(out.Failed, f.Filename)
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (s *galleryService) UpdateMeta(ctx context.Context, id uuid.UUID, in UpdateGalleryMetaInput) (*model.GalleryItem, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}

	if err := s.r.Patch(ctx, id, fields); err != nil {
		return nil, mapNotFound(err)
	}
	out, err := s.r.Get(ctx, id)
	return out, mapNotFound(err)
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if key, ok := s.store.KeyFromURL(item.MediaURL); ok {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Warn("failed to remove gallery blob",
				zap.Error(err), zap.String("key", key))
		}
	}

	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}
