package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/video"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
)

// VideoRepository implements video.Repository using GORM. The aggregate
// plus all attached media references are written in one row, so a save is
// a single-statement outcome from the caller's point of view.
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a video repository.
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video.
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := VideoModelFromDomain(v)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("creating video: %w", err)
	}
	return v, nil
}

// Update overwrites an existing video row.
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	model := VideoModelFromDomain(v)
	result := r.db.WithContext(ctx).Where("id = ?", model.ID).Save(model)
	if result.Error != nil {
		return nil, fmt.Errorf("updating video: %w", result.Error)
	}
	return v, nil
}

// FindByID loads a video by id.
func (r *VideoRepository) FindByID(ctx context.Context, id catalog.VideoID) (*video.Video, error) {
	var model VideoModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("video %s not found", id))
		}
		return nil, fmt.Errorf("finding video: %w", err)
	}
	return model.ToDomain(), nil
}

// Delete removes a video row. Removing a missing id is a no-op.
func (r *VideoRepository) Delete(ctx context.Context, id catalog.VideoID) error {
	if err := r.db.WithContext(ctx).Delete(&VideoModel{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("deleting video: %w", err)
	}
	return nil
}
