package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/category"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
)

// CategoryRepository implements category.Repository using GORM.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := r.db.WithContext(ctx).Create(CategoryModelFromDomain(c)).Error; err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return c, nil
}

// Update overwrites an existing category row.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := r.db.WithContext(ctx).Save(CategoryModelFromDomain(c)).Error; err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}
	return c, nil
}

// FindByID loads a category by id.
func (r *CategoryRepository) FindByID(ctx context.Context, id catalog.CategoryID) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("category %s not found", id))
		}
		return nil, fmt.Errorf("finding category: %w", err)
	}
	return model.ToDomain(), nil
}

// Delete removes a category row. Removing a missing id is a no-op.
func (r *CategoryRepository) Delete(ctx context.Context, id catalog.CategoryID) error {
	if err := r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids that exist, in one query.
func (r *CategoryRepository) ExistsByIDs(ctx context.Context, ids []catalog.CategoryID) ([]catalog.CategoryID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	var found []string
	err := r.db.WithContext(ctx).
		Model(&CategoryModel{}).
		Where("id IN ?", raw).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("checking category ids: %w", err)
	}
	return catalog.CategoryIDs(found), nil
}
