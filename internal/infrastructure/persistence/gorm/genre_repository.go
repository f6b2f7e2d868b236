package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/genre"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
)

// GenreRepository implements genre.Repository using GORM.
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a genre repository.
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create inserts a new genre.
func (r *GenreRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if err := r.db.WithContext(ctx).Create(GenreModelFromDomain(g)).Error; err != nil {
		return nil, fmt.Errorf("creating genre: %w", err)
	}
	return g, nil
}

// Update overwrites an existing genre row.
func (r *GenreRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if err := r.db.WithContext(ctx).Save(GenreModelFromDomain(g)).Error; err != nil {
		return nil, fmt.Errorf("updating genre: %w", err)
	}
	return g, nil
}

// FindByID loads a genre by id.
func (r *GenreRepository) FindByID(ctx context.Context, id catalog.GenreID) (*genre.Genre, error) {
	var model GenreModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("genre %s not found", id))
		}
		return nil, fmt.Errorf("finding genre: %w", err)
	}
	return model.ToDomain(), nil
}

// Delete removes a genre row. Removing a missing id is a no-op.
func (r *GenreRepository) Delete(ctx context.Context, id catalog.GenreID) error {
	if err := r.db.WithContext(ctx).Delete(&GenreModel{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids that exist, in one query.
func (r *GenreRepository) ExistsByIDs(ctx context.Context, ids []catalog.GenreID) ([]catalog.GenreID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	var found []string
	err := r.db.WithContext(ctx).
		Model(&GenreModel{}).
		Where("id IN ?", raw).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("checking genre ids: %w", err)
	}
	return catalog.GenreIDs(found), nil
}
