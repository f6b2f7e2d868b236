package genre

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/category"
	"github.com/streamhaven/catalog/internal/domain/genre"
	"github.com/streamhaven/catalog/internal/domain/validation"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
	"github.com/streamhaven/catalog/pkg/interfaces"
)

const labelCategories = "Categories"

// CreateGenreCommand carries the input for creating a genre.
type CreateGenreCommand struct {
	Name       string
	Active     bool
	Categories []string
}

// UpdateGenreCommand overwrites an existing genre.
type UpdateGenreCommand struct {
	ID         string
	Name       string
	Active     bool
	Categories []string
}

// Service handles the genre use cases. Category references are validated
// the same way the video orchestrator validates its references.
type Service struct {
	genres     genre.Repository
	categories category.Repository
	logger     interfaces.Logger
}

// NewService creates a genre application service.
func NewService(genres genre.Repository, categories category.Repository, logger interfaces.Logger) *Service {
	return &Service{genres: genres, categories: categories, logger: logger}
}

// Create validates and persists a new genre, returning its id.
func (s *Service) Create(ctx context.Context, cmd CreateGenreCommand) (catalog.GenreID, error) {
	categoryIDs := catalog.CategoryIDs(cmd.Categories)

	notification := validation.NewNotification()
	notification.Merge(validation.CheckExists(ctx, labelCategories, categoryIDs, s.categories.ExistsByIDs))

	g := genre.NewGenre(cmd.Name, cmd.Active, categoryIDs)
	g.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	saved, err := s.genres.Create(ctx, g)
	if err != nil {
		return "", err
	}
	s.logger.Info("genre created", interfaces.String("genre_id", saved.ID().String()))
	return saved.ID(), nil
}

// Update loads, mutates and persists an existing genre.
func (s *Service) Update(ctx context.Context, cmd UpdateGenreCommand) (catalog.GenreID, error) {
	id := catalog.GenreID(cmd.ID)
	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFound(fmt.Sprintf("Genre with ID %s was not found", id))
		}
		return "", err
	}

	categoryIDs := catalog.CategoryIDs(cmd.Categories)

	notification := validation.NewNotification()
	notification.Merge(validation.CheckExists(ctx, labelCategories, categoryIDs, s.categories.ExistsByIDs))

	g.Update(cmd.Name, cmd.Active, categoryIDs)
	g.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	if _, err := s.genres.Update(ctx, g); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns a genre by id.
func (s *Service) Get(ctx context.Context, rawID string) (*genre.Genre, error) {
	id := catalog.GenreID(rawID)
	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound(fmt.Sprintf("Genre with ID %s was not found", id))
		}
		return nil, err
	}
	return g, nil
}

// Delete removes a genre. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	return s.genres.Delete(ctx, catalog.GenreID(rawID))
}
