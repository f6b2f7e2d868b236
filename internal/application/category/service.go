package category

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/category"
	"github.com/streamhaven/catalog/internal/domain/validation"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
	"github.com/streamhaven/catalog/pkg/interfaces"
)

// CreateCategoryCommand carries the input for creating a category.
type CreateCategoryCommand struct {
	Name        string
	Description string
	Active      bool
}

// UpdateCategoryCommand overwrites an existing category.
type UpdateCategoryCommand struct {
	ID          string
	Name        string
	Description string
	Active      bool
}

// Service handles the category use cases.
type Service struct {
	categories category.Repository
	logger     interfaces.Logger
}

// NewService creates a category application service.
func NewService(categories category.Repository, logger interfaces.Logger) *Service {
	return &Service{categories: categories, logger: logger}
}

// Create validates and persists a new category, returning its id.
func (s *Service) Create(ctx context.Context, cmd CreateCategoryCommand) (catalog.CategoryID, error) {
	c := category.NewCategory(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	c.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	saved, err := s.categories.Create(ctx, c)
	if err != nil {
		return "", err
	}
	s.logger.Info("category created", interfaces.String("category_id", saved.ID().String()))
	return saved.ID(), nil
}

// Update loads, mutates and persists an existing category.
func (s *Service) Update(ctx context.Context, cmd UpdateCategoryCommand) (catalog.CategoryID, error) {
	id := catalog.CategoryID(cmd.ID)
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFound(fmt.Sprintf("Category with ID %s was not found", id))
		}
		return "", err
	}

	c.Update(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	c.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	if _, err := s.categories.Update(ctx, c); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns a category by id.
func (s *Service) Get(ctx context.Context, rawID string) (*category.Category, error) {
	id := catalog.CategoryID(rawID)
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound(fmt.Sprintf("Category with ID %s was not found", id))
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a category. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	return s.categories.Delete(ctx, catalog.CategoryID(rawID))
}
