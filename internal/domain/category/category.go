package category

import (
	"context"
	"strings"
	"time"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
)

const (
	minNameLength = 3
	maxNameLength = 255
)

// Category groups videos for browsing. Deactivating marks it deleted
// without losing the association history.
type Category struct {
	id          catalog.CategoryID
	name        string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewCategory builds a candidate Category. Run Validate against a
// Notification before persisting.
func NewCategory(name, description string, active bool) *Category {
	now := time.Now()
	c := &Category{
		id:          catalog.NewCategoryID(),
		name:        name,
		description: description,
		active:      active,
		createdAt:   now,
		updatedAt:   now,
	}
	if !active {
		c.deletedAt = &now
	}
	return c
}

// With rehydrates a Category from persisted state.
func With(id catalog.CategoryID, name, description string, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

// Validate appends invariant violations to the notification.
func (c *Category) Validate(notification *validation.Notification) {
	name := strings.TrimSpace(c.name)
	if name == "" {
		notification.AppendMessage("'name' should not be null")
		return
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		notification.AppendMessage("'name' must be between 3 and 255 characters")
	}
}

// Update overwrites name, description and active flag.
func (c *Category) Update(name, description string, active bool) *Category {
	c.name = name
	c.description = description
	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}
	c.updatedAt = time.Now()
	return c
}

// Activate reactivates the category.
func (c *Category) Activate() *Category {
	c.active = true
	c.deletedAt = nil
	c.updatedAt = time.Now()
	return c
}

// Deactivate soft-deletes the category.
func (c *Category) Deactivate() *Category {
	if c.deletedAt == nil {
		now := time.Now()
		c.deletedAt = &now
	}
	c.active = false
	c.updatedAt = time.Now()
	return c
}

// ID returns the category id.
func (c *Category) ID() catalog.CategoryID { return c.id }

// Name returns the name.
func (c *Category) Name() string { return c.name }

// Description returns the description.
func (c *Category) Description() string { return c.description }

// Active reports whether the category is active.
func (c *Category) Active() bool { return c.active }

// CreatedAt returns the creation time.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last update time.
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// DeletedAt returns when the category was deactivated, nil while active.
func (c *Category) DeletedAt() *time.Time { return c.deletedAt }

// Repository persists Category aggregates. ExistsByIDs returns the subset
// of the given ids that exist; the video orchestrator uses it for
// reference validation.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	FindByID(ctx context.Context, id catalog.CategoryID) (*Category, error)
	Delete(ctx context.Context, id catalog.CategoryID) error
	ExistsByIDs(ctx context.Context, ids []catalog.CategoryID) ([]catalog.CategoryID, error)
}
