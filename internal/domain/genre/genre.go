package genre

import (
	"context"
	"strings"
	"time"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
)

const maxNameLength = 255

// Genre classifies videos and may itself reference categories.
type Genre struct {
	id         catalog.GenreID
	name       string
	active     bool
	categories []catalog.CategoryID
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewGenre builds a candidate Genre. Run Validate against a Notification
// before persisting.
func NewGenre(name string, active bool, categories []catalog.CategoryID) *Genre {
	now := time.Now()
	g := &Genre{
		id:         catalog.NewGenreID(),
		name:       name,
		active:     active,
		categories: dedup(categories),
		createdAt:  now,
		updatedAt:  now,
	}
	if !active {
		g.deletedAt = &now
	}
	return g
}

// With rehydrates a Genre from persisted state.
func With(id catalog.GenreID, name string, active bool, categories []catalog.CategoryID, createdAt, updatedAt time.Time, deletedAt *time.Time) *Genre {
	return &Genre{
		id:         id,
		name:       name,
		active:     active,
		categories: dedup(categories),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		deletedAt:  deletedAt,
	}
}

// Validate appends invariant violations to the notification.
func (g *Genre) Validate(notification *validation.Notification) {
	name := strings.TrimSpace(g.name)
	if name == "" {
		notification.AppendMessage("'name' should not be null")
		return
	}
	if len(name) > maxNameLength {
		notification.AppendMessage("'name' must be between 1 and 255 characters")
	}
}

// Update overwrites name, active flag and category references.
func (g *Genre) Update(name string, active bool, categories []catalog.CategoryID) *Genre {
	g.name = name
	if active {
		g.Activate()
	} else {
		g.Deactivate()
	}
	g.categories = dedup(categories)
	g.updatedAt = time.Now()
	return g
}

// Activate reactivates the genre.
func (g *Genre) Activate() *Genre {
	g.active = true
	g.deletedAt = nil
	g.updatedAt = time.Now()
	return g
}

// Deactivate soft-deletes the genre.
func (g *Genre) Deactivate() *Genre {
	if g.deletedAt == nil {
		now := time.Now()
		g.deletedAt = &now
	}
	g.active = false
	g.updatedAt = time.Now()
	return g
}

// AddCategory appends a category reference if not already present.
func (g *Genre) AddCategory(id catalog.CategoryID) *Genre {
	for _, existing := range g.categories {
		if existing == id {
			return g
		}
	}
	g.categories = append(g.categories, id)
	g.updatedAt = time.Now()
	return g
}

// ID returns the genre id.
func (g *Genre) ID() catalog.GenreID { return g.id }

// Name returns the name.
func (g *Genre) Name() string { return g.name }

// Active reports whether the genre is active.
func (g *Genre) Active() bool { return g.active }

// Categories returns a copy of the referenced category ids.
func (g *Genre) Categories() []catalog.CategoryID {
	out := make([]catalog.CategoryID, len(g.categories))
	copy(out, g.categories)
	return out
}

// CreatedAt returns the creation time.
func (g *Genre) CreatedAt() time.Time { return g.createdAt }

// UpdatedAt returns the last update time.
func (g *Genre) UpdatedAt() time.Time { return g.updatedAt }

// DeletedAt returns when the genre was deactivated, nil while active.
func (g *Genre) DeletedAt() *time.Time { return g.deletedAt }

// Repository persists Genre aggregates.
type Repository interface {
	Create(ctx context.Context, g *Genre) (*Genre, error)
	Update(ctx context.Context, g *Genre) (*Genre, error)
	FindByID(ctx context.Context, id catalog.GenreID) (*Genre, error)
	Delete(ctx context.Context, id catalog.GenreID) error
	ExistsByIDs(ctx context.Context, ids []catalog.GenreID) ([]catalog.GenreID, error)
}

func dedup(ids []catalog.CategoryID) []catalog.CategoryID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[catalog.CategoryID]struct{}, len(ids))
	out := make([]catalog.CategoryID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
