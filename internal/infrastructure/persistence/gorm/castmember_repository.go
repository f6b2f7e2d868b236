package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/streamhaven/catalog/internal/domain/castmember"
	"github.com/streamhaven/catalog/internal/domain/catalog"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
)

// CastMemberRepository implements castmember.Repository using GORM.
type CastMemberRepository struct {
	db *gorm.DB
}

// NewCastMemberRepository creates a cast member repository.
func NewCastMemberRepository(db *gorm.DB) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

// Create inserts a new cast member.
func (r *CastMemberRepository) Create(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	if err := r.db.WithContext(ctx).Create(CastMemberModelFromDomain(m)).Error; err != nil {
		return nil, fmt.Errorf("creating cast member: %w", err)
	}
	return m, nil
}

// Update overwrites an existing cast member row.
func (r *CastMemberRepository) Update(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	if err := r.db.WithContext(ctx).Save(CastMemberModelFromDomain(m)).Error; err != nil {
		return nil, fmt.Errorf("updating cast member: %w", err)
	}
	return m, nil
}

// FindByID loads a cast member by id.
func (r *CastMemberRepository) FindByID(ctx context.Context, id catalog.CastMemberID) (*castmember.CastMember, error) {
	var model CastMemberModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("cast member %s not found", id))
		}
		return nil, fmt.Errorf("finding cast member: %w", err)
	}
	return model.ToDomain(), nil
}

// Delete removes a cast member row. Removing a missing id is a no-op.
func (r *CastMemberRepository) Delete(ctx context.Context, id catalog.CastMemberID) error {
	if err := r.db.WithContext(ctx).Delete(&CastMemberModel{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("deleting cast member: %w", err)
	}
	return nil
}

// ExistsByIDs returns the subset of ids that exist, in one query.
func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, ids []catalog.CastMemberID) ([]catalog.CastMemberID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	var found []string
	err := r.db.WithContext(ctx).
		Model(&CastMemberModel{}).
		Where("id IN ?", raw).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("checking cast member ids: %w", err)
	}
	return catalog.CastMemberIDs(found), nil
}
