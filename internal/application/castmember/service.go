package castmember

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalog/internal/domain/castmember"
	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
	"github.com/streamhaven/catalog/pkg/interfaces"
)

// CreateCastMemberCommand carries the input for creating a cast member.
type CreateCastMemberCommand struct {
	Name string
	Type string
}

// UpdateCastMemberCommand overwrites an existing cast member.
type UpdateCastMemberCommand struct {
	ID   string
	Name string
	Type string
}

// Service handles the cast member use cases.
type Service struct {
	members castmember.Repository
	logger  interfaces.Logger
}

// NewService creates a cast member application service.
func NewService(members castmember.Repository, logger interfaces.Logger) *Service {
	return &Service{members: members, logger: logger}
}

// Create validates and persists a new cast member, returning its id.
func (s *Service) Create(ctx context.Context, cmd CreateCastMemberCommand) (catalog.CastMemberID, error) {
	memberType, _ := castmember.ParseType(cmd.Type)
	m := castmember.NewCastMember(cmd.Name, memberType)

	notification := validation.NewNotification()
	m.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	saved, err := s.members.Create(ctx, m)
	if err != nil {
		return "", err
	}
	s.logger.Info("cast member created", interfaces.String("cast_member_id", saved.ID().String()))
	return saved.ID(), nil
}

// Update loads, mutates and persists an existing cast member.
func (s *Service) Update(ctx context.Context, cmd UpdateCastMemberCommand) (catalog.CastMemberID, error) {
	id := catalog.CastMemberID(cmd.ID)
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFound(fmt.Sprintf("CastMember with ID %s was not found", id))
		}
		return "", err
	}

	memberType, _ := castmember.ParseType(cmd.Type)
	m.Update(cmd.Name, memberType)

	notification := validation.NewNotification()
	m.Validate(notification)
	if notification.HasErrors() {
		return "", notification
	}

	if _, err := s.members.Update(ctx, m); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns a cast member by id.
func (s *Service) Get(ctx context.Context, rawID string) (*castmember.CastMember, error) {
	id := catalog.CastMemberID(rawID)
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound(fmt.Sprintf("CastMember with ID %s was not found", id))
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a cast member. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	return s.members.Delete(ctx, catalog.CastMemberID(rawID))
}
