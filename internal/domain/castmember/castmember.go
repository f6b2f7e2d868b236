package castmember

import (
	"context"
	"strings"
	"time"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
)

const maxNameLength = 255

// Type is the role of a cast member. The set is closed.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// ParseType maps raw input onto a Type; unknown input returns false.
func ParseType(raw string) (Type, bool) {
	switch Type(raw) {
	case TypeActor, TypeDirector:
		return Type(raw), true
	}
	return "", false
}

// CastMember is an actor or director referenced by videos.
type CastMember struct {
	id         catalog.CastMemberID
	name       string
	memberType Type
	createdAt  time.Time
	updatedAt  time.Time
}

// NewCastMember builds a candidate CastMember. Run Validate against a
// Notification before persisting.
func NewCastMember(name string, memberType Type) *CastMember {
	now := time.Now()
	return &CastMember{
		id:         catalog.NewCastMemberID(),
		name:       name,
		memberType: memberType,
		createdAt:  now,
		updatedAt:  now,
	}
}

// With rehydrates a CastMember from persisted state.
func With(id catalog.CastMemberID, name string, memberType Type, createdAt, updatedAt time.Time) *CastMember {
	return &CastMember{
		id:         id,
		name:       name,
		memberType: memberType,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Validate appends invariant violations to the notification.
func (m *CastMember) Validate(notification *validation.Notification) {
	name := strings.TrimSpace(m.name)
	if name == "" {
		notification.AppendMessage("'name' should not be null")
	} else if len(name) > maxNameLength {
		notification.AppendMessage("'name' must be between 1 and 255 characters")
	}
	if m.memberType == "" {
		notification.AppendMessage("'type' should not be null")
	}
}

// Update overwrites name and type.
func (m *CastMember) Update(name string, memberType Type) *CastMember {
	m.name = name
	m.memberType = memberType
	m.updatedAt = time.Now()
	return m
}

// ID returns the cast member id.
func (m *CastMember) ID() catalog.CastMemberID { return m.id }

// Name returns the name.
func (m *CastMember) Name() string { return m.name }

// MemberType returns the role.
func (m *CastMember) MemberType() Type { return m.memberType }

// CreatedAt returns the creation time.
func (m *CastMember) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the last update time.
func (m *CastMember) UpdatedAt() time.Time { return m.updatedAt }

// Repository persists CastMember aggregates.
type Repository interface {
	Create(ctx context.Context, m *CastMember) (*CastMember, error)
	Update(ctx context.Context, m *CastMember) (*CastMember, error)
	FindByID(ctx context.Context, id catalog.CastMemberID) (*CastMember, error)
	Delete(ctx context.Context, id catalog.CastMemberID) error
	ExistsByIDs(ctx context.Context, ids []catalog.CastMemberID) ([]catalog.CastMemberID, error)
}
