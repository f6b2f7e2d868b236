package catalog

import "github.com/google/uuid"

// Identifiers are opaque string values, one type per aggregate kind so a
// genre id can never be passed where a category id is expected. Equality
// and map keys work by value.

// CategoryID identifies a Category aggregate.
type CategoryID string

// NewCategoryID generates a new random CategoryID.
func NewCategoryID() CategoryID {
	return CategoryID(uuid.NewString())
}

// GenreID identifies a Genre aggregate.
type GenreID string

// NewGenreID generates a new random GenreID.
func NewGenreID() GenreID {
	return GenreID(uuid.NewString())
}

// CastMemberID identifies a CastMember aggregate.
type CastMemberID string

// NewCastMemberID generates a new random CastMemberID.
func NewCastMemberID() CastMemberID {
	return CastMemberID(uuid.NewString())
}

// VideoID identifies a Video aggregate.
type VideoID string

// NewVideoID generates a new random VideoID.
func NewVideoID() VideoID {
	return VideoID(uuid.NewString())
}

func (id CategoryID) String() string   { return string(id) }
func (id GenreID) String() string      { return string(id) }
func (id CastMemberID) String() string { return string(id) }
func (id VideoID) String() string      { return string(id) }

// CategoryIDs converts raw string ids into typed ids, dropping blanks and
// duplicates while preserving first-seen order.
func CategoryIDs(raw []string) []CategoryID {
	return mapIDs(raw, func(s string) CategoryID { return CategoryID(s) })
}

// GenreIDs converts raw string ids into typed ids.
func GenreIDs(raw []string) []GenreID {
	return mapIDs(raw, func(s string) GenreID { return GenreID(s) })
}

// CastMemberIDs converts raw string ids into typed ids.
func CastMemberIDs(raw []string) []CastMemberID {
	return mapIDs(raw, func(s string) CastMemberID { return CastMemberID(s) })
}

func mapIDs[ID comparable](raw []string, from func(string) ID) []ID {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[ID]struct{}, len(raw))
	out := make([]ID, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		id := from(s)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
