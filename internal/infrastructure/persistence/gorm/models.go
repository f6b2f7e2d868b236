package gorm

import (
	"time"

	"github.com/streamhaven/catalog/internal/domain/castmember"
	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/category"
	"github.com/streamhaven/catalog/internal/domain/genre"
	"github.com/streamhaven/catalog/internal/domain/video"
)

// CategoryModel is the persistence shape of a Category.
type CategoryModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// TableName sets the table for CategoryModel.
func (CategoryModel) TableName() string { return "categories" }

// ToDomain converts the model to a Category aggregate.
func (m *CategoryModel) ToDomain() *category.Category {
	return category.With(
		catalog.CategoryID(m.ID),
		m.Name,
		m.Description,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

// CategoryModelFromDomain converts a Category aggregate to its model.
func CategoryModelFromDomain(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.Active(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}

// GenreModel is the persistence shape of a Genre. Category references are
// stored as a JSON-serialized id list.
type GenreModel struct {
	ID         string   `gorm:"type:uuid;primaryKey"`
	Name       string   `gorm:"not null;index"`
	Active     bool     `gorm:"not null;default:true"`
	Categories []string `gorm:"serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// TableName sets the table for GenreModel.
func (GenreModel) TableName() string { return "genres" }

// ToDomain converts the model to a Genre aggregate.
func (m *GenreModel) ToDomain() *genre.Genre {
	return genre.With(
		catalog.GenreID(m.ID),
		m.Name,
		m.Active,
		catalog.CategoryIDs(m.Categories),
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

// GenreModelFromDomain converts a Genre aggregate to its model.
func GenreModelFromDomain(g *genre.Genre) *GenreModel {
	categories := g.Categories()
	raw := make([]string, len(categories))
	for i, id := range categories {
		raw[i] = id.String()
	}
	return &GenreModel{
		ID:         g.ID().String(),
		Name:       g.Name(),
		Active:     g.Active(),
		Categories: raw,
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}

// CastMemberModel is the persistence shape of a CastMember.
type CastMemberModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null;index"`
	Type      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the table for CastMemberModel.
func (CastMemberModel) TableName() string { return "cast_members" }

// ToDomain converts the model to a CastMember aggregate.
func (m *CastMemberModel) ToDomain() *castmember.CastMember {
	return castmember.With(
		catalog.CastMemberID(m.ID),
		m.Name,
		castmember.Type(m.Type),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// CastMemberModelFromDomain converts a CastMember aggregate to its model.
func CastMemberModelFromDomain(c *castmember.CastMember) *CastMemberModel {
	return &CastMemberModel{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Type:      string(c.MemberType()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

// AudioVideoMediaModel holds one audio-video slot, embedded into
// VideoModel with a per-slot column prefix. An empty MediaID means the
// slot is empty.
type AudioVideoMediaModel struct {
	MediaID         string `gorm:"type:uuid"`
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          string `gorm:"type:varchar(20)"`
}

// ToDomain converts the embedded columns to a media value object, nil when
// the slot is empty.
func (m AudioVideoMediaModel) ToDomain() *video.AudioVideoMedia {
	if m.MediaID == "" {
		return nil
	}
	media := video.AudioVideoMediaWith(m.MediaID, m.Checksum, m.Name, m.RawLocation, m.EncodedLocation, video.MediaStatus(m.Status))
	return &media
}

func audioVideoMediaModel(media *video.AudioVideoMedia) AudioVideoMediaModel {
	if media == nil {
		return AudioVideoMediaModel{}
	}
	return AudioVideoMediaModel{
		MediaID:         media.ID(),
		Checksum:        media.Checksum(),
		Name:            media.Name(),
		RawLocation:     media.RawLocation(),
		EncodedLocation: media.EncodedLocation(),
		Status:          string(media.Status()),
	}
}

// ImageMediaModel holds one image slot, embedded into VideoModel.
type ImageMediaModel struct {
	MediaID  string `gorm:"type:uuid"`
	Checksum string
	Name     string
	Location string
}

// ToDomain converts the embedded columns to an image media value object,
// nil when the slot is empty.
func (m ImageMediaModel) ToDomain() *video.ImageMedia {
	if m.MediaID == "" {
		return nil
	}
	media := video.ImageMediaWith(m.MediaID, m.Checksum, m.Name, m.Location)
	return &media
}

func imageMediaModel(media *video.ImageMedia) ImageMediaModel {
	if media == nil {
		return ImageMediaModel{}
	}
	return ImageMediaModel{
		MediaID:  media.ID(),
		Checksum: media.Checksum(),
		Name:     media.Name(),
		Location: media.Location(),
	}
}

// VideoModel is the persistence shape of a Video aggregate. Reference id
// sets are JSON-serialized; the five media slots are embedded columns.
type VideoModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	LaunchedAt  int    `gorm:"not null"`
	Duration    float64
	Rating      string `gorm:"type:varchar(5)"`
	Opened      bool
	Published   bool

	Categories  []string `gorm:"serializer:json"`
	Genres      []string `gorm:"serializer:json"`
	CastMembers []string `gorm:"serializer:json"`

	Video         AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:video_"`
	Trailer       AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:trailer_"`
	Banner        ImageMediaModel      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail     ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbnailHalf ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName sets the table for VideoModel.
func (VideoModel) TableName() string { return "videos" }

// ToDomain converts the model to a Video aggregate.
func (m *VideoModel) ToDomain() *video.Video {
	return video.With(
		catalog.VideoID(m.ID),
		m.Title,
		m.Description,
		m.LaunchedAt,
		m.Duration,
		m.Opened,
		m.Published,
		video.Rating(m.Rating),
		catalog.CategoryIDs(m.Categories),
		catalog.GenreIDs(m.Genres),
		catalog.CastMemberIDs(m.CastMembers),
		m.Video.ToDomain(),
		m.Trailer.ToDomain(),
		m.Banner.ToDomain(),
		m.Thumbnail.ToDomain(),
		m.ThumbnailHalf.ToDomain(),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// VideoModelFromDomain converts a Video aggregate to its model.
func VideoModelFromDomain(v *video.Video) *VideoModel {
	return &VideoModel{
		ID:            v.ID().String(),
		Title:         v.Title(),
		Description:   v.Description(),
		LaunchedAt:    v.LaunchedAt(),
		Duration:      v.Duration(),
		Rating:        v.Rating().String(),
		Opened:        v.Opened(),
		Published:     v.Published(),
		Categories:    categoryIDStrings(v.Categories()),
		Genres:        genreIDStrings(v.Genres()),
		CastMembers:   castMemberIDStrings(v.CastMembers()),
		Video:         audioVideoMediaModel(v.Video()),
		Trailer:       audioVideoMediaModel(v.Trailer()),
		Banner:        imageMediaModel(v.Banner()),
		Thumbnail:     imageMediaModel(v.Thumbnail()),
		ThumbnailHalf: imageMediaModel(v.ThumbnailHalf()),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func categoryIDStrings(ids []catalog.CategoryID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func genreIDStrings(ids []catalog.GenreID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func castMemberIDStrings(ids []catalog.CastMemberID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
