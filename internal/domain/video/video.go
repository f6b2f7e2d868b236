package video

import (
	"strings"
	"time"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 4000
)

// Video is the aggregate root of the catalog. It owns the metadata of one
// title plus up to five optional media attachments, and raises a
// MediaCreatedEvent whenever an audio-video media that still needs
// encoding is attached.
type Video struct {
	catalog.AggregateRoot

	id          catalog.VideoID
	title       string
	description string
	launchedAt  int
	duration    float64
	rating      Rating
	opened      bool
	published   bool

	categories  []catalog.CategoryID
	genres      []catalog.GenreID
	castMembers []catalog.CastMemberID

	video         *AudioVideoMedia
	trailer       *AudioVideoMedia
	banner        *ImageMedia
	thumbnail     *ImageMedia
	thumbnailHalf *ImageMedia

	createdAt time.Time
	updatedAt time.Time
}

// NewVideo creates a Video with no media attached. The result is a
// candidate: callers must run Validate against a Notification before
// persisting it.
func NewVideo(
	title, description string,
	launchedAt int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []catalog.CategoryID,
	genres []catalog.GenreID,
	castMembers []catalog.CastMemberID,
) *Video {
	now := time.Now()
	return &Video{
		id:          catalog.NewVideoID(),
		title:       title,
		description: description,
		launchedAt:  launchedAt,
		duration:    duration,
		rating:      rating,
		opened:      opened,
		published:   published,
		categories:  uniqueCategoryIDs(categories),
		genres:      uniqueGenreIDs(genres),
		castMembers: uniqueCastMemberIDs(castMembers),
		createdAt:   now,
		updatedAt:   now,
	}
}

// With rehydrates a Video from persisted state. No validation and no
// events; the persistence layer is the only intended caller.
func With(
	id catalog.VideoID,
	title, description string,
	launchedAt int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []catalog.CategoryID,
	genres []catalog.GenreID,
	castMembers []catalog.CastMemberID,
	videoMedia, trailer *AudioVideoMedia,
	banner, thumbnail, thumbnailHalf *ImageMedia,
	createdAt, updatedAt time.Time,
) *Video {
	return &Video{
		id:            id,
		title:         title,
		description:   description,
		launchedAt:    launchedAt,
		duration:      duration,
		rating:        rating,
		opened:        opened,
		published:     published,
		categories:    uniqueCategoryIDs(categories),
		genres:        uniqueGenreIDs(genres),
		castMembers:   uniqueCastMemberIDs(castMembers),
		video:         videoMedia,
		trailer:       trailer,
		banner:        banner,
		thumbnail:     thumbnail,
		thumbnailHalf: thumbnailHalf,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update overwrites the metadata and reference sets of the video and bumps
// updatedAt. Media slots are left untouched; they change only through the
// Update*Media methods.
func (v *Video) Update(
	title, description string,
	launchedAt int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories []catalog.CategoryID,
	genres []catalog.GenreID,
	castMembers []catalog.CastMemberID,
) *Video {
	v.title = title
	v.description = description
	v.launchedAt = launchedAt
	v.duration = duration
	v.rating = rating
	v.opened = opened
	v.published = published
	v.categories = uniqueCategoryIDs(categories)
	v.genres = uniqueGenreIDs(genres)
	v.castMembers = uniqueCastMemberIDs(castMembers)
	v.touch()
	return v
}

// Validate appends every invariant violation to the notification. It never
// stops at the first problem so a caller sees all of them at once.
func (v *Video) Validate(notification *validation.Notification) {
	if strings.TrimSpace(v.title) == "" {
		notification.AppendMessage("'title' should not be null")
	} else if len(v.title) > maxTitleLength {
		notification.AppendMessage("'title' must be between 1 and 255 characters")
	}
	if len(v.description) > maxDescriptionLength {
		notification.AppendMessage("'description' must not exceed 4000 characters")
	}
	if v.launchedAt == 0 {
		notification.AppendMessage("'launchedAt' should not be null")
	}
	if v.rating == "" {
		notification.AppendMessage("'rating' should not be null")
	}
}

// UpdateVideoMedia attaches or replaces the main video media.
func (v *Video) UpdateVideoMedia(media AudioVideoMedia) *Video {
	v.video = &media
	v.touch()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// UpdateTrailerMedia attaches or replaces the trailer media.
func (v *Video) UpdateTrailerMedia(media AudioVideoMedia) *Video {
	v.trailer = &media
	v.touch()
	v.onAudioVideoMediaUpdated(media)
	return v
}

// UpdateBannerMedia attaches or replaces the banner image.
func (v *Video) UpdateBannerMedia(media ImageMedia) *Video {
	v.banner = &media
	v.touch()
	return v
}

// UpdateThumbnailMedia attaches or replaces the thumbnail image.
func (v *Video) UpdateThumbnailMedia(media ImageMedia) *Video {
	v.thumbnail = &media
	v.touch()
	return v
}

// UpdateThumbnailHalfMedia attaches or replaces the half-size thumbnail.
func (v *Video) UpdateThumbnailHalfMedia(media ImageMedia) *Video {
	v.thumbnailHalf = &media
	v.touch()
	return v
}

func (v *Video) onAudioVideoMediaUpdated(media AudioVideoMedia) {
	if media.IsPendingEncode() {
		v.RegisterEvent(NewMediaCreatedEvent(v.id, media))
	}
}

func (v *Video) touch() {
	v.updatedAt = time.Now()
}

// ID returns the video id.
func (v *Video) ID() catalog.VideoID { return v.id }

// Title returns the title.
func (v *Video) Title() string { return v.title }

// Description returns the description.
func (v *Video) Description() string { return v.description }

// LaunchedAt returns the launch year.
func (v *Video) LaunchedAt() int { return v.launchedAt }

// Duration returns the duration.
func (v *Video) Duration() float64 { return v.duration }

// Rating returns the age classification.
func (v *Video) Rating() Rating { return v.rating }

// Opened reports whether the video is open content.
func (v *Video) Opened() bool { return v.opened }

// Published reports whether the video is published.
func (v *Video) Published() bool { return v.published }

// Categories returns a copy of the referenced category ids.
func (v *Video) Categories() []catalog.CategoryID {
	out := make([]catalog.CategoryID, len(v.categories))
	copy(out, v.categories)
	return out
}

// Genres returns a copy of the referenced genre ids.
func (v *Video) Genres() []catalog.GenreID {
	out := make([]catalog.GenreID, len(v.genres))
	copy(out, v.genres)
	return out
}

// CastMembers returns a copy of the referenced cast member ids.
func (v *Video) CastMembers() []catalog.CastMemberID {
	out := make([]catalog.CastMemberID, len(v.castMembers))
	copy(out, v.castMembers)
	return out
}

// Video returns the main media slot, nil when empty.
func (v *Video) Video() *AudioVideoMedia { return v.video }

// Trailer returns the trailer slot, nil when empty.
func (v *Video) Trailer() *AudioVideoMedia { return v.trailer }

// Banner returns the banner slot, nil when empty.
func (v *Video) Banner() *ImageMedia { return v.banner }

// Thumbnail returns the thumbnail slot, nil when empty.
func (v *Video) Thumbnail() *ImageMedia { return v.thumbnail }

// ThumbnailHalf returns the half-size thumbnail slot, nil when empty.
func (v *Video) ThumbnailHalf() *ImageMedia { return v.thumbnailHalf }

// CreatedAt returns when the video was created.
func (v *Video) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns when the video last changed.
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }

func uniqueCategoryIDs(ids []catalog.CategoryID) []catalog.CategoryID {
	return uniqueIDs(ids)
}

func uniqueGenreIDs(ids []catalog.GenreID) []catalog.GenreID {
	return uniqueIDs(ids)
}

func uniqueCastMemberIDs(ids []catalog.CastMemberID) []catalog.CastMemberID {
	return uniqueIDs(ids)
}

func uniqueIDs[ID comparable](ids []ID) []ID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
