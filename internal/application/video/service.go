package video

import (
	"context"
	"fmt"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/events"
	"github.com/streamhaven/catalog/internal/domain/validation"
	"github.com/streamhaven/catalog/internal/domain/video"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
	"github.com/streamhaven/catalog/pkg/interfaces"
)

// Labels used in reference-existence error messages.
const (
	labelCategories  = "Categories"
	labelGenres      = "Genres"
	labelCastMembers = "CastMembers"
)

// CategoryExists is the slice of the category repository the orchestrator
// needs for reference validation. GenreExists and CastMemberExists are the
// equivalents for the other referenced aggregates.
type CategoryExists interface {
	ExistsByIDs(ctx context.Context, ids []catalog.CategoryID) ([]catalog.CategoryID, error)
}

type GenreExists interface {
	ExistsByIDs(ctx context.Context, ids []catalog.GenreID) ([]catalog.GenreID, error)
}

type CastMemberExists interface {
	ExistsByIDs(ctx context.Context, ids []catalog.CastMemberID) ([]catalog.CastMemberID, error)
}

// Service orchestrates the video use cases: validate the command, check
// that every referenced aggregate exists, store uploaded media, then save
// the aggregate. Media storage and the video store are independent
// systems, so a failure after media was stored triggers a compensating
// ClearResources rather than a transaction rollback.
type Service struct {
	videos      video.Repository
	media       video.MediaStorage
	categories  CategoryExists
	genres      GenreExists
	castMembers CastMemberExists
	publisher   events.Publisher
	logger      interfaces.Logger
}

// NewService creates a video application service.
func NewService(
	videos video.Repository,
	media video.MediaStorage,
	categories CategoryExists,
	genres GenreExists,
	castMembers CastMemberExists,
	publisher events.Publisher,
	logger interfaces.Logger,
) *Service {
	return &Service{
		videos:      videos,
		media:       media,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create validates the command, stores any supplied media and persists a
// new video, returning its id. Validation and reference problems come back
// as a single *validation.Notification carrying every message.
func (s *Service) Create(ctx context.Context, cmd CreateVideoCommand) (catalog.VideoID, error) {
	rating, _ := video.ParseRating(cmd.Rating)
	categoryIDs := catalog.CategoryIDs(cmd.Categories)
	genreIDs := catalog.GenreIDs(cmd.Genres)
	memberIDs := catalog.CastMemberIDs(cmd.CastMembers)

	// All checks run before the fail/continue decision so the caller
	// sees every problem in one round trip.
	notification := validation.NewNotification()
	notification.Merge(validation.CheckExists(ctx, labelCategories, categoryIDs, s.categories.ExistsByIDs))
	notification.Merge(validation.CheckExists(ctx, labelGenres, genreIDs, s.genres.ExistsByIDs))
	notification.Merge(validation.CheckExists(ctx, labelCastMembers, memberIDs, s.castMembers.ExistsByIDs))

	v := video.NewVideo(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Published,
		rating,
		categoryIDs,
		genreIDs,
		memberIDs,
	)
	v.Validate(notification)

	if notification.HasErrors() {
		return "", notification
	}

	if err := s.storeMedia(ctx, v, mediaUploads(cmd.Video, cmd.Trailer, cmd.Banner, cmd.Thumbnail, cmd.ThumbnailHalf)); err != nil {
		s.rollbackMedia(ctx, v.ID())
		return "", s.internalError(v.ID(), err)
	}

	saved, err := s.videos.Create(ctx, v)
	if err != nil {
		s.rollbackMedia(ctx, v.ID())
		return "", s.internalError(v.ID(), err)
	}

	s.publishEvents(ctx, saved)
	return saved.ID(), nil
}

// Update loads an existing video, overwrites its metadata and re-resolves
// the supplied media slots. A slot whose resource is absent from the
// command keeps its current media.
//
// On a persistence failure no compensating ClearResources runs: the stored
// namespace still backs the last persisted aggregate, and wiping it would
// destroy media that aggregate references. Create has no such baseline,
// which is why only Create clears.
func (s *Service) Update(ctx context.Context, cmd UpdateVideoCommand) (catalog.VideoID, error) {
	id := catalog.VideoID(cmd.ID)
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", s.notFound(id)
		}
		return "", s.internalError(id, err)
	}

	rating, _ := video.ParseRating(cmd.Rating)
	categoryIDs := catalog.CategoryIDs(cmd.Categories)
	genreIDs := catalog.GenreIDs(cmd.Genres)
	memberIDs := catalog.CastMemberIDs(cmd.CastMembers)

	notification := validation.NewNotification()
	notification.Merge(validation.CheckExists(ctx, labelCategories, categoryIDs, s.categories.ExistsByIDs))
	notification.Merge(validation.CheckExists(ctx, labelGenres, genreIDs, s.genres.ExistsByIDs))
	notification.Merge(validation.CheckExists(ctx, labelCastMembers, memberIDs, s.castMembers.ExistsByIDs))

	v.Update(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Published,
		rating,
		categoryIDs,
		genreIDs,
		memberIDs,
	)
	v.Validate(notification)

	if notification.HasErrors() {
		return "", notification
	}

	if err := s.storeMedia(ctx, v, mediaUploads(cmd.Video, cmd.Trailer, cmd.Banner, cmd.Thumbnail, cmd.ThumbnailHalf)); err != nil {
		return "", s.internalError(id, err)
	}

	saved, err := s.videos.Update(ctx, v)
	if err != nil {
		s.logger.Warn("video update failed after media was stored; stored media left in place",
			interfaces.String("video_id", id.String()),
			interfaces.Error(err))
		return "", s.internalError(id, err)
	}

	s.publishEvents(ctx, saved)
	return saved.ID(), nil
}

// UpdateMediaStatus applies an encoding outcome to the matching media slot
// and persists the aggregate. A media id matching neither the video nor
// the trailer slot is a no-op: encoder callbacks are at-least-once and may
// refer to media that has since been replaced.
func (s *Service) UpdateMediaStatus(ctx context.Context, cmd UpdateMediaStatusCommand) error {
	switch cmd.Status {
	case video.MediaStatusProcessing, video.MediaStatusCompleted, video.MediaStatusError:
	default:
		return nil
	}

	id := catalog.VideoID(cmd.VideoID)
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return s.notFound(id)
		}
		return s.internalError(id, err)
	}

	switch {
	case v.Video() != nil && v.Video().ID() == cmd.MediaID:
		v.UpdateVideoMedia(applyStatus(*v.Video(), cmd))
	case v.Trailer() != nil && v.Trailer().ID() == cmd.MediaID:
		v.UpdateTrailerMedia(applyStatus(*v.Trailer(), cmd))
	default:
		return nil
	}

	if _, err := s.videos.Update(ctx, v); err != nil {
		return s.internalError(id, err)
	}
	return nil
}

// Get returns the video with the given id.
func (s *Service) Get(ctx context.Context, rawID string) (*video.Video, error) {
	id := catalog.VideoID(rawID)
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, s.notFound(id)
		}
		return nil, s.internalError(id, err)
	}
	return v, nil
}

// Delete removes the video and everything stored for it in the media
// storage.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id := catalog.VideoID(rawID)
	if err := s.videos.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return s.notFound(id)
		}
		return s.internalError(id, err)
	}
	if err := s.media.ClearResources(ctx, id); err != nil {
		return s.internalError(id, err)
	}
	return nil
}

// GetMediaResource returns the raw resource stored for one media slot.
func (s *Service) GetMediaResource(ctx context.Context, rawID string, mediaType video.MediaType) (*video.Resource, error) {
	id := catalog.VideoID(rawID)
	resource, err := s.media.GetResource(ctx, id, mediaType)
	if err != nil {
		return nil, s.internalError(id, err)
	}
	if resource == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("resource %s not found for video %s", mediaType, id))
	}
	return resource, nil
}

type upload struct {
	mediaType video.MediaType
	resource  *video.Resource
}

func mediaUploads(videoRes, trailer, banner, thumbnail, thumbnailHalf *video.Resource) []upload {
	return []upload{
		{video.MediaTypeVideo, videoRes},
		{video.MediaTypeTrailer, trailer},
		{video.MediaTypeBanner, banner},
		{video.MediaTypeThumbnail, thumbnail},
		{video.MediaTypeThumbnailHalf, thumbnailHalf},
	}
}

// storeMedia pushes each present upload through the media storage and
// attaches the result to the in-memory aggregate. Nothing is persisted
// per-slot; the aggregate is saved once, fully assembled.
func (s *Service) storeMedia(ctx context.Context, v *video.Video, uploads []upload) error {
	for _, u := range uploads {
		if u.resource == nil {
			continue
		}
		switch u.mediaType {
		case video.MediaTypeVideo:
			media, err := s.media.StoreAudioVideo(ctx, v.ID(), *u.resource, u.mediaType)
			if err != nil {
				return err
			}
			v.UpdateVideoMedia(media)
		case video.MediaTypeTrailer:
			media, err := s.media.StoreAudioVideo(ctx, v.ID(), *u.resource, u.mediaType)
			if err != nil {
				return err
			}
			v.UpdateTrailerMedia(media)
		case video.MediaTypeBanner:
			media, err := s.media.StoreImage(ctx, v.ID(), *u.resource, u.mediaType)
			if err != nil {
				return err
			}
			v.UpdateBannerMedia(media)
		case video.MediaTypeThumbnail:
			media, err := s.media.StoreImage(ctx, v.ID(), *u.resource, u.mediaType)
			if err != nil {
				return err
			}
			v.UpdateThumbnailMedia(media)
		case video.MediaTypeThumbnailHalf:
			media, err := s.media.StoreImage(ctx, v.ID(), *u.resource, u.mediaType)
			if err != nil {
				return err
			}
			v.UpdateThumbnailHalfMedia(media)
		}
	}
	return nil
}

// rollbackMedia is the compensating action for the create path. Best
// effort: a failure here is logged, not surfaced, because the original
// error is the one the caller needs.
func (s *Service) rollbackMedia(ctx context.Context, id catalog.VideoID) {
	if err := s.media.ClearResources(ctx, id); err != nil {
		s.logger.Error("failed to clear media resources after video save failure",
			interfaces.String("video_id", id.String()),
			interfaces.Error(err))
	}
}

// publishEvents drains the pending events of a saved aggregate and hands
// them to the publisher. Publish failures are logged and do not fail the
// command; the save has already succeeded.
func (s *Service) publishEvents(ctx context.Context, v *video.Video) {
	for _, event := range v.PendingEvents() {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish domain event",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("video_id", event.AggregateID()),
				interfaces.Error(err))
		}
	}
	v.ClearEvents()
}

func applyStatus(media video.AudioVideoMedia, cmd UpdateMediaStatusCommand) video.AudioVideoMedia {
	switch cmd.Status {
	case video.MediaStatusProcessing:
		return media.Processing()
	case video.MediaStatusCompleted:
		return media.Completed(cmd.EncodedPath)
	case video.MediaStatusError:
		return media.Failed()
	default:
		return media
	}
}

func (s *Service) notFound(id catalog.VideoID) error {
	return apperrors.NotFound(fmt.Sprintf("Video with ID %s was not found", id))
}

func (s *Service) internalError(id catalog.VideoID, err error) error {
	return apperrors.Wrap(apperrors.ErrorTypeInternal,
		fmt.Sprintf("an error occurred while processing video %s", id), err)
}
