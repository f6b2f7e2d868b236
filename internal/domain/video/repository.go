package video

import (
	"context"

	"github.com/streamhaven/catalog/internal/domain/catalog"
)

// Repository persists Video aggregates. Create and Update save the
// aggregate plus all attached media references in a single call with a
// single outcome.
type Repository interface {
	Create(ctx context.Context, v *Video) (*Video, error)
	Update(ctx context.Context, v *Video) (*Video, error)
	FindByID(ctx context.Context, id catalog.VideoID) (*Video, error)
	Delete(ctx context.Context, id catalog.VideoID) error
}

// MediaStorage stores and retrieves the binary media resources of a video,
// keyed by (video id, media type). Storing the same pair twice overwrites.
type MediaStorage interface {
	StoreAudioVideo(ctx context.Context, id catalog.VideoID, resource Resource, mediaType MediaType) (AudioVideoMedia, error)
	StoreImage(ctx context.Context, id catalog.VideoID, resource Resource, mediaType MediaType) (ImageMedia, error)
	// GetResource returns nil when no resource is stored for the pair.
	GetResource(ctx context.Context, id catalog.VideoID, mediaType MediaType) (*Resource, error)
	// ClearResources deletes everything stored for the video id. Clearing
	// a video with nothing stored is a no-op, never an error.
	ClearResources(ctx context.Context, id catalog.VideoID) error
}
