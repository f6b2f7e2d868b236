package video

import "github.com/streamhaven/catalog/internal/domain/video"

// CreateVideoCommand carries everything needed to create a video. The five
// resource fields are optional; a nil resource leaves the slot empty.
type CreateVideoCommand struct {
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateVideoCommand overwrites the metadata of an existing video. A nil
// resource leaves the corresponding media slot unchanged; a present one
// replaces it.
type UpdateVideoCommand struct {
	ID          string
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string

	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateMediaStatusCommand reports an encoding outcome for one media of a
// video. Encoder callbacks are delivered at least once, so a media id that
// matches neither slot is ignored rather than treated as an error.
type UpdateMediaStatusCommand struct {
	VideoID     string
	MediaID     string
	Status      video.MediaStatus
	EncodedPath string
}
