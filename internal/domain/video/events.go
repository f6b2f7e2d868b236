package video

import (
	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/events"
)

// AggregateType is the aggregate kind used in events raised by Video.
const AggregateType = "Video"

// EventTypeMediaCreated is raised when a pending-encode audio-video media
// is attached to a video. Downstream encoders consume it to pick up work.
const EventTypeMediaCreated = "video.media.created"

// MediaCreatedEvent signals that a raw media file was stored and waits for
// encoding.
type MediaCreatedEvent struct {
	events.BaseEvent
	VideoID  string `json:"video_id"`
	MediaID  string `json:"media_id"`
	FilePath string `json:"file_path"`
}

// NewMediaCreatedEvent creates the event for the given video and media.
func NewMediaCreatedEvent(videoID catalog.VideoID, media AudioVideoMedia) *MediaCreatedEvent {
	return &MediaCreatedEvent{
		BaseEvent: events.NewBaseEvent(videoID.String(), AggregateType, EventTypeMediaCreated),
		VideoID:   videoID.String(),
		MediaID:   media.ID(),
		FilePath:  media.RawLocation(),
	}
}
