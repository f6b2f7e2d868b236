package video_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamhaven/catalog/internal/domain/video"
)

func TestNewAudioVideoMedia_StartsPending(t *testing.T) {
	m := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")

	assert.NotEmpty(t, m.ID())
	assert.Equal(t, video.MediaStatusPending, m.Status())
	assert.True(t, m.IsPendingEncode())
	assert.Empty(t, m.EncodedLocation())
}

func TestAudioVideoMedia_EqualsByContentIdentity(t *testing.T) {
	a := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")
	b := video.NewAudioVideoMedia("abc123", "renamed.mp4", "videos/raw/movie.mp4")

	// Same checksum and raw location, different generated ids and names.
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equals(b))
}

func TestAudioVideoMedia_NotEqualOnDifferentChecksum(t *testing.T) {
	a := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")
	b := video.NewAudioVideoMedia("def456", "movie.mp4", "videos/raw/movie.mp4")

	assert.False(t, a.Equals(b))
}

func TestAudioVideoMedia_NotEqualOnDifferentLocation(t *testing.T) {
	a := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")
	b := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/other.mp4")

	assert.False(t, a.Equals(b))
}

func TestAudioVideoMedia_StatusTransitionsAreCopies(t *testing.T) {
	m := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")

	processing := m.Processing()
	assert.Equal(t, video.MediaStatusProcessing, processing.Status())
	assert.Equal(t, video.MediaStatusPending, m.Status())

	completed := processing.Completed("videos/encoded/movie.mp4")
	assert.Equal(t, video.MediaStatusCompleted, completed.Status())
	assert.Equal(t, "videos/encoded/movie.mp4", completed.EncodedLocation())
	assert.Empty(t, processing.EncodedLocation())

	failed := processing.Failed()
	assert.Equal(t, video.MediaStatusError, failed.Status())
}

func TestImageMedia_EqualsByContentIdentity(t *testing.T) {
	a := video.NewImageMedia("img123", "banner.png", "videos/banner.png")
	b := video.NewImageMedia("img123", "other.png", "videos/banner.png")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(video.NewImageMedia("img123", "banner.png", "videos/elsewhere.png")))
}
