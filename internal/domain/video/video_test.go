package video_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamhaven/catalog/internal/domain/catalog"
	"github.com/streamhaven/catalog/internal/domain/validation"
	"github.com/streamhaven/catalog/internal/domain/video"
)

func newValidVideo() *video.Video {
	return video.NewVideo(
		"System Design Interviews",
		"A deep dive into scalable architectures",
		2022, 120.10, false, false,
		video.RatingAge12,
		[]catalog.CategoryID{"cat-1"},
		[]catalog.GenreID{"genre-1"},
		[]catalog.CastMemberID{"member-1"},
	)
}

func TestNewVideo_Valid(t *testing.T) {
	v := newValidVideo()

	n := validation.NewNotification()
	v.Validate(n)

	assert.False(t, n.HasErrors())
	assert.NotEmpty(t, v.ID())
	assert.False(t, v.CreatedAt().IsZero())
	assert.Equal(t, v.CreatedAt(), v.UpdatedAt())
	assert.Nil(t, v.Video())
	assert.Nil(t, v.Trailer())
	assert.Nil(t, v.Banner())
	assert.Nil(t, v.Thumbnail())
	assert.Nil(t, v.ThumbnailHalf())
	assert.Empty(t, v.PendingEvents())
}

func TestNewVideo_DeduplicatesReferenceSets(t *testing.T) {
	v := video.NewVideo(
		"Title", "", 2022, 100, false, false, video.RatingFree,
		[]catalog.CategoryID{"a", "b", "a"},
		[]catalog.GenreID{"g", "g"},
		nil,
	)

	assert.Equal(t, []catalog.CategoryID{"a", "b"}, v.Categories())
	assert.Equal(t, []catalog.GenreID{"g"}, v.Genres())
	assert.Empty(t, v.CastMembers())
}

func TestVideo_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*testVideoParams)
		expected []string
	}{
		{
			name:     "blank title",
			mutate:   func(p *testVideoParams) { p.title = "   " },
			expected: []string{"'title' should not be null"},
		},
		{
			name:     "title too long",
			mutate:   func(p *testVideoParams) { p.title = strings.Repeat("x", 256) },
			expected: []string{"'title' must be between 1 and 255 characters"},
		},
		{
			name:     "description too long",
			mutate:   func(p *testVideoParams) { p.description = strings.Repeat("x", 4001) },
			expected: []string{"'description' must not exceed 4000 characters"},
		},
		{
			name:     "missing launch year",
			mutate:   func(p *testVideoParams) { p.launchedAt = 0 },
			expected: []string{"'launchedAt' should not be null"},
		},
		{
			name:     "missing rating",
			mutate:   func(p *testVideoParams) { p.rating = "" },
			expected: []string{"'rating' should not be null"},
		},
		{
			name: "everything wrong at once",
			mutate: func(p *testVideoParams) {
				p.title = ""
				p.launchedAt = 0
				p.rating = ""
			},
			expected: []string{
				"'title' should not be null",
				"'launchedAt' should not be null",
				"'rating' should not be null",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &testVideoParams{
				title:      "Title",
				launchedAt: 2022,
				rating:     video.RatingAge12,
			}
			tt.mutate(p)

			v := video.NewVideo(p.title, p.description, p.launchedAt, 100, false, false, p.rating, nil, nil, nil)
			n := validation.NewNotification()
			v.Validate(n)

			assert.Equal(t, tt.expected, n.Messages())
		})
	}
}

type testVideoParams struct {
	title       string
	description string
	launchedAt  int
	rating      video.Rating
}

func TestVideo_TitleAtMaxLengthIsValid(t *testing.T) {
	v := video.NewVideo(strings.Repeat("x", 255), "", 2022, 100, false, false, video.RatingFree, nil, nil, nil)

	n := validation.NewNotification()
	v.Validate(n)

	assert.False(t, n.HasErrors())
}

func TestVideo_Update_OverwritesMetadataAndKeepsMedia(t *testing.T) {
	v := newValidVideo()
	banner := video.NewImageMedia("bnr", "banner.png", "videos/banner.png")
	v.UpdateBannerMedia(banner)
	before := v.UpdatedAt()
	created := v.CreatedAt()

	v.Update("New Title", "New description", 2024, 95, true, true, video.RatingAge16,
		[]catalog.CategoryID{"c2"}, nil, nil)

	assert.Equal(t, "New Title", v.Title())
	assert.Equal(t, video.RatingAge16, v.Rating())
	assert.Equal(t, []catalog.CategoryID{"c2"}, v.Categories())
	assert.True(t, v.Opened())
	assert.True(t, v.Published())
	assert.NotNil(t, v.Banner())
	assert.True(t, banner.Equals(*v.Banner()))
	assert.False(t, v.UpdatedAt().Before(before))
	assert.Equal(t, created, v.CreatedAt())
}

func TestVideo_UpdateVideoMedia_PendingRegistersEvent(t *testing.T) {
	v := newValidVideo()
	media := video.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/movie.mp4")

	v.UpdateVideoMedia(media)

	pending := v.PendingEvents()
	assert.Len(t, pending, 1)

	event, ok := pending[0].(*video.MediaCreatedEvent)
	assert.True(t, ok)
	assert.Equal(t, v.ID().String(), event.VideoID)
	assert.Equal(t, media.ID(), event.MediaID)
	assert.Equal(t, "videos/raw/movie.mp4", event.FilePath)
	assert.Equal(t, video.EventTypeMediaCreated, event.EventType())
}

func TestVideo_UpdateTrailerMedia_PendingRegistersEvent(t *testing.T) {
	v := newValidVideo()
	media := video.NewAudioVideoMedia("abc", "trailer.mp4", "videos/raw/trailer.mp4")

	v.UpdateTrailerMedia(media)

	assert.Len(t, v.PendingEvents(), 1)
}

func TestVideo_UpdateVideoMedia_AlreadyEncodedRegistersNothing(t *testing.T) {
	v := newValidVideo()
	media := video.AudioVideoMediaWith("id-1", "abc", "movie.mp4",
		"videos/raw/movie.mp4", "videos/encoded/movie.mp4", video.MediaStatusCompleted)

	v.UpdateVideoMedia(media)

	assert.Empty(t, v.PendingEvents())
}

func TestVideo_ImageMediaRegistersNoEvents(t *testing.T) {
	v := newValidVideo()

	v.UpdateBannerMedia(video.NewImageMedia("b", "b.png", "videos/b.png"))
	v.UpdateThumbnailMedia(video.NewImageMedia("t", "t.png", "videos/t.png"))
	v.UpdateThumbnailHalfMedia(video.NewImageMedia("h", "h.png", "videos/h.png"))

	assert.Empty(t, v.PendingEvents())
	assert.NotNil(t, v.Banner())
	assert.NotNil(t, v.Thumbnail())
	assert.NotNil(t, v.ThumbnailHalf())
}

func TestVideo_ClearEvents(t *testing.T) {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/movie.mp4"))

	v.ClearEvents()

	assert.Empty(t, v.PendingEvents())
}

func TestVideo_PendingEventsReturnsCopy(t *testing.T) {
	v := newValidVideo()
	v.UpdateVideoMedia(video.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/movie.mp4"))

	pending := v.PendingEvents()
	pending[0] = nil

	assert.NotNil(t, v.PendingEvents()[0])
}
