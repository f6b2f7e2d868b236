package video_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	videoapp "github.com/streamhaven/catalog/internal/application/video"
	"github.com/streamhaven/catalog/internal/domain/catalog"
	domainevents "github.com/streamhaven/catalog/internal/domain/events"
	"github.com/streamhaven/catalog/internal/domain/validation"
	"github.com/streamhaven/catalog/internal/domain/video"
	apperrors "github.com/streamhaven/catalog/pkg/errors"
	"github.com/streamhaven/catalog/pkg/logger"
)

// MockVideoRepository is a mock for the video repository. Create and
// Update hand back the aggregate they were given, like the real
// repository does.
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return v, nil
}

func (m *MockVideoRepository) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return v, nil
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id catalog.VideoID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id catalog.VideoID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMediaStorage is a mock for the media resource storage.
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) StoreAudioVideo(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.AudioVideoMedia, error) {
	args := m.Called(ctx, id, resource, mediaType)
	return args.Get(0).(video.AudioVideoMedia), args.Error(1)
}

func (m *MockMediaStorage) StoreImage(ctx context.Context, id catalog.VideoID, resource video.Resource, mediaType video.MediaType) (video.ImageMedia, error) {
	args := m.Called(ctx, id, resource, mediaType)
	return args.Get(0).(video.ImageMedia), args.Error(1)
}

func (m *MockMediaStorage) GetResource(ctx context.Context, id catalog.VideoID, mediaType video.MediaType) (*video.Resource, error) {
	args := m.Called(ctx, id, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Resource), args.Error(1)
}

func (m *MockMediaStorage) ClearResources(ctx context.Context, id catalog.VideoID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryExists mocks the category existence lookup.
type MockCategoryExists struct {
	mock.Mock
}

func (m *MockCategoryExists) ExistsByIDs(ctx context.Context, ids []catalog.CategoryID) ([]catalog.CategoryID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CategoryID), args.Error(1)
}

// MockGenreExists mocks the genre existence lookup.
type MockGenreExists struct {
	mock.Mock
}

func (m *MockGenreExists) ExistsByIDs(ctx context.Context, ids []catalog.GenreID) ([]catalog.GenreID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.GenreID), args.Error(1)
}

// MockCastMemberExists mocks the cast member existence lookup.
type MockCastMemberExists struct {
	mock.Mock
}

func (m *MockCastMemberExists) ExistsByIDs(ctx context.Context, ids []catalog.CastMemberID) ([]catalog.CastMemberID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CastMemberID), args.Error(1)
}

// MockPublisher is a mock for the event publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domainevents.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type VideoServiceTestSuite struct {
	suite.Suite

	ctx         context.Context
	videoRepo   *MockVideoRepository
	storage     *MockMediaStorage
	categories  *MockCategoryExists
	genres      *MockGenreExists
	castMembers *MockCastMemberExists
	publisher   *MockPublisher
	service     *videoapp.Service
}

func (suite *VideoServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.videoRepo = new(MockVideoRepository)
	suite.storage = new(MockMediaStorage)
	suite.categories = new(MockCategoryExists)
	suite.genres = new(MockGenreExists)
	suite.castMembers = new(MockCastMemberExists)
	suite.publisher = new(MockPublisher)

	suite.service = videoapp.NewService(
		suite.videoRepo,
		suite.storage,
		suite.categories,
		suite.genres,
		suite.castMembers,
		suite.publisher,
		logger.NewNoopLogger(),
	)
}

func (suite *VideoServiceTestSuite) TearDownTest() {
	suite.videoRepo.AssertExpectations(suite.T())
	suite.storage.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
	suite.genres.AssertExpectations(suite.T())
	suite.castMembers.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *VideoServiceTestSuite) validCommand() videoapp.CreateVideoCommand {
	return videoapp.CreateVideoCommand{
		Title:       "System Design Interviews",
		Description: "A deep dive into scalable architectures",
		LaunchedAt:  2022,
		Duration:    120.10,
		Opened:      false,
		Published:   false,
		Rating:      "12",
	}
}

func (suite *VideoServiceTestSuite) TestCreateVideo_Success() {
	// Arrange
	cmd := suite.validCommand()
	cmd.Categories = []string{"cat-1"}
	cmd.Genres = []string{"genre-1"}
	cmd.CastMembers = []string{"member-1"}

	suite.categories.On("ExistsByIDs", suite.ctx, []catalog.CategoryID{"cat-1"}).
		Return([]catalog.CategoryID{"cat-1"}, nil)
	suite.genres.On("ExistsByIDs", suite.ctx, []catalog.GenreID{"genre-1"}).
		Return([]catalog.GenreID{"genre-1"}, nil)
	suite.castMembers.On("ExistsByIDs", suite.ctx, []catalog.CastMemberID{"member-1"}).
		Return([]catalog.CastMemberID{"member-1"}, nil)

	var saved *video.Video
	suite.videoRepo.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	// Act
	id, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), id)
	assert.Equal(suite.T(), cmd.Title, saved.Title())
	assert.Equal(suite.T(), cmd.Description, saved.Description())
	assert.Equal(suite.T(), video.RatingAge12, saved.Rating())
	assert.Equal(suite.T(), []catalog.CategoryID{"cat-1"}, saved.Categories())
	assert.Nil(suite.T(), saved.Video())
	assert.Empty(suite.T(), saved.PendingEvents())
}

func (suite *VideoServiceTestSuite) TestCreateVideo_NoReferences_SkipsLookups() {
	// Arrange
	cmd := suite.validCommand()

	suite.videoRepo.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).Return(nil, nil)

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.NoError(suite.T(), err)
	suite.categories.AssertNotCalled(suite.T(), "ExistsByIDs", mock.Anything, mock.Anything)
	suite.genres.AssertNotCalled(suite.T(), "ExistsByIDs", mock.Anything, mock.Anything)
	suite.castMembers.AssertNotCalled(suite.T(), "ExistsByIDs", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestCreateVideo_WithPendingMedia_PublishesEvent() {
	// Arrange
	cmd := suite.validCommand()
	res := video.NewResource([]byte("raw"), "abc123", "video/mp4", "movie.mp4")
	cmd.Video = &res

	stored := video.NewAudioVideoMedia("abc123", "movie.mp4", "videos/raw/movie.mp4")
	suite.storage.On("StoreAudioVideo", suite.ctx, mock.AnythingOfType("catalog.VideoID"), res, video.MediaTypeVideo).
		Return(stored, nil)

	var saved *video.Video
	suite.videoRepo.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e domainevents.Event) bool {
		created, ok := e.(*video.MediaCreatedEvent)
		return ok && created.MediaID == stored.ID()
	})).Return(nil)

	// Act
	id, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), id)
	assert.NotNil(suite.T(), saved.Video())
	assert.True(suite.T(), saved.Video().IsPendingEncode())
	assert.Empty(suite.T(), saved.PendingEvents(), "events are drained after publishing")
}

func (suite *VideoServiceTestSuite) TestCreateVideo_NullTitleAndRating() {
	// Arrange
	cmd := suite.validCommand()
	cmd.Title = ""
	cmd.Rating = "NC-17"

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	var notification *validation.Notification
	assert.ErrorAs(suite.T(), err, &notification)
	assert.Equal(suite.T(), []string{
		"'title' should not be null",
		"'rating' should not be null",
	}, notification.Messages())
	suite.videoRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.storage.AssertNotCalled(suite.T(), "StoreAudioVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestCreateVideo_MissingCategories() {
	// Arrange
	cmd := suite.validCommand()
	cmd.Categories = []string{"cat-a", "cat-b", "cat-c"}

	suite.categories.On("ExistsByIDs", suite.ctx, []catalog.CategoryID{"cat-a", "cat-b", "cat-c"}).
		Return([]catalog.CategoryID{"cat-b"}, nil).
		Once()

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	var notification *validation.Notification
	assert.ErrorAs(suite.T(), err, &notification)
	assert.Equal(suite.T(), []string{"Some Categories could not be found: cat-a, cat-c"}, notification.Messages())
	suite.videoRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestCreateVideo_AggregatesAllProblems() {
	// Arrange
	cmd := suite.validCommand()
	cmd.Title = ""
	cmd.Categories = []string{"cat-x"}
	cmd.Genres = []string{"genre-y"}

	suite.categories.On("ExistsByIDs", suite.ctx, []catalog.CategoryID{"cat-x"}).
		Return([]catalog.CategoryID{}, nil)
	suite.genres.On("ExistsByIDs", suite.ctx, []catalog.GenreID{"genre-y"}).
		Return([]catalog.GenreID{}, nil)

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert: every check ran, nothing short-circuited.
	var notification *validation.Notification
	assert.ErrorAs(suite.T(), err, &notification)
	assert.Equal(suite.T(), []string{
		"Some Categories could not be found: cat-x",
		"Some Genres could not be found: genre-y",
		"'title' should not be null",
	}, notification.Messages())
}

func (suite *VideoServiceTestSuite) TestCreateVideo_StoreMediaFailure_ClearsResources() {
	// Arrange
	cmd := suite.validCommand()
	res := video.NewResource([]byte("raw"), "abc123", "video/mp4", "movie.mp4")
	cmd.Video = &res

	suite.storage.On("StoreAudioVideo", suite.ctx, mock.AnythingOfType("catalog.VideoID"), res, video.MediaTypeVideo).
		Return(video.AudioVideoMedia{}, errors.New("bucket unavailable"))
	suite.storage.On("ClearResources", suite.ctx, mock.AnythingOfType("catalog.VideoID")).
		Return(nil).
		Once()

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInternal(err))
	suite.videoRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.storage.AssertNumberOfCalls(suite.T(), "ClearResources", 1)
}

func (suite *VideoServiceTestSuite) TestCreateVideo_SaveFailure_ClearsResources() {
	// Arrange: all five slots supplied, then the aggregate save fails.
	cmd := suite.validCommand()
	videoRes := video.NewResource([]byte("v"), "v-chk", "video/mp4", "movie.mp4")
	trailerRes := video.NewResource([]byte("t"), "t-chk", "video/mp4", "trailer.mp4")
	bannerRes := video.NewResource([]byte("b"), "b-chk", "image/png", "banner.png")
	thumbRes := video.NewResource([]byte("th"), "th-chk", "image/png", "thumb.png")
	halfRes := video.NewResource([]byte("h"), "h-chk", "image/png", "half.png")
	cmd.Video = &videoRes
	cmd.Trailer = &trailerRes
	cmd.Banner = &bannerRes
	cmd.Thumbnail = &thumbRes
	cmd.ThumbnailHalf = &halfRes

	suite.storage.On("StoreAudioVideo", suite.ctx, mock.AnythingOfType("catalog.VideoID"), videoRes, video.MediaTypeVideo).
		Return(video.NewAudioVideoMedia("v-chk", "movie.mp4", "videos/raw/movie.mp4"), nil)
	suite.storage.On("StoreAudioVideo", suite.ctx, mock.AnythingOfType("catalog.VideoID"), trailerRes, video.MediaTypeTrailer).
		Return(video.NewAudioVideoMedia("t-chk", "trailer.mp4", "videos/raw/trailer.mp4"), nil)
	suite.storage.On("StoreImage", suite.ctx, mock.AnythingOfType("catalog.VideoID"), bannerRes, video.MediaTypeBanner).
		Return(video.NewImageMedia("b-chk", "banner.png", "videos/banner.png"), nil)
	suite.storage.On("StoreImage", suite.ctx, mock.AnythingOfType("catalog.VideoID"), thumbRes, video.MediaTypeThumbnail).
		Return(video.NewImageMedia("th-chk", "thumb.png", "videos/thumb.png"), nil)
	suite.storage.On("StoreImage", suite.ctx, mock.AnythingOfType("catalog.VideoID"), halfRes, video.MediaTypeThumbnailHalf).
		Return(video.NewImageMedia("h-chk", "half.png", "videos/half.png"), nil)

	suite.videoRepo.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).
		Return(nil, errors.New("connection reset"))
	suite.storage.On("ClearResources", suite.ctx, mock.AnythingOfType("catalog.VideoID")).
		Return(nil).
		Once()

	// Act
	_, err := suite.service.Create(suite.ctx, cmd)

	// Assert
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInternal(err))
	suite.storage.AssertNumberOfCalls(suite.T(), "ClearResources", 1)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) existingVideo() *video.Video {
	trailer := video.NewAudioVideoMedia("tr-checksum", "trailer.mp4", "videos/raw/trailer.mp4")
	return video.With(
		catalog.NewVideoID(),
		"Old Title", "Old description",
		2018, 90, false, false,
		video.RatingAge10,
		nil, nil, nil,
		nil, &trailer,
		nil, nil, nil,
		timeFixture(), timeFixture(),
	)
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_Success() {
	// Arrange
	existing := suite.existingVideo()
	cmd := videoapp.UpdateVideoCommand{
		ID:          existing.ID().String(),
		Title:       "New Title",
		Description: "New description",
		LaunchedAt:  2023,
		Duration:    95,
		Rating:      "16",
	}

	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)

	var saved *video.Video
	suite.videoRepo.On("Update", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	// Act
	id, err := suite.service.Update(suite.ctx, cmd)

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID(), id)
	assert.Equal(suite.T(), "New Title", saved.Title())
	assert.Equal(suite.T(), video.RatingAge16, saved.Rating())
	assert.NotNil(suite.T(), saved.Trailer(), "absent media slots keep their current value")
	assert.Equal(suite.T(), "tr-checksum", saved.Trailer().Checksum())
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_NotFound() {
	// Arrange
	suite.videoRepo.On("FindByID", suite.ctx, catalog.VideoID("missing")).
		Return(nil, apperrors.NotFound("not found"))

	// Act
	_, err := suite.service.Update(suite.ctx, videoapp.UpdateVideoCommand{ID: "missing", Title: "x", LaunchedAt: 2020, Rating: "L"})

	// Assert
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
	assert.Contains(suite.T(), err.Error(), "Video with ID missing was not found")
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_ReplacesOnlySuppliedMedia() {
	// Arrange
	existing := suite.existingVideo()
	res := video.NewResource([]byte("img"), "bnr789", "image/png", "banner.png")
	cmd := videoapp.UpdateVideoCommand{
		ID:         existing.ID().String(),
		Title:      "New Title",
		LaunchedAt: 2023,
		Rating:     "16",
		Banner:     &res,
	}

	stored := video.NewImageMedia("bnr789", "banner.png", "videos/banner.png")
	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)
	suite.storage.On("StoreImage", suite.ctx, existing.ID(), res, video.MediaTypeBanner).Return(stored, nil)

	var saved *video.Video
	suite.videoRepo.On("Update", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	// Act
	_, err := suite.service.Update(suite.ctx, cmd)

	// Assert
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), saved.Banner())
	assert.True(suite.T(), stored.Equals(*saved.Banner()))
	assert.NotNil(suite.T(), saved.Trailer())
	suite.storage.AssertNotCalled(suite.T(), "StoreAudioVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateVideo_SaveFailure_LeavesStoredMedia() {
	// Arrange
	existing := suite.existingVideo()
	res := video.NewResource([]byte("img"), "bnr789", "image/png", "banner.png")
	cmd := videoapp.UpdateVideoCommand{
		ID:         existing.ID().String(),
		Title:      "New Title",
		LaunchedAt: 2023,
		Rating:     "16",
		Banner:     &res,
	}

	stored := video.NewImageMedia("bnr789", "banner.png", "videos/banner.png")
	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)
	suite.storage.On("StoreImage", suite.ctx, existing.ID(), res, video.MediaTypeBanner).Return(stored, nil)
	suite.videoRepo.On("Update", suite.ctx, mock.AnythingOfType("*video.Video")).
		Return(nil, errors.New("connection reset"))

	// Act
	_, err := suite.service.Update(suite.ctx, cmd)

	// Assert: the stored namespace still backs the last persisted
	// aggregate, so no compensating clear runs on the update path.
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInternal(err))
	suite.storage.AssertNotCalled(suite.T(), "ClearResources", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_CompletesVideoMedia() {
	// Arrange
	pending := video.NewAudioVideoMedia("vd-checksum", "movie.mp4", "videos/raw/movie.mp4")
	existing := video.With(
		catalog.NewVideoID(),
		"Title", "", 2020, 100, false, false, video.RatingFree,
		nil, nil, nil,
		&pending, nil, nil, nil, nil,
		timeFixture(), timeFixture(),
	)

	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)

	var saved *video.Video
	suite.videoRepo.On("Update", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	// Act
	err := suite.service.UpdateMediaStatus(suite.ctx, videoapp.UpdateMediaStatusCommand{
		VideoID:     existing.ID().String(),
		MediaID:     pending.ID(),
		Status:      video.MediaStatusCompleted,
		EncodedPath: "videos/encoded/movie.mp4",
	})

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), video.MediaStatusCompleted, saved.Video().Status())
	assert.Equal(suite.T(), "videos/encoded/movie.mp4", saved.Video().EncodedLocation())
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_TrailerMatch() {
	// Arrange
	trailer := video.NewAudioVideoMedia("tr-checksum", "trailer.mp4", "videos/raw/trailer.mp4")
	existing := video.With(
		catalog.NewVideoID(),
		"Title", "", 2020, 100, false, false, video.RatingFree,
		nil, nil, nil,
		nil, &trailer, nil, nil, nil,
		timeFixture(), timeFixture(),
	)

	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)

	var saved *video.Video
	suite.videoRepo.On("Update", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*video.Video) }).
		Return(nil, nil)

	// Act
	err := suite.service.UpdateMediaStatus(suite.ctx, videoapp.UpdateMediaStatusCommand{
		VideoID: existing.ID().String(),
		MediaID: trailer.ID(),
		Status:  video.MediaStatusProcessing,
	})

	// Assert
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), video.MediaStatusProcessing, saved.Trailer().Status())
}

func (suite *VideoServiceTestSuite) TestUpdateMediaStatus_UnknownMedia_NoOp() {
	// Arrange
	pending := video.NewAudioVideoMedia("vd-checksum", "movie.mp4", "videos/raw/movie.mp4")
	existing := video.With(
		catalog.NewVideoID(),
		"Title", "", 2020, 100, false, false, video.RatingFree,
		nil, nil, nil,
		&pending, nil, nil, nil, nil,
		timeFixture(), timeFixture(),
	)

	suite.videoRepo.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)

	// Act
	err := suite.service.UpdateMediaStatus(suite.ctx, videoapp.UpdateMediaStatusCommand{
		VideoID: existing.ID().String(),
		MediaID: "replaced-media-id",
		Status:  video.MediaStatusCompleted,
	})

	// Assert
	assert.NoError(suite.T(), err)
	suite.videoRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *VideoServiceTestSuite) TestGetVideo_NotFound() {
	// Arrange
	suite.videoRepo.On("FindByID", suite.ctx, catalog.VideoID("missing")).
		Return(nil, apperrors.NotFound("not found"))

	// Act
	_, err := suite.service.Get(suite.ctx, "missing")

	// Assert
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *VideoServiceTestSuite) TestDeleteVideo_ClearsResources() {
	// Arrange
	id := catalog.NewVideoID()
	suite.videoRepo.On("Delete", suite.ctx, id).Return(nil)
	suite.storage.On("ClearResources", suite.ctx, id).Return(nil).Once()

	// Act
	err := suite.service.Delete(suite.ctx, id.String())

	// Assert
	assert.NoError(suite.T(), err)
}

func (suite *VideoServiceTestSuite) TestGetMediaResource_NotFound() {
	// Arrange
	id := catalog.NewVideoID()
	suite.storage.On("GetResource", suite.ctx, id, video.MediaTypeBanner).Return(nil, nil)

	// Act
	_, err := suite.service.GetMediaResource(suite.ctx, id.String(), video.MediaTypeBanner)

	// Assert
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func timeFixture() time.Time {
	return time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func TestVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
