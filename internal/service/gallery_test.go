package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/mocks"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

func strPtr(s string) *string { return &s }

func publicURL(path string) string { return "https://cdn.example/" + path }

func TestGroupSubmissions_RoundTrip(t *testing.T) {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	submissions := []domain.Submission{
		{ID: "s3", CountryID: "7", StoragePath: "7/legacy.jpg", CreatedAt: base.Add(2 * time.Hour), Caption: strPtr("old")},
		{ID: "s2", CountryID: "7", StoragePath: "7/b1-x/2.jpg", CreatedAt: base.Add(time.Minute), Caption: strPtr("newest in batch")},
		{ID: "s1", CountryID: "7", StoragePath: "7/b1-x/1.jpg", CreatedAt: base, Caption: strPtr("oldest in batch")},
	}

	groups := GroupSubmissions(submissions, nil, publicURL)

	require.Len(t, groups, 2)
	assert.Equal(t, "7/legacy.jpg", groups[0].GroupKey)
	assert.True(t, groups[0].Legacy)
	require.Len(t, groups[0].Images, 1)

	assert.Equal(t, "7/b1-x", groups[1].GroupKey)
	assert.False(t, groups[1].Legacy)
	require.Len(t, groups[1].Images, 2)
	assert.Equal(t, "7/b1-x/1.jpg", groups[1].Images[0].StoragePath)
	assert.Equal(t, "7/b1-x/2.jpg", groups[1].Images[1].StoragePath)
	assert.Equal(t, "https://cdn.example/7/b1-x/1.jpg", groups[1].Images[0].PublicURL)

	// metadata comes from the first submission seen, which is the newest
	assert.Equal(t, "newest in batch", *groups[1].Caption)
	assert.Equal(t, base.Add(time.Minute), groups[1].CreatedAt)
}

func TestGroupSubmissions_PrefersBatchMetadata(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	batchID := "01jbatch"
	batches := map[string]domain.Batch{
		batchID: {ID: batchID, CountryID: "7", Caption: strPtr("From the batch"), AuthorName: strPtr("Ingrid"), CreatedAt: created},
	}
	submissions := []domain.Submission{
		{ID: "s1", CountryID: "7", BatchID: &batchID, StoragePath: "7/01jbatch/1.jpg", Caption: strPtr("row caption"), CreatedAt: created.Add(time.Second)},
	}

	groups := GroupSubmissions(submissions, batches, publicURL)

	require.Len(t, groups, 1)
	assert.Equal(t, "From the batch", *groups[0].Caption)
	assert.Equal(t, "Ingrid", *groups[0].AuthorName)
	assert.Equal(t, created, groups[0].CreatedAt)
}

func TestGroupSubmissions_OrdersGroupsNewestFirstWithKeyTiebreak(t *testing.T) {
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	submissions := []domain.Submission{
		{ID: "a", CountryID: "7", StoragePath: "7/b/1.jpg", CreatedAt: at},
		{ID: "b", CountryID: "7", StoragePath: "7/a/1.jpg", CreatedAt: at},
		{ID: "c", CountryID: "7", StoragePath: "7/c/1.jpg", CreatedAt: at.Add(time.Hour)},
	}

	groups := GroupSubmissions(submissions, nil, publicURL)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"7/c", "7/a", "7/b"}, []string{groups[0].GroupKey, groups[1].GroupKey, groups[2].GroupKey})
}

func TestGroupSubmissions_Empty(t *testing.T) {
	groups := GroupSubmissions(nil, nil, publicURL)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

type GalleryServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockCountry    *mocks.CountryRepository
	mockSubmission *mocks.SubmissionRepository
	mockBatch      *mocks.BatchRepository
	mockSearch     *mocks.SearchRepository
	mockStorage    *mocks.BlobStorage
	service        *GalleryService
}

func (s *GalleryServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCountry = new(mocks.CountryRepository)
	s.mockSubmission = new(mocks.SubmissionRepository)
	s.mockBatch = new(mocks.BatchRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockStorage = new(mocks.BlobStorage)

	s.mockRepo.On("Country").Return(s.mockCountry)
	s.mockRepo.On("Submission").Return(s.mockSubmission)
	s.mockRepo.On("Batch").Return(s.mockBatch)
	s.mockRepo.On("Search").Return(s.mockSearch)
	s.mockStorage.On("PublicURL", mock.AnythingOfType("string")).Return(publicURL).Maybe()

	s.service = NewGalleryService(s.mockRepo, s.mockStorage, logger.NewLogger("test"))
}

func TestGalleryService(t *testing.T) {
	suite.Run(t, new(GalleryServiceTestSuite))
}

func (s *GalleryServiceTestSuite) TestListApproved_Success() {
	// Arrange
	ctx := context.Background()
	batchID := "b1-x"
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s.mockCountry.On("GetActiveByID", ctx, "7").Return(&domain.Country{ID: "7", IsActive: true}, nil)
	s.mockSubmission.On("ListApproved", ctx, "7").Return([]domain.Submission{
		{ID: "s2", CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/2.jpg", CreatedAt: at.Add(time.Second)},
		{ID: "s1", CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/1.jpg", CreatedAt: at},
		{ID: "s0", CountryID: "7", StoragePath: "7/legacy.jpg", CreatedAt: at.Add(-time.Hour)},
	}, nil)
	s.mockBatch.On("ListByIDs", ctx, []string{"b1-x"}).Return([]domain.Batch{
		{ID: "b1-x", CountryID: "7", Caption: strPtr("Harbour"), CreatedAt: at},
	}, nil)

	// Act
	first, err := s.service.ListApproved(ctx, "7")
	second, err2 := s.service.ListApproved(ctx, "7")

	// Assert
	s.Require().NoError(err)
	s.Require().NoError(err2)
	s.Equal(first, second)
	s.Require().Len(first, 2)
	s.Equal("7/b1-x", first[0].GroupKey)
	s.Equal("Harbour", *first[0].Caption)
	s.Len(first[0].Images, 2)
	s.Equal("7/legacy.jpg", first[1].GroupKey)
	s.mockSubmission.AssertNumberOfCalls(s.T(), "ListApproved", 2)
}

func (s *GalleryServiceTestSuite) TestListApproved_InactiveCountry() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveByID", ctx, "7").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.ListApproved(ctx, "7")

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.mockSubmission.AssertNotCalled(s.T(), "ListApproved", mock.Anything, mock.Anything)
}

func (s *GalleryServiceTestSuite) TestListApproved_StoreFailure() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveByID", ctx, "7").Return(&domain.Country{ID: "7"}, nil)
	s.mockSubmission.On("ListApproved", ctx, "7").Return(nil, errors.New("timeout"))

	// Act
	_, err := s.service.ListApproved(ctx, "7")

	// Assert
	s.ErrorIs(err, ErrStoreRead)
}

func (s *GalleryServiceTestSuite) TestSearch_DropsStaleHits() {
	// Arrange
	ctx := context.Background()
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s.mockCountry.On("GetActiveByID", ctx, "7").Return(&domain.Country{ID: "7"}, nil)
	s.mockSearch.On("Search", ctx, "7", "harbour", defaultSearchLimit).Return([]string{"s1", "s2", "s3"}, nil)
	s.mockSubmission.On("ListByIDs", ctx, []string{"s1", "s2", "s3"}).Return([]domain.Submission{
		{ID: "s1", CountryID: "7", StoragePath: "7/b1/1.jpg", Approved: true, CreatedAt: at},
		{ID: "s2", CountryID: "7", StoragePath: "7/b2/1.jpg", Approved: false, CreatedAt: at},
		{ID: "s3", CountryID: "8", StoragePath: "8/b3/1.jpg", Approved: true, CreatedAt: at},
	}, nil)
	s.mockBatch.On("ListByIDs", ctx, []string{}).Return([]domain.Batch{}, nil)

	// Act
	groups, err := s.service.Search(ctx, "7", "  harbour ")

	// Assert
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal("7/b1", groups[0].GroupKey)
}

func (s *GalleryServiceTestSuite) TestSearch_EmptyQuery() {
	_, err := s.service.Search(context.Background(), "7", "   ")
	s.ErrorIs(err, ErrMissingFields)
}
