package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/mocks"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

type DeletionServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockTx         *mocks.PostgresRepository
	mockAdminCode  *mocks.AdminCodeRepository
	mockSubmission *mocks.SubmissionRepository
	mockBatch      *mocks.BatchRepository
	mockStorage    *mocks.BlobStorage
	mockQueue      *mocks.QueueService
	mockPublisher  *mocks.EventPublisher
	service        *DeletionService
}

func (s *DeletionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTx = new(mocks.PostgresRepository)
	s.mockAdminCode = new(mocks.AdminCodeRepository)
	s.mockSubmission = new(mocks.SubmissionRepository)
	s.mockBatch = new(mocks.BatchRepository)
	s.mockStorage = new(mocks.BlobStorage)
	s.mockQueue = new(mocks.QueueService)
	s.mockPublisher = new(mocks.EventPublisher)

	s.mockRepo.On("AdminCode").Return(s.mockAdminCode)
	s.mockRepo.On("Submission").Return(s.mockSubmission)
	s.mockTx.On("Submission").Return(s.mockSubmission)
	s.mockTx.On("Batch").Return(s.mockBatch)
	s.mockRepo.On("Transaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.PostgresRepository) error) error {
			return fn(s.mockTx)
		},
	).Maybe()

	s.service = NewDeletionService(s.mockRepo, s.mockStorage, s.mockQueue, s.mockPublisher, logger.NewLogger("test"))
	s.service.now = func() time.Time { return fixedNow }
}

func TestDeletionService(t *testing.T) {
	suite.Run(t, new(DeletionServiceTestSuite))
}

func (s *DeletionServiceTestSuite) authorized(ctx context.Context) {
	s.mockAdminCode.On("ExistsByHash", ctx, utils.SHA1Hex("letmein")).Return(true, nil)
}

func (s *DeletionServiceTestSuite) TestDelete_MissingFields() {
	ctx := context.Background()

	_, err := s.service.Delete(ctx, DeleteRequest{GroupKey: "7/b1-x"})
	s.ErrorIs(err, ErrMissingFields)

	_, err = s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein"})
	s.ErrorIs(err, ErrMissingFields)
}

func (s *DeletionServiceTestSuite) TestDelete_RejectsKeysThatAreNotGroupKeys() {
	ctx := context.Background()

	for _, key := range []string{"7", "7/", "/b1-x", "7//", "7/b1-x/1.jpg"} {
		s.Run(key, func() {
			// Act
			_, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", GroupKey: key})

			// Assert
			s.ErrorIs(err, ErrMissingFields)
		})
	}
	s.mockAdminCode.AssertNotCalled(s.T(), "ExistsByHash", mock.Anything, mock.Anything)
	s.mockSubmission.AssertNotCalled(s.T(), "ListByPathPrefix", mock.Anything, mock.Anything)
	s.mockSubmission.AssertNotCalled(s.T(), "DeleteByPathPrefix", mock.Anything, mock.Anything)
	s.mockStorage.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_Unauthorized() {
	// Arrange
	ctx := context.Background()
	s.mockAdminCode.On("ExistsByHash", ctx, utils.SHA1Hex("guess")).Return(false, nil)

	// Act
	_, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "guess", GroupKey: "7/b1-x"})

	// Assert
	s.ErrorIs(err, ErrUnauthorized)
	s.mockSubmission.AssertNotCalled(s.T(), "ListByPathPrefix", mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_GroupRemovesBlobsRowsAndBatch() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	batchID := "b1-x"
	rows := []domain.Submission{
		{ID: "s1", CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/1.jpg"},
		{ID: "s2", CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/2.jpg"},
	}
	s.mockSubmission.On("ListByPathPrefix", ctx, "7/b1-x/").Return(rows, nil)
	s.mockStorage.On("Remove", ctx, []string{"7/b1-x/1.jpg", "7/b1-x/2.jpg"}).Return(nil)
	s.mockSubmission.On("DeleteByPathPrefix", ctx, "7/b1-x/").Return(int64(2), nil)
	s.mockBatch.On("Delete", ctx, "7", "b1-x").Return(nil)
	s.mockQueue.On("SendDeindexMessage", ctx, "7", []string{"s1", "s2"}).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e *domain.GalleryEvent) bool {
		return e.Type == domain.GalleryEventBatchDeleted && e.GroupKey == "7/b1-x"
	})).Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", GroupKey: "7/b1-x"})

	// Assert
	s.Require().NoError(err)
	s.Equal(DeleteModeGroup, result.Mode)
	s.Equal(int64(2), result.Deleted)
	s.mockStorage.AssertExpectations(s.T())
	s.mockBatch.AssertExpectations(s.T())
	s.mockQueue.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *DeletionServiceTestSuite) TestDelete_GroupKeyWinsOverSubmissionID() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	s.mockSubmission.On("ListByPathPrefix", ctx, "7/b1-x/").Return([]domain.Submission{}, nil)
	s.mockSubmission.On("DeleteByPathPrefix", ctx, "7/b1-x/").Return(int64(0), nil)
	s.mockBatch.On("Delete", ctx, "7", "b1-x").Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{
		AdminCode:    "letmein",
		GroupKey:     "7/b1-x/",
		SubmissionID: uuid.NewString(),
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(DeleteModeGroup, result.Mode)
	s.mockSubmission.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_EmptyGroupSucceeds() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	s.mockSubmission.On("ListByPathPrefix", ctx, "7/gone/").Return([]domain.Submission{}, nil)
	s.mockSubmission.On("DeleteByPathPrefix", ctx, "7/gone/").Return(int64(0), nil)
	s.mockBatch.On("Delete", ctx, "7", "gone").Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", GroupKey: "7/gone"})

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(0), result.Deleted)
	s.mockStorage.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
	s.mockBatch.AssertExpectations(s.T())
	s.mockQueue.AssertNotCalled(s.T(), "SendDeindexMessage", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_BlobFailureIsQueuedNotFatal() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	rows := []domain.Submission{{ID: "s1", CountryID: "7", StoragePath: "7/b1-x/1.jpg"}}
	s.mockSubmission.On("ListByPathPrefix", ctx, "7/b1-x/").Return(rows, nil)
	s.mockStorage.On("Remove", ctx, []string{"7/b1-x/1.jpg"}).Return(errors.New("throttled"))
	s.mockQueue.On("SendCleanupMessage", mock.Anything, "7", []string{"7/b1-x/1.jpg"}, "group delete").Return(nil).Once()
	s.mockSubmission.On("DeleteByPathPrefix", ctx, "7/b1-x/").Return(int64(1), nil)
	s.mockBatch.On("Delete", ctx, "7", "b1-x").Return(nil)
	s.mockQueue.On("SendDeindexMessage", ctx, "7", []string{"s1"}).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.Anything).Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", GroupKey: "7/b1-x"})

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(1), result.Deleted)
	s.mockQueue.AssertExpectations(s.T())
}

func (s *DeletionServiceTestSuite) TestDelete_RecordFailure() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	rows := []domain.Submission{{ID: "s1", CountryID: "7", StoragePath: "7/b1-x/1.jpg"}}
	s.mockSubmission.On("ListByPathPrefix", ctx, "7/b1-x/").Return(rows, nil)
	s.mockStorage.On("Remove", ctx, mock.Anything).Return(nil)
	s.mockSubmission.On("DeleteByPathPrefix", ctx, "7/b1-x/").Return(int64(0), errors.New("deadlock"))

	// Act
	_, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", GroupKey: "7/b1-x"})

	// Assert
	s.ErrorIs(err, ErrRecordWrite)
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_SingleSubmission() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	id := uuid.NewString()
	s.mockSubmission.On("GetByID", ctx, id).Return(&domain.Submission{ID: id, CountryID: "7", StoragePath: "7/legacy.jpg"}, nil)
	s.mockStorage.On("Remove", ctx, []string{"7/legacy.jpg"}).Return(nil)
	s.mockSubmission.On("Delete", ctx, id).Return(nil)
	s.mockQueue.On("SendDeindexMessage", ctx, "7", []string{id}).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.Anything).Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", SubmissionID: id})

	// Assert
	s.Require().NoError(err)
	s.Equal(DeleteModeSubmission, result.Mode)
	s.Equal(int64(1), result.Deleted)
	s.mockSubmission.AssertExpectations(s.T())
}

func (s *DeletionServiceTestSuite) TestDelete_SubmissionNotFound() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	id := uuid.NewString()
	s.mockSubmission.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", SubmissionID: id})
	_, errMalformed := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", SubmissionID: "not-a-uuid"})

	// Assert
	s.ErrorIs(err, ErrSubmissionNotFound)
	s.ErrorIs(errMalformed, ErrSubmissionNotFound)
	s.mockStorage.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *DeletionServiceTestSuite) TestDelete_LastSubmissionOfBatchDropsBatch() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	id := uuid.NewString()
	batchID := "b1-x"
	s.mockSubmission.On("GetByID", ctx, id).Return(&domain.Submission{
		ID: id, CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/1.jpg",
	}, nil)
	s.mockStorage.On("Remove", ctx, []string{"7/b1-x/1.jpg"}).Return(nil)
	s.mockSubmission.On("Delete", ctx, id).Return(nil)
	s.mockBatch.On("DeleteIfEmpty", ctx, "7", "b1-x").Return(nil).Once()
	s.mockQueue.On("SendDeindexMessage", ctx, "7", []string{id}).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e *domain.GalleryEvent) bool {
		return e.GroupKey == "7/b1-x"
	})).Return(nil)

	// Act
	result, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", SubmissionID: id})

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(1), result.Deleted)
	s.mockBatch.AssertExpectations(s.T())
}

func (s *DeletionServiceTestSuite) TestDelete_SubmissionBatchCleanupFailure() {
	// Arrange
	ctx := context.Background()
	s.authorized(ctx)
	id := uuid.NewString()
	batchID := "b1-x"
	s.mockSubmission.On("GetByID", ctx, id).Return(&domain.Submission{
		ID: id, CountryID: "7", BatchID: &batchID, StoragePath: "7/b1-x/1.jpg",
	}, nil)
	s.mockStorage.On("Remove", ctx, mock.Anything).Return(nil)
	s.mockSubmission.On("Delete", ctx, id).Return(nil)
	s.mockBatch.On("DeleteIfEmpty", ctx, "7", "b1-x").Return(errors.New("connection reset"))

	// Act
	_, err := s.service.Delete(ctx, DeleteRequest{AdminCode: "letmein", SubmissionID: id})

	// Assert
	s.ErrorIs(err, ErrRecordWrite)
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}
