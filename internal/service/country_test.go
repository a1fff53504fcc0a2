package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/mocks"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

type CountryServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockCountry    *mocks.CountryRepository
	mockAccessCode *mocks.AccessCodeRepository
	mockTokens     *mocks.TokenIssuer
	service        *CountryService
}

func (s *CountryServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCountry = new(mocks.CountryRepository)
	s.mockAccessCode = new(mocks.AccessCodeRepository)
	s.mockTokens = new(mocks.TokenIssuer)

	s.mockRepo.On("Country").Return(s.mockCountry)
	s.mockRepo.On("AccessCode").Return(s.mockAccessCode)

	validator := NewAccessCodeValidator(s.mockRepo, logger.NewLogger("test"))
	validator.now = func() time.Time { return fixedNow }
	s.service = NewCountryService(s.mockRepo, validator, s.mockTokens)
}

func TestCountryService(t *testing.T) {
	suite.Run(t, new(CountryServiceTestSuite))
}

func (s *CountryServiceTestSuite) TestList_Success() {
	// Arrange
	ctx := context.Background()
	expected := []domain.Country{
		{ID: "1", Slug: "chile", Name: "Chile"},
		{ID: "2", Slug: "norway", Name: "Norway"},
	}
	s.mockCountry.On("ListActive", ctx).Return(expected, nil)

	// Act
	countries, err := s.service.List(ctx)

	// Assert
	s.NoError(err)
	s.Equal(expected, countries)
}

func (s *CountryServiceTestSuite) TestList_StoreFailure() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("ListActive", ctx).Return(nil, errors.New("down"))

	// Act
	_, err := s.service.List(ctx)

	// Assert
	s.ErrorIs(err, ErrStoreRead)
}

func (s *CountryServiceTestSuite) TestGetBySlug_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveBySlug", ctx, "atlantis").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.GetBySlug(ctx, "atlantis")

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *CountryServiceTestSuite) TestLogin_IssuesTokenWithoutSpendingUse() {
	// Arrange
	ctx := context.Background()
	country := &domain.Country{ID: "7", Slug: "norway", IsActive: true}
	expires := fixedNow.Add(24 * time.Hour)
	s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(country, nil)
	s.mockAccessCode.On("ListByCountry", ctx, "7").Return([]domain.AccessCode{
		{ID: "code-1", CountryID: "7", CodeHash: utils.SHA1Hex("fjord")},
	}, nil)
	s.mockTokens.On("GenerateToken", "7", "norway").Return("signed-token", expires, nil)

	// Act
	result, err := s.service.Login(ctx, "norway", "fjord")

	// Assert
	s.Require().NoError(err)
	s.Equal("signed-token", result.Token)
	s.Equal(expires, result.ExpiresAt)
	s.Equal("7", result.Country.ID)
	s.mockAccessCode.AssertNotCalled(s.T(), "IncrementUsage", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CountryServiceTestSuite) TestLogin_InvalidCode() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(&domain.Country{ID: "7", Slug: "norway"}, nil)
	s.mockAccessCode.On("ListByCountry", ctx, "7").Return([]domain.AccessCode{}, nil)

	// Act
	_, err := s.service.Login(ctx, "norway", "wrong")

	// Assert
	s.ErrorIs(err, ErrInvalidCode)
	s.mockTokens.AssertNotCalled(s.T(), "GenerateToken", mock.Anything, mock.Anything)
}

func (s *CountryServiceTestSuite) TestLogin_MissingFields() {
	_, err := s.service.Login(context.Background(), "norway", "")
	s.ErrorIs(err, ErrMissingFields)
}
