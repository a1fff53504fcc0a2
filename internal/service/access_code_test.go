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
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type AccessCodeValidatorTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockCountry    *mocks.CountryRepository
	mockAccessCode *mocks.AccessCodeRepository
	validator      *AccessCodeValidator
	country        *domain.Country
}

func (s *AccessCodeValidatorTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockCountry = new(mocks.CountryRepository)
	s.mockAccessCode = new(mocks.AccessCodeRepository)

	s.mockRepo.On("Country").Return(s.mockCountry)
	s.mockRepo.On("AccessCode").Return(s.mockAccessCode)

	s.validator = NewAccessCodeValidator(s.mockRepo, logger.NewLogger("test"))
	s.validator.now = func() time.Time { return fixedNow }

	s.country = &domain.Country{ID: "country-1", Slug: "norway", Name: "Norway", IsActive: true}
}

func TestAccessCodeValidator(t *testing.T) {
	suite.Run(t, new(AccessCodeValidatorTestSuite))
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func (s *AccessCodeValidatorTestSuite) TestValidate_Success() {
	// Arrange
	ctx := context.Background()
	codes := []domain.AccessCode{
		{ID: "other", CountryID: s.country.ID, CodeHash: utils.SHA1Hex("different")},
		{ID: "code-1", CountryID: s.country.ID, CodeHash: utils.SHA1Hex("fjord"), MaxUses: intPtr(5), UsedCount: 2},
	}
	s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(s.country, nil)
	s.mockAccessCode.On("ListByCountry", ctx, s.country.ID).Return(codes, nil)

	// Act
	country, code, err := s.validator.Validate(ctx, "norway", "fjord")

	// Assert
	s.NoError(err)
	s.Equal(s.country.ID, country.ID)
	s.Equal("code-1", code.ID)
	s.mockAccessCode.AssertExpectations(s.T())
}

func (s *AccessCodeValidatorTestSuite) TestValidate_SkipsUnusableDuplicate() {
	// Arrange
	ctx := context.Background()
	hash := utils.SHA1Hex("fjord")
	codes := []domain.AccessCode{
		{ID: "expired", CountryID: s.country.ID, CodeHash: hash, ExpiresAt: timePtr(fixedNow.Add(-time.Hour))},
		{ID: "fresh", CountryID: s.country.ID, CodeHash: hash},
	}
	s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(s.country, nil)
	s.mockAccessCode.On("ListByCountry", ctx, s.country.ID).Return(codes, nil)

	// Act
	_, code, err := s.validator.Validate(ctx, "norway", "fjord")

	// Assert
	s.NoError(err)
	s.Equal("fresh", code.ID)
}

func (s *AccessCodeValidatorTestSuite) TestValidate_CountryNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveBySlug", ctx, "atlantis").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, _, err := s.validator.Validate(ctx, "atlantis", "fjord")

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.mockAccessCode.AssertNotCalled(s.T(), "ListByCountry", mock.Anything, mock.Anything)
}

func (s *AccessCodeValidatorTestSuite) TestValidate_StoreFailure() {
	// Arrange
	ctx := context.Background()
	s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(nil, errors.New("connection refused"))

	// Act
	_, _, err := s.validator.Validate(ctx, "norway", "fjord")

	// Assert
	s.ErrorIs(err, ErrStoreRead)
}

func (s *AccessCodeValidatorTestSuite) TestValidate_Rejections() {
	hash := utils.SHA1Hex("fjord")
	tests := []struct {
		name  string
		code  domain.AccessCode
		input string
	}{
		{name: "wrong code", code: domain.AccessCode{CodeHash: hash}, input: "fjords"},
		{name: "expired", code: domain.AccessCode{CodeHash: hash, ExpiresAt: timePtr(fixedNow.Add(-time.Second))}, input: "fjord"},
		{name: "cap reached", code: domain.AccessCode{CodeHash: hash, MaxUses: intPtr(1), UsedCount: 1}, input: "fjord"},
		{name: "zero cap", code: domain.AccessCode{CodeHash: hash, MaxUses: intPtr(0)}, input: "fjord"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			ctx := context.Background()
			tt.code.ID = "code-1"
			tt.code.CountryID = s.country.ID
			s.mockCountry.On("GetActiveBySlug", ctx, "norway").Return(s.country, nil)
			s.mockAccessCode.On("ListByCountry", ctx, s.country.ID).Return([]domain.AccessCode{tt.code}, nil)

			_, _, err := s.validator.Validate(ctx, "norway", tt.input)

			s.ErrorIs(err, ErrInvalidCode)
		})
	}
}

func (s *AccessCodeValidatorTestSuite) TestValidate_CodeOfAnotherCountryNeverMatches() {
	// Arrange
	ctx := context.Background()
	sweden := &domain.Country{ID: "country-2", Slug: "sweden", IsActive: true}
	s.mockCountry.On("GetActiveBySlug", ctx, "sweden").Return(sweden, nil)
	s.mockAccessCode.On("ListByCountry", ctx, sweden.ID).Return([]domain.AccessCode{}, nil)

	// Act
	_, _, err := s.validator.Validate(ctx, "sweden", "fjord")

	// Assert
	s.ErrorIs(err, ErrInvalidCode)
	s.mockAccessCode.AssertNotCalled(s.T(), "ListByCountry", ctx, s.country.ID)
}

func (s *AccessCodeValidatorTestSuite) TestRecordUse_Success() {
	// Arrange
	ctx := context.Background()
	code := &domain.AccessCode{ID: "code-1", UsedCount: 3}
	s.mockAccessCode.On("IncrementUsage", ctx, "code-1", fixedNow).Return(nil).Once()

	// Act
	err := s.validator.RecordUse(ctx, code)

	// Assert
	s.NoError(err)
	s.Equal(4, code.UsedCount)
	s.mockAccessCode.AssertExpectations(s.T())
}

func (s *AccessCodeValidatorTestSuite) TestRecordUse_LostRace() {
	// Arrange
	ctx := context.Background()
	code := &domain.AccessCode{ID: "code-1", MaxUses: intPtr(1)}
	s.mockAccessCode.On("IncrementUsage", ctx, "code-1", fixedNow).Return(repository.ErrCodeExhausted)

	// Act
	err := s.validator.RecordUse(ctx, code)

	// Assert
	s.ErrorIs(err, ErrInvalidCode)
	s.Equal(0, code.UsedCount)
}
