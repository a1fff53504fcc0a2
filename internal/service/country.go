package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/repository"
)

//go:generate mockery --name TokenIssuer --output ../mocks
type TokenIssuer interface {
	GenerateToken(countryID, countrySlug string) (string, time.Time, error)
}

type LoginResult struct {
	Country   *domain.Country
	Token     string
	ExpiresAt time.Time
}

type CountryService struct {
	repo      repository.Repository
	validator *AccessCodeValidator
	tokens    TokenIssuer
}

func NewCountryService(repo repository.Repository, validator *AccessCodeValidator, tokens TokenIssuer) *CountryService {
	return &CountryService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
	}
}

func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.repo.Country().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}
	return countries, nil
}

func (s *CountryService) GetBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	return s.get(s.repo.Country().GetActiveBySlug(ctx, slug))
}

func (s *CountryService) GetByID(ctx context.Context, id string) (*domain.Country, error) {
	return s.get(s.repo.Country().GetActiveByID(ctx, id))
}

func (s *CountryService) get(country *domain.Country, err error) (*domain.Country, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}
	return country, nil
}

// Login checks a country's access code and issues a session token for it.
// The code is only validated here; a use is spent per uploaded batch.
func (s *CountryService) Login(ctx context.Context, slug, code string) (*LoginResult, error) {
	if slug == "" || code == "" {
		return nil, ErrMissingFields
	}

	country, _, err := s.validator.Validate(ctx, slug, code)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(country.ID, country.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{Country: country, Token: token, ExpiresAt: expiresAt}, nil
}
