package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/metrics"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

// AccessCodeValidator checks country access codes and spends their uses.
type AccessCodeValidator struct {
	repo   repository.PostgresRepository
	logger *logger.Logger
	now    func() time.Time
}

func NewAccessCodeValidator(repo repository.PostgresRepository, logger *logger.Logger) *AccessCodeValidator {
	return &AccessCodeValidator{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithRepository returns a validator bound to repo, typically a transaction.
func (v *AccessCodeValidator) WithRepository(repo repository.PostgresRepository) *AccessCodeValidator {
	return &AccessCodeValidator{
		repo:   repo,
		logger: v.logger,
		now:    v.now,
	}
}

// Validate resolves an active country by slug and returns the first of its
// codes, in creation order, whose digest matches plaintext and that is
// neither expired nor exhausted.
func (v *AccessCodeValidator) Validate(ctx context.Context, slug, plaintext string) (*domain.Country, *domain.AccessCode, error) {
	country, err := v.repo.Country().GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.RecordCodeRejection("country")
			return nil, nil, ErrTenantNotFound
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	codes, err := v.repo.AccessCode().ListByCountry(ctx, country.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	digest := utils.SHA1Hex(plaintext)
	now := v.now()

	var match *domain.AccessCode
	matches := 0
	for i := range codes {
		code := &codes[i]
		if !utils.DigestEqual(code.CodeHash, digest) {
			continue
		}
		matches++
		if match == nil && code.IsUsable(now) {
			match = code
		}
	}

	if matches > 1 {
		v.logger.Debug("Access code digest matches several rows",
			zap.String("country_id", country.ID),
			zap.Int("matches", matches),
		)
	}

	if match == nil {
		reason := "mismatch"
		if matches > 0 {
			reason = "unusable"
		}
		metrics.RecordCodeRejection(reason)
		return nil, nil, ErrInvalidCode
	}

	return country, match, nil
}

// RecordUse spends one use of code. It fails with ErrInvalidCode when the
// code expired or ran out between validation and this call.
func (v *AccessCodeValidator) RecordUse(ctx context.Context, code *domain.AccessCode) error {
	if err := v.repo.AccessCode().IncrementUsage(ctx, code.ID, v.now()); err != nil {
		if errors.Is(err, repository.ErrCodeExhausted) {
			metrics.RecordCodeRejection("race")
			return ErrInvalidCode
		}
		return fmt.Errorf("failed to record access code use: %w", err)
	}
	code.UsedCount++
	return nil
}
