package service

import "errors"

var (
	// Country errors. Missing and inactive countries are indistinguishable.
	ErrTenantNotFound = errors.New("country not found")

	// Access code errors. Wrong, expired and exhausted codes share one error.
	ErrInvalidCode = errors.New("invalid or expired access code")

	// Upload validation errors
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")

	// Store errors
	ErrStorageWrite = errors.New("failed to write to blob storage")
	ErrRecordWrite  = errors.New("failed to write submission records")
	ErrStoreRead    = errors.New("failed to read from store")

	// Deletion errors
	ErrUnauthorized       = errors.New("invalid admin delete code")
	ErrSubmissionNotFound = errors.New("submission not found")
)
