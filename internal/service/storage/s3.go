package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

// maxDeleteKeys is the DeleteObjects limit per request.
const maxDeleteKeys = 1000

type PutOptions struct {
	ContentType  string
	CacheControl string
}

//go:generate mockery --name BlobStorage --output ../../mocks
type BlobStorage interface {
	// Put writes body at path and fails if an object already exists there.
	Put(ctx context.Context, path string, body io.Reader, opts PutOptions) error
	// Remove deletes every path. Missing objects are not an error.
	Remove(ctx context.Context, paths []string) error
	PublicURL(path string) string
}

// S3API is the subset of the S3 client the storage uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// S3Storage stores gallery images in an S3 compatible bucket.
type S3Storage struct {
	client    S3API
	bucket    string
	publicURL string
	logger    *logger.Logger
}

func NewS3Storage(client S3API, cfg *config.S3Config, logger *logger.Logger) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURLPrefix(),
		logger:    logger,
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3Storage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", s.bucket, err)
	}

	s.logger.Infof("Created S3 bucket %s", s.bucket)
	return nil
}

func (s *S3Storage) Put(ctx context.Context, path string, body io.Reader, opts PutOptions) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        body,
		IfNoneMatch: aws.String("*"),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.CacheControl != "" {
		input.CacheControl = aws.String(opts.CacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}

func (s *S3Storage) Remove(ctx context.Context, paths []string) error {
	var errs []error
	for start := 0; start < len(paths); start += maxDeleteKeys {
		end := min(start+maxDeleteKeys, len(paths))
		if err := s.removeChunk(ctx, paths[start:end]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *S3Storage) removeChunk(ctx context.Context, paths []string) error {
	objects := make([]types.ObjectIdentifier, len(paths))
	for i, p := range paths {
		objects[i] = types.ObjectIdentifier{Key: aws.String(p)}
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d objects: %w", len(paths), err)
	}

	if len(out.Errors) > 0 {
		failed := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			failed = append(failed, aws.ToString(e.Key)+": "+aws.ToString(e.Message))
		}
		return fmt.Errorf("failed to delete objects: %s", strings.Join(failed, "; "))
	}

	return nil
}

func (s *S3Storage) PublicURL(path string) string {
	return s.publicURL + "/" + path
}
