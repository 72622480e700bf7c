// Package s3 implements ports.ObjectStore on Amazon S3 and S3-compatible
// servers such as MinIO through aws-sdk-go-v2.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/platform/config"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time checks that Store implements the ports it is registered as.
var (
	_ ports.ObjectStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// API is the subset of the S3 client the store calls.
type API interface {
	HeadBucket(ctx context.Context, in *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, in *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client from cfg. Static credentials are used when
// an access key is configured; otherwise the default AWS chain applies.
// A custom endpoint disables the request checksums S3-compatible servers
// tend to reject on plain HTTP.
func NewClient(ctx context.Context, cfg *config.StorageConfig) (*awss3.Client, error) {
	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		}
	}), nil
}

// Store keeps objects in a single bucket.
type Store struct {
	api    API
	bucket string
}

// New creates a Store over bucket.
func New(api API, bucket string) *Store {
	return &Store{api: api, bucket: bucket}
}

// Put uploads body under key with If-None-Match: *, so S3 refuses to replace
// an object another upload stored first. Over plain HTTP the SDK signs the
// payload, which needs a seekable body; multipart.File and bytes.Reader both
// qualify.
func (s *Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	in := &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		IfNoneMatch: aws.String("*"),
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.api.PutObject(ctx, in); err != nil {
		return mapError("put", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (*ports.Object, error) {
	out, err := s.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError("get", key, err)
	}

	return &ports.Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.api.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, mapError("head", key, err)
	}
}

// Delete removes key. S3 reports success for missing keys as well.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return mapError("delete", key, err)
	}
	return nil
}

// Name identifies the store in readiness output.
func (s *Store) Name() string { return "object-store" }

// HealthCheck verifies the bucket exists and is reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if _, err := s.api.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("bucket %s: %w: %w", s.bucket, domain.ErrUnavailable, err)
	}
	return nil
}

// isNotFound reports whether err is S3's answer for a missing key. HeadObject
// has no body to carry a code, so the modeled types and raw API codes are
// both checked.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// isKeyTaken reports a failed If-None-Match: 412 PreconditionFailed, or 409
// ConditionalRequestConflict while a competing write is still in flight.
func isKeyTaken(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return true
		}
	}
	var respErr *smithyhttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusPreconditionFailed
}

// mapError converts an SDK error to the domain sentinels. Context errors pass
// through so callers can tell cancellation from an outage.
func mapError(op, key string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s object %s: %w", op, key, err)
	case isNotFound(err):
		return fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
	case isKeyTaken(err):
		return fmt.Errorf("object %s: %w", key, domain.ErrConflict)
	default:
		return fmt.Errorf("%s object %s: %w: %w", op, key, domain.ErrUnavailable, err)
	}
}
