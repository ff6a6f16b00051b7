// Package s3blob provides a blob.Store backed by an S3 compatible object
// storage such as AWS S3 or MinIO.
package s3blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"labelchecker/pkg/blob"
	"labelchecker/pkg/serrors"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Options configures the S3 client.
type Options struct {
	Endpoint        string // Endpoint overrides the AWS endpoint, e.g. http://minio:9000.
	Region          string
	Bucket          string
	AccessKeyID     string // AccessKeyID and SecretAccessKey are optional; the default AWS chain is used when empty.
	SecretAccessKey string
	UsePathStyle    bool
	HTTPClient      *http.Client
}

// Store implements blob.Store on top of the aws-sdk-go-v2 S3 client.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

var _ blob.Store = (*Store)(nil)

// New creates a Store. It does not contact the storage; call EnsureBucket for that.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("bucket is required")
	}
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	if opts.HTTPClient != nil {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(opts.HTTPClient))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  opts.Bucket,
		region:  region,
	}, nil
}

// EnsureBucket creates the bucket if HeadBucket reports it missing.
func (s *Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("could not check bucket %s: %w", s.bucket, err)
	}

	in := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}
	_, err = s.client.CreateBucket(ctx, in)
	var owned *types.BucketAlreadyOwnedByYou
	if err != nil && !errors.As(err, &owned) {
		return fmt.Errorf("could not create bucket %s: %w", s.bucket, err)
	}

	return nil
}

// Put uploads body under key.
func (s *Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("could not put object %s: %w", key, err)
	}

	return nil
}

// Get downloads key. A missing key yields serrors.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (*blob.Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, serrors.With(serrors.ErrNotFound, "object %s not found", key)
		}

		return nil, fmt.Errorf("could not get object %s: %w", key, err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read object %s: %w", key, err)
	}

	return &blob.Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Body:        b,
	}, nil
}

// PresignGet signs a GET request for key valid for ttl.
func (s *Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("could not presign object %s: %w", key, err)
	}

	return req.URL, nil
}

// Delete removes key. S3 treats deleting a missing key as success.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("could not delete object %s: %w", key, err)
	}

	return nil
}
