// Package blob defines the object storage used for uploaded label images.
package blob

import (
	"context"
	"time"
)

// Object is a stored blob together with its metadata.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
}

// Store persists label images. Missing keys are reported as serrors.ErrNotFound.
//
//go:generate mockgen -package mockblob -source=interface.go -destination=mock/mockblob.go *
type Store interface {
	// EnsureBucket creates the configured bucket when it does not exist yet.
	EnsureBucket(ctx context.Context) error
	// Put uploads body under key.
	Put(ctx context.Context, key, contentType string, body []byte) error
	// Get downloads the object stored under key.
	Get(ctx context.Context, key string) (*Object, error)
	// PresignGet returns a time-limited URL that can be used to download key without credentials.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
