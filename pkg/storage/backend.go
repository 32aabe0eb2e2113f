package storage

import "errors"

// ErrBucketNotFound is returned when operating on a bucket that was never created
var ErrBucketNotFound = errors.New("bucket not found")

// Backend is a bucketed key-value store working on raw bytes.
// ForEach visits keys in ascending byte order on every implementation.
type Backend interface {
	// CreateBucket is idempotent
	CreateBucket(name string) error

	Put(bucket string, key, value []byte) error
	// Get returns nil, nil for a missing key
	Get(bucket string, key []byte) ([]byte, error)
	Delete(bucket string, key []byte) error

	ForEach(bucket string, fn func(k, v []byte) error) error

	Close() error
}
