// Package storage manages the lifecycle of profile-image assets behind a
// backend-agnostic interface. Keys returned by Save are opaque and later
// addressable for static serving or deletion.
package storage

import (
	"context"
	"fmt"
	"strings"

	"badgehub/internal/config"
)

const (
	// TypeLocal is the local filesystem backend.
	TypeLocal = "local"
	// TypeS3 is Amazon S3 or a compatible backend.
	TypeS3 = "s3"
	// TypeOSS is Aliyun OSS.
	TypeOSS = "oss"
	// TypeCOS is Tencent COS.
	TypeCOS = "cos"
	// TypeR2 is Cloudflare R2.
	TypeR2 = "r2"
)

// SaveOptions controls how a backend persists a file.
//
// Category groups files on disk or under the bucket prefix. Extension hints
// the preferred file extension (without the leading dot); backends fall back
// to "bin" when it is empty. When BaseName is empty, backends generate a
// collision-free name from a random token and a nanosecond timestamp.
type SaveOptions struct {
	Category  string
	Extension string
	BaseName  string
}

// Storage persists binary assets and returns backend-specific keys.
//
// Delete is idempotent: removing a key that does not exist succeeds. An I/O
// failure while removing an existing object is surfaced as an error.
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// LocalBaseDirProvider is implemented by backends exposing a local directory
// that can be served directly over HTTP.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage instantiates the storage backend selected by configuration.
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
