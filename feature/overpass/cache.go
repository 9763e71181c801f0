package overpass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"place-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// CacheEntry is a cached raw snapshot.
type CacheEntry struct {
	Data       []byte
	ModifiedAt time.Time
}

// Cache stores the last raw Overpass response. Entries never expire.
type Cache interface {
	// Load returns the cached payload or ErrCacheMiss.
	Load(ctx context.Context) (*CacheEntry, error)
	// Store replaces the cached payload.
	Store(ctx context.Context, data []byte) error
	// Clear removes the cached payload. Clearing an empty cache is not an error.
	Clear(ctx context.Context) error
	// Location describes where the payload lives, for logs and de-duplication.
	Location() string
}

// NewCache builds the cache selected by cfg. The object backend needs a storage client.
func NewCache(cfg CacheConfig, client storage.Client, bucket, region string) (Cache, error) {
	switch cfg.Backend {
	case CacheBackendFile, "":
		path := cfg.Path
		if path == "" {
			path = DefaultCachePath()
		}
		return &FileCache{Path: path}, nil
	case CacheBackendObject:
		if client == nil {
			return nil, fmt.Errorf("object cache requires a storage client")
		}
		return &ObjectCache{Client: client, Bucket: bucket, Region: region, Object: cfg.Object}, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

// DefaultCachePath returns the per-user cache file path.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "place-manager", "last-osm-response.json")
}

// FileCache keeps the payload in a local file.
type FileCache struct {
	Path string
}

// Load implements Cache.
func (c *FileCache) Load(ctx context.Context) (*CacheEntry, error) {
	info, err := os.Stat(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat cache file: %w", err)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return &CacheEntry{Data: data, ModifiedAt: info.ModTime().UTC()}, nil
}

// Store implements Cache. The payload is written to a temporary file and renamed
// into place, so readers never see a partial file.
func (c *FileCache) Store(ctx context.Context, data []byte) error {
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Path); err != nil {
		return fmt.Errorf("failed to move cache file into place: %w", err)
	}
	return nil
}

// Clear implements Cache.
func (c *FileCache) Clear(ctx context.Context) error {
	if err := os.Remove(c.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// Location implements Cache.
func (c *FileCache) Location() string {
	return c.Path
}

// ObjectCache keeps the payload in an object storage bucket.
type ObjectCache struct {
	Client storage.Client
	Bucket string
	Region string
	Object string
}

// Load implements Cache.
func (c *ObjectCache) Load(ctx context.Context) (*CacheEntry, error) {
	info, err := c.Client.StatObject(ctx, c.Bucket, c.Object, minio.StatObjectOptions{})
	if storage.IsNotFound(err) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat cache object: %w", err)
	}

	obj, err := c.Client.GetObject(ctx, c.Bucket, c.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get cache object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache object: %w", err)
	}
	return &CacheEntry{Data: data, ModifiedAt: info.LastModified.UTC()}, nil
}

// Store implements Cache.
func (c *ObjectCache) Store(ctx context.Context, data []byte) error {
	if err := storage.EnsureBucket(ctx, c.Client, c.Bucket, c.Region); err != nil {
		return err
	}
	_, err := c.Client.PutObject(ctx, c.Bucket, c.Object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload cache object: %w", err)
	}
	return nil
}

// Clear implements Cache.
func (c *ObjectCache) Clear(ctx context.Context) error {
	err := c.Client.RemoveObject(ctx, c.Bucket, c.Object, minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to remove cache object: %w", err)
	}
	return nil
}

// Location implements Cache.
func (c *ObjectCache) Location() string {
	return fmt.Sprintf("s3://%s/%s", c.Bucket, c.Object)
}
