// Package storage abstracts where uploaded menu images live.
//
// Two drivers are available:
//   - "local" — local filesystem under STORAGE_LOCAL_ROOT (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
package storage

import (
	"fmt"
	"io"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/config"
)

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes the file at path.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}

// Open builds the disk selected by STORAGE_DISK.
func Open() (Disk, error) {
	switch name := config.StorageDisk(); name {
	case "local":
		return newLocalDisk(), nil
	case "s3":
		return newS3Disk()
	default:
		return nil, fmt.Errorf("storage: unknown STORAGE_DISK %q (supported: local, s3)", name)
	}
}
