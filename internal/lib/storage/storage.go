// Package storage uploads files to the Supabase storage bucket and maps
// between object paths and their public URLs.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore is the subset of object storage the application relies on.
type ObjectStore interface {
	// Upload stores body at path and returns its public URL.
	// Existing objects are never overwritten.
	Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error)

	// Remove deletes the objects at paths. Missing objects are not an error.
	Remove(ctx context.Context, paths ...string) error

	// PublicURL returns the public URL of path.
	PublicURL(path string) string

	// Bucket is the bucket every path is relative to.
	Bucket() string

	// Ping checks that the bucket is reachable with the configured key.
	Ping(ctx context.Context) error
}

// ObjectPath builds a fresh "{category}/{uuid}{ext}" path for an uploaded file.
// ext is taken from the client file name and lower-cased.
func ObjectPath(category, filename string) string {
	category = strings.Trim(strings.TrimSpace(category), "/")
	if category == "" {
		category = "general"
	}
	return category + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// PathFromURL extracts the object path from a public URL of bucket.
//
// Values that do not contain the bucket are assumed to already be paths.
func PathFromURL(bucket, s string) string {
	marker := bucket + "/"
	if i := strings.LastIndex(s, marker); i >= 0 {
		s = s[i+len(marker):]
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return s
}
