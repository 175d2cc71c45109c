// Package storage wraps the S3-compatible object store used for club image
// assets. It normalizes upload, removal, and public URL resolution into one
// fixed interface so none of the store client's response-shape quirks leak
// into the service layer.
package storage

import (
	"context"
	"io"
)

// ObjectStore is the behavior the service layer needs from the object store.
// Uploads overwrite any prior object at the same path.
type ObjectStore interface {
	// Upload writes the object at path and returns its public URL.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)

	// Remove deletes the object at path. Removing a missing object is not
	// an error — cleanup callers must be able to run unconditionally.
	Remove(ctx context.Context, path string) error

	// PublicURL returns the publicly resolvable URL for the object at path.
	PublicURL(path string) string
}
