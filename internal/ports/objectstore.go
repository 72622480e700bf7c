package ports

import (
	"context"
	"io"
)

// Object is a stored blob opened for reading. The caller closes Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStore holds file contents under flat string keys.
type ObjectStore interface {
	// Put stores body under key only if no object is stored there yet.
	// Returns domain.ErrConflict when the key is taken; the body may have
	// been consumed by then.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Get opens the object under key.
	// Returns domain.ErrNotFound if there is none.
	Get(ctx context.Context, key string) (*Object, error)

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the object under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
