// Package uploads accepts product images, names them and keeps them in a
// storage backend (a local directory or an S3 bucket).
package uploads

import (
	"context"
	"io"
)

// Storage keeps uploaded files by name.
//
// Save must never overwrite: it fails with common.ErrorAlreadyExists when
// name is taken. Open fails with common.ErrorNotFound for a missing name.
// Remove of a missing name is not an error.
type Storage interface {
	Save(ctx context.Context, name, contentType string, body io.ReadSeeker) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}
