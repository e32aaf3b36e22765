// Package storage abstracts where uploaded images live. The API only needs a
// blob put/delete plus a public URL; the local-disk driver covers single-node
// deployments and the interface leaves room for an object store later.
package storage

import (
	"io"
)

type Storage interface {
	// Put writes content under path, creating parent directories as needed,
	// and returns the public URL of the stored file.
	Put(path string, r io.Reader) (string, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
