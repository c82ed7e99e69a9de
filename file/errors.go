package file

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors returned by filesystem operations.
var (
	// ErrNotFound is returned when a file or directory does not exist.
	// It is distinct from generic I/O failure; test with [IsNotFound].
	ErrNotFound = errors.New("file: not found")

	// ErrNotDirectory is returned when a directory operation targets a
	// path that exists but is not a directory.
	ErrNotDirectory = errors.New("file: not a directory")

	// ErrUnsupportedAlgorithm is returned by [Checksum] for an unknown
	// checksum algorithm.
	ErrUnsupportedAlgorithm = errors.New("file: unsupported checksum algorithm")
)

// IsNotFound reports whether err indicates a missing file or directory.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// pathErr wraps an OS error with the operation and path, normalising
// not-exist errors to [ErrNotFound].
func pathErr(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %s: %w", op, path, ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
