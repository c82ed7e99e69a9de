package hashing

import "errors"

// Sentinel errors returned by hashing operations.
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor receives a
	// parameter outside its allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by [Manager] operations when the
	// requested driver has not been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrAlgorithmMismatch is returned when a hash was produced by a
	// different algorithm than the hasher verifying it.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)
