package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrKeyNotFound is returned by [Collection.GetOrFail] when the key
	// cannot be resolved.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
