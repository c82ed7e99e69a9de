// Package file provides filesystem convenience functions, inspired by
// Laravel's File facade: thin blocking wrappers over the host filesystem
// with a uniform error model.
//
// # Errors
//
// A missing file or directory yields an error wrapping [ErrNotFound],
// distinct from generic I/O failure:
//
//	data, err := file.Get("config.json")
//	if file.IsNotFound(err) {
//	    // handle the missing file
//	}
//
// Predicates such as [Exists] and [Missing] never return errors.
//
// # Directories
//
// [DeleteDirectory] and [CleanDirectory] recurse depth-first and are best
// effort: a failed removal does not stop siblings from being deleted, and
// every failure is reported via the joined error. Listing functions
// ([Files], [Directories], [AllFiles], [AllDirectories]) exclude hidden
// (dot-prefixed) entries by default and return sorted paths.
//
// There are no retries and no partial-failure recovery; each call either
// succeeds or returns an error describing what failed.
package file
