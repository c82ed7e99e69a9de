package file

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// File operations
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Missing reports whether no file or directory exists at path.
func Missing(path string) bool {
	return !Exists(path)
}

// Get reads the entire file at path.
// Returns [ErrNotFound] (wrapped) when the file does not exist.
func Get(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pathErr("read", path, err)
	}
	return data, nil
}

// Put writes data to path, creating the file or truncating an existing one.
func Put(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pathErr("write", path, err)
	}
	return nil
}

// Append appends data to the file at path, creating it if needed.
func Append(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return pathErr("append", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return pathErr("append", path, err)
	}
	return nil
}

// Delete removes the given files. Every path is attempted even when an
// earlier one fails; the collected errors are returned joined. Deleting a
// missing file is an error.
func Delete(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			errs = append(errs, pathErr("delete", path, err))
		}
	}
	return errors.Join(errs...)
}

// Move moves the file from src to dst, falling back to copy-and-delete when
// a rename is not possible (e.g. across filesystems).
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := Copy(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return pathErr("move", src, err)
	}
	return nil
}

// Copy copies the file at src to dst, preserving the source's permission
// bits. An existing destination is truncated.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return pathErr("copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return pathErr("copy", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return pathErr("copy", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return pathErr("copy", dst, err)
	}
	return out.Close()
}

// Size returns the size of the file at path in bytes.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, pathErr("stat", path, err)
	}
	return info.Size(), nil
}

// LastModified returns the modification time of the file at path.
func LastModified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, pathErr("stat", path, err)
	}
	return info.ModTime(), nil
}

// Type returns "file", "dir", or "link" for the entry at path.
// Symlinks are reported as links, not followed.
func Type(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", pathErr("stat", path, err)
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return "link", nil
	case info.IsDir():
		return "dir", nil
	}
	return "file", nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Path helpers
// ─────────────────────────────────────────────────────────────────────────────

// Extension returns the file extension of path without the leading dot.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Name returns the file name of path without its extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Basename returns the last element of path.
func Basename(path string) string {
	return filepath.Base(path)
}

// Dirname returns all but the last element of path.
func Dirname(path string) string {
	return filepath.Dir(path)
}
