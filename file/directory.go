package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// ─────────────────────────────────────────────────────────────────────────────
// Directory operations
// ─────────────────────────────────────────────────────────────────────────────

// MakeDirectory creates the directory at path along with any missing
// parents. The permission bits default to 0755.
func MakeDirectory(path string, perm ...os.FileMode) error {
	mode := os.FileMode(0o755)
	if len(perm) > 0 {
		mode = perm[0]
	}
	if err := os.MkdirAll(path, mode); err != nil {
		return pathErr("mkdir", path, err)
	}
	return nil
}

// DeleteDirectory removes the directory at path and everything beneath it.
// Deletion is depth-first and best effort: a failed removal does not stop
// siblings from being deleted, and all failures are returned joined.
// The operation is not atomic.
func DeleteDirectory(path string) error {
	if err := deleteContents(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return pathErr("delete directory", path, err)
	}
	return nil
}

// CleanDirectory removes everything inside the directory at path but keeps
// the directory itself. Best effort, like [DeleteDirectory].
func CleanDirectory(path string) error {
	return deleteContents(path)
}

func deleteContents(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return pathErr("read directory", path, err)
	}
	var errs []error
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if err := DeleteDirectory(child); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := os.Remove(child); err != nil {
			errs = append(errs, pathErr("delete", child, err))
		}
	}
	return errors.Join(errs...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────────────────────────────────────

// Files returns the sorted paths of the regular files directly inside dir.
// Hidden (dot-prefixed) files are excluded unless hidden[0] is true.
func Files(dir string, hidden ...bool) ([]string, error) {
	return list(dir, includeHidden(hidden), func(entry os.DirEntry) bool {
		return !entry.IsDir()
	})
}

// Directories returns the sorted paths of the directories directly inside
// dir. Hidden (dot-prefixed) directories are excluded unless hidden[0] is
// true.
func Directories(dir string, hidden ...bool) ([]string, error) {
	return list(dir, includeHidden(hidden), os.DirEntry.IsDir)
}

// AllFiles returns the sorted paths of every regular file beneath dir,
// recursively. Hidden files and the contents of hidden directories are
// excluded unless hidden[0] is true.
func AllFiles(dir string, hidden ...bool) ([]string, error) {
	return walk(dir, includeHidden(hidden), false)
}

// AllDirectories returns the sorted paths of every directory beneath dir,
// recursively, subject to the same hidden-entry rule as [AllFiles].
func AllDirectories(dir string, hidden ...bool) ([]string, error) {
	return walk(dir, includeHidden(hidden), true)
}

// Glob returns the sorted paths of the files matching pattern. Patterns use
// glob syntax with "/" separators; "**" matches across directory
// boundaries.
//
//	Glob("logs/**/*.log")
func Glob(pattern string) ([]string, error) {
	g, err := glob.Compile(filepath.ToSlash(pattern), '/')
	if err != nil {
		return nil, pathErr("glob", pattern, err)
	}
	var out []string
	err = filepath.WalkDir(globBase(pattern), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // unreadable subtrees are skipped
		}
		if g.Match(filepath.ToSlash(path)) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, pathErr("glob", pattern, err)
	}
	sort.Strings(out)
	return out, nil
}

// globBase returns the literal directory prefix of pattern, the walk root.
func globBase(pattern string) string {
	idx := strings.IndexAny(pattern, "*?[{")
	prefix := pattern
	if idx >= 0 {
		prefix = pattern[:idx]
	}
	dir := filepath.Dir(prefix)
	if dir == "" {
		return "."
	}
	return dir
}

func includeHidden(hidden []bool) bool {
	return len(hidden) > 0 && hidden[0]
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func list(dir string, hidden bool, keep func(os.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pathErr("read directory", dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !hidden && isHidden(entry.Name()) {
			continue
		}
		if keep(entry) {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func walk(dir string, hidden, wantDirs bool) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return pathErr("walk", path, err)
		}
		if path == dir {
			return nil
		}
		if !hidden && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() == wantDirs {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
