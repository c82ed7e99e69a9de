package file

import (
	"crypto/md5"  //nolint:gosec // checksum verification, not security
	"crypto/sha1" //nolint:gosec // checksum verification, not security
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Algorithm identifies a checksum algorithm accepted by [Checksum].
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	CRC32  Algorithm = "crc32"
	XXHash Algorithm = "xxhash"
)

// newHasher creates a hash.Hash for the given algorithm.
func newHasher(algorithm Algorithm) (hash.Hash, error) {
	switch algorithm {
	case MD5:
		return md5.New(), nil //nolint:gosec // checksum verification, not security
	case SHA1:
		return sha1.New(), nil //nolint:gosec // checksum verification, not security
	case SHA256:
		return sha256.New(), nil
	case CRC32:
		return crc32.NewIEEE(), nil
	case XXHash:
		return xxhash.New(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
}

// Checksum computes the hex-encoded checksum of the file at path using the
// given algorithm. Returns [ErrNotFound] (wrapped) when the file does not
// exist.
func Checksum(path string, algorithm Algorithm) (string, error) {
	h, err := newHasher(algorithm)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", pathErr("checksum", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", pathErr("checksum", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
