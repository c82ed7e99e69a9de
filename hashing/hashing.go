// Package hashing provides password hashing with interchangeable drivers,
// modelled after Laravel's Illuminate/Hashing module.
//
// The central abstraction is the [Hasher] interface, implemented by
// [BcryptHasher] and [Argon2idHasher]. The [Manager] dispatches to
// registered drivers and picks the right one for verification by sniffing
// the hash prefix:
//
//	m := hashing.NewDefaultManager()
//	hash, _ := m.Make("my-secret-password")
//	ok, _ := m.Check("my-secret-password", hash)
package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
type DriverName string

const (
	// DriverBcrypt selects the bcrypt driver.
	DriverBcrypt DriverName = "bcrypt"
	// DriverArgon2id selects the Argon2id driver (recommended for new
	// systems).
	DriverArgon2id DriverName = "argon2id"
)

// Hasher is the interface satisfied by all password-hashing drivers.
// Implementations are immutable after construction and safe for concurrent
// use.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash
	// string. A fresh salt is generated on every call.
	Make(password string) (string, error)

	// Check verifies password against a previously encoded hash in
	// constant time. Returns (false, nil) on a plain mismatch and an
	// error only for malformed or foreign hashes.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether hash was produced with parameters that
	// differ from the hasher's current configuration.
	NeedsRehash(hash string) (bool, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// DetectDriver inspects a hash string and returns the [DriverName] that
// produced it, based on the hash prefix. The second return value is false
// when the format is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return DriverArgon2id, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return DriverBcrypt, true
	}
	return "", false
}
