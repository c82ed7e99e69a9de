package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2idParams configures an [Argon2idHasher].
type Argon2idParams struct {
	Memory  uint32 // KiB
	Time    uint32 // iterations
	Threads uint8
	KeyLen  uint32 // output key length in bytes
	SaltLen uint32 // salt length in bytes
}

// DefaultArgon2idParams returns parameters exceeding the OWASP ASVS
// Level 2 minimums: 64 MiB memory, 3 iterations, 2 threads.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Memory:  64 * 1024,
		Time:    3,
		Threads: 2,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Argon2idHasher hashes passwords with Argon2id. Its tunable memory cost
// makes GPU attacks significantly more expensive than bcrypt.
type Argon2idHasher struct {
	params Argon2idParams
}

// NewArgon2idHasher constructs an Argon2idHasher with the given parameters.
// Returns [ErrInvalidOption] when any parameter is zero.
func NewArgon2idHasher(params Argon2idParams) (*Argon2idHasher, error) {
	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 ||
		params.KeyLen == 0 || params.SaltLen == 0 {
		return nil, fmt.Errorf("%w: argon2id parameters must be non-zero", ErrInvalidOption)
	}
	return &Argon2idHasher{params: params}, nil
}

// DefaultArgon2idHasher returns an Argon2idHasher with
// [DefaultArgon2idParams].
func DefaultArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{params: DefaultArgon2idParams()}
}

// Driver returns [DriverArgon2id].
func (h *Argon2idHasher) Driver() DriverName { return DriverArgon2id }

// Params returns the configured parameters.
func (h *Argon2idHasher) Params() Argon2idParams { return h.params }

// Make hashes password and returns the PHC-format string
// "$argon2id$v=19$m=…,t=…,p=…$salt$key".
func (h *Argon2idHasher) Make(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("hashing: argon2id: reading salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt,
		h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Check verifies password against an Argon2id hash using the parameters
// encoded in the hash. Comparison is constant time.
// Returns (false, nil) on a plain mismatch.
func (h *Argon2idHasher) Check(password, hash string) (bool, error) {
	params, salt, key, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}
	derived := argon2.IDKey([]byte(password), salt,
		params.Time, params.Memory, params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}

// NeedsRehash reports whether the parameters encoded in hash differ from
// the hasher's current configuration.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	params, salt, key, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}
	return params.Memory != h.params.Memory ||
		params.Time != h.params.Time ||
		params.Threads != h.params.Threads ||
		uint32(len(key)) != h.params.KeyLen ||
		uint32(len(salt)) != h.params.SaltLen, nil
}

// parseArgon2id splits a PHC-format Argon2id hash into its parameters,
// salt, and derived key.
func parseArgon2id(hash string) (Argon2idParams, []byte, []byte, error) {
	if d, ok := DetectDriver(hash); !ok || d != DriverArgon2id {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: expected argon2id", ErrAlgorithmMismatch)
	}
	parts := strings.Split(hash, "$")
	// "", "argon2id", "v=19", "m=…,t=…,p=…", salt, key
	if len(parts) != 6 {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: malformed argon2id hash", ErrInvalidHash)
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: unsupported argon2 version", ErrInvalidHash)
	}
	var params Argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.Memory, &params.Time, &params.Threads); err != nil {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: malformed argon2id parameters", ErrInvalidHash)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad salt encoding", ErrInvalidHash)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Argon2idParams{}, nil, nil, fmt.Errorf("%w: bad key encoding", ErrInvalidHash)
	}
	return params, salt, key, nil
}
