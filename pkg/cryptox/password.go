package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatch is returned when the plaintext does not produce the digest.
	ErrMismatch = errors.New("password does not match")
	// ErrMalformedHash is returned for digests that cannot be parsed. It is a
	// verification failure like any other.
	ErrMalformedHash = errors.New("invalid hash format")
)

// Hasher produces and verifies peppered Argon2id digests. Digests written by
// the previous bcrypt based deployment still verify, without the pepper.
type Hasher struct {
	pepper string
}

// NewHasher returns a Hasher mixing pepper into every Argon2id digest. An empty
// pepper is allowed and mostly useful in tests.
func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// Verify compares a plaintext password against a stored digest. It returns
// nil on a match, ErrMismatch on a wrong password and an error wrapping
// ErrMalformedHash when the digest cannot be understood.
func (h *Hasher) Verify(password, encodedHash string) error {
	if isBcrypt(encodedHash) {
		return verifyBcrypt(password, encodedHash)
	}
	return h.verifyArgon2id(password, encodedHash)
}

// Matches is the boolean form of Verify.
func (h *Hasher) Matches(password, encodedHash string) bool {
	return h.Verify(password, encodedHash) == nil
}

// NeedsRehash reports whether the digest was produced by a scheme other than
// the current Argon2id parameters. Digests that do not parse always need one.
func (h *Hasher) NeedsRehash(encodedHash string) bool {
	d, err := parseArgon2id(encodedHash)
	if err != nil {
		return true
	}
	return d.memory != memory ||
		d.iterations != iterations ||
		d.parallelism != parallelism ||
		len(d.key) != keyLength
}

// argon2idDigest is a parsed "$argon2id$v=19$m=X,t=Y,p=Z$salt$key" string.
type argon2idDigest struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parseArgon2id(encodedHash string) (argon2idDigest, error) {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return argon2idDigest{}, fmt.Errorf("%w: expected 6 parts", ErrMalformedHash)
	}
	if parts[1] != "argon2id" {
		return argon2idDigest{}, fmt.Errorf("%w: not argon2id", ErrMalformedHash)
	}
	if parts[2] != "v=19" {
		return argon2idDigest{}, fmt.Errorf("%w: wrong version", ErrMalformedHash)
	}

	var d argon2idDigest
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &d.memory, &d.iterations, &d.parallelism); err != nil {
		return argon2idDigest{}, fmt.Errorf("%w: failed to parse parameters: %v", ErrMalformedHash, err)
	}
	// argon2 panics on zero time or parallelism; cap memory so a tampered row
	// cannot make us allocate gigabytes.
	if d.iterations == 0 || d.parallelism == 0 || d.memory == 0 ||
		d.memory > maxMemory || d.iterations > maxIterations {
		return argon2idDigest{}, fmt.Errorf("%w: parameters out of range", ErrMalformedHash)
	}

	var err error
	if d.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return argon2idDigest{}, fmt.Errorf("%w: failed to decode salt: %v", ErrMalformedHash, err)
	}
	if d.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return argon2idDigest{}, fmt.Errorf("%w: failed to decode hash: %v", ErrMalformedHash, err)
	}
	if len(d.key) == 0 {
		return argon2idDigest{}, fmt.Errorf("%w: empty hash", ErrMalformedHash)
	}
	return d, nil
}

func (h *Hasher) verifyArgon2id(password, encodedHash string) error {
	d, err := parseArgon2id(encodedHash)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		d.salt,
		d.iterations,
		d.memory,
		d.parallelism,
		uint32(len(d.key)), // #nosec G115 - bounded by the decoded column
	)

	if subtle.ConstantTimeCompare(computed, d.key) == 1 {
		return nil
	}
	return ErrMismatch
}

func isBcrypt(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2a$") ||
		strings.HasPrefix(encodedHash, "$2b$") ||
		strings.HasPrefix(encodedHash, "$2y$")
}

func verifyBcrypt(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
