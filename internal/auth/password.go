// Package auth holds the authentication primitives: Argon2id password
// hashing, JWT issuance and verification, and the per-request Identity
// value derived from a validated token.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters. New hashes always use these; verification reads
// the parameters embedded in the stored hash, so old hashes keep verifying
// after a cost change.
const (
	argonTime    = 3         // iterations
	argonMemory  = 16 * 1024 // 16 MiB
	argonThreads = 2         // lanes
	argonKeyLen  = 32        // derived hash length
	argonSaltLen = 16        // salt length
)

// Upper bounds on the parameters read back from a stored hash so a
// corrupted record cannot request an absurd amount of work.
const (
	maxThreads = 255
	maxMemory  = 1 << 20 // 1 GiB in KiB
	maxTime    = 64
)

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword hashes a plaintext password with Argon2id and returns it in
// PHC string format: $argon2id$v=19$m=16384,t=3,p=2$<salt>$<hash>.
// The password slice is zeroed before the function returns, on every path.
func HashPassword(password []byte) (string, error) {
	defer wipe(password)

	if len(password) == 0 {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks a candidate password against a stored PHC hash.
// It fails closed: a malformed hash, unknown algorithm tag, or unparsable
// parameter block yields false, never an error. The candidate slice is
// zeroed before the function returns, on every path.
func VerifyPassword(encodedHash string, password []byte) bool {
	defer wipe(password)

	salt, hash, params, err := decodePHC(encodedHash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey(password, salt, params.time, params.memory, params.threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// decodePHC parses an Argon2id PHC string into salt, hash and parameters.
func decodePHC(encoded string) (salt, hash []byte, params argonParams, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, params, fmt.Errorf("invalid PHC hash format")
	}

	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, fmt.Errorf("parsing version: %w", err)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &threads); err != nil {
		return nil, nil, params, fmt.Errorf("parsing parameters: %w", err)
	}
	if threads == 0 || threads > maxThreads {
		return nil, nil, params, fmt.Errorf("parallelism %d out of range", threads)
	}
	params.threads = uint8(threads)

	if params.time == 0 || params.time > maxTime {
		return nil, nil, params, fmt.Errorf("iterations %d out of range", params.time)
	}
	if params.memory == 0 || params.memory > maxMemory {
		return nil, nil, params, fmt.Errorf("memory %d out of range", params.memory)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding salt: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, nil, params, fmt.Errorf("decoding hash: %w", err)
	}

	return salt, hash, params, nil
}

// wipe overwrites a plaintext buffer so it does not linger on the heap.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
