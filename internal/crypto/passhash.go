// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// HashPassword implements [PasswordHasher]. It reads 16 random bytes from
// the OS CSPRNG as the per-user salt, derives the Argon2id digest of
// password, and returns both base64-encoded.
func (p *passwordHasher) HashPassword(password string) (string, string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", "", fmt.Errorf("generate password salt: %w", err)
	}

	digest := p.derive(password, salt)

	return base64.StdEncoding.EncodeToString(digest),
		base64.StdEncoding.EncodeToString(salt),
		nil
}

// VerifyPassword implements [PasswordHasher]. It decodes the stored salt and
// hash, re-derives the digest of password, and compares the two with
// [subtle.ConstantTimeCompare] so the comparison does not leak timing
// information.
func (p *passwordHasher) VerifyPassword(password, hash, salt string) (bool, error) {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false, fmt.Errorf("decode password salt: %w", err)
	}

	hashBytes, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false, fmt.Errorf("decode password hash: %w", err)
	}

	digest := p.derive(password, saltBytes)

	return subtle.ConstantTimeCompare(digest, hashBytes) == 1, nil
}

// derive computes the Argon2id digest of password with the receiver's
// tuning parameters.
func (p *passwordHasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		p.argonTime,
		p.argonMemory,
		p.argonThreads,
		p.argonKeyLen,
	)
}
