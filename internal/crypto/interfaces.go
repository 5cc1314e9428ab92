package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies salted password digests. It knows
// nothing about users or storage; its only job is to make sure a plaintext
// password never has to be persisted or compared directly.
type PasswordHasher interface {
	// HashPassword generates a fresh random salt and derives the Argon2id
	// digest of password with it. Both values are returned base64-encoded,
	// ready for storage. Returns an error if the CSPRNG read fails.
	HashPassword(password string) (hash, salt string, err error)

	// VerifyPassword re-derives the digest of password with the stored salt
	// and compares it against the stored hash in constant time.
	// Returns an error only when the stored values cannot be decoded;
	// a wrong password is reported as (false, nil).
	VerifyPassword(password, hash, salt string) (bool, error)
}
