package hashing

// PasswordHasher is satisfied by [*Hasher]. Callers that want to substitute
// a fake in their own tests can depend on this interface instead of the
// concrete type.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type PasswordHasher interface {
	// Hash hashes a plaintext password and returns the PHC string.
	// A fresh salt is generated for every call, so two calls with the same
	// password produce different outputs.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is malformed.
	Verify(hashed, password string) (bool, error)

	// NeedsRehash reports whether the hash was produced with parameters
	// different from the hasher's current configuration.
	NeedsRehash(hashed string) (bool, error)
}

var _ PasswordHasher = (*Hasher)(nil)

// HashInfo carries metadata decoded from an encoded hash string.
type HashInfo struct {
	// Variant is the Argon2 variant tag, always [Variant].
	Variant string `json:"variant"`

	// Version is the Argon2 version number, always [Version].
	Version uint32 `json:"version"`

	// Params holds the embedded cost parameters. KeyLen is the length of
	// the stored derived key.
	Params Params `json:"params"`

	// SaltLen is the decoded salt length in bytes.
	SaltLen int `json:"salt_len"`
}

// Info decodes an encoded hash without verifying it. Useful for auditing and
// migration tooling. Errors wrap [ErrMalformedHash].
func Info(hashed string) (HashInfo, error) {
	h, err := decodePHC(hashed)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Variant: Variant,
		Version: h.version,
		Params:  h.params,
		SaltLen: len(h.salt),
	}, nil
}
