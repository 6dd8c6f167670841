package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// randReader is the salt source. Only tests replace it.
var randReader io.Reader = rand.Reader

// Hasher hashes passwords with Argon2id using a fixed parameter set.
//
// Output format: PHC string ($argon2id$v=19$m=…,t=…,p=…$<salt>$<hash>),
// compatible with libargon2, argon2-cffi, the Node.js argon2 package and the
// Rust argon2 crate.
//
// Every call runs synchronously on the calling goroutine and holds Memory
// KiB for its duration. Hashing cannot be cancelled; callers that need a
// latency bound must run it on their own goroutine.
//
// # Thread safety
//
// Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	params Params
}

// NewHasher constructs a Hasher with the given parameters.
// Use [DefaultParams] or [BuildParams] for the pinned defaults.
func NewHasher(p Params) (*Hasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{params: p}, nil
}

// NewDefaultHasher constructs a Hasher on the pinned defaults with a
// 32-byte derived key.
func NewDefaultHasher() (*Hasher, error) {
	p, err := BuildParams(DefaultKeyLen)
	if err != nil {
		return nil, err
	}
	return &Hasher{params: p}, nil
}

// Params returns the parameter set used for new hashes.
func (h *Hasher) Params() Params { return h.params }

// Hash hashes password with Argon2id and returns a PHC-formatted string.
// The password is used as raw bytes with no normalisation; an empty
// password is accepted.
func (h *Hasher) Hash(password string) (string, error) {
	salt, err := randomSalt(DefaultSaltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey(
		[]byte(password), salt,
		h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen,
	)
	return encodePHC(h.params, salt, key)
}

// Verify checks password against hashed. The parameters are read from the
// hash string itself, so the hasher's own configuration plays no part.
func (h *Hasher) Verify(hashed, password string) (bool, error) {
	return Verify(hashed, password)
}

// NeedsRehash returns true if any parameter stored in hashed differs from
// the hasher's configuration. Call it after a successful Verify and persist
// a fresh Hash when it reports true.
func (h *Hasher) NeedsRehash(hashed string) (bool, error) {
	p, err := decodePHC(hashed)
	if err != nil {
		return false, err
	}
	return p.params != h.params, nil
}

// Hash hashes password with the pinned default parameters and a 32-byte
// derived key.
func Hash(password string) (string, error) {
	h, err := NewDefaultHasher()
	if err != nil {
		return "", err
	}
	return h.Hash(password)
}

// Verify reports whether password matches hashed.
//
// A well-formed hash that does not match returns (false, nil). A hash that
// cannot be parsed returns an error wrapping [ErrMalformedHash]. The
// comparison runs in constant time.
func Verify(hashed, password string) (bool, error) {
	p, err := decodePHC(hashed)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey(
		[]byte(password), p.salt,
		p.params.Time, p.params.Memory, p.params.Threads, p.params.KeyLen,
	)
	return subtle.ConstantTimeCompare(computed, p.key) == 1, nil
}

// NeedsRehash reports whether hashed differs from the pinned defaults.
func NeedsRehash(hashed string) (bool, error) {
	h, err := NewDefaultHasher()
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hashed)
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return b, nil
}
