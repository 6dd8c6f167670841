package hashing

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// Variant is the Argon2 variant tag written to and accepted from PHC strings.
	Variant = "argon2id"

	// Version is the Argon2 specification version encoded in hashes (0x13 = 19).
	Version uint32 = argon2.Version

	// DefaultMemory is the default memory cost in KiB (19 MiB).
	// This is the RFC 9106 / OWASP Argon2id recommendation for m=19 MiB, t=2, p=1.
	DefaultMemory uint32 = 19 * 1024

	// DefaultTime is the default number of passes over memory.
	DefaultTime uint32 = 2

	// DefaultThreads is the default degree of parallelism.
	DefaultThreads uint8 = 1

	// DefaultKeyLen is the derived key length in bytes produced by [Hash].
	DefaultKeyLen uint32 = 32

	// DefaultSaltLen is the length of the random salt generated per hash.
	DefaultSaltLen = 16
)

// Limits accepted when encoding or decoding a PHC string.
const (
	MinKeyLen  uint32 = 4
	MaxKeyLen  uint32 = 64
	MinSaltLen        = 8
	MaxSaltLen        = 48
)

// Params is the Argon2id cost configuration shared by hashing and
// verification. The variant and version are fixed to [Variant] and [Version].
//
// Verification never uses a Params value supplied by the caller: the
// parameters embedded in the hash string are authoritative, so changing the
// defaults does not invalidate existing hashes.
type Params struct {
	// Memory is the memory cost in KiB. Minimum: 8 * Threads.
	Memory uint32 `json:"memory"`

	// Time is the number of iterations. Minimum: 1.
	Time uint32 `json:"time"`

	// Threads is the degree of parallelism (lanes). Minimum: 1.
	Threads uint8 `json:"threads"`

	// KeyLen is the derived key length in bytes, between [MinKeyLen] and [MaxKeyLen].
	KeyLen uint32 `json:"key_len"`
}

// DefaultParams returns the pinned default parameter set with a 32-byte key.
func DefaultParams() Params {
	return Params{
		Memory:  DefaultMemory,
		Time:    DefaultTime,
		Threads: DefaultThreads,
		KeyLen:  DefaultKeyLen,
	}
}

// BuildParams returns the default cost parameters with the requested derived
// key length. A keyLen of zero selects [DefaultKeyLen].
//
// The result is validated even though the defaults are fixed; an error
// wrapping [ErrInvalidParameters] means the constants themselves are wrong.
func BuildParams(keyLen uint32) (Params, error) {
	p := DefaultParams()
	if keyLen != 0 {
		p.KeyLen = keyLen
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate reports whether p satisfies the Argon2 constraints. Violations are
// returned as errors wrapping [ErrInvalidParameters]; values are never clamped.
func (p Params) Validate() error {
	if p.Time < 1 {
		return fmt.Errorf("%w: time must be ≥ 1, got %d", ErrInvalidParameters, p.Time)
	}
	if p.Threads < 1 {
		return fmt.Errorf("%w: threads must be ≥ 1, got %d", ErrInvalidParameters, p.Threads)
	}
	if uint64(p.Memory) < 8*uint64(p.Threads) {
		return fmt.Errorf("%w: memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidParameters, p.Memory, 8*uint32(p.Threads))
	}
	if p.KeyLen < MinKeyLen || p.KeyLen > MaxKeyLen {
		return fmt.Errorf("%w: key length must be between %d and %d, got %d",
			ErrInvalidParameters, MinKeyLen, MaxKeyLen, p.KeyLen)
	}
	return nil
}

// String returns the PHC parameter segment, e.g. "m=19456,t=2,p=1".
func (p Params) String() string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
}
