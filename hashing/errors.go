package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hashing.Verify(stored, password)
//	if errors.Is(err, hashing.ErrMalformedHash) {
//	    // the stored record is corrupt, which is not the same as a wrong password
//	}
var (
	// ErrInvalidParameters is returned when a cost parameter combination
	// violates an Argon2 constraint, e.g. memory below 8 KiB per lane.
	// With the pinned defaults this indicates a programming error.
	ErrInvalidParameters = errors.New("hashing: invalid argon2 parameters")

	// ErrRandomnessUnavailable is returned when the secure random source
	// fails to supply salt bytes. It is not retried internally.
	ErrRandomnessUnavailable = errors.New("hashing: secure randomness unavailable")

	// ErrEncodingFailed is returned when a hash cannot be serialised to the
	// PHC string format. It is not expected with valid inputs.
	ErrEncodingFailed = errors.New("hashing: failed to encode hash")

	// ErrMalformedHash is returned when an encoded hash cannot be parsed:
	// wrong segment count, unsupported variant or version, missing or
	// out-of-range parameters, or invalid base64. A well-formed hash that
	// does not match the password is reported as false, never as this error.
	ErrMalformedHash = errors.New("hashing: malformed or unsupported hash string")
)
