// Package hashing provides Argon2id password hashing and verification in the
// standard PHC string format.
//
// # Quick start
//
//	hash, err := hashing.Hash("my-secret-password")
//	if err != nil { log.Fatal(err) }
//
//	ok, err := hashing.Verify(hash, "my-secret-password") // true, nil
//
// # Errors
//
// A wrong password is not an error: [Verify] returns (false, nil). A stored
// hash that cannot be parsed returns an error wrapping [ErrMalformedHash], so
// callers can tell a corrupt record from a failed login. Hashing fails only
// when the secure random source fails ([ErrRandomnessUnavailable]) or the
// result cannot be encoded ([ErrEncodingFailed]).
//
// # Parameters
//
// New hashes use m=19 MiB, t=2, p=1 and a 32-byte key with a 16-byte salt
// (RFC 9106 / OWASP). The values are pinned as constants rather than taken
// from the Argon2 library so that the cost profile only changes when this
// package changes. Use [NewHasher] for a different parameter set.
//
// Verification reads the parameters from the hash string, so raising the
// defaults never breaks older hashes. [Hasher.NeedsRehash] reports when a
// stored hash should be replaced.
//
// # Hash format
//
//	$argon2id$v=19$m=19456,t=2,p=1$<base64-salt>$<base64-hash>
//
// Base64 is the standard alphabet without padding. Only argon2id version 19
// is accepted.
//
// # Blocking
//
// Hashing and verification are deliberately expensive, synchronous and not
// cancellable. Nothing in this package starts background work or logs.
package hashing
