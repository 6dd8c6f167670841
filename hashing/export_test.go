package hashing

import "io"

// SetRandReader replaces the salt source and returns a function restoring it.
func SetRandReader(r io.Reader) (restore func()) {
	prev := randReader
	randReader = r
	return func() { randReader = prev }
}

// EncodePHC exposes the encoder so tests can exercise its guards.
func EncodePHC(p Params, salt, key []byte) (string, error) {
	return encodePHC(p, salt, key)
}
