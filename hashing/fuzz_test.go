package hashing_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/argonia/hashing"
)

// FuzzInfo ensures the PHC decoder never panics and reports every rejection
// as ErrMalformedHash. Verify is not fuzzed directly because a decoded
// memory cost can legitimately ask for gigabytes.
//
// Run with: go test -fuzz=FuzzInfo ./hashing/
func FuzzInfo(f *testing.F) {
	seeds := []string{
		"",
		"$",
		"$argon2id$v=19$m=65536,t=3,p=4$c29tZXNhbHRzb21lc2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=8,t=1,p=1$c29tZXNhbHQ$aGFzaA",
		"$argon2i$v=19$m=65536,t=3,p=4$c29tZXNhbHQ$aGFzaA",
		"$argon2id$v=19$m=,t=,p=$$",
		"$argon2id$v=19$m=1,m=1$c29tZXNhbHQ$aGFzaA",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, encoded string) {
		info, err := hashing.Info(encoded)
		if err != nil {
			if !errors.Is(err, hashing.ErrMalformedHash) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		if verr := info.Params.Validate(); verr != nil {
			t.Fatalf("decoded params must validate: %v", verr)
		}
		if info.SaltLen < hashing.MinSaltLen || info.SaltLen > hashing.MaxSaltLen {
			t.Fatalf("decoded salt length %d out of range", info.SaltLen)
		}
	})
}

// FuzzHashVerify checks the round-trip property over arbitrary passwords.
func FuzzHashVerify(f *testing.F) {
	h, err := hashing.NewHasher(fastParams())
	if err != nil {
		f.Fatal(err)
	}
	f.Add("")
	f.Add("argonia")
	f.Add("pässwörd")
	f.Add("\x00\xff\xfe")

	f.Fuzz(func(t *testing.T, password string) {
		hash, err := h.Hash(password)
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		ok, err := hashing.Verify(hash, password)
		if err != nil || !ok {
			t.Fatalf("round-trip failed: ok=%v err=%v", ok, err)
		}
	})
}
