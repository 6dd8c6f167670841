package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// b64 is the PHC "B64" encoding: standard alphabet, no padding. Decoding is
// strict so that non-canonical trailing bits are rejected.
var b64 = base64.RawStdEncoding.Strict()

// phcHash holds the components of a decoded PHC hash string.
type phcHash struct {
	version uint32
	params  Params
	salt    []byte
	key     []byte
}

// encodePHC serialises an Argon2id hash in PHC string format:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt_base64>$<hash_base64>
func encodePHC(p Params, salt, key []byte) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	if len(salt) < MinSaltLen || len(salt) > MaxSaltLen {
		return "", fmt.Errorf("%w: salt length %d outside %d..%d",
			ErrEncodingFailed, len(salt), MinSaltLen, MaxSaltLen)
	}
	if uint32(len(key)) != p.KeyLen {
		return "", fmt.Errorf("%w: derived key is %d bytes, parameters say %d",
			ErrEncodingFailed, len(key), p.KeyLen)
	}
	return fmt.Sprintf("$%s$v=%d$%s$%s$%s",
		Variant,
		Version,
		p,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

// decodePHC parses an Argon2id PHC hash string. Every failure wraps
// [ErrMalformedHash].
//
// Expected format (6 dollar-delimited segments, first is empty):
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
func decodePHC(encoded string) (*phcHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string, got %d segments",
			ErrMalformedHash, len(parts)-1)
	}

	if parts[1] != Variant {
		return nil, fmt.Errorf("%w: unsupported variant %q", ErrMalformedHash, parts[1])
	}

	version, err := parseKV(parts[2], "v", 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if uint32(version) != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	params, err := parseCostParams(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrMalformedHash, err)
	}
	if len(salt) < MinSaltLen || len(salt) > MaxSaltLen {
		return nil, fmt.Errorf("%w: salt length %d outside %d..%d",
			ErrMalformedHash, len(salt), MinSaltLen, MaxSaltLen)
	}

	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrMalformedHash, err)
	}

	params.KeyLen = uint32(len(key))
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	return &phcHash{
		version: uint32(version),
		params:  params,
		salt:    salt,
		key:     key,
	}, nil
}

// parseKV parses a "key=value" string and returns the decimal value.
func parseKV(s, key string, bitSize int) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return parseDecimal(s[len(prefix):], bitSize)
}

// parseDecimal accepts canonical unsigned decimals only: no sign and no
// leading zeros.
func parseDecimal(s string, bitSize int) (uint64, error) {
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("non-canonical decimal %q", s)
	}
	return strconv.ParseUint(s, 10, bitSize)
}

// parseCostParams parses "m=19456,t=2,p=1". Each of m, t and p must appear
// exactly once; unknown keys are rejected. KeyLen is left for the caller.
func parseCostParams(s string) (Params, error) {
	var (
		p                   Params
		seenM, seenT, seenP bool
	)
	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return Params{}, fmt.Errorf("malformed param %q", kv)
		}
		switch k {
		case "m":
			if seenM {
				return Params{}, fmt.Errorf("duplicate param %q", k)
			}
			n, err := parseDecimal(v, 32)
			if err != nil {
				return Params{}, fmt.Errorf("invalid memory in %q: %v", kv, err)
			}
			p.Memory, seenM = uint32(n), true
		case "t":
			if seenT {
				return Params{}, fmt.Errorf("duplicate param %q", k)
			}
			n, err := parseDecimal(v, 32)
			if err != nil {
				return Params{}, fmt.Errorf("invalid time in %q: %v", kv, err)
			}
			p.Time, seenT = uint32(n), true
		case "p":
			if seenP {
				return Params{}, fmt.Errorf("duplicate param %q", k)
			}
			// x/crypto/argon2 takes parallelism as uint8.
			n, err := parseDecimal(v, 8)
			if err != nil {
				return Params{}, fmt.Errorf("invalid parallelism in %q: %v", kv, err)
			}
			p.Threads, seenP = uint8(n), true
		default:
			return Params{}, fmt.Errorf("unsupported param %q", k)
		}
	}
	if !seenM || !seenT || !seenP {
		return Params{}, fmt.Errorf("missing m/t/p in parameter segment %q", s)
	}
	return p, nil
}
