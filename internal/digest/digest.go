// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Size is the length of a [Digest] in bytes.
const Size = sha256.Size

// Digest is the fixed-length SHA-256 output.
type Digest [Size]byte

// Hash returns the SHA-256 digest of the UTF-8 encoding of text.
func Hash(text string) Digest {
	return sha256.Sum256([]byte(text))
}

// ToHex returns the canonical lowercase hex representation of d.
func ToHex(d Digest) string {
	return hex.EncodeToString(d[:])
}

// String implements [fmt.Stringer] and returns [ToHex].
func (d Digest) String() string {
	return ToHex(d)
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// FromHex decodes an arbitrary-length hex string. Upper and lower case are
// both accepted. Returns [ErrMalformedInput] on odd length or a non-hex
// character.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return b, nil
}

// ParseHex decodes s into a [Digest]. In addition to the checks done by
// [FromHex] the decoded value must be exactly [Size] bytes long.
func ParseHex(s string) (Digest, error) {
	b, err := FromHex(s)
	if err != nil {
		return Digest{}, err
	}
	return FromBytes(b)
}

// FromBytes converts b into a [Digest], failing with [ErrMalformedInput]
// when len(b) != [Size].
func FromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedInput, len(b), Size)
	}
	copy(d[:], b)
	return d, nil
}

// Equal reports whether a and b are identical. The comparison runs in
// constant time.
func Equal(a, b Digest) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
