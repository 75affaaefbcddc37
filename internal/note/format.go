// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package note

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/digest"
)

// Field offsets of the container layout.
const (
	digestOffset = 0
	saltOffset   = digestOffset + digest.Size
	ivOffset     = saltOffset + crypto.SaltLength
	// HeaderSize is the length of the fixed header preceding the ciphertext.
	HeaderSize = ivOffset + crypto.IVLength
)

// Envelope is the parsed form of a container file.
type Envelope struct {
	Digest     digest.Digest
	Salt       []byte
	IV         []byte
	Ciphertext []byte
}

// Encode serialises e as digest ‖ salt ‖ iv ‖ ciphertext. Salt and IV must
// have their fixed lengths.
func Encode(e Envelope) ([]byte, error) {
	if len(e.Salt) != crypto.SaltLength {
		return nil, fmt.Errorf("encode container: %w", crypto.ErrInvalidSalt)
	}
	if len(e.IV) != crypto.IVLength {
		return nil, fmt.Errorf("encode container: %w", crypto.ErrInvalidIV)
	}

	out := make([]byte, 0, HeaderSize+len(e.Ciphertext))
	out = append(out, e.Digest[:]...)
	out = append(out, e.Salt...)
	out = append(out, e.IV...)
	out = append(out, e.Ciphertext...)
	return out, nil
}

// Decode splits a container blob into its fields. The returned slices do
// not alias blob. Returns [ErrMalformedContainer] if blob is shorter than
// [HeaderSize].
func Decode(blob []byte) (Envelope, error) {
	if len(blob) < HeaderSize {
		return Envelope{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedContainer, len(blob), HeaderSize)
	}

	var e Envelope
	copy(e.Digest[:], blob[digestOffset:saltOffset])
	e.Salt = append([]byte(nil), blob[saltOffset:ivOffset]...)
	e.IV = append([]byte(nil), blob[ivOffset:HeaderSize]...)
	e.Ciphertext = append([]byte(nil), blob[HeaderSize:]...)
	return e, nil
}
