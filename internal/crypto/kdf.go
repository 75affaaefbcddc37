// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Key-derivation and container parameters. Every value here is part of the
// note file format; changing one is a breaking format change.
const (
	// KDFIterations is the PBKDF2 iteration count.
	KDFIterations = 65536

	// KeyLength is the derived AES-256 key length in bytes.
	KeyLength = 32

	// SaltLength is the key-derivation salt length in bytes.
	SaltLength = 8

	// IVLength is the AES-CBC initialization vector length in bytes.
	IVLength = 16
)

// DeriveKey derives a [KeyLength]-byte key from password and salt using
// PBKDF2-HMAC-SHA256 with [KDFIterations] rounds. The result is fully
// determined by (password, salt).
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, KDFIterations, KeyLength, sha256.New)
}
