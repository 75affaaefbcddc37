// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package note implements the encrypted note container: the binary file
// layout and the open/save protocol around it.
//
// A container file is
//
//	offset 0..32   SHA-256 digest of the password
//	offset 32..40  key-derivation salt
//	offset 40..56  AES-CBC initialization vector
//	offset 56..end AES-256-CBC/PKCS#7 ciphertext of the UTF-8 content
//
// There is no version header; the layout is the contract.
//
// Open always checks the stored digest before decrypting, so a cipher error
// after a successful check means the file is corrupt, not that the password
// is wrong.
package note
