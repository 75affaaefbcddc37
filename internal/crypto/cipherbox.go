// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// CipherBox performs AES-256-CBC encryption with PKCS#7 padding under a key
// derived from a password. A box owns its salt and IV; the same IV is used
// for every call on one box, matching the single IV stored with one saved
// note.
//
// A box is created per open or save operation and then discarded.
type CipherBox struct {
	mode Mode
	key  []byte
	salt []byte
	iv   []byte
}

// BoxOption customises a [CipherBox] at construction.
type BoxOption func(*CipherBox)

// WithMode overrides the default mode of the constructor. Only [Both] is
// useful in practice; passing the constructor's own default is a no-op.
func WithMode(m Mode) BoxOption {
	return func(b *CipherBox) {
		b.mode = m
	}
}

// NewEncryptionBox creates a box with a fresh random salt and IV read from
// the OS CSPRNG and a key derived from password. The box is [EncryptOnly]
// unless [WithMode] says otherwise.
func NewEncryptionBox(password string, opts ...BoxOption) (*CipherBox, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, IVLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	return newBox(password, salt, iv, EncryptOnly, opts), nil
}

// NewDecryptionBox recreates the context of an earlier encryption from the
// stored salt and IV. The box is [DecryptOnly] unless [WithMode] says
// otherwise. Returns [ErrInvalidSalt] or [ErrInvalidIV] on wrong lengths.
func NewDecryptionBox(password string, salt, iv []byte, opts ...BoxOption) (*CipherBox, error) {
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltLength)
	}
	if len(iv) != IVLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(iv), IVLength)
	}

	return newBox(password, bytes.Clone(salt), bytes.Clone(iv), DecryptOnly, opts), nil
}

func newBox(password string, salt, iv []byte, mode Mode, opts []BoxOption) *CipherBox {
	b := &CipherBox{
		mode: mode,
		salt: salt,
		iv:   iv,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.key = DeriveKey(password, salt)
	return b
}

// Mode returns the role the box was constructed for.
func (b *CipherBox) Mode() Mode {
	return b.mode
}

// Salt implements [Encrypter]. The returned slice is a copy.
func (b *CipherBox) Salt() []byte {
	return bytes.Clone(b.salt)
}

// IV implements [Encrypter]. The returned slice is a copy.
func (b *CipherBox) IV() []byte {
	return bytes.Clone(b.iv)
}

// Encrypt implements [Encrypter]. Returns [ErrInvalidMode] for a
// [DecryptOnly] box.
func (b *CipherBox) Encrypt(plaintext []byte) ([]byte, error) {
	if !b.mode.canEncrypt() {
		return nil, fmt.Errorf("%w: encrypt on %s box", ErrInvalidMode, b.mode)
	}

	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, b.iv).CryptBlocks(out, padded)

	return out, nil
}

// Decrypt implements [Decrypter]. Returns [ErrInvalidMode] for an
// [EncryptOnly] box and [ErrCipher] when the ciphertext length is not a
// positive multiple of the block size or the padding is invalid.
func (b *CipherBox) Decrypt(ciphertext []byte) ([]byte, error) {
	if !b.mode.canDecrypt() {
		return nil, fmt.Errorf("%w: decrypt on %s box", ErrInvalidMode, b.mode)
	}

	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	bs := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", ErrCipher, len(ciphertext), bs)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, b.iv).CryptBlocks(out, ciphertext)

	plaintext, err := pkcs7Unpad(out, bs)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// pkcs7Pad appends 1..blockSize bytes, each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padded length %d", ErrCipher, len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", ErrCipher)
	}

	pad := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(data[len(data)-n:], pad) != 1 {
		return nil, fmt.Errorf("%w: invalid padding", ErrCipher)
	}

	return data[:len(data)-n], nil
}
