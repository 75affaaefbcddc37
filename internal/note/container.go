// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package note

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/digest"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// MaxContentLength is the maximum note length in characters (Unicode code
// points).
const MaxContentLength = 1000

// FileMode is the permission used for saved container files.
const FileMode os.FileMode = 0o600

// Container holds one note: its decrypted content, the location it was last
// opened from or saved to, and the header fields of the last successful read
// or write.
//
// A Container is owned by one session and must not be used concurrently.
type Container struct {
	content    string
	hasContent bool

	path    string
	hasPath bool

	digest digest.Digest
	salt   []byte
	iv     []byte

	newEncrypter func(password string) (crypto.Encrypter, error)
	newDecrypter func(password string, salt, iv []byte) (crypto.Decrypter, error)
}

// New returns an empty container with no content and no path.
func New() *Container {
	return &Container{
		newEncrypter: func(password string) (crypto.Encrypter, error) {
			return crypto.NewEncryptionBox(password)
		},
		newDecrypter: func(password string, salt, iv []byte) (crypto.Decrypter, error) {
			return crypto.NewDecryptionBox(password, salt, iv)
		},
	}
}

// Open reads the container at path and decrypts it with password.
//
// The path is recorded before anything else, whatever the outcome. Open
// returns false with a nil error when the password does not match the
// stored digest; no decryption is attempted in that case. Errors:
//   - [ErrNotFound] if the file cannot be read;
//   - [ErrMalformedContainer] if it is shorter than [HeaderSize];
//   - [ErrCrypto] if the password matched but decryption failed or the
//     plaintext is not valid UTF-8.
//
// Content is only replaced on success.
func (c *Container) Open(path, password string) (bool, error) {
	c.path, c.hasPath = path, true

	blob, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	env, err := Decode(blob)
	if err != nil {
		return false, err
	}

	if !crypto.NewAuthenticator(env.Digest).Verify(password) {
		return false, nil
	}

	box, err := c.newDecrypter(password, env.Salt, env.IV)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCrypto, err)
	}

	plaintext, err := box.Decrypt(env.Ciphertext)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCrypto, err)
	}
	if !utf8.Valid(plaintext) {
		return false, fmt.Errorf("%w: content is not valid UTF-8", ErrCrypto)
	}

	c.content, c.hasContent = string(plaintext), true
	c.digest = env.Digest
	c.salt = env.Salt
	c.iv = env.IV

	return true, nil
}

// Save encrypts the current content with password under a fresh salt and IV
// and writes the container to path atomically. A container without content
// is saved as an empty note. The path is recorded before writing.
func (c *Container) Save(path, password string) error {
	c.path, c.hasPath = path, true

	box, err := c.newEncrypter(password)
	if err != nil {
		return fmt.Errorf("create cipher box: %w", err)
	}

	ciphertext, err := box.Encrypt([]byte(c.content))
	if err != nil {
		return fmt.Errorf("encrypt content: %w", err)
	}

	env := Envelope{
		Digest:     digest.Hash(password),
		Salt:       box.Salt(),
		IV:         box.IV(),
		Ciphertext: ciphertext,
	}

	blob, err := Encode(env)
	if err != nil {
		return err
	}

	if err := utils.WriteFileAtomic(path, blob, FileMode); err != nil {
		return fmt.Errorf("write note %s: %w", path, err)
	}

	c.digest = env.Digest
	c.salt = env.Salt
	c.iv = env.IV

	return nil
}

// SetContent replaces the content. Returns [ErrContentTooLong] if text has
// more than [MaxContentLength] characters, leaving the old content in place.
func (c *Container) SetContent(text string) error {
	if n := utf8.RuneCountInString(text); n > MaxContentLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrContentTooLong, n, MaxContentLength)
	}
	c.content, c.hasContent = text, true
	return nil
}

// Content returns the note text and whether any has been set or decrypted.
func (c *Container) Content() (string, bool) {
	return c.content, c.hasContent
}

// Path returns the last location passed to Open or Save and whether there
// has been one.
func (c *Container) Path() (string, bool) {
	return c.path, c.hasPath
}

// Digest returns the password digest of the last successful Open or Save.
func (c *Container) Digest() digest.Digest {
	return c.digest
}

// Salt returns the salt of the last successful Open or Save, or nil.
func (c *Container) Salt() []byte {
	return append([]byte(nil), c.salt...)
}

// IV returns the IV of the last successful Open or Save, or nil.
func (c *Container) IV() []byte {
	return append([]byte(nil), c.iv...)
}

// IsNotFound reports whether err means the container file is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
