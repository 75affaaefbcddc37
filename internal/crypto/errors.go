package crypto

import "errors"

// Cipher-layer errors. Callers match them with [errors.Is].
var (
	// ErrInvalidMode is returned when a box is used against the role it was
	// constructed for, e.g. Encrypt on a DecryptOnly box. It signals a
	// programming error, not bad input.
	ErrInvalidMode = errors.New("cipher box used in wrong mode")

	// ErrCipher is returned when ciphertext cannot be decrypted: its length
	// is not a positive multiple of the block size or the padding is invalid.
	ErrCipher = errors.New("cipher error")

	// ErrInvalidSalt is returned when a supplied salt is not SaltLength bytes.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidIV is returned when a supplied IV is not IVLength bytes.
	ErrInvalidIV = errors.New("invalid initialization vector length")
)

// Password generator errors.
var (
	// ErrInvalidLength is returned when the requested password length is
	// outside [1, MaxPasswordLength].
	ErrInvalidLength = errors.New("invalid password length")

	// ErrNoSymbolClasses is returned when no symbol class is selected.
	ErrNoSymbolClasses = errors.New("no symbol classes selected")

	// ErrUnknownSymbolClass is returned by ParseSymbolClasses for an
	// unrecognised class name.
	ErrUnknownSymbolClass = errors.New("unknown symbol class")
)
