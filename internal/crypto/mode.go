package crypto

import "fmt"

// Mode is the role a [CipherBox] is allowed to play. It is fixed when the
// box is constructed.
type Mode int

const (
	// EncryptOnly boxes reject Decrypt.
	EncryptOnly Mode = iota + 1
	// DecryptOnly boxes reject Encrypt.
	DecryptOnly
	// Both allows either direction.
	Both
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case EncryptOnly:
		return "encrypt-only"
	case DecryptOnly:
		return "decrypt-only"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) canEncrypt() bool {
	return m == EncryptOnly || m == Both
}

func (m Mode) canDecrypt() bool {
	return m == DecryptOnly || m == Both
}
