package note

import "github.com/MKhiriev/go-note-keeper/internal/crypto"

// SetEncrypterFactory replaces how c builds the cipher used by Save.
func SetEncrypterFactory(c *Container, f func(password string) (crypto.Encrypter, error)) {
	c.newEncrypter = f
}

// SetDecrypterFactory replaces how c builds the cipher used by Open.
func SetDecrypterFactory(c *Container, f func(password string, salt, iv []byte) (crypto.Decrypter, error)) {
	c.newDecrypter = f
}
