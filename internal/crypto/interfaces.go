package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Encrypter turns plaintext into ciphertext under a fixed key and IV and
// exposes the parameters a caller has to persist next to the ciphertext.
//
// [CipherBox] built with [NewEncryptionBox] satisfies it.
type Encrypter interface {
	// Encrypt returns the padded ciphertext of plaintext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Salt returns the key-derivation salt used for this box.
	Salt() []byte

	// IV returns the CBC initialization vector used for this box.
	IV() []byte
}

// Decrypter reverses [Encrypter] given the same password, salt and IV.
//
// [CipherBox] built with [NewDecryptionBox] satisfies it.
type Decrypter interface {
	// Decrypt returns the unpadded plaintext of ciphertext.
	Decrypt(ciphertext []byte) ([]byte, error)
}
