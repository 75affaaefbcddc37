package crypto

import "github.com/MKhiriev/go-note-keeper/internal/digest"

// Authenticator checks candidate passwords against a stored password digest.
type Authenticator struct {
	reference digest.Digest
}

// NewAuthenticator returns an [Authenticator] for the stored reference digest.
func NewAuthenticator(reference digest.Digest) *Authenticator {
	return &Authenticator{reference: reference}
}

// Verify reports whether the digest of candidate equals the reference. The
// comparison runs in constant time.
func (a *Authenticator) Verify(candidate string) bool {
	return digest.Equal(digest.Hash(candidate), a.reference)
}
