package payment

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const (
	PayPath      = "/pg/v1/pay"
	CallbackPath = "/pg/v1/callback"

	signatureSep = "###"
)

// Signer produces and checks X-VERIFY values:
// hex(sha256(payload + path + saltKey)) + "###" + saltIndex.
type Signer struct {
	saltKey   string
	saltIndex string
}

func NewSigner(saltKey, saltIndex string) Signer {
	return Signer{saltKey: saltKey, saltIndex: saltIndex}
}

func (s Signer) Sign(encodedPayload, path string) string {
	sum := sha256.Sum256([]byte(encodedPayload + path + s.saltKey))
	return hex.EncodeToString(sum[:]) + signatureSep + s.saltIndex
}

// Verify compares in constant time.
func (s Signer) Verify(encodedPayload, path, header string) bool {
	want := s.Sign(encodedPayload, path)
	return subtle.ConstantTimeCompare([]byte(want), []byte(header)) == 1
}
