package pass

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainPass is the domain prefix for pass content identity. The version
// suffix enables future algorithm migration.
const DomainPass = "passkit/pass/v1"

// PassID computes the content-addressed identity of a pass tree: the
// SHA-256 of its canonical bytes under domain separation. Structurally
// equal trees share an ID regardless of how their documents were
// formatted.
func PassID(p Pass) (string, error) {
	data, err := MarshalCanonical(p)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainPass, data), nil
}

// DocumentID computes the content identity of an encoded pass document.
// Whitespace, key order and string escaping do not affect it, but number
// token spelling does: canonical form keeps 13.0 and 13 distinct, and
// re-encoding a decoded tree runs floats through Go's formatter, which
// may change that spelling. Identity of trees across a decode/encode
// cycle is therefore PassID's contract, not DocumentID's.
func DocumentID(data []byte) (string, error) {
	canonical, err := CanonicalizeDocument(data)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainPass, canonical), nil
}

// hashWithDomain computes SHA-256 with domain separation. The null byte
// separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
