// Package fingerprint computes content digests used to detect unchanged
// clipboard text.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the digest length in bytes.
const Size = sha256.Size

// Digest is a SHA-256 digest of UTF-8 text. The zero value means "nothing
// seen yet".
type Digest [Size]byte

// Of returns the digest of s's UTF-8 bytes.
func Of(s string) Digest {
	return Digest(sha256.Sum256([]byte(s)))
}

// OfBytes returns the digest of raw bytes, such as an image payload.
func OfBytes(b []byte) Digest {
	return Digest(sha256.Sum256(b))
}

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the lower-case hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
