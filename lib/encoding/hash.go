package encoding

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the number of hex characters kept from the content digest.
// Truncation makes collisions possible; bundle ids are cache keys and file
// name fragments, not proofs of identity.
const HashLength = 8

// BundleID returns the content-addressed id of a bundle: the first
// HashLength lowercase hex characters of the SHA-256 of content.
func BundleID(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])[:HashLength]
}

// BundleFileName returns the file name a bundle is written under.
func BundleFileName(bundleID string) string {
	return "ionic." + bundleID + ".js"
}
