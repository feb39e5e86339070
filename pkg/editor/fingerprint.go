package editor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint returns a short content tag: the first two hex characters of
// the SHA-256 hash of text. One byte of hash is deliberate — the tag's job
// is "probably unchanged", not "provably identical".
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:1])
}

// RangeFingerprint returns the range-scoped form of the tag,
// "L{start}-{end}-{hash}", used to identify a selection.
func RangeFingerprint(text string, start, end int) string {
	return fmt.Sprintf("L%d-%d-%s", start, end, Fingerprint(text))
}
