package listadt

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the elements of r.
//
// Each element is JSON-encoded and written with a length prefix, in index
// order, so two lists have the same fingerprint exactly when their encoded
// element sequences are equal. The flavour of the list does not contribute.
// The fingerprint of an [Immutable] never changes, which makes it usable as
// a cache key.
//
// An error is returned when an element cannot be JSON-encoded.
func Fingerprint[T comparable](r Reader[T]) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("listadt: fingerprint: %w", err)
	}
	var prefix [binary.MaxVarintLen64]byte
	for i, v := range values(r) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("listadt: fingerprint element %d: %w", i, err)
		}
		n := binary.PutUvarint(prefix[:], uint64(len(b)))
		h.Write(prefix[:n])
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
