package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

const Hash32Size = 32

// Hash32 is a 32 byte digest, for example the output of DoubleSha256Hash or Blake2b256Hash. It
// is displayed in the order the hash function produced it.
type Hash32 [Hash32Size]byte

// NewHash32FromStr creates a hash from a hex string.
func NewHash32FromStr(s string) (*Hash32, error) {
	if len(s) != 2*Hash32Size {
		return nil, errors.Wrapf(ErrWrongSize, "hex: got %d, want %d", len(s), Hash32Size*2)
	}

	result := Hash32{}
	if _, err := hex.Decode(result[:], []byte(s)); err != nil {
		return nil, errors.Wrap(err, "hex")
	}

	return &result, nil
}

// Bytes returns the data for the hash.
func (h Hash32) Bytes() []byte {
	return h[:]
}

// String returns the hex for the hash.
func (h Hash32) String() string {
	return fmt.Sprintf("%x", h[:])
}

// Equal returns true if the parameter has the same value.
func (h *Hash32) Equal(o *Hash32) bool {
	if h == nil {
		return o == nil
	}
	if o == nil {
		return false
	}
	return bytes.Equal(h[:], o[:])
}

// MarshalText returns the text encoding of the hash.
// Implements encoding.TextMarshaler interface.
func (h Hash32) MarshalText() ([]byte, error) {
	result := make([]byte, hex.EncodedLen(Hash32Size))
	hex.Encode(result, h[:])
	return result, nil
}

// UnmarshalText parses a text encoded hash and sets the value of this object.
// Implements encoding.TextUnmarshaler interface.
func (h *Hash32) UnmarshalText(text []byte) error {
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return err
	}

	if len(b) != Hash32Size {
		return errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash32Size)
	}
	copy(h[:], b)
	return nil
}
