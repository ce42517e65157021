package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrWrongSize = errors.New("Wrong size")
)

const Hash20Size = 20

// Hash20 is the 20 byte payload hash carried by an address, between the version byte and the
// checksum. Unlike transaction hashes it is kept and displayed in the order it is encoded.
type Hash20 [Hash20Size]byte

func NewHash20(b []byte) (*Hash20, error) {
	if len(b) != Hash20Size {
		return nil, errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash20Size)
	}
	result := Hash20{}
	copy(result[:], b)
	return &result, nil
}

// NewHash20FromStr creates a hash from a hex string.
func NewHash20FromStr(s string) (*Hash20, error) {
	if len(s) != 2*Hash20Size {
		return nil, errors.Wrapf(ErrWrongSize, "hex: got %d, want %d", len(s), Hash20Size*2)
	}

	result := Hash20{}
	if _, err := hex.Decode(result[:], []byte(s)); err != nil {
		return nil, errors.Wrap(err, "hex")
	}

	return &result, nil
}

// NewHash20FromData creates a Hash20 by hashing the data with a Ripemd160(Sha256(b))
func NewHash20FromData(b []byte) (*Hash20, error) {
	return NewHash20(Hash160(b))
}

// Bytes returns the data for the hash.
func (h Hash20) Bytes() []byte {
	return h[:]
}

// SetBytes sets the value of the hash.
func (h *Hash20) SetBytes(b []byte) error {
	if len(b) != Hash20Size {
		return errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash20Size)
	}
	copy(h[:], b)
	return nil
}

// String returns the hex for the hash.
func (h Hash20) String() string {
	return fmt.Sprintf("%x", h[:])
}

// Equal returns true if the parameter has the same value.
func (h *Hash20) Equal(o *Hash20) bool {
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
func (h Hash20) MarshalText() ([]byte, error) {
	result := make([]byte, hex.EncodedLen(Hash20Size))
	hex.Encode(result, h[:])
	return result, nil
}

// UnmarshalText parses a text encoded hash and sets the value of this object.
// Implements encoding.TextUnmarshaler interface.
func (h *Hash20) UnmarshalText(text []byte) error {
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return err
	}

	return h.SetBytes(b)
}
