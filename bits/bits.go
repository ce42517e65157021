package bits

import (
	"encoding/binary"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

const ByteSize = 8 // bits per byte

var (
	ErrInvalidBit = errors.New("Invalid bit")
	ErrWrongSize  = errors.New("Wrong size")
)

// Byte is the bits of one byte, most significant bit first. Each entry is 0 or 1.
type Byte [ByteSize]uint8

// Bits is the bit representation of a byte sequence.
type Bits []Byte

// FromByte returns the bits of b, most significant bit first.
func FromByte(b byte) Byte {
	var result Byte
	for i := 0; i < ByteSize; i++ {
		result[i] = (b >> (ByteSize - 1 - i)) & 1
	}
	return result
}

// FromBytes returns the bits of each byte.
func FromBytes(b []byte) Bits {
	result := make(Bits, len(b))
	for i, v := range b {
		result[i] = FromByte(v)
	}
	return result
}

// FromString returns the bits of the UTF-8 encoding of s.
func FromString(s string) Bits {
	return FromBytes([]byte(s))
}

// Uint64Bytes returns v as 8 little endian bytes.
func Uint64Bytes(v uint64) []byte {
	result := make([]byte, 8)
	binary.LittleEndian.PutUint64(result, v)
	return result
}

// FromUint64 returns the bits of v packed as 8 little endian bytes.
func FromUint64(v uint64) Bits {
	return FromBytes(Uint64Bytes(v))
}

// Value returns the byte the bits represent.
func (b Byte) Value() byte {
	var result byte
	for _, bit := range b {
		result = result<<1 | bit&1
	}
	return result
}

// Reverse returns the bits in the opposite order.
func (b Byte) Reverse() Byte {
	var result Byte
	for i, bit := range b {
		result[ByteSize-1-i] = bit
	}
	return result
}

func (b Byte) String() string {
	var sb strings.Builder
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// Bytes returns the bytes the bits represent.
func (bs Bits) Bytes() []byte {
	result := make([]byte, len(bs))
	for i, b := range bs {
		result[i] = b.Value()
	}
	return result
}

// LSBFirst returns a copy with the bits of each byte in least significant first order. Byte order
// is unchanged.
func (bs Bits) LSBFirst() Bits {
	result := make(Bits, len(bs))
	for i, b := range bs {
		result[i] = b.Reverse()
	}
	return result
}

// Strings returns each bit as "0" or "1".
func (bs Bits) Strings() [][]string {
	result := make([][]string, len(bs))
	for i, b := range bs {
		result[i] = make([]string, ByteSize)
		for j, bit := range b {
			result[i][j] = string('0' + rune(bit))
		}
	}
	return result
}

// String returns the bits of each byte separated by spaces.
func (bs Bits) String() string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}

// MarshalJSON converts to a json array of byte arrays of "0" and "1" strings.
func (bs Bits) MarshalJSON() ([]byte, error) {
	return json.Marshal(bs.Strings())
}

// UnmarshalJSON converts from a json array of byte arrays. Bits can be strings or numbers.
func (bs *Bits) UnmarshalJSON(data []byte) error {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "json")
	}

	result := make(Bits, len(raw))
	for i, rawByte := range raw {
		if len(rawByte) != ByteSize {
			return errors.Wrapf(ErrWrongSize, "byte %d: got %d bits, want %d", i, len(rawByte),
				ByteSize)
		}

		for j, rawBit := range rawByte {
			bit, err := parseBit(rawBit)
			if err != nil {
				return errors.Wrapf(err, "byte %d bit %d", i, j)
			}
			result[i][j] = bit
		}
	}

	*bs = result
	return nil
}

// ParseJSON parses the json form written by MarshalJSON.
func ParseJSON(b []byte) (Bits, error) {
	var result Bits
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func parseBit(raw json.RawMessage) (uint8, error) {
	switch strings.Trim(string(raw), " \t\r\n") {
	case "0", `"0"`:
		return 0, nil
	case "1", `"1"`:
		return 1, nil
	}

	return 0, errors.Wrap(ErrInvalidBit, string(raw))
}
