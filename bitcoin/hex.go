package bitcoin

import (
	"encoding/hex"
)

// Hex is used in structures as a byte slice that will marshal as hex instead of base64 like is
// default for json.
type Hex []byte

func (b Hex) String() string {
	return hex.EncodeToString(b)
}

func (b Hex) MarshalText() ([]byte, error) {
	result := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(result, b)
	return result, nil
}

func (b *Hex) UnmarshalText(text []byte) error {
	d := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(d, text); err != nil {
		return err
	}

	*b = d
	return nil
}
