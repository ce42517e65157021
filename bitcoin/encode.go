package bitcoin

import (
	"github.com/btcsuite/btcutil/base58"
	strictbase58 "github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrDecode = errors.New("Invalid Base58")
)

// Base58 return the Base58 encoding of the input.
//
// See https://en.wikipedia.org/wiki/Base58
func Base58(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode base 58 decodes the argument and returns the result. Characters outside of the
// bitcoin alphabet, or an empty string, return ErrDecode.
func Base58Decode(s string) ([]byte, error) {
	b, err := strictbase58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}

	return b, nil
}

// Base58Check returns the base58check encoding of the version and payload. A 4 byte checksum of
// the double Sha256 of version+payload is appended before encoding.
func Base58Check(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}
