package bitcoin

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLength  = errors.New("Invalid address length")
	ErrInvalidVersion = errors.New("Invalid address version")
)

const (
	AddressSize  = 1 + Hash20Size + ChecksumSize // version + payload hash + checksum
	ChecksumSize = 4

	AddressTypeMainPKH = 0x00 // Public Key Hash (starts with 1)
	AddressTypeMainSH  = 0x05 // Script Hash (starts with 3)
)

var (
	// LiteralVersions are the version bytes accepted by default. They are the literal values 1 and
	// 3 and not the bitcoin address type bytes, so standard main net addresses are rejected
	// unless a verifier is created with StandardVersions.
	LiteralVersions = []byte{0x01, 0x03}

	// StandardVersions are the main net P2PKH and P2SH address type bytes.
	StandardVersions = []byte{AddressTypeMainPKH, AddressTypeMainSH}

	defaultVerifier = NewAddressVerifier(LiteralVersions...)
)

// AddressVerifier decodes base58 addresses and checks them against an expected checksum. It only
// accepts addresses whose version byte is in its accepted set. It is not modified after creation
// so it is safe for concurrent use.
type AddressVerifier struct {
	versions []byte
}

// DecodedAddress is a 25 byte address split into its parts.
type DecodedAddress struct {
	Version  byte
	Payload  Hash20
	Checksum [ChecksumSize]byte
}

// NewAddressVerifier creates a verifier that accepts the specified version bytes. If none are
// specified LiteralVersions are used.
func NewAddressVerifier(versions ...byte) *AddressVerifier {
	if len(versions) == 0 {
		versions = LiteralVersions
	}

	result := &AddressVerifier{
		versions: make([]byte, len(versions)),
	}
	copy(result.versions, versions)
	return result
}

// VerifyAddressChecksum decodes the address with the default verifier and returns true if the
// checksum of its payload hash matches the expected value.
func VerifyAddressChecksum(address string, expected []byte) (bool, error) {
	return defaultVerifier.Verify(address, expected)
}

// Versions returns the accepted version bytes.
func (v *AddressVerifier) Versions() []byte {
	result := make([]byte, len(v.versions))
	copy(result, v.versions)
	return result
}

// Accepts returns true if the version byte is in the accepted set.
func (v *AddressVerifier) Accepts(version byte) bool {
	return bytes.IndexByte(v.versions, version) != -1
}

// Verify decodes the address and compares the first 4 bytes of the double Sha256 of its 20 byte
// payload hash with expected. It returns an error, not false, when the address is malformed.
// An expected value that is not exactly 4 bytes never matches.
func (v *AddressVerifier) Verify(address string, expected []byte) (bool, error) {
	decoded, err := v.Decode(address)
	if err != nil {
		return false, err
	}

	return decoded.VerifyPayloadChecksum(expected), nil
}

// Decode decodes a base58 address and validates its length and version byte. The embedded
// checksum is not verified. Use EmbeddedChecksumValid for that.
func (v *AddressVerifier) Decode(address string) (*DecodedAddress, error) {
	b, err := Base58Decode(address)
	if err != nil {
		return nil, err
	}

	if len(b) != AddressSize {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d, want %d", len(b), AddressSize)
	}

	if !v.Accepts(b[0]) {
		return nil, errors.Wrap(ErrInvalidVersion, fmt.Sprintf("version 0x%02x not in %s", b[0],
			FormatVersionSet(v.versions)))
	}

	result := &DecodedAddress{Version: b[0]}
	copy(result.Payload[:], b[1:1+Hash20Size])
	copy(result.Checksum[:], b[1+Hash20Size:])
	return result, nil
}

// EncodeCheckedAddress returns the base58check address for the version and payload hash.
func EncodeCheckedAddress(version byte, payload Hash20) string {
	return Base58Check(version, payload[:])
}

// Bytes returns the 25 byte binary form of the address.
func (a DecodedAddress) Bytes() []byte {
	result := make([]byte, 0, AddressSize)
	result = append(result, a.Version)
	result = append(result, a.Payload[:]...)
	return append(result, a.Checksum[:]...)
}

// String returns the base58 encoding of the address.
func (a DecodedAddress) String() string {
	return Base58(a.Bytes())
}

// PayloadChecksum returns the first 4 bytes of the double Sha256 of the payload hash.
func (a DecodedAddress) PayloadChecksum() []byte {
	sum := checksum(a.Payload[:])
	return sum[:]
}

// VerifyPayloadChecksum returns true if expected is byte for byte equal to PayloadChecksum.
func (a DecodedAddress) VerifyPayloadChecksum(expected []byte) bool {
	return bytes.Equal(a.PayloadChecksum(), expected)
}

// EmbeddedChecksumValid returns true if the address's own checksum matches the double Sha256 of
// the version byte and payload hash, which is the base58check integrity check.
func (a DecodedAddress) EmbeddedChecksumValid() bool {
	b := a.Bytes()
	return checksum(b[:1+Hash20Size]) == a.Checksum
}

// MarshalJSON converts to json with hex values.
func (a DecodedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version         Hex    `json:"version"`
		Payload         Hash20 `json:"payload"`
		Checksum        Hex    `json:"checksum"`
		PayloadChecksum Hex    `json:"payload_checksum"`
	}{
		Version:         Hex{a.Version},
		Payload:         a.Payload,
		Checksum:        Hex(a.Checksum[:]),
		PayloadChecksum: Hex(a.PayloadChecksum()),
	})
}

// ParseVersionSet parses a comma separated list of hex version bytes, for example "01,03" or
// "0x00, 0x05".
func ParseVersionSet(s string) ([]byte, error) {
	var result []byte
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), "0x")
		if len(part) == 0 {
			continue
		}
		if len(part) == 1 {
			part = "0" + part
		}

		b, err := hex.DecodeString(part)
		if err != nil {
			return nil, errors.Wrapf(err, "version %s", part)
		}
		if len(b) != 1 {
			return nil, errors.Wrapf(ErrWrongSize, "version %s: got %d bytes, want 1", part,
				len(b))
		}

		result = append(result, b[0])
	}

	if len(result) == 0 {
		return nil, errors.New("No versions")
	}

	return result, nil
}

// FormatVersionSet returns the version bytes in the form accepted by ParseVersionSet.
func FormatVersionSet(versions []byte) string {
	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, ",")
}
