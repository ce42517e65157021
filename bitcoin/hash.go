package bitcoin

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
)

// Ripemd160 returns the RIPEMD (RIPE Message Digest) of the input.
//
// This is a wrapper for easy access to a chosen implementation.
//
// See https://en.wikipedia.org/wiki/RIPEMD
func Ripemd160(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(b)
	return hasher.Sum(nil)
}

// Sha256 returns the SHA256 (Secure Hash Algorithm) of the input.
//
// This is a wrapper for easy access to a chosen implementation.
//
// See https://en.wikipedia.org/wiki/SHA-2
func Sha256(b []byte) []byte {
	result := sha256.Sum256(b)
	return result[:]
}

// Hash160 returns the Ripemd160(SHA256(input)) of the input. This is the payload hash embedded in
// P2PKH addresses.
func Hash160(b []byte) []byte {
	return Ripemd160(Sha256(b))
}

// DoubleSha256 performs a double Sha256 hash on the bytes.
func DoubleSha256(b []byte) []byte {
	return Sha256(Sha256(b))
}

// DoubleSha256Hash returns the double Sha256 of the bytes as a fixed size value.
func DoubleSha256Hash(b []byte) Hash32 {
	first := sha256.Sum256(b)
	return Hash32(sha256.Sum256(first[:]))
}

// Blake2b256 returns the unkeyed BLAKE2b digest of the input configured for a 32 byte output.
//
// See https://www.blake2.net/
func Blake2b256(b []byte) []byte {
	result := blake2b.Sum256(b)
	return result[:]
}

// Blake2b256Hash returns the BLAKE2b-256 digest of the bytes as a fixed size value.
func Blake2b256Hash(b []byte) Hash32 {
	return Hash32(blake2b.Sum256(b))
}

// checksum returns the first 4 bytes of the double Sha256 of the bytes.
func checksum(b []byte) [ChecksumSize]byte {
	var result [ChecksumSize]byte
	hash := DoubleSha256Hash(b)
	copy(result[:], hash[:ChecksumSize])
	return result
}
