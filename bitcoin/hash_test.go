package bitcoin

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	simdblake2b "github.com/minio/blake2b-simd"
)

func TestDoubleSha256(t *testing.T) {
	tests := []struct {
		text string
		hash string
	}{
		{
			text: "",
			hash: "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		},
		{
			text: "hello",
			hash: "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			want, _ := hex.DecodeString(tt.hash)

			got := DoubleSha256([]byte(tt.text))
			if !bytes.Equal(got, want) {
				t.Errorf("Wrong hash : got %x, want %x", got, want)
			}

			fixed := DoubleSha256Hash([]byte(tt.text))
			if fixed.String() != tt.hash {
				t.Errorf("Wrong fixed hash : got %s, want %s", fixed, tt.hash)
			}

			first := sha256.Sum256([]byte(tt.text))
			second := sha256.Sum256(first[:])
			if !bytes.Equal(got, second[:]) {
				t.Errorf("Not SHA256(SHA256(x)) : got %x, want %x", got, second)
			}
		})
	}
}

func TestDoubleSha256_MatchesChainHash(t *testing.T) {
	for size := 0; size < 200; size += 7 {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 31)
		}

		got := DoubleSha256(data)
		want := chainhash.DoubleHashB(data)
		if !bytes.Equal(got, want) {
			t.Errorf("Wrong hash for %d bytes : got %x, want %x", size, got, want)
		}
	}
}

func TestBlake2b256(t *testing.T) {
	tests := []struct {
		text string
		hash string
	}{
		{
			text: "",
			hash: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			text: "hello",
			hash: "324dcf027dd4a30a932c441f365a25e86b173defa4b8e58948253471b81b72cf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Blake2b256([]byte(tt.text))
			if hex.EncodeToString(got) != tt.hash {
				t.Errorf("Wrong hash : got %x, want %s", got, tt.hash)
			}

			fixed := Blake2b256Hash([]byte(tt.text))
			if fixed.String() != tt.hash {
				t.Errorf("Wrong fixed hash : got %s, want %s", fixed, tt.hash)
			}
		})
	}
}

func TestBlake2b256_MatchesSIMD(t *testing.T) {
	for size := 0; size < 300; size += 13 {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i ^ 0x5a)
		}

		hasher, err := simdblake2b.New(&simdblake2b.Config{Size: 32})
		if err != nil {
			t.Fatalf("Failed to create hasher : %s", err)
		}
		hasher.Write(data)
		want := hasher.Sum(nil)

		got := Blake2b256(data)
		if !bytes.Equal(got, want) {
			t.Errorf("Wrong hash for %d bytes : got %x, want %x", size, got, want)
		}
	}
}

func TestHash160(t *testing.T) {
	// Compressed public key of a well known P2PKH address.
	pubKey, _ := hex.DecodeString("0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352")
	want := "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31"

	hash, err := NewHash20FromData(pubKey)
	if err != nil {
		t.Fatalf("Failed to hash : %s", err)
	}

	if hash.String() != want {
		t.Errorf("Wrong hash : got %s, want %s", hash, want)
	}
}

func TestHash32_Text(t *testing.T) {
	text := "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"

	hash, err := NewHash32FromStr(text)
	if err != nil {
		t.Fatalf("Failed to parse : %s", err)
	}

	want := DoubleSha256Hash(nil)
	if !hash.Equal(&want) {
		t.Errorf("Wrong hash : got %s, want %s", hash, want)
	}

	var parsed Hash32
	if err := parsed.UnmarshalText([]byte(text)); err != nil {
		t.Fatalf("Failed to unmarshal : %s", err)
	}
	if !parsed.Equal(hash) {
		t.Errorf("Wrong unmarshalled hash : got %s, want %s", parsed, hash)
	}

	if _, err := NewHash32FromStr(text[2:]); err == nil {
		t.Errorf("Short hex should fail")
	}
}
