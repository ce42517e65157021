package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tokenized/bitcheck/bits"
)

func TestPrintDigest(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		data string
		want string
	}{
		{
			name: "sha256d empty",
			data: "",
			want: "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		},
		{
			name: "sha256d hello",
			data: "hello",
			want: "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		},
		{
			name: "blake2b hello",
			opts: Options{Blake2b: true},
			data: "hello",
			want: "324dcf027dd4a30a932c441f365a25e86b173defa4b8e58948253471b81b72cf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printDigest(&buf, &tt.opts, []byte(tt.data)); err != nil {
				t.Fatalf("Failed to print : %s", err)
			}

			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("Wrong digest : got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintDigest_Bits(t *testing.T) {
	var buf bytes.Buffer
	if err := printDigest(&buf, &Options{Blake2b: true, Bits: true}, []byte("hello")); err != nil {
		t.Fatalf("Failed to print : %s", err)
	}

	parsed, err := bits.ParseJSON(bytes.TrimSpace(buf.Bytes()))
	if err != nil {
		t.Fatalf("Failed to parse bits : %s", err)
	}

	if len(parsed) != 32 {
		t.Fatalf("Wrong byte count : got %d, want 32", len(parsed))
	}

	// 0x32
	if parsed[0] != (bits.Byte{0, 0, 1, 1, 0, 0, 1, 0}) {
		t.Errorf("Wrong first byte : got %s, want 00110010", parsed[0])
	}
}
