package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/tokenized/bitcheck/bits"
	"github.com/tokenized/logger"
)

type Options struct {
	Uint bool `long:"uint" description:"Value is an unsigned integer packed as 8 little endian bytes"`
	Hex  bool `long:"hex" description:"Value is hex bytes"`
	LSB  bool `long:"lsb" description:"Print the bits of each byte least significant first"`
	Text bool `long:"text" description:"Print bits as text instead of a json array"`
}

func main() {
	// Outputs the character count (byte count for --uint and --hex) and the bits of the specified
	// value.
	//
	// example
	//   tobits hello
	//   tobits --uint 20000
	//   tobits --hex 662ad25db00e7bb38bc04831ae48b4b446d12698
	ctx := logger.ContextWithLogger(context.Background(), false, true, "")

	opts := &Options{}
	args, err := flags.Parse(opts)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) == 0 {
		logger.Fatal(ctx, "Value required : tobits [--uint|--hex] [--lsb] [--text] <value>")
	}

	if err := printBits(os.Stdout, opts, strings.Join(args, " ")); err != nil {
		logger.Fatal(ctx, "Failed to convert value : %s", err)
	}
}

func toBits(opts *Options, value string) (bits.Bits, error) {
	switch {
	case opts.Uint && opts.Hex:
		return nil, errors.New("Only one of uint and hex can be specified")

	case opts.Uint:
		v, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return nil, errors.Wrap(err, "uint")
		}
		return bits.FromUint64(v), nil

	case opts.Hex:
		b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(value), "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "hex")
		}
		return bits.FromBytes(b), nil
	}

	return bits.FromString(value), nil
}

// count returns the number of characters for text values, matching the length printed for
// strings, and the number of bytes otherwise.
func count(opts *Options, value string, result bits.Bits) int {
	if opts.Uint || opts.Hex {
		return len(result)
	}
	return utf8.RuneCountInString(value)
}

func printBits(w io.Writer, opts *Options, value string) error {
	result, err := toBits(opts, value)
	if err != nil {
		return err
	}
	n := count(opts, value, result)

	if opts.LSB {
		result = result.LSBFirst()
	}

	if opts.Text {
		fmt.Fprintf(w, "%d %s\n", n, result)
		return nil
	}

	js, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "json")
	}

	fmt.Fprintf(w, "%d %s\n", n, js)
	return nil
}
