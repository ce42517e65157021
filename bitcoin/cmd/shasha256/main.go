package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/tokenized/bitcheck/bitcoin"
	"github.com/tokenized/bitcheck/bits"
	"github.com/tokenized/logger"
)

type Options struct {
	Blake2b bool `long:"blake2b" description:"Use BLAKE2b-256 instead of double sha256"`
	Bits    bool `long:"bits" description:"Print the digest as a json bit array instead of hex"`
}

func main() {
	// Outputs the double sha256 of the specified text in hex format.
	//
	// example
	//   shasha256 test
	//   shasha256 --blake2b --bits hello
	ctx := logger.ContextWithLogger(context.Background(), false, true, "")

	opts := &Options{}
	args, err := flags.Parse(opts)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var data string
	if len(args) > 0 {
		data = strings.Join(args, " ")
	} else {
		// no data so trying stdin
		s := bufio.NewScanner(os.Stdin)
		for s.Scan() {
			data = s.Text()
		}
		if err := s.Err(); err != nil {
			logger.Fatal(ctx, "Failed to read stdin : %s", err)
		}
	}

	if err := printDigest(os.Stdout, opts, []byte(data)); err != nil {
		logger.Fatal(ctx, "Failed to print digest : %s", err)
	}
}

func digest(opts *Options, data []byte) bitcoin.Hash32 {
	if opts.Blake2b {
		return bitcoin.Blake2b256Hash(data)
	}
	return bitcoin.DoubleSha256Hash(data)
}

func printDigest(w io.Writer, opts *Options, data []byte) error {
	hash := digest(opts, data)

	if !opts.Bits {
		fmt.Fprintf(w, "%s\n", hash)
		return nil
	}

	js, err := json.Marshal(bits.FromBytes(hash.Bytes()))
	if err != nil {
		return errors.Wrap(err, "json")
	}

	fmt.Fprintf(w, "%s\n", js)
	return nil
}
