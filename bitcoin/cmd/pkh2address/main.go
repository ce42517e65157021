package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/tokenized/bitcheck/bitcoin"
	"github.com/tokenized/logger"
)

type Options struct {
	Version string `long:"version" default:"00" description:"Hex version byte to prefix"`
}

func main() {
	// Converts a 20 byte payload hash in hex format into a base58check address. Useful for
	// building addresses with the version bytes checkaddress accepts.
	//
	// example
	//   pkh2address 4974a24418c676add75fc291fccf3e2253ceb21d
	//   pkh2address --version 01 77bff20c60e522dfaa3350c39b030a5d004e839a
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
		data = args[0]
	} else {
		// no data so trying stdin
		s := bufio.NewScanner(os.Stdin)
		for s.Scan() {
			data = s.Text()
		}
	}

	address, err := convert(opts.Version, data)
	if err != nil {
		logger.Fatal(ctx, "Failed to convert payload hash : %s", err)
	}

	fmt.Printf("%s\n", address)
}

func convert(versionText, payloadText string) (string, error) {
	versions, err := bitcoin.ParseVersionSet(versionText)
	if err != nil {
		return "", errors.Wrap(err, "version")
	}
	if len(versions) != 1 {
		return "", errors.Errorf("One version required : got %d", len(versions))
	}

	payload, err := bitcoin.NewHash20FromStr(strings.TrimSpace(payloadText))
	if err != nil {
		return "", errors.Wrap(err, "payload hash")
	}

	return bitcoin.EncodeCheckedAddress(versions[0], *payload), nil
}
