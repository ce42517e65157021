package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/tokenized/bitcheck/bitcoin"
	"github.com/tokenized/config"
	"github.com/tokenized/logger"
)

const usage = "checkaddress [--json] [--versions=01,03] <address> [checksum hex]"

type Config struct {
	AcceptedVersions string `default:"01,03" envconfig:"ACCEPTED_VERSIONS" json:"accepted_versions"`
}

type Options struct {
	JSON     bool   `long:"json" description:"Print the decoded address as json"`
	Versions string `short:"v" long:"versions" description:"Comma separated hex version bytes to accept. Overrides ACCEPTED_VERSIONS"`
}

func main() {
	// Decodes a base58 address, prints its parts, and if a checksum is specified verifies it
	// against the first 4 bytes of the double sha256 of the address's payload hash.
	//
	// Exits 1 if the address is malformed and 2 if the checksum doesn't match.
	//
	// example
	//   ACCEPTED_VERSIONS=00,05 checkaddress 1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2 b41a0e7b
	ctx := logger.ContextWithLogger(context.Background(), true, true, "")

	cfg := &Config{}
	if err := config.LoadConfig(ctx, cfg); err != nil {
		logger.Fatal(ctx, "Failed to load config : %s", err)
	}

	maskedConfig, err := config.MarshalJSONMaskedRaw(cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to marshal config : %s", err)
	}

	logger.InfoWithFields(ctx, []logger.Field{
		logger.JSON("config", maskedConfig),
	}, "Config")

	opts := &Options{}
	args, err := flags.Parse(opts)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) < 1 || len(args) > 2 {
		logger.Fatal(ctx, "Wrong argument count: %s", usage)
	}

	versions, err := acceptedVersions(cfg, opts)
	if err != nil {
		logger.Fatal(ctx, "Invalid accepted versions : %s", err)
	}

	var expected []byte
	if len(args) == 2 {
		expected, err = hex.DecodeString(args[1])
		if err != nil {
			logger.Fatal(ctx, "Invalid checksum hex : %s", err)
		}
	}

	verifier := bitcoin.NewAddressVerifier(versions...)
	valid, err := checkAddress(os.Stdout, verifier, args[0], expected, opts.JSON)
	if err != nil {
		logger.ErrorWithFields(ctx, []logger.Field{
			logger.String("address", args[0]),
			logger.String("accepted_versions", bitcoin.FormatVersionSet(versions)),
		}, "Failed to check address : %s", err)
		os.Exit(1)
	}

	if !valid {
		os.Exit(2)
	}
}

// acceptedVersions returns the version bytes from the command line option if it was specified,
// otherwise from the config.
func acceptedVersions(cfg *Config, opts *Options) ([]byte, error) {
	text := cfg.AcceptedVersions
	if len(opts.Versions) > 0 {
		text = opts.Versions
	}

	versions, err := bitcoin.ParseVersionSet(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	return versions, nil
}

// checkAddress prints the decoded address to w. It returns false if expected is not nil and
// doesn't match the payload checksum.
func checkAddress(w io.Writer, verifier *bitcoin.AddressVerifier, address string,
	expected []byte, asJSON bool) (bool, error) {

	decoded, err := verifier.Decode(address)
	if err != nil {
		return false, errors.Wrap(err, "decode")
	}

	if asJSON {
		js, err := json.MarshalIndent(decoded, "", "  ")
		if err != nil {
			return false, errors.Wrap(err, "json")
		}
		fmt.Fprintf(w, "%s\n", js)
	} else {
		fmt.Fprintf(w, "Address: %s\n", address)
		fmt.Fprintf(w, "Version: %02x\n", decoded.Version)
		fmt.Fprintf(w, "Payload Hash: %s\n", decoded.Payload)
		fmt.Fprintf(w, "Checksum: %x\n", decoded.Checksum[:])
		fmt.Fprintf(w, "Checksum Valid: %t\n", decoded.EmbeddedChecksumValid())
		fmt.Fprintf(w, "Payload Checksum: %x\n", decoded.PayloadChecksum())
	}

	if expected == nil {
		return true, nil
	}

	valid := decoded.VerifyPayloadChecksum(expected)
	fmt.Fprintf(w, "Verified: %t\n", valid)
	return valid, nil
}
