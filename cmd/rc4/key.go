package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"
)

var (
	errNoKey        = errors.New("one of --key, --key-hex, --passphrase or --prompt is required")
	errMultipleKeys = errors.New("only one of --key, --key-hex, --passphrase or --prompt may be given")
	errBadDerive    = errors.New("--iterations and --key-len must be positive")
)

func errorIsUsage(err error) bool {
	return errors.Is(err, errNoKey) || errors.Is(err, errMultipleKeys)
}

type keyOptions struct {
	Key        string `long:"key" short:"k"`
	KeyHex     string `long:"key-hex"`
	Passphrase string `long:"passphrase"`
	Prompt     bool   `long:"prompt"`
	Salt       string `long:"salt"`
	Iterations int    `long:"iterations" default:"4096"`
	KeyLen     int    `long:"key-len" default:"16"`
	Drop       int    `long:"drop"`
}

const keyUsage = `(-k/--key=<string> | --key-hex=<hex> | --passphrase=<string> | --prompt)
    [--salt=<string>] [--iterations=4096] [--key-len=16] [--drop=<n>]`

// readPassphrase asks on the controlling terminal, since stdin is
// usually carrying the data.
var readPassphrase = func() (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("tty: %w", err)
	}
	defer tty.Close()
	fmt.Fprint(tty, "passphrase: ")
	b, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(tty)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(b), nil
}

func (o keyOptions) key() ([]byte, error) {
	given := 0
	for _, set := range []bool{o.Key != "", o.KeyHex != "", o.Passphrase != "", o.Prompt} {
		if set {
			given++
		}
	}
	switch {
	case given == 0:
		return nil, errNoKey
	case given > 1:
		return nil, errMultipleKeys
	}

	switch {
	case o.Key != "":
		return []byte(o.Key), nil
	case o.KeyHex != "":
		k, err := hex.DecodeString(o.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("key-hex: %w", err)
		}
		return k, nil
	}

	pass := o.Passphrase
	if o.Prompt {
		var err error
		pass, err = readPassphrase()
		if err != nil {
			return nil, err
		}
	}
	if o.Iterations <= 0 || o.KeyLen <= 0 {
		return nil, errBadDerive
	}
	return pbkdf2.Key([]byte(pass), []byte(o.Salt), o.Iterations, o.KeyLen, sha256.New), nil
}
