package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/mdp/qrterminal/v3"
)

func init() {
	funcs["keygen"] = subcommand{
		`[-n/--length=16] [--qr]`,
		"prints a random key in hex, optionally as a QR code",
		func(a []string) int {
			o := struct {
				Length int  `long:"length" short:"n" default:"16"`
				QR     bool `long:"qr"`
			}{}
			args, usage := parse(&o, a)
			if usage || len(args) > 0 || o.Length <= 0 {
				return exitSubcommandUsage
			}
			if err := keygen(rand.Reader, o.Length, o.QR, os.Stdout); err != nil {
				return report(err)
			}
			return 0
		},
	}
}

func keygen(rnd io.Reader, length int, qr bool, out io.Writer) error {
	k := make([]byte, length)
	if _, err := io.ReadFull(rnd, k); err != nil {
		return fmt.Errorf("random: %w", err)
	}
	h := hex.EncodeToString(k)
	if _, err := fmt.Fprintln(out, h); err != nil {
		return err
	}
	if qr {
		qrterminal.Generate(h, qrterminal.L, out)
	}
	return nil
}
