package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jrhy/rc4stream/rc4"
)

func init() {
	funcs["crypt"] = subcommand{
		keyUsage,
		"enciphers or deciphers stdin to stdout",
		func(a []string) int {
			o := struct {
				KeyOptions keyOptions
			}{}
			args, usage := parse(&o, a)
			if usage || len(args) > 0 {
				return exitSubcommandUsage
			}
			if err := crypt(o.KeyOptions, os.Stdin, os.Stdout); err != nil {
				return report(err)
			}
			return 0
		},
	}
}

func crypt(o keyOptions, in io.Reader, out io.Writer) error {
	key, err := o.key()
	if err != nil {
		return err
	}
	r, err := rc4.NewReader(key, in)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r.Drop(o.Drop)); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}
