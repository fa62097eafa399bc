package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jrhy/rc4stream/rc4"
)

func init() {
	funcs["keystream"] = subcommand{
		`[-n/--count=16] ` + keyUsage,
		"prints the first bytes of the keystream in hex",
		func(a []string) int {
			o := struct {
				Count      int `long:"count" short:"n" default:"16"`
				KeyOptions keyOptions
			}{}
			args, usage := parse(&o, a)
			if usage || len(args) > 0 || o.Count < 0 {
				return exitSubcommandUsage
			}
			if err := keystream(o.KeyOptions, o.Count, os.Stdout); err != nil {
				return report(err)
			}
			return 0
		},
	}
}

func keystream(o keyOptions, count int, out io.Writer) error {
	key, err := o.key()
	if err != nil {
		return err
	}
	ks, err := rc4.New(key)
	if err != nil {
		return err
	}
	b := make([]byte, count)
	ks.Drop(o.Drop).Fill(b)
	_, err = fmt.Fprintf(out, "%X\n", b)
	return err
}
