package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/exp/maps"
)

const (
	exitError           = 1
	exitSubcommandUsage = 2
)

func main() {
	if len(os.Args) == 1 {
		die("specify subcommand or -h")
	}
	if os.Args[1] == "-h" {
		usages()
	}
	if f, ok := funcs[os.Args[1]]; ok {
		exit := f.f(os.Args[2:])
		if exit == exitSubcommandUsage {
			printSubcommandUsage(os.Args[1], f)
		}
		os.Exit(exit)
	}
	die("unknown subcommand")
}

func die(m string) {
	fmt.Fprintln(os.Stderr, m)
	os.Exit(exitError)
}

type subcommand struct {
	// usage is the command-specific CLI synopsis shown after "rc4 <name>".
	// Keep additional lines indented for readable "rc4 -h" output.
	usage string
	// summary is a short one-line description shown in "rc4 -h" listings.
	summary string
	f       func([]string) int
}

func printSubcommandUsage(name string, c subcommand) {
	fmt.Fprintf(os.Stderr, "usage: rc4 %s %s\n", name, c.usage)
}

func usages() {
	fmt.Println(`rc4 commands:`)
	keys := maps.Keys(funcs)
	sort.Strings(keys)
	for _, n := range keys {
		c := funcs[n]
		fmt.Printf("%s %s\n  %s\n", n, c.usage, c.summary)
	}
	os.Exit(0)
}

var funcs = map[string]subcommand{}

// parse fills o from a. usage is set when the caller should return
// exitSubcommandUsage; any other parse problem is fatal.
func parse(o interface{}, a []string) (rest []string, usage bool) {
	p := flags.NewParser(o, 0)
	rest, err := p.ParseArgs(a)
	if err != nil {
		if strings.Contains(err.Error(), "unknown flag") {
			return nil, true
		}
		die(fmt.Sprintf("parse: %v", err))
	}
	return rest, false
}

// report prints err and returns the exit code for it.
func report(err error) int {
	fmt.Fprintln(os.Stderr, err)
	if errorIsUsage(err) {
		return exitSubcommandUsage
	}
	return exitError
}
