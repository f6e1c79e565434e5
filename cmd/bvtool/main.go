// Command bvtool stores packed bit vectors and runs bulk bit algorithms on them.
//
// Usage:
//
//	bvtool [-config bvtool.yaml] <command> [args]
//
// Commands:
//
//	put NAME BITS        store a vector parsed from '0'/'1' characters
//	get [-json] NAME     print a vector (bits or a JSON document)
//	hex NAME             print the packed bytes as hex
//	stat NAME            print the stored frame header
//	count NAME           number of set bits
//	rank NAME N          index just past the N-th set bit
//	first NAME BIT       lowest index holding BIT
//	last NAME BIT        highest index holding BIT
//	cmp OP A B           and | or | xor | subset
//	matrix OP NAME...    pairwise and | or | xor counts across many vectors
//	rm NAME              delete a vector
//	ls [PREFIX]          list stored vectors
//	config               print the effective configuration
//
// Without -config the tool uses a local store under ./.bitvec.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bvtool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML configuration file (default: local store under ./.bitvec)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bvtool [-config file] <command> [args]\n\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-22s %s\n", c.name+" "+c.args, c.help)
		}
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	e, err := newEnv(*configFile, stdout, stderr)
	if err != nil {
		return err
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if c.standalone {
			return c.run(ctx, e, rest)
		}
		if err := e.open(ctx); err != nil {
			return err
		}
		defer e.repo.Close()
		return c.run(ctx, e, rest)
	}

	fs.Usage()
	return fmt.Errorf("unknown command %q", name)
}
