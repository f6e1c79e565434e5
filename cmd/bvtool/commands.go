package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/codec"
)

type command struct {
	name string
	args string
	help string
	// standalone commands run without opening the store.
	standalone bool
	run        func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{name: "put", args: "NAME BITS", help: "store a vector parsed from '0'/'1' characters", run: cmdPut},
	{name: "get", args: "[-json] NAME", help: "print a vector", run: cmdGet},
	{name: "hex", args: "NAME", help: "print the packed bytes as hex", run: cmdHex},
	{name: "stat", args: "NAME", help: "print the stored frame header", run: cmdStat},
	{name: "count", args: "NAME", help: "number of set bits", run: cmdCount},
	{name: "rank", args: "NAME N", help: "index just past the N-th set bit", run: cmdRank},
	{name: "first", args: "NAME BIT", help: "lowest index holding BIT", run: cmdFind(bitvec.FindFirst)},
	{name: "last", args: "NAME BIT", help: "highest index holding BIT", run: cmdFind(bitvec.FindLast)},
	{name: "cmp", args: "OP A B", help: "and | or | xor | subset", run: cmdCmp},
	{name: "matrix", args: "OP NAME...", help: "pairwise counts across many vectors", run: cmdMatrix},
	{name: "rm", args: "NAME", help: "delete a vector", run: cmdRm},
	{name: "ls", args: "[PREFIX]", help: "list stored vectors", run: cmdLs},
	{name: "config", help: "print the effective configuration", standalone: true, run: cmdConfig},
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %s", errUsage, usage)
	}
	return nil
}

func cmdPut(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 2, "NAME BITS"); err != nil {
		return err
	}
	b, err := bitvec.Parse(args[1], e.cfg.EndiannessValue())
	if err != nil {
		return err
	}
	if err := e.repo.Save(ctx, args[0], b); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: %d bits\n", args[0], b.Len())
	return nil
}

func cmdGet(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print a JSON document using the configured codec")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 1, "[-json] NAME"); err != nil {
		return err
	}
	b, err := e.load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if !*asJSON {
		fmt.Fprintln(e.stdout, b.String())
		return nil
	}
	doc, err := codec.MarshalDocument(e.cfg.DocumentCodec(), b)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(doc))
	return nil
}

func cmdHex(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 1, "NAME"); err != nil {
		return err
	}
	b, err := e.load(ctx, args[0])
	if err != nil {
		return err
	}
	s, err := bitvec.ToHex(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, s)
	return nil
}

func cmdStat(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 1, "NAME"); err != nil {
		return err
	}
	h, err := e.repo.Stat(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "version=%d endian=%s compression=%s bits=%d payload=%d checksum=%08x\n",
		h.Version, h.Endianness, h.Compression, h.Bits, h.PayloadLen, h.Checksum)
	return nil
}

func cmdCount(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 1, "NAME"); err != nil {
		return err
	}
	b, err := e.load(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, bitvec.CountBits(b))
	return nil
}

func cmdRank(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 2, "NAME N"); err != nil {
		return err
	}
	n, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid N: %w", err)
	}
	b, err := e.load(ctx, args[0])
	if err != nil {
		return err
	}
	i, err := bitvec.CountToN(b, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, i)
	return nil
}

func cmdFind(find func(*bitvec.Buffer, int) int64) func(context.Context, *env, []string) error {
	return func(ctx context.Context, e *env, args []string) error {
		if err := wantArgs(args, 2, "NAME BIT"); err != nil {
			return err
		}
		bit, err := strconv.Atoi(args[1])
		if err != nil || (bit != 0 && bit != 1) {
			return fmt.Errorf("%w: BIT must be 0 or 1", errUsage)
		}
		b, err := e.load(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, find(b, bit))
		return nil
	}
}

func cmdCmp(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 3, "OP A B"); err != nil {
		return err
	}
	a, err := e.load(ctx, args[1])
	if err != nil {
		return err
	}
	b, err := e.load(ctx, args[2])
	if err != nil {
		return err
	}

	if args[0] == "subset" {
		ok, err := bitvec.IsSubset(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, ok)
		return nil
	}

	op, err := bitvec.ParseOp(args[0])
	if err != nil {
		return err
	}
	var n int64
	switch op {
	case bitvec.OpAnd:
		n, err = bitvec.CountAnd(a, b)
	case bitvec.OpOr:
		n, err = bitvec.CountOr(a, b)
	case bitvec.OpXor:
		n, err = bitvec.CountXor(a, b)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, n)
	return nil
}

func cmdMatrix(ctx context.Context, e *env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected OP NAME...", errUsage)
	}
	bufs := make([]*bitvec.Buffer, 0, len(args)-1)
	for _, name := range args[1:] {
		b, err := e.load(ctx, name)
		if err != nil {
			return err
		}
		bufs = append(bufs, b)
	}

	batch := bitvec.NewBatch(
		bitvec.WithLogger(e.logger),
		bitvec.WithMetrics(e.metrics),
		bitvec.WithMaxWorkers(e.cfg.Limits.Workers),
	)

	if args[0] == "subset" {
		m, err := batch.Subsets(ctx, bufs)
		if err != nil {
			return err
		}
		for _, row := range m {
			fmt.Fprintln(e.stdout, row)
		}
		return nil
	}

	op, err := bitvec.ParseOp(args[0])
	if err != nil {
		return err
	}
	m, err := batch.Matrix(ctx, op, bufs)
	if err != nil {
		return err
	}
	for _, row := range m {
		fmt.Fprintln(e.stdout, row)
	}
	return nil
}

func cmdRm(ctx context.Context, e *env, args []string) error {
	if err := wantArgs(args, 1, "NAME"); err != nil {
		return err
	}
	return e.repo.Delete(ctx, args[0])
}

func cmdLs(ctx context.Context, e *env, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected [PREFIX]", errUsage)
	}
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	names, err := e.repo.List(ctx, prefix)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(e.stdout, name)
	}
	return nil
}

func cmdConfig(_ context.Context, e *env, args []string) error {
	if err := wantArgs(args, 0, "no arguments"); err != nil {
		return err
	}
	return e.cfg.Write(e.stdout)
}
