package bitvec

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec/internal/popcount"
	"github.com/hupe1980/bitvec/internal/resource"
)

// Op selects the reduction computed by Batch.Matrix.
type Op uint8

const (
	// OpAnd counts bits set in both operands.
	OpAnd Op = iota
	// OpOr counts bits set in either operand.
	OpOr
	// OpXor counts bits that differ (Hamming distance).
	OpXor
)

// String returns "and", "or" or "xor".
func (o Op) String() string {
	switch o {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// ParseOp parses "and", "or" or "xor".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return OpAnd, nil
	case "or":
		return OpOr, nil
	case "xor":
		return OpXor, nil
	default:
		return 0, fmt.Errorf("unknown op %q", s)
	}
}

func (o Op) kernel() (func(a, b []byte) int64, error) {
	switch o {
	case OpAnd:
		return popcount.And, nil
	case OpOr:
		return popcount.Or, nil
	case OpXor:
		return popcount.Xor, nil
	default:
		return nil, fmt.Errorf("unknown op %d", uint8(o))
	}
}

// Batch runs pairwise reductions over many buffers concurrently.
//
// Inputs are validated and normalized once before any goroutine starts, after
// which the kernels only read. A buffer may therefore appear in many pairs,
// but the caller must not mutate any input while a call is running.
type Batch struct {
	logger  *Logger
	metrics MetricsCollector
	rc      *resource.Controller
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithLogger sets the logger. Nil selects NoopLogger.
func WithLogger(l *Logger) BatchOption {
	return func(b *Batch) {
		if l == nil {
			l = NoopLogger()
		}
		b.logger = l
	}
}

// WithMetrics sets the metrics collector. Nil selects NoopMetricsCollector.
func WithMetrics(m MetricsCollector) BatchOption {
	return func(b *Batch) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		b.metrics = m
	}
}

// WithMaxWorkers bounds the number of concurrently running rows.
// Values <= 0 select GOMAXPROCS.
func WithMaxWorkers(n int64) BatchOption {
	return func(b *Batch) {
		b.rc = resource.NewController(resource.Config{MaxWorkers: n})
	}
}

// NewBatch creates a Batch.
func NewBatch(opts ...BatchOption) *Batch {
	b := &Batch{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rc == nil {
		b.rc = resource.NewController(resource.Config{})
	}
	return b
}

// prepare validates that all buffers share length and endianness and
// returns their normalized bytes.
func prepare(bufs []*Buffer) ([][]byte, error) {
	raws := make([][]byte, len(bufs))
	for i, buf := range bufs {
		if buf == nil {
			return nil, fmt.Errorf("buffer %d: %w", i, ErrNilBuffer)
		}
		if err := checkPair(bufs[0], buf); err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		raws[i] = buf.raw()
	}
	return raws, nil
}

// Matrix returns the symmetric N×N matrix m with m[i][j] = op-count(bufs[i], bufs[j]).
func (b *Batch) Matrix(ctx context.Context, op Op, bufs []*Buffer) ([][]int64, error) {
	start := time.Now()
	res, pairs, bytes, err := b.matrix(ctx, op, bufs)
	b.logger.LogBatch(ctx, op.String(), len(bufs), pairs, time.Since(start), err)
	b.metrics.RecordBatch(op.String(), pairs, bytes, time.Since(start), err)
	return res, err
}

func (b *Batch) matrix(ctx context.Context, op Op, bufs []*Buffer) ([][]int64, int, int64, error) {
	kernel, err := op.kernel()
	if err != nil {
		return nil, 0, 0, err
	}
	raws, err := prepare(bufs)
	if err != nil {
		return nil, 0, 0, err
	}

	n := len(raws)
	res := make([][]int64, n)
	for i := range res {
		res[i] = make([]int64, n)
	}
	if n == 0 {
		return res, 0, 0, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range raws {
		g.Go(func() error {
			return b.rc.Run(ctx, func() error {
				// Row i owns cells (i, j) and (j, i) for j >= i.
				for j := i; j < n; j++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					v := kernel(raws[i], raws[j])
					res[i][j] = v
					res[j][i] = v
				}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, 0, err
	}

	pairs := n * (n + 1) / 2
	return res, pairs, int64(pairs) * 2 * int64(len(raws[0])), nil
}

// Subsets returns the N×N matrix m with m[i][j] = IsSubset(bufs[i], bufs[j]).
func (b *Batch) Subsets(ctx context.Context, bufs []*Buffer) ([][]bool, error) {
	start := time.Now()
	res, err := b.subsets(ctx, bufs)
	pairs := 0
	if err == nil {
		pairs = len(bufs) * len(bufs)
	}
	b.logger.LogBatch(ctx, "subset", len(bufs), pairs, time.Since(start), err)
	b.metrics.RecordBatch("subset", pairs, 0, time.Since(start), err)
	return res, err
}

func (b *Batch) subsets(ctx context.Context, bufs []*Buffer) ([][]bool, error) {
	raws, err := prepare(bufs)
	if err != nil {
		return nil, err
	}

	n := len(raws)
	res := make([][]bool, n)
	for i := range res {
		res[i] = make([]bool, n)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range raws {
		g.Go(func() error {
			return b.rc.Run(ctx, func() error {
				for j := range raws {
					if err := ctx.Err(); err != nil {
						return err
					}
					res[i][j] = popcount.Subset(raws[i], raws[j])
				}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
