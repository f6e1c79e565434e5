package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/internal/resource"
)

// Extension is appended to buffer names to form blob names.
const Extension = ".bvec"

var (
	// ErrRepositoryClosed is returned when operations are attempted on a closed repository.
	ErrRepositoryClosed = errors.New("persistence: repository is closed")

	// ErrInvalidName is returned for empty names or names the store cannot hold.
	ErrInvalidName = errors.New("persistence: invalid buffer name")
)

// Options configures a Repository.
type Options struct {
	// Compression is applied to frames when it shrinks them. Default: none.
	Compression codec.Compression

	// Logger receives save/load/delete events. Default: NoopLogger.
	Logger *bitvec.Logger

	// Metrics records frame sizes and latencies. Default: no-op.
	Metrics bitvec.MetricsCollector

	// IOLimitBytesPerSec caps store throughput. 0 means unlimited.
	IOLimitBytesPerSec int64
}

// Repository saves and loads named buffers.
// It is safe for concurrent use.
type Repository struct {
	store       blobstore.BlobStore
	compression codec.Compression
	logger      *bitvec.Logger
	metrics     bitvec.MetricsCollector
	rc          *resource.Controller

	mu     sync.RWMutex
	closed bool
}

// NewRepository creates a Repository on top of store.
func NewRepository(store blobstore.BlobStore, optFns ...func(*Options)) *Repository {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = bitvec.NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = bitvec.NoopMetricsCollector{}
	}

	return &Repository{
		store:       store,
		compression: opts.Compression,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		rc:          resource.NewController(resource.Config{IOLimitBytesPerSec: opts.IOLimitBytesPerSec}),
	}
}

// Store returns the underlying blob store.
func (r *Repository) Store() blobstore.BlobStore {
	return r.store
}

func (r *Repository) check() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrRepositoryClosed
	}
	return nil
}

func blobName(name string) (string, error) {
	if name == "" || strings.HasSuffix(name, "/") || strings.HasSuffix(name, Extension) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name + Extension, nil
}

// Save encodes b and writes it under name, replacing any previous version.
func (r *Repository) Save(ctx context.Context, name string, b *bitvec.Buffer) error {
	start := time.Now()
	n, err := r.save(ctx, name, b)
	var bits int64
	if b != nil {
		bits = b.Len()
	}
	r.logger.LogSave(ctx, name, bits, n, err)
	r.metrics.RecordSave(n, time.Since(start), err)
	return err
}

func (r *Repository) save(ctx context.Context, name string, b *bitvec.Buffer) (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	key, err := blobName(name)
	if err != nil {
		return 0, err
	}

	frame, err := codec.Encode(b, r.compression)
	if err != nil {
		return 0, fmt.Errorf("persistence: encode %q: %w", name, err)
	}
	if err := r.rc.AcquireIO(ctx, len(frame)); err != nil {
		return 0, err
	}
	if err := r.store.Put(ctx, key, frame); err != nil {
		return 0, fmt.Errorf("persistence: save %q: %w", name, err)
	}
	return len(frame), nil
}

// Load reads and decodes the buffer stored under name.
// A missing buffer yields an error satisfying errors.Is(err, blobstore.ErrNotFound).
func (r *Repository) Load(ctx context.Context, name string) (*bitvec.Buffer, error) {
	start := time.Now()
	b, n, err := r.load(ctx, name)
	r.logger.LogLoad(ctx, name, n, err)
	r.metrics.RecordLoad(n, time.Since(start), err)
	return b, err
}

func (r *Repository) load(ctx context.Context, name string) (*bitvec.Buffer, int, error) {
	frame, err := r.get(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	b, err := codec.Decode(frame)
	if err != nil {
		return nil, len(frame), fmt.Errorf("persistence: decode %q: %w", name, err)
	}
	return b, len(frame), nil
}

func (r *Repository) get(ctx context.Context, name string) ([]byte, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	key, err := blobName(name)
	if err != nil {
		return nil, err
	}
	frame, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("persistence: load %q: %w", name, err)
	}
	if err := r.rc.AcquireIO(ctx, len(frame)); err != nil {
		return nil, err
	}
	return frame, nil
}

// Stat returns the frame header of the buffer stored under name without
// decoding its payload.
func (r *Repository) Stat(ctx context.Context, name string) (codec.Header, error) {
	frame, err := r.get(ctx, name)
	if err != nil {
		return codec.Header{}, err
	}
	h, err := codec.ReadHeader(frame)
	if err != nil {
		return codec.Header{}, fmt.Errorf("persistence: stat %q: %w", name, err)
	}
	return h, nil
}

// Delete removes the buffer stored under name. Deleting a missing buffer is
// not an error.
func (r *Repository) Delete(ctx context.Context, name string) error {
	err := r.delete(ctx, name)
	r.logger.LogDelete(ctx, name, err)
	return err
}

func (r *Repository) delete(ctx context.Context, name string) error {
	if err := r.check(); err != nil {
		return err
	}
	key, err := blobName(name)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("persistence: delete %q: %w", name, err)
	}
	return nil
}

// List returns the sorted names of stored buffers starting with prefix.
// Blobs without the frame extension are ignored.
func (r *Repository) List(ctx context.Context, prefix string) ([]string, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	keys, err := r.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("persistence: list: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if name, ok := strings.CutSuffix(key, Extension); ok && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Close marks the repository closed. Further operations fail with
// ErrRepositoryClosed. The blob store is not closed.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
