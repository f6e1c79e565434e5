// Package config loads the YAML configuration of the bvtool command and
// turns it into ready-to-use components (logger, blob store, repository).
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/blobstore/minio"
	"github.com/hupe1980/bitvec/blobstore/s3"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/internal/resource"
	"github.com/hupe1980/bitvec/persistence"
)

// Store kinds.
const (
	StoreMemory = "memory"
	StoreLocal  = "local"
	StoreS3     = "s3"
	StoreMinIO  = "minio"
)

// Environment variables consulted when the MinIO credentials are left empty.
const (
	EnvMinIOAccessKey = "MINIO_ACCESS_KEY"
	EnvMinIOSecretKey = "MINIO_SECRET_KEY"
)

// Config is the tool configuration.
//
//	endianness: big
//	compression: zstd
//	store:
//	  kind: local
//	  root: ./data
//	log:
//	  level: info
//	  format: text
//	limits:
//	  workers: 4
//	  io_bytes_per_sec: 0
//	  cache_memory_bytes: 0
type Config struct {
	Endianness  string       `yaml:"endianness"`
	Compression string       `yaml:"compression"`
	Codec       string       `yaml:"codec"`
	Store       StoreConfig  `yaml:"store"`
	Log         LogConfig    `yaml:"log"`
	Limits      LimitsConfig `yaml:"limits"`
}

// StoreConfig selects and configures the blob store.
type StoreConfig struct {
	Kind       string `yaml:"kind"`
	Root       string `yaml:"root,omitempty"`
	Bucket     string `yaml:"bucket,omitempty"`
	Prefix     string `yaml:"prefix,omitempty"`
	Region     string `yaml:"region,omitempty"`
	Endpoint   string `yaml:"endpoint,omitempty"`
	AccessKey  string `yaml:"access_key,omitempty"`
	SecretKey  string `yaml:"secret_key,omitempty"`
	Secure     bool   `yaml:"secure,omitempty"`
	CacheBytes int64  `yaml:"cache_bytes,omitempty"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LimitsConfig bounds resource usage.
type LimitsConfig struct {
	Workers       int64 `yaml:"workers"`
	IOBytesPerSec int64 `yaml:"io_bytes_per_sec"`
	// CacheMemoryBytes is a hard budget for bytes held by the blob cache.
	// Fills that would exceed it are skipped. 0 means no budget beyond
	// store.cache_bytes.
	CacheMemoryBytes int64 `yaml:"cache_memory_bytes,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Endianness:  bitvec.DefaultEndianness.String(),
		Compression: codec.CompressionNone.String(),
		Codec:       codec.Default.Name(),
		Store: StoreConfig{
			Kind: StoreLocal,
			Root: ".bitvec",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w, yaml.Indent(2))
	defer encoder.Close()
	return encoder.Encode(c)
}

// Validate reports all invalid fields at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := bitvec.ParseEndianness(c.Endianness); err != nil {
		errs = append(errs, fmt.Errorf("endianness: %w", err))
	}
	if _, err := codec.ParseCompression(c.Compression); err != nil {
		errs = append(errs, fmt.Errorf("compression: %w", err))
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		errs = append(errs, fmt.Errorf("codec: unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", ")))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Limits.Workers < 0 {
		errs = append(errs, errors.New("limits.workers: must not be negative"))
	}
	if c.Limits.IOBytesPerSec < 0 {
		errs = append(errs, errors.New("limits.io_bytes_per_sec: must not be negative"))
	}
	if c.Limits.CacheMemoryBytes < 0 {
		errs = append(errs, errors.New("limits.cache_memory_bytes: must not be negative"))
	}

	switch c.Store.Kind {
	case StoreMemory:
	case StoreLocal:
		if c.Store.Root == "" {
			errs = append(errs, errors.New("store.root: required for local store"))
		}
	case StoreS3:
		if c.Store.Bucket == "" {
			errs = append(errs, errors.New("store.bucket: required for s3 store"))
		}
	case StoreMinIO:
		if c.Store.Bucket == "" || c.Store.Endpoint == "" {
			errs = append(errs, errors.New("store.bucket, store.endpoint: required for minio store"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.kind: unknown kind %q", c.Store.Kind))
	}
	if c.Store.CacheBytes < 0 {
		errs = append(errs, errors.New("store.cache_bytes: must not be negative"))
	}
	return errors.Join(errs...)
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}

// EndiannessValue returns the parsed endianness.
func (c Config) EndiannessValue() bitvec.Endianness {
	e, err := bitvec.ParseEndianness(c.Endianness)
	if err != nil {
		return bitvec.DefaultEndianness
	}
	return e
}

// CompressionValue returns the parsed frame compression.
func (c Config) CompressionValue() codec.Compression {
	comp, _ := codec.ParseCompression(c.Compression)
	return comp
}

// DocumentCodec returns the configured document codec.
func (c Config) DocumentCodec() codec.Codec {
	if cd, ok := codec.ByName(c.Codec); ok {
		return cd
	}
	return codec.Default
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer) *bitvec.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return bitvec.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return bitvec.NewLogger(slog.NewTextHandler(w, opts))
}

// OpenStore builds the configured blob store, wrapped in a
// blobstore.CachingStore when store.cache_bytes is set.
func (c Config) OpenStore(ctx context.Context) (blobstore.BlobStore, error) {
	var store blobstore.BlobStore
	switch c.Store.Kind {
	case StoreMemory:
		store = blobstore.NewMemoryStore()
	case StoreLocal:
		store = blobstore.NewLocalStore(c.Store.Root)
	case StoreS3:
		s, err := s3.NewStoreFromConfig(ctx, c.Store.Bucket, c.Store.Prefix, awsOptions(c.Store)...)
		if err != nil {
			return nil, err
		}
		store = s
	case StoreMinIO:
		access, secret := c.Store.AccessKey, c.Store.SecretKey
		if access == "" {
			access = os.Getenv(EnvMinIOAccessKey)
		}
		if secret == "" {
			secret = os.Getenv(EnvMinIOSecretKey)
		}
		s, err := minio.NewStoreWithCredentials(c.Store.Endpoint, access, secret, c.Store.Secure, c.Store.Bucket, c.Store.Prefix)
		if err != nil {
			return nil, err
		}
		store = s
	default:
		return nil, fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}

	if c.Store.CacheBytes > 0 {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: c.Limits.CacheMemoryBytes})
		store = blobstore.NewCachingStore(store, c.Store.CacheBytes, rc)
	}
	return store, nil
}

// Repository opens the store and wraps it in a persistence.Repository using
// the configured compression, IO limit, logger and metrics.
func (c Config) Repository(ctx context.Context, logger *bitvec.Logger, metrics bitvec.MetricsCollector) (*persistence.Repository, error) {
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	return persistence.NewRepository(store, func(o *persistence.Options) {
		o.Compression = c.CompressionValue()
		o.IOLimitBytesPerSec = c.Limits.IOBytesPerSec
		o.Logger = logger
		o.Metrics = metrics
	}), nil
}
