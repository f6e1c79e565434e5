package main

import (
	"context"
	"errors"
	"io"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/config"
	"github.com/hupe1980/bitvec/persistence"
)

var errUsage = errors.New("invalid usage")

// env carries what every command needs.
type env struct {
	cfg     config.Config
	logger  *bitvec.Logger
	metrics *bitvec.BasicMetricsCollector
	repo    *persistence.Repository
	stdout  io.Writer
}

func newEnv(path string, stdout, stderr io.Writer) (*env, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	return &env{
		cfg:     cfg,
		logger:  cfg.Logger(stderr),
		metrics: &bitvec.BasicMetricsCollector{},
		stdout:  stdout,
	}, nil
}

func (e *env) open(ctx context.Context) error {
	repo, err := e.cfg.Repository(ctx, e.logger, e.metrics)
	if err != nil {
		return err
	}
	e.repo = repo
	return nil
}

func (e *env) load(ctx context.Context, name string) (*bitvec.Buffer, error) {
	return e.repo.Load(ctx, name)
}
