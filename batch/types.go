// SPDX-License-Identifier: MIT
// Package: eqpaths/batch
//
// types.go - errors, options and run statistics.

package batch

import (
	"errors"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/eqpaths/distinct"
)

var (
	// ErrNilGraph indicates that Run received a nil graph.
	ErrNilGraph = errors.New("batch: graph is nil")

	// ErrNilEmitter indicates that Run received no emitter.
	ErrNilEmitter = errors.New("batch: emitter is nil")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("batch: workers must be at least 1")
)

// Options configures Run.
type Options struct {
	Workers int
	Finder  []distinct.Option
	Logger  *log.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers, default finder options and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  log.New(io.Discard),
	}
}

// WithWorkers bounds the number of sources processed concurrently.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers)
	}
	return func(o *Options) { o.Workers = n }
}

// WithFinderOptions forwards options to every distinct.Finder.
func WithFinderOptions(opts ...distinct.Option) Option {
	return func(o *Options) { o.Finder = append(o.Finder, opts...) }
}

// WithLogger sets the progress logger. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats summarises a completed run.
type Stats struct {
	Pairs   int           // pairs emitted
	Found   int           // pairs with at least one path
	Paths   int           // paths emitted in total
	Elapsed time.Duration // wall time of Run
}
