// Package loader hands an application the dispatch tables of a driver with
// zero or more layers installed in front of it.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

var ErrNilDriver = errors.New("loader: nil driver")

type Driver interface {
	Tables() zel.Tables
}

// Layer patches tables in place so that every entry forwards to the value it
// replaced.
type Layer interface {
	Intercept(version ze.APIVersion, tables *zel.Tables) error
}

type Loader struct {
	driver  Driver
	layers  []Layer
	version ze.APIVersion
	logger  *slog.Logger
}

type Option func(*Loader)

// WithLayer appends a layer. Layers are installed in the order given, so the
// last one added is the first to see a call.
func WithLayer(l Layer) Option {
	return func(ld *Loader) {
		ld.layers = append(ld.layers, l)
	}
}

func WithAPIVersion(v ze.APIVersion) Option {
	return func(ld *Loader) {
		ld.version = v
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(ld *Loader) {
		ld.logger = logger
	}
}

func New(driver Driver, opts ...Option) (*Loader, error) {
	if driver == nil {
		return nil, ErrNilDriver
	}
	ld := &Loader{
		driver:  driver,
		version: ze.APIVersionCurrent,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld, nil
}

// Load returns a fresh copy of the driver's tables with every layer
// installed. The driver's own tables are never modified.
func (ld *Loader) Load() (*zel.Tables, error) {
	tables := ld.driver.Tables()
	for i, layer := range ld.layers {
		if err := layer.Intercept(ld.version, &tables); err != nil {
			return nil, fmt.Errorf("install layer %d: %w", i, err)
		}
	}
	ld.logger.Debug("tables loaded", "api_version", ld.version.String(), "layers", len(ld.layers))
	return &tables, nil
}
