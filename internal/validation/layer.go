package validation

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"levelzero/internal/validation/metrics"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
	"levelzero/pkg/zer"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

const (
	layerName         = "validation layer"
	layerVersionMajor = 1
	layerVersionMinor = 1
	layerVersionPatch = 0
)

// Layer sits between the application and the next layer down. It owns the
// downstream tables saved by Intercept and the registry consulted on every
// call.
type Layer struct {
	id       uuid.UUID
	registry *Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	version  ze.APIVersion

	installed atomic.Bool

	core    ze.Table
	tools   zet.Table
	sysman  zes.Table
	runtime zer.Table
}

type Option func(*Layer)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Layer) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Layer) {
		l.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(l *Layer) {
		l.tracer = tracer
	}
}

// WithAPIVersion sets the API version the layer was built against. Loaders
// requesting an older minor version, or another major version, are refused.
func WithAPIVersion(v ze.APIVersion) Option {
	return func(l *Layer) {
		l.version = v
	}
}

func New(registry *Registry, opts ...Option) (*Layer, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	l := &Layer{
		id:       uuid.New(),
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   noop.NewTracerProvider().Tracer(""),
		version:  ze.APIVersion1_0,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if l.tracer == nil {
		l.tracer = noop.NewTracerProvider().Tracer("")
	}

	if l.metrics != nil {
		registry.observe(l.metrics.SetCheckers)
	}
	return l, nil
}

// ID identifies this layer instance in logs and diagnostics.
func (l *Layer) ID() uuid.UUID {
	return l.id
}

func (l *Layer) Registry() *Registry {
	return l.registry
}

// Version describes the layer component.
func (l *Layer) Version() zel.ComponentVersion {
	return zel.ComponentVersion{
		Name:        layerName,
		SpecVersion: l.version,
		Major:       layerVersionMajor,
		Minor:       layerVersionMinor,
		Patch:       layerVersionPatch,
	}
}

// Intercept saves every entry of tables as the downstream implementation and
// replaces it with the layer's intercept. Entries the downstream leaves nil
// report ze.ErrorUnsupportedFeature when called through the layer.
//
// Intercept must complete before any patched entry is called, and may only
// be called once per layer.
func (l *Layer) Intercept(version ze.APIVersion, tables *zel.Tables) error {
	if tables == nil {
		return ErrNilTable
	}
	if version.Major() != l.version.Major() || version.Minor() < l.version.Minor() {
		return fmt.Errorf("%w: loader %s, layer %s", ErrUnsupportedVersion, version, l.version)
	}
	if !l.installed.CompareAndSwap(false, true) {
		return ErrAlreadyInstalled
	}

	l.interceptCore(&tables.Core)
	l.interceptTools(&tables.Tools)
	l.interceptSysman(&tables.Sysman)
	l.interceptRuntime(&tables.Runtime)

	l.logger.Info("validation layer installed",
		"layer_id", l.id.String(),
		"api_version", version.String(),
		"checkers", l.registry.Names(),
	)
	return nil
}
