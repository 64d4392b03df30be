// Package certification rejects calls to entry points that were introduced
// after the API version an application is certified against.
//
// In default mode the certified version follows whatever the driver reports
// from a successful DriverGetApiVersion. An explicit version is fixed for the
// lifetime of the checker.
package certification

import (
	"io"
	"log/slog"
	"sync/atomic"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

const Name = "certification"

type Checker struct {
	state   *state
	core    core
	tools   tools
	sysman  sysman
	runtime runtime
}

var _ validation.Checker = (*Checker)(nil)

type state struct {
	logger   *slog.Logger
	version  atomic.Uint32
	explicit bool
}

type Option func(*state)

func WithLogger(logger *slog.Logger) Option {
	return func(s *state) {
		s.logger = logger
	}
}

// WithVersion pins the certified version and disables adoption of the
// driver-reported version.
func WithVersion(v ze.APIVersion) Option {
	return func(s *state) {
		s.version.Store(uint32(v))
		s.explicit = true
	}
}

func New(opts ...Option) *Checker {
	s := &state{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	s.version.Store(uint32(ze.APIVersionCurrent))
	for _, opt := range opts {
		opt(s)
	}
	return &Checker{
		state:   s,
		core:    core{state: s},
		tools:   tools{state: s},
		sysman:  sysman{state: s},
		runtime: runtime{state: s},
	}
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return &c.tools }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return &c.sysman }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return &c.runtime }

// Version returns the version calls are currently certified against.
func (c *Checker) Version() ze.APIVersion {
	return c.state.current()
}

func (s *state) current() ze.APIVersion {
	return ze.APIVersion(s.version.Load())
}

// require rejects an entry point introduced in since when the certified
// version is older.
func (s *state) require(entryPoint string, since ze.APIVersion) ze.Result {
	if v := s.current(); v < since {
		s.logger.Debug("entry point newer than certified version",
			"entry_point", entryPoint,
			"introduced", since.String(),
			"certified", v.String(),
		)
		return ze.ErrorUnsupportedVersion
	}
	return ze.Success
}

func (s *state) adopt(v ze.APIVersion) {
	if s.explicit {
		return
	}
	if old := ze.APIVersion(s.version.Swap(uint32(v))); old != v {
		s.logger.Debug("certified version follows driver", "from", old.String(), "to", v.String())
	}
}
