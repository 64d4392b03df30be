// Package template is a scaffold for new checkers. It participates in every
// family, overrides one entry point in three of them, and never changes a
// call's outcome.
package template

import (
	"io"
	"log/slog"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

const Name = "template"

type Checker struct {
	core    core
	tools   tools
	sysman  sysman
	runtime validation.BaseRuntime
}

var _ validation.Checker = (*Checker)(nil)

type Option func(*Checker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.core.logger = logger
		c.tools.logger = logger
		c.sysman.logger = logger
	}
}

func New(opts ...Option) *Checker {
	c := &Checker{}
	WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return &c.tools }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return &c.sysman }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return &c.runtime }

type core struct {
	validation.BaseCore
	logger *slog.Logger
}

func (c *core) InitPrologue(flags ze.InitFlags) ze.Result {
	c.logger.Debug("template prologue", "entry_point", "zeInit", "flags", uint32(flags))
	return ze.Success
}

type tools struct {
	validation.BaseTools
	logger *slog.Logger
}

func (t *tools) ModuleGetDebugInfoPrologue(hModule ze.ModuleHandle, format zet.ModuleDebugInfoFormat, _ *uint64, _ []byte) ze.Result {
	t.logger.Debug("template prologue", "entry_point", "zetModuleGetDebugInfo",
		"module", hModule.String(), "format", uint32(format))
	return ze.Success
}

type sysman struct {
	validation.BaseSysman
	logger *slog.Logger
}

func (s *sysman) InitPrologue(flags zes.InitFlags) ze.Result {
	s.logger.Debug("template prologue", "entry_point", "zesInit", "flags", uint32(flags))
	return ze.Success
}
