// Package threading detects a command list being used from two goroutines
// at once. A command list is marked busy by the prologue of any entry point
// that records into or retires it, and released by the matching epilogue.
//
// The checker must be registered after every other checker: once its
// prologue succeeds no later prologue can fail, so the driver call and the
// releasing epilogue are guaranteed to follow.
package threading

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

const Name = "threading"

type Checker struct {
	core core
}

var _ validation.Checker = (*Checker)(nil)

type Option func(*Checker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.core.logger = logger
	}
}

func New(opts ...Option) *Checker {
	c := &Checker{core: core{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		busy:   make(map[ze.CommandListHandle]struct{}),
	}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return nil }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return nil }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return nil }

// Conflicts counts calls rejected because the command list was busy.
func (c *Checker) Conflicts() int64 {
	return c.core.conflicts.Load()
}

type core struct {
	validation.BaseCore
	logger    *slog.Logger
	conflicts atomic.Int64

	mu   sync.Mutex
	busy map[ze.CommandListHandle]struct{}
}

func (c *core) acquire(entryPoint string, h ze.CommandListHandle) ze.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.busy[h]; ok {
		c.conflicts.Add(1)
		c.logger.Warn("command list used concurrently",
			"entry_point", entryPoint,
			"command_list", h.String(),
		)
		return ze.ErrorNotAvailable
	}
	c.busy[h] = struct{}{}
	return ze.Success
}

func (c *core) release(h ze.CommandListHandle) ze.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.busy, h)
	return ze.Success
}

func (c *core) CommandListClosePrologue(hCommandList ze.CommandListHandle) ze.Result {
	return c.acquire("zeCommandListClose", hCommandList)
}

func (c *core) CommandListCloseEpilogue(hCommandList ze.CommandListHandle, _ ze.Result) ze.Result {
	return c.release(hCommandList)
}

func (c *core) CommandListAppendMemoryCopyPrologue(hCommandList ze.CommandListHandle, _, _ ze.Ptr, _ uint64, _ ze.EventHandle, _ []ze.EventHandle) ze.Result {
	return c.acquire("zeCommandListAppendMemoryCopy", hCommandList)
}

func (c *core) CommandListAppendMemoryCopyEpilogue(hCommandList ze.CommandListHandle, _, _ ze.Ptr, _ uint64, _ ze.EventHandle, _ []ze.EventHandle, _ ze.Result) ze.Result {
	return c.release(hCommandList)
}

func (c *core) CommandListDestroyPrologue(hCommandList ze.CommandListHandle) ze.Result {
	return c.acquire("zeCommandListDestroy", hCommandList)
}

func (c *core) CommandListDestroyEpilogue(hCommandList ze.CommandListHandle, _ ze.Result) ze.Result {
	return c.release(hCommandList)
}
