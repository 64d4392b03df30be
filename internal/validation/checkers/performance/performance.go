// Package performance logs hints about API usage that is valid but likely
// to be slow. It never fails a call.
package performance

import (
	"io"
	"log/slog"
	"sync/atomic"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

const Name = "performance"

const (
	HintSynchronousQueue = "Synchronous command queue may cause performance degradation. Consider using asynchronous mode."
	HintNoCopyOffload    = "In-order command list created without copy offload hint. Consider setting ZE_COMMAND_QUEUE_FLAG_COPY_OFFLOAD_HINT for better copy performance."
	HintOutOfOrder       = "Out-of-order command list created. Consider using in-order command lists for better performance."
)

type Checker struct {
	core core
}

var _ validation.Checker = (*Checker)(nil)

type Option func(*core)

func WithLogger(logger *slog.Logger) Option {
	return func(c *core) {
		c.logger = logger
	}
}

func New(opts ...Option) *Checker {
	c := &Checker{core: core{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}}
	for _, opt := range opts {
		opt(&c.core)
	}
	return c
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return nil }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return nil }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return nil }

// Hints returns how many hints have been logged.
func (c *Checker) Hints() int64 {
	return c.core.hints.Load()
}

type core struct {
	validation.BaseCore
	logger *slog.Logger
	hints  atomic.Int64
}

func (c *core) CommandListCreateImmediateEpilogue(_ ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result {
	if result != ze.Success || desc == nil {
		return ze.Success
	}
	var list ze.CommandListHandle
	if phCommandList != nil {
		list = *phCommandList
	}
	if desc.Mode == ze.CommandQueueModeSynchronous {
		c.hint(HintSynchronousQueue, hDevice, list)
	}
	if desc.Flags&ze.CommandQueueFlagInOrder != 0 {
		if desc.Flags&ze.CommandQueueFlagCopyOffloadHint == 0 {
			c.hint(HintNoCopyOffload, hDevice, list)
		}
	} else {
		c.hint(HintOutOfOrder, hDevice, list)
	}
	return ze.Success
}

func (c *core) hint(msg string, hDevice ze.DeviceHandle, list ze.CommandListHandle) {
	c.hints.Add(1)
	c.logger.Info(msg,
		"entry_point", "zeCommandListCreateImmediate",
		"device", hDevice.String(),
		"command_list", list.String(),
	)
}
