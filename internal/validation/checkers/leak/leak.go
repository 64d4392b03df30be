// Package leak counts successful create and destroy calls per object kind
// and reports unbalanced kinds when the layer is torn down.
package leak

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"levelzero/internal/validation"
)

const Name = "leak"

// kinds lists, per object kind, the entry points that create objects of that
// kind followed by the single entry point that destroys them.
var kinds = []struct {
	kind    string
	creates []string
	destroy string
}{
	{"context", []string{"zeContextCreate"}, "zeContextDestroy"},
	{"module", []string{"zeModuleCreate"}, "zeModuleDestroy"},
	{"event pool", []string{"zeEventPoolCreate"}, "zeEventPoolDestroy"},
	{"command list", []string{"zeCommandListCreateImmediate", "zeCommandListCreate"}, "zeCommandListDestroy"},
	{"event", []string{"zeEventCreate"}, "zeEventDestroy"},
	{"memory", []string{"zeMemAllocDevice", "zeMemAllocHost"}, "zeMemFree"},
}

type Checker struct {
	core   core
	logger *slog.Logger
	out    io.Writer
}

var _ validation.Checker = (*Checker)(nil)

type Option func(*Checker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithOutput sets where Close writes the report. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.out = w
	}
}

func New(opts ...Option) *Checker {
	counts := make(map[string]*atomic.Int64)
	for _, k := range kinds {
		for _, name := range k.creates {
			counts[name] = new(atomic.Int64)
		}
		counts[k.destroy] = new(atomic.Int64)
	}
	c := &Checker{
		core:   core{counts: counts},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    os.Stderr,
	}
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

type Count struct {
	EntryPoint string `json:"entry_point"`
	Calls      int64  `json:"calls"`
}

// Row is the balance for one object kind. Leak is the number of objects
// created but not destroyed; it is negative when more objects were
// destroyed than created.
type Row struct {
	Kind    string  `json:"kind"`
	Creates []Count `json:"creates"`
	Destroy Count   `json:"destroy"`
	Leak    int64   `json:"leak"`
}

// Report returns the current balance of every tracked kind.
func (c *Checker) Report() []Row {
	rows := make([]Row, 0, len(kinds))
	for _, k := range kinds {
		row := Row{Kind: k.kind}
		for _, name := range k.creates {
			n := c.core.counts[name].Load()
			row.Creates = append(row.Creates, Count{EntryPoint: name, Calls: n})
			row.Leak += n
		}
		row.Destroy = Count{EntryPoint: k.destroy, Calls: c.core.counts[k.destroy].Load()}
		row.Leak -= row.Destroy.Calls
		rows = append(rows, row)
	}
	return rows
}

// WriteReport writes the balance of create and destroy calls to w.
func (c *Checker) WriteReport(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Check balance of create/destroy calls\n")
	b.WriteString(strings.Repeat("-", 58) + "\n")
	for _, row := range c.Report() {
		for i, create := range row.Creates {
			if i > 0 {
				b.WriteString(" |\n")
			}
			fmt.Fprintf(&b, "%30s = %-5d", create.EntryPoint, create.Calls)
		}
		fmt.Fprintf(&b, " \\--->%30s = %-5d", row.Destroy.EntryPoint, row.Destroy.Calls)
		if row.Leak != 0 {
			fmt.Fprintf(&b, " ---> LEAK = %d", row.Leak)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Close logs every unbalanced kind and writes the full report.
func (c *Checker) Close() error {
	for _, row := range c.Report() {
		if row.Leak != 0 {
			c.logger.Warn("unbalanced create/destroy calls", "kind", row.Kind, "leak", row.Leak)
		}
	}
	if err := c.WriteReport(c.out); err != nil {
		return fmt.Errorf("write leak report: %w", err)
	}
	return nil
}
