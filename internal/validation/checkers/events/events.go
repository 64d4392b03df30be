// Package events builds a dependency graph from the signal and wait events
// passed to command list appends and warns when a new dependency would close
// a cycle. A cycle means every action on it waits for another one on it, so
// none of them can ever run. It also warns when the host blocks forever on an
// event that no action signals.
//
// The checker only logs. It never fails a call.
package events

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

const Name = "events"

// maxPathLength caps how many actions of an existing path are logged.
const maxPathLength = 15

const noNode = -1

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
		events: make(map[ze.EventHandle]int),
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

// Deadlocks counts dependencies that closed a cycle.
func (c *Checker) Deadlocks() int64 {
	return c.core.deadlocks.Load()
}

// Warnings counts every other suspicious use of an event: unknown handles,
// a signal event reused by a second action and host waits that cannot end.
func (c *Checker) Warnings() int64 {
	return c.core.warnings.Load()
}

type core struct {
	validation.BaseCore
	logger    *slog.Logger
	deadlocks atomic.Int64
	warnings  atomic.Int64

	mu sync.Mutex
	// events maps a live event to the graph node of the action that
	// signals it, or noNode when nothing has claimed it yet.
	events  map[ze.EventHandle]int
	actions []string
	edges   [][]int
}

func (c *core) EventCreateEpilogue(_ ze.EventPoolHandle, _ *ze.EventDesc, phEvent *ze.EventHandle, result ze.Result) ze.Result {
	if result != ze.Success || phEvent == nil {
		return ze.Success
	}
	c.mu.Lock()
	c.events[*phEvent] = noNode
	c.mu.Unlock()
	return ze.Success
}

// Nodes outlive their event so paths through them can still be described.
func (c *core) EventDestroyEpilogue(hEvent ze.EventHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.mu.Lock()
	delete(c.events, hEvent)
	c.mu.Unlock()
	return ze.Success
}

func (c *core) CommandListAppendMemoryCopyPrologue(_ ze.CommandListHandle, _, _ ze.Ptr, _ uint64, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) ze.Result {
	c.checkForDeadlock("zeCommandListAppendMemoryCopy", hSignalEvent, waitEvents)
	return ze.Success
}

func (c *core) EventHostSynchronizePrologue(hEvent ze.EventHandle, timeout uint64) ze.Result {
	if timeout != math.MaxUint64 {
		return ze.Success
	}
	c.mu.Lock()
	node, ok := c.events[hEvent]
	unsignalled := ok && (node == noNode || c.actions[node] == "")
	c.mu.Unlock()
	if unsignalled {
		c.warn("host waits forever on an event that no action signals",
			"entry_point", "zeEventHostSynchronize",
			"event", hEvent.String(),
		)
	}
	return ze.Success
}

func (c *core) checkForDeadlock(entryPoint string, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	action := noNode
	if hSignalEvent != 0 {
		node, ok := c.events[hSignalEvent]
		if !ok {
			c.warn("signal event might be invalid", "entry_point", entryPoint, "event", hSignalEvent.String())
			return
		}
		// A placeholder node created by an earlier wait is claimed here.
		// A node that already describes an action means the event is reused.
		if node != noNode && c.actions[node] != "" {
			c.warn("signal event already used by another action",
				"entry_point", entryPoint,
				"event", hSignalEvent.String(),
				"previous_action", c.actions[node],
			)
		}
		action = node
	}
	for _, h := range waitEvents {
		if _, ok := c.events[h]; !ok {
			c.warn("wait event might be invalid", "entry_point", entryPoint, "event", h.String())
			return
		}
	}

	if action == noNode {
		action = c.addNode()
		if hSignalEvent != 0 {
			c.events[hSignalEvent] = action
		}
	}
	c.actions[action] = describe(entryPoint, hSignalEvent, waitEvents)

	for _, h := range waitEvents {
		from := c.events[h]
		if from == noNode {
			// The signalling action has not been appended yet.
			from = c.addNode()
			c.events[h] = from
		}
		if c.addEdge(from, action) {
			continue
		}
		c.deadlocks.Add(1)
		path, truncated := c.path(action, from)
		steps := make([]string, 0, len(path)+1)
		for _, n := range path {
			steps = append(steps, c.label(n))
		}
		if truncated {
			steps = append(steps, "...")
		}
		c.logger.Warn("potential event deadlock",
			"entry_point", entryPoint,
			"from", c.label(from),
			"to", c.label(action),
			"existing_path", strings.Join(steps, " -> "),
		)
	}
}

func (c *core) warn(msg string, args ...any) {
	c.warnings.Add(1)
	c.logger.Warn(msg, args...)
}

func (c *core) addNode() int {
	c.actions = append(c.actions, "")
	c.edges = append(c.edges, nil)
	return len(c.actions) - 1
}

// addEdge records from -> to unless to already reaches from.
func (c *core) addEdge(from, to int) bool {
	if from == to || c.reaches(to, from) {
		return false
	}
	c.edges[from] = append(c.edges[from], to)
	return true
}

func (c *core) reaches(from, to int) bool {
	seen := make([]bool, len(c.edges))
	stack := []int{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == to {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, c.edges[n]...)
	}
	return false
}

// path returns the nodes on a shortest path from -> to, cut to
// maxPathLength nodes. The second result reports whether it was cut.
func (c *core) path(from, to int) ([]int, bool) {
	if from == to {
		return []int{from}, false
	}
	prev := make([]int, len(c.edges))
	for i := range prev {
		prev[i] = noNode
	}
	prev[from] = from
	queue := []int{from}
	for len(queue) > 0 && prev[to] == noNode {
		n := queue[0]
		queue = queue[1:]
		for _, next := range c.edges[n] {
			if prev[next] == noNode {
				prev[next] = n
				queue = append(queue, next)
			}
		}
	}
	if prev[to] == noNode {
		return nil, false
	}
	var nodes []int
	for n := to; n != from; n = prev[n] {
		nodes = append(nodes, n)
	}
	nodes = append(nodes, from)
	slices.Reverse(nodes)
	if len(nodes) > maxPathLength {
		return nodes[:maxPathLength], true
	}
	return nodes, false
}

func (c *core) label(node int) string {
	if c.actions[node] == "" {
		return "PLACEHOLDER"
	}
	return c.actions[node]
}

func describe(entryPoint string, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) string {
	waits := make([]string, len(waitEvents))
	for i, h := range waitEvents {
		waits[i] = h.String()
	}
	return fmt.Sprintf("%s(signal=%s, wait=[%s])", entryPoint, hSignalEvent, strings.Join(waits, ", "))
}
