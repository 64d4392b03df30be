// Package handlelifetime tracks every handle the driver hands out and
// rejects calls that use a handle which was never created or has already
// been destroyed.
//
// Contexts and event pools own dependents. Destroying either while
// dependents are still alive fails with ze.ErrorHandleObjectInUse.
package handlelifetime

import (
	"sync"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
)

const Name = "handlelifetime"

type Checker struct {
	state   *state
	core    core
	tools   tools
	sysman  sysman
	runtime runtime
}

var _ validation.Checker = (*Checker)(nil)

func New() *Checker {
	st := newState()
	return &Checker{
		state:   st,
		core:    core{state: st},
		tools:   tools{state: st},
		sysman:  sysman{state: st},
		runtime: runtime{state: st},
	}
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return &c.tools }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return &c.sysman }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return &c.runtime }

// Live counts tracked handles per kind.
type Live struct {
	Drivers      int `json:"drivers"`
	Devices      int `json:"devices"`
	Contexts     int `json:"contexts"`
	Modules      int `json:"modules"`
	CommandLists int `json:"command_lists"`
	EventPools   int `json:"event_pools"`
	Events       int `json:"events"`
	Allocations  int `json:"allocations"`
}

func (c *Checker) Live() Live {
	return c.state.live()
}

type commandList struct {
	context ze.ContextHandle
	open    bool
}

type eventPool struct {
	context ze.ContextHandle
	events  int
}

type state struct {
	mu sync.RWMutex

	drivers      map[ze.DriverHandle]struct{}
	devices      map[ze.DeviceHandle]struct{}
	contexts     map[ze.ContextHandle]int // live dependents
	modules      map[ze.ModuleHandle]ze.ContextHandle
	commandLists map[ze.CommandListHandle]*commandList
	eventPools   map[ze.EventPoolHandle]*eventPool
	events       map[ze.EventHandle]ze.EventPoolHandle
	allocations  map[ze.Ptr]ze.ContextHandle

	sysmanDrivers map[zes.DriverHandle]struct{}
	sysmanDevices map[zes.DeviceHandle]struct{}
}

func newState() *state {
	return &state{
		drivers:       make(map[ze.DriverHandle]struct{}),
		devices:       make(map[ze.DeviceHandle]struct{}),
		contexts:      make(map[ze.ContextHandle]int),
		modules:       make(map[ze.ModuleHandle]ze.ContextHandle),
		commandLists:  make(map[ze.CommandListHandle]*commandList),
		eventPools:    make(map[ze.EventPoolHandle]*eventPool),
		events:        make(map[ze.EventHandle]ze.EventPoolHandle),
		allocations:   make(map[ze.Ptr]ze.ContextHandle),
		sysmanDrivers: make(map[zes.DriverHandle]struct{}),
		sysmanDevices: make(map[zes.DeviceHandle]struct{}),
	}
}

func (s *state) live() Live {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Live{
		Drivers:      len(s.drivers),
		Devices:      len(s.devices),
		Contexts:     len(s.contexts),
		Modules:      len(s.modules),
		CommandLists: len(s.commandLists),
		EventPools:   len(s.eventPools),
		Events:       len(s.events),
		Allocations:  len(s.allocations),
	}
}

// known reports whether h is a key of m. Callers hold s.mu.
func known[H comparable, V any](m map[H]V, h H) bool {
	_, ok := m[h]
	return ok
}

func valid(ok bool) ze.Result {
	if !ok {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

// addChild registers a dependent of hContext. Callers hold s.mu for writing.
func (s *state) addChild(hContext ze.ContextHandle) {
	if n, ok := s.contexts[hContext]; ok {
		s.contexts[hContext] = n + 1
	}
}

func (s *state) removeChild(hContext ze.ContextHandle) {
	if n, ok := s.contexts[hContext]; ok && n > 0 {
		s.contexts[hContext] = n - 1
	}
}
