package validation_test

import (
	"sync"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
	"levelzero/pkg/zer"
	"levelzero/pkg/zet"
)

// trace records the order of checker and driver calls.
type trace struct {
	mu     sync.Mutex
	events []string
}

func (t *trace) add(e string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

func (t *trace) list() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.events...)
}

// recorder is a core-only checker that records Init calls and returns
// configurable statuses.
type recorder struct {
	validation.BaseCore
	name         string
	trace        *trace
	initPrologue ze.Result
	initEpilogue ze.Result
	seen         []ze.Result
}

func newRecorder(name string, tr *trace) *recorder {
	return &recorder{name: name, trace: tr}
}

func (c *recorder) Name() string                           { return c.name }
func (c *recorder) Core() validation.CoreEntryPoints       { return c }
func (c *recorder) Tools() validation.ToolsEntryPoints     { return nil }
func (c *recorder) Sysman() validation.SysmanEntryPoints   { return nil }
func (c *recorder) Runtime() validation.RuntimeEntryPoints { return nil }

func (c *recorder) InitPrologue(flags ze.InitFlags) ze.Result {
	return c.record("prologue", c.initPrologue)
}

func (c *recorder) InitEpilogue(flags ze.InitFlags, result ze.Result) ze.Result {
	c.seen = append(c.seen, result)
	return c.record("epilogue", c.initEpilogue)
}

func (c *recorder) record(phase string, r ze.Result) ze.Result {
	c.trace.add(c.name + ":" + phase)
	return r
}

type debugTools struct {
	validation.BaseTools
}

type coreChecks struct {
	validation.BaseCore
}

// nilFamilies wraps nil pointers in its family interfaces instead of
// returning untyped nil.
type nilFamilies struct {
	*recorder
}

func (nilFamilies) Core() validation.CoreEntryPoints   { return (*coreChecks)(nil) }
func (nilFamilies) Tools() validation.ToolsEntryPoints { return (*debugTools)(nil) }

// fakeDriver provides a handful of core and runtime entries with call
// counters.
type fakeDriver struct {
	trace   *trace
	result  ze.Result
	calls   map[string]int
	devices []ze.DeviceHandle
}

func newFakeDriver(tr *trace) *fakeDriver {
	return &fakeDriver{
		trace:   tr,
		calls:   map[string]int{},
		devices: []ze.DeviceHandle{0x10, 0x20},
	}
}

func (d *fakeDriver) tables() *zel.Tables {
	return &zel.Tables{
		Core: ze.Table{
			Init: func(ze.InitFlags) ze.Result {
				d.calls["Init"]++
				if d.trace != nil {
					d.trace.add("driver")
				}
				return d.result
			},
			DeviceGet: func(_ ze.DriverHandle, count *uint32, devices []ze.DeviceHandle) ze.Result {
				d.calls["DeviceGet"]++
				if *count == 0 || *count > uint32(len(d.devices)) {
					*count = uint32(len(d.devices))
				}
				copy(devices, d.devices[:min(int(*count), len(devices))])
				return d.result
			},
		},
		Tools: zet.Table{
			ModuleGetDebugInfo: func(_ ze.ModuleHandle, _ zet.ModuleDebugInfoFormat, size *uint64, _ []byte) ze.Result {
				d.calls["ModuleGetDebugInfo"]++
				*size = 0
				return d.result
			},
		},
		Runtime: zer.Table{
			TranslateDeviceHandleToIdentifier: func(h ze.DeviceHandle) uint32 {
				d.calls["TranslateDeviceHandleToIdentifier"]++
				for i, dev := range d.devices {
					if dev == h {
						return uint32(i)
					}
				}
				return zer.InvalidIdentifier
			},
			GetDefaultContext: func() ze.ContextHandle {
				d.calls["GetDefaultContext"]++
				return 0xc0
			},
		},
	}
}
