// Package null is a driver that implements every entry point without a
// device behind it. Handles are unique counters, memory is never touched,
// and every call is counted so tests can observe what reached the driver.
package null

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

const (
	vendorID        = 0x8086
	deviceIDBase    = 0x0bd0
	maxMemAllocSize = 4 << 30
)

type device struct {
	handle ze.DeviceHandle
	props  ze.DeviceProperties
}

type Driver struct {
	logger  *slog.Logger
	version ze.APIVersion
	ndev    int

	handles atomic.Uint64

	driver         ze.DriverHandle
	devices        []device
	defaultContext ze.ContextHandle

	mu        sync.Mutex
	calls     map[string]int
	results   map[string]ze.Result
	signaled  map[ze.EventHandle]bool
	lastError string
}

type Option func(*Driver)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithDevices sets how many devices DeviceGet reports.
func WithDevices(n int) Option {
	return func(d *Driver) {
		d.ndev = n
	}
}

// WithAPIVersion sets the version DriverGetApiVersion reports.
func WithAPIVersion(v ze.APIVersion) Option {
	return func(d *Driver) {
		d.version = v
	}
}

// WithResult makes the named entry point return r without doing any work.
// Names are the C entry point names, such as "zeContextCreate".
func WithResult(name string, r ze.Result) Option {
	return func(d *Driver) {
		d.results[name] = r
	}
}

func New(opts ...Option) *Driver {
	d := &Driver{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		version:  ze.APIVersionCurrent,
		ndev:     1,
		calls:    make(map[string]int),
		results:  make(map[string]ze.Result),
		signaled: make(map[ze.EventHandle]bool),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.driver = ze.DriverHandle(d.nextHandle())
	for i := range d.ndev {
		h := ze.DeviceHandle(d.nextHandle())
		d.devices = append(d.devices, device{
			handle: h,
			props: ze.DeviceProperties{
				Type:            ze.DeviceTypeGPU,
				VendorID:        vendorID,
				DeviceID:        uint32(deviceIDBase + i),
				UUID:            uuid.New(),
				Name:            fmt.Sprintf("Null Device %d", i),
				MaxMemAllocSize: maxMemAllocSize,
			},
		})
	}
	d.defaultContext = ze.ContextHandle(d.nextHandle())
	return d
}

// Tables returns a fresh set of dispatch tables bound to d.
func (d *Driver) Tables() zel.Tables {
	return zel.Tables{
		Core:    d.coreTable(),
		Tools:   d.toolsTable(),
		Sysman:  d.sysmanTable(),
		Runtime: d.runtimeTable(),
	}
}

// Calls returns how many times the named entry point was invoked.
func (d *Driver) Calls(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[name]
}

// Devices returns the device handles in enumeration order.
func (d *Driver) Devices() []ze.DeviceHandle {
	out := make([]ze.DeviceHandle, len(d.devices))
	for i, dev := range d.devices {
		out[i] = dev.handle
	}
	return out
}

func (d *Driver) nextHandle() uint64 {
	// Handles are spaced out so they never look like small integers.
	return 0x1000 + d.handles.Add(1)*0x10
}

// enter counts a call and returns the injected result for name, if any.
func (d *Driver) enter(name string) (ze.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls[name]++
	r, ok := d.results[name]
	if ok && r != ze.Success {
		d.lastError = fmt.Sprintf("%s: injected %s", name, r)
	}
	return r, ok
}

func (d *Driver) fail(name string, r ze.Result) ze.Result {
	d.mu.Lock()
	d.lastError = fmt.Sprintf("%s: %s", name, r)
	d.mu.Unlock()
	d.logger.Debug("null driver call failed", "entry_point", name, "result", r.String())
	return r
}

func (d *Driver) device(h ze.DeviceHandle) (device, bool) {
	for _, dev := range d.devices {
		if dev.handle == h {
			return dev, true
		}
	}
	return device{}, false
}
