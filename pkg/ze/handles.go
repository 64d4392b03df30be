package ze

import "fmt"

// Handles are opaque driver-issued identifiers. The zero value is the null
// handle for every kind.
type (
	DriverHandle      uintptr
	DeviceHandle      uintptr
	ContextHandle     uintptr
	ModuleHandle      uintptr
	CommandListHandle uintptr
	EventPoolHandle   uintptr
	EventHandle       uintptr
)

// Ptr is an address in host, device or shared memory.
type Ptr uintptr

func (h DriverHandle) String() string      { return fmt.Sprintf("driver(%#x)", uintptr(h)) }
func (h DeviceHandle) String() string      { return fmt.Sprintf("device(%#x)", uintptr(h)) }
func (h ContextHandle) String() string     { return fmt.Sprintf("context(%#x)", uintptr(h)) }
func (h ModuleHandle) String() string      { return fmt.Sprintf("module(%#x)", uintptr(h)) }
func (h CommandListHandle) String() string { return fmt.Sprintf("cmdlist(%#x)", uintptr(h)) }
func (h EventPoolHandle) String() string   { return fmt.Sprintf("eventpool(%#x)", uintptr(h)) }
func (h EventHandle) String() string       { return fmt.Sprintf("event(%#x)", uintptr(h)) }
func (p Ptr) String() string               { return fmt.Sprintf("%#x", uintptr(p)) }
