// Package zes holds the system resource management (sysman) API family.
package zes

import "levelzero/pkg/ze"

type (
	DriverHandle uintptr
	DeviceHandle uintptr
)

type InitFlags uint32

const (
	InitFlagPlaceholder InitFlags = 1 << 0

	InitFlagsMask = InitFlagPlaceholder
)

type DeviceProperties struct {
	NumSubdevices uint32
	SerialNumber  string
	BoardNumber   string
	BrandName     string
	ModelName     string
	VendorName    string
	DriverVersion string
}

// Table is the sysman dispatch table.
type Table struct {
	Init                func(flags InitFlags) ze.Result
	DriverGet           func(count *uint32, drivers []DriverHandle) ze.Result
	DeviceGet           func(hDriver DriverHandle, count *uint32, devices []DeviceHandle) ze.Result
	DeviceGetProperties func(hDevice DeviceHandle, props *DeviceProperties) ze.Result
	DeviceReset         func(hDevice DeviceHandle, force bool) ze.Result
}
