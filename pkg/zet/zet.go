// Package zet holds the tools API family: debug and metric entry points.
package zet

import "levelzero/pkg/ze"

type MetricGroupHandle uintptr

type ModuleDebugInfoFormat uint32

const (
	ModuleDebugInfoFormatELFDWARF ModuleDebugInfoFormat = 0
)

type DebugPropertyFlags uint32

const (
	DebugPropertyFlagAttach DebugPropertyFlags = 1 << 0
)

type DeviceDebugProperties struct {
	Flags DebugPropertyFlags
}

// Table is the tools dispatch table.
type Table struct {
	DeviceGetDebugProperties func(hDevice ze.DeviceHandle, props *DeviceDebugProperties) ze.Result
	ModuleGetDebugInfo       func(hModule ze.ModuleHandle, format ModuleDebugInfoFormat, size *uint64, debugInfo []byte) ze.Result
	MetricGroupGet           func(hDevice ze.DeviceHandle, count *uint32, groups []MetricGroupHandle) ze.Result
}
