package validation

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zet"
)

// ToolsEntryPoints is the checker capability set for the tools (zet) family.
type ToolsEntryPoints interface {
	DeviceGetDebugPropertiesPrologue(hDevice ze.DeviceHandle, props *zet.DeviceDebugProperties) ze.Result
	DeviceGetDebugPropertiesEpilogue(hDevice ze.DeviceHandle, props *zet.DeviceDebugProperties, result ze.Result) ze.Result

	ModuleGetDebugInfoPrologue(hModule ze.ModuleHandle, format zet.ModuleDebugInfoFormat, size *uint64, debugInfo []byte) ze.Result
	ModuleGetDebugInfoEpilogue(hModule ze.ModuleHandle, format zet.ModuleDebugInfoFormat, size *uint64, debugInfo []byte, result ze.Result) ze.Result

	MetricGroupGetPrologue(hDevice ze.DeviceHandle, count *uint32, groups []zet.MetricGroupHandle) ze.Result
	MetricGroupGetEpilogue(hDevice ze.DeviceHandle, count *uint32, groups []zet.MetricGroupHandle, result ze.Result) ze.Result
}

// BaseTools implements every ToolsEntryPoints method as a no-op returning ze.Success.
// Embed it and override the entry points a checker validates.
type BaseTools struct{}

var _ ToolsEntryPoints = BaseTools{}

func (BaseTools) DeviceGetDebugPropertiesPrologue(ze.DeviceHandle, *zet.DeviceDebugProperties) ze.Result            { return ze.Success }
func (BaseTools) DeviceGetDebugPropertiesEpilogue(ze.DeviceHandle, *zet.DeviceDebugProperties, ze.Result) ze.Result { return ze.Success }

func (BaseTools) ModuleGetDebugInfoPrologue(ze.ModuleHandle, zet.ModuleDebugInfoFormat, *uint64, []byte) ze.Result            { return ze.Success }
func (BaseTools) ModuleGetDebugInfoEpilogue(ze.ModuleHandle, zet.ModuleDebugInfoFormat, *uint64, []byte, ze.Result) ze.Result { return ze.Success }

func (BaseTools) MetricGroupGetPrologue(ze.DeviceHandle, *uint32, []zet.MetricGroupHandle) ze.Result            { return ze.Success }
func (BaseTools) MetricGroupGetEpilogue(ze.DeviceHandle, *uint32, []zet.MetricGroupHandle, ze.Result) ze.Result { return ze.Success }
