package parameter

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

type tools struct {
	validation.BaseTools
}

func (tools) DeviceGetDebugPropertiesPrologue(hDevice ze.DeviceHandle, props *zet.DeviceDebugProperties) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if props == nil {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (tools) ModuleGetDebugInfoPrologue(hModule ze.ModuleHandle, format zet.ModuleDebugInfoFormat, size *uint64, debugInfo []byte) ze.Result {
	if hModule == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if size == nil {
		return ze.ErrorInvalidNullPointer
	}
	if format > zet.ModuleDebugInfoFormatELFDWARF {
		return ze.ErrorInvalidEnumeration
	}
	if debugInfo != nil && uint64(len(debugInfo)) < *size {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (tools) MetricGroupGetPrologue(hDevice ze.DeviceHandle, count *uint32, groups []zet.MetricGroupHandle) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if count == nil {
		return ze.ErrorInvalidNullPointer
	}
	if groups != nil && uint32(len(groups)) < *count {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

type sysman struct {
	validation.BaseSysman
}

func (sysman) InitPrologue(flags zes.InitFlags) ze.Result {
	if flags&^zes.InitFlagsMask != 0 {
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (sysman) DriverGetPrologue(count *uint32, drivers []zes.DriverHandle) ze.Result {
	if count == nil {
		return ze.ErrorInvalidNullPointer
	}
	if drivers != nil && uint32(len(drivers)) < *count {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (sysman) DeviceGetPrologue(hDriver zes.DriverHandle, count *uint32, devices []zes.DeviceHandle) ze.Result {
	if hDriver == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if count == nil {
		return ze.ErrorInvalidNullPointer
	}
	if devices != nil && uint32(len(devices)) < *count {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (sysman) DeviceGetPropertiesPrologue(hDevice zes.DeviceHandle, props *zes.DeviceProperties) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if props == nil {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (sysman) DeviceResetPrologue(hDevice zes.DeviceHandle, _ bool) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

type runtime struct {
	validation.BaseRuntime
}

func (runtime) GetLastErrorDescriptionPrologue(description *string) ze.Result {
	if description == nil {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (runtime) TranslateDeviceHandleToIdentifierPrologue(hDevice ze.DeviceHandle) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}
