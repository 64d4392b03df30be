package certification

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

type tools struct {
	validation.BaseTools
	state *state
}

func (t *tools) DeviceGetDebugPropertiesPrologue(ze.DeviceHandle, *zet.DeviceDebugProperties) ze.Result {
	return t.state.require("zetDeviceGetDebugProperties", ze.APIVersion1_0)
}

func (t *tools) ModuleGetDebugInfoPrologue(ze.ModuleHandle, zet.ModuleDebugInfoFormat, *uint64, []byte) ze.Result {
	return t.state.require("zetModuleGetDebugInfo", ze.APIVersion1_0)
}

func (t *tools) MetricGroupGetPrologue(ze.DeviceHandle, *uint32, []zet.MetricGroupHandle) ze.Result {
	return t.state.require("zetMetricGroupGet", ze.APIVersion1_0)
}

// Sysman gained its own init and enumeration entry points in 1.5.
type sysman struct {
	validation.BaseSysman
	state *state
}

func (s *sysman) InitPrologue(zes.InitFlags) ze.Result {
	return s.state.require("zesInit", ze.APIVersion1_5)
}

func (s *sysman) DriverGetPrologue(*uint32, []zes.DriverHandle) ze.Result {
	return s.state.require("zesDriverGet", ze.APIVersion1_5)
}

func (s *sysman) DeviceGetPrologue(zes.DriverHandle, *uint32, []zes.DeviceHandle) ze.Result {
	return s.state.require("zesDeviceGet", ze.APIVersion1_5)
}

func (s *sysman) DeviceGetPropertiesPrologue(zes.DeviceHandle, *zes.DeviceProperties) ze.Result {
	return s.state.require("zesDeviceGetProperties", ze.APIVersion1_0)
}

func (s *sysman) DeviceResetPrologue(zes.DeviceHandle, bool) ze.Result {
	return s.state.require("zesDeviceReset", ze.APIVersion1_0)
}

type runtime struct {
	validation.BaseRuntime
	state *state
}

func (r *runtime) GetLastErrorDescriptionPrologue(*string) ze.Result {
	return r.state.require("zerGetLastErrorDescription", ze.APIVersion1_14)
}

func (r *runtime) TranslateDeviceHandleToIdentifierPrologue(ze.DeviceHandle) ze.Result {
	return r.state.require("zerTranslateDeviceHandleToIdentifier", ze.APIVersion1_14)
}

func (r *runtime) TranslateIdentifierToDeviceHandlePrologue(uint32) ze.Result {
	return r.state.require("zerTranslateIdentifierToDeviceHandle", ze.APIVersion1_14)
}

func (r *runtime) GetDefaultContextPrologue() ze.Result {
	return r.state.require("zerGetDefaultContext", ze.APIVersion1_14)
}
