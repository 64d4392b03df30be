package validation

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
)

// SysmanEntryPoints is the checker capability set for the sysman (zes) family.
type SysmanEntryPoints interface {
	InitPrologue(flags zes.InitFlags) ze.Result
	InitEpilogue(flags zes.InitFlags, result ze.Result) ze.Result

	DriverGetPrologue(count *uint32, drivers []zes.DriverHandle) ze.Result
	DriverGetEpilogue(count *uint32, drivers []zes.DriverHandle, result ze.Result) ze.Result

	DeviceGetPrologue(hDriver zes.DriverHandle, count *uint32, devices []zes.DeviceHandle) ze.Result
	DeviceGetEpilogue(hDriver zes.DriverHandle, count *uint32, devices []zes.DeviceHandle, result ze.Result) ze.Result

	DeviceGetPropertiesPrologue(hDevice zes.DeviceHandle, props *zes.DeviceProperties) ze.Result
	DeviceGetPropertiesEpilogue(hDevice zes.DeviceHandle, props *zes.DeviceProperties, result ze.Result) ze.Result

	DeviceResetPrologue(hDevice zes.DeviceHandle, force bool) ze.Result
	DeviceResetEpilogue(hDevice zes.DeviceHandle, force bool, result ze.Result) ze.Result
}

// BaseSysman implements every SysmanEntryPoints method as a no-op returning ze.Success.
// Embed it and override the entry points a checker validates.
type BaseSysman struct{}

var _ SysmanEntryPoints = BaseSysman{}

func (BaseSysman) InitPrologue(zes.InitFlags) ze.Result            { return ze.Success }
func (BaseSysman) InitEpilogue(zes.InitFlags, ze.Result) ze.Result { return ze.Success }

func (BaseSysman) DriverGetPrologue(*uint32, []zes.DriverHandle) ze.Result            { return ze.Success }
func (BaseSysman) DriverGetEpilogue(*uint32, []zes.DriverHandle, ze.Result) ze.Result { return ze.Success }

func (BaseSysman) DeviceGetPrologue(zes.DriverHandle, *uint32, []zes.DeviceHandle) ze.Result            { return ze.Success }
func (BaseSysman) DeviceGetEpilogue(zes.DriverHandle, *uint32, []zes.DeviceHandle, ze.Result) ze.Result { return ze.Success }

func (BaseSysman) DeviceGetPropertiesPrologue(zes.DeviceHandle, *zes.DeviceProperties) ze.Result            { return ze.Success }
func (BaseSysman) DeviceGetPropertiesEpilogue(zes.DeviceHandle, *zes.DeviceProperties, ze.Result) ze.Result { return ze.Success }

func (BaseSysman) DeviceResetPrologue(zes.DeviceHandle, bool) ze.Result            { return ze.Success }
func (BaseSysman) DeviceResetEpilogue(zes.DeviceHandle, bool, ze.Result) ze.Result { return ze.Success }
