package validation

import "levelzero/pkg/ze"

// RuntimeEntryPoints is the checker capability set for the runtime (zer)
// family. Entry points that return a value instead of a status hand that
// value to the epilogue.
type RuntimeEntryPoints interface {
	GetLastErrorDescriptionPrologue(description *string) ze.Result
	GetLastErrorDescriptionEpilogue(description *string, result ze.Result) ze.Result

	TranslateDeviceHandleToIdentifierPrologue(hDevice ze.DeviceHandle) ze.Result
	TranslateDeviceHandleToIdentifierEpilogue(hDevice ze.DeviceHandle, identifier uint32) ze.Result

	TranslateIdentifierToDeviceHandlePrologue(identifier uint32) ze.Result
	TranslateIdentifierToDeviceHandleEpilogue(identifier uint32, hDevice ze.DeviceHandle) ze.Result

	GetDefaultContextPrologue() ze.Result
	GetDefaultContextEpilogue(hContext ze.ContextHandle) ze.Result
}

// BaseRuntime implements every RuntimeEntryPoints method as a no-op returning ze.Success.
type BaseRuntime struct{}

var _ RuntimeEntryPoints = BaseRuntime{}

func (BaseRuntime) GetLastErrorDescriptionPrologue(*string) ze.Result            { return ze.Success }
func (BaseRuntime) GetLastErrorDescriptionEpilogue(*string, ze.Result) ze.Result { return ze.Success }

func (BaseRuntime) TranslateDeviceHandleToIdentifierPrologue(ze.DeviceHandle) ze.Result { return ze.Success }
func (BaseRuntime) TranslateDeviceHandleToIdentifierEpilogue(ze.DeviceHandle, uint32) ze.Result {
	return ze.Success
}

func (BaseRuntime) TranslateIdentifierToDeviceHandlePrologue(uint32) ze.Result { return ze.Success }
func (BaseRuntime) TranslateIdentifierToDeviceHandleEpilogue(uint32, ze.DeviceHandle) ze.Result {
	return ze.Success
}

func (BaseRuntime) GetDefaultContextPrologue() ze.Result                 { return ze.Success }
func (BaseRuntime) GetDefaultContextEpilogue(ze.ContextHandle) ze.Result { return ze.Success }
