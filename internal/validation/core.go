package validation

import "levelzero/pkg/ze"

// CoreEntryPoints is the checker capability set for the core (ze) family.
// Prologues run before the driver call and may veto it; epilogues run after
// it and receive the driver's result.
type CoreEntryPoints interface {
	InitPrologue(flags ze.InitFlags) ze.Result
	InitEpilogue(flags ze.InitFlags, result ze.Result) ze.Result

	DriverGetPrologue(count *uint32, drivers []ze.DriverHandle) ze.Result
	DriverGetEpilogue(count *uint32, drivers []ze.DriverHandle, result ze.Result) ze.Result

	DriverGetApiVersionPrologue(hDriver ze.DriverHandle, version *ze.APIVersion) ze.Result
	DriverGetApiVersionEpilogue(hDriver ze.DriverHandle, version *ze.APIVersion, result ze.Result) ze.Result

	DeviceGetPrologue(hDriver ze.DriverHandle, count *uint32, devices []ze.DeviceHandle) ze.Result
	DeviceGetEpilogue(hDriver ze.DriverHandle, count *uint32, devices []ze.DeviceHandle, result ze.Result) ze.Result

	DeviceGetPropertiesPrologue(hDevice ze.DeviceHandle, props *ze.DeviceProperties) ze.Result
	DeviceGetPropertiesEpilogue(hDevice ze.DeviceHandle, props *ze.DeviceProperties, result ze.Result) ze.Result

	ContextCreatePrologue(hDriver ze.DriverHandle, desc *ze.ContextDesc, phContext *ze.ContextHandle) ze.Result
	ContextCreateEpilogue(hDriver ze.DriverHandle, desc *ze.ContextDesc, phContext *ze.ContextHandle, result ze.Result) ze.Result

	ContextDestroyPrologue(hContext ze.ContextHandle) ze.Result
	ContextDestroyEpilogue(hContext ze.ContextHandle, result ze.Result) ze.Result

	ModuleCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.ModuleDesc, phModule *ze.ModuleHandle) ze.Result
	ModuleCreateEpilogue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.ModuleDesc, phModule *ze.ModuleHandle, result ze.Result) ze.Result

	ModuleDestroyPrologue(hModule ze.ModuleHandle) ze.Result
	ModuleDestroyEpilogue(hModule ze.ModuleHandle, result ze.Result) ze.Result

	CommandListCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandListDesc, phCommandList *ze.CommandListHandle) ze.Result
	CommandListCreateEpilogue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandListDesc, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result

	CommandListCreateImmediatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle) ze.Result
	CommandListCreateImmediateEpilogue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result

	CommandListClosePrologue(hCommandList ze.CommandListHandle) ze.Result
	CommandListCloseEpilogue(hCommandList ze.CommandListHandle, result ze.Result) ze.Result

	CommandListAppendMemoryCopyPrologue(hCommandList ze.CommandListHandle, dst, src ze.Ptr, size uint64, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) ze.Result
	CommandListAppendMemoryCopyEpilogue(hCommandList ze.CommandListHandle, dst, src ze.Ptr, size uint64, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle, result ze.Result) ze.Result

	CommandListDestroyPrologue(hCommandList ze.CommandListHandle) ze.Result
	CommandListDestroyEpilogue(hCommandList ze.CommandListHandle, result ze.Result) ze.Result

	EventPoolCreatePrologue(hContext ze.ContextHandle, desc *ze.EventPoolDesc, devices []ze.DeviceHandle, phEventPool *ze.EventPoolHandle) ze.Result
	EventPoolCreateEpilogue(hContext ze.ContextHandle, desc *ze.EventPoolDesc, devices []ze.DeviceHandle, phEventPool *ze.EventPoolHandle, result ze.Result) ze.Result

	EventPoolDestroyPrologue(hEventPool ze.EventPoolHandle) ze.Result
	EventPoolDestroyEpilogue(hEventPool ze.EventPoolHandle, result ze.Result) ze.Result

	EventCreatePrologue(hEventPool ze.EventPoolHandle, desc *ze.EventDesc, phEvent *ze.EventHandle) ze.Result
	EventCreateEpilogue(hEventPool ze.EventPoolHandle, desc *ze.EventDesc, phEvent *ze.EventHandle, result ze.Result) ze.Result

	EventDestroyPrologue(hEvent ze.EventHandle) ze.Result
	EventDestroyEpilogue(hEvent ze.EventHandle, result ze.Result) ze.Result

	EventHostSynchronizePrologue(hEvent ze.EventHandle, timeout uint64) ze.Result
	EventHostSynchronizeEpilogue(hEvent ze.EventHandle, timeout uint64, result ze.Result) ze.Result

	MemAllocHostPrologue(hContext ze.ContextHandle, desc *ze.HostMemAllocDesc, size, alignment uint64, pptr *ze.Ptr) ze.Result
	MemAllocHostEpilogue(hContext ze.ContextHandle, desc *ze.HostMemAllocDesc, size, alignment uint64, pptr *ze.Ptr, result ze.Result) ze.Result

	MemAllocDevicePrologue(hContext ze.ContextHandle, desc *ze.DeviceMemAllocDesc, size, alignment uint64, hDevice ze.DeviceHandle, pptr *ze.Ptr) ze.Result
	MemAllocDeviceEpilogue(hContext ze.ContextHandle, desc *ze.DeviceMemAllocDesc, size, alignment uint64, hDevice ze.DeviceHandle, pptr *ze.Ptr, result ze.Result) ze.Result

	MemFreePrologue(hContext ze.ContextHandle, ptr ze.Ptr) ze.Result
	MemFreeEpilogue(hContext ze.ContextHandle, ptr ze.Ptr, result ze.Result) ze.Result
}

// BaseCore implements every CoreEntryPoints method as a no-op returning ze.Success.
// Embed it and override the entry points a checker validates.
type BaseCore struct{}

var _ CoreEntryPoints = BaseCore{}

func (BaseCore) InitPrologue(ze.InitFlags) ze.Result            { return ze.Success }
func (BaseCore) InitEpilogue(ze.InitFlags, ze.Result) ze.Result { return ze.Success }

func (BaseCore) DriverGetPrologue(*uint32, []ze.DriverHandle) ze.Result            { return ze.Success }
func (BaseCore) DriverGetEpilogue(*uint32, []ze.DriverHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) DriverGetApiVersionPrologue(ze.DriverHandle, *ze.APIVersion) ze.Result            { return ze.Success }
func (BaseCore) DriverGetApiVersionEpilogue(ze.DriverHandle, *ze.APIVersion, ze.Result) ze.Result { return ze.Success }

func (BaseCore) DeviceGetPrologue(ze.DriverHandle, *uint32, []ze.DeviceHandle) ze.Result            { return ze.Success }
func (BaseCore) DeviceGetEpilogue(ze.DriverHandle, *uint32, []ze.DeviceHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) DeviceGetPropertiesPrologue(ze.DeviceHandle, *ze.DeviceProperties) ze.Result            { return ze.Success }
func (BaseCore) DeviceGetPropertiesEpilogue(ze.DeviceHandle, *ze.DeviceProperties, ze.Result) ze.Result { return ze.Success }

func (BaseCore) ContextCreatePrologue(ze.DriverHandle, *ze.ContextDesc, *ze.ContextHandle) ze.Result            { return ze.Success }
func (BaseCore) ContextCreateEpilogue(ze.DriverHandle, *ze.ContextDesc, *ze.ContextHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) ContextDestroyPrologue(ze.ContextHandle) ze.Result            { return ze.Success }
func (BaseCore) ContextDestroyEpilogue(ze.ContextHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) ModuleCreatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.ModuleDesc, *ze.ModuleHandle) ze.Result            { return ze.Success }
func (BaseCore) ModuleCreateEpilogue(ze.ContextHandle, ze.DeviceHandle, *ze.ModuleDesc, *ze.ModuleHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) ModuleDestroyPrologue(ze.ModuleHandle) ze.Result            { return ze.Success }
func (BaseCore) ModuleDestroyEpilogue(ze.ModuleHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) CommandListCreatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandListDesc, *ze.CommandListHandle) ze.Result            { return ze.Success }
func (BaseCore) CommandListCreateEpilogue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandListDesc, *ze.CommandListHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) CommandListCreateImmediatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandQueueDesc, *ze.CommandListHandle) ze.Result            { return ze.Success }
func (BaseCore) CommandListCreateImmediateEpilogue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandQueueDesc, *ze.CommandListHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) CommandListClosePrologue(ze.CommandListHandle) ze.Result            { return ze.Success }
func (BaseCore) CommandListCloseEpilogue(ze.CommandListHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) CommandListAppendMemoryCopyPrologue(ze.CommandListHandle, ze.Ptr, ze.Ptr, uint64, ze.EventHandle, []ze.EventHandle) ze.Result            { return ze.Success }
func (BaseCore) CommandListAppendMemoryCopyEpilogue(ze.CommandListHandle, ze.Ptr, ze.Ptr, uint64, ze.EventHandle, []ze.EventHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) CommandListDestroyPrologue(ze.CommandListHandle) ze.Result            { return ze.Success }
func (BaseCore) CommandListDestroyEpilogue(ze.CommandListHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) EventPoolCreatePrologue(ze.ContextHandle, *ze.EventPoolDesc, []ze.DeviceHandle, *ze.EventPoolHandle) ze.Result            { return ze.Success }
func (BaseCore) EventPoolCreateEpilogue(ze.ContextHandle, *ze.EventPoolDesc, []ze.DeviceHandle, *ze.EventPoolHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) EventPoolDestroyPrologue(ze.EventPoolHandle) ze.Result            { return ze.Success }
func (BaseCore) EventPoolDestroyEpilogue(ze.EventPoolHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) EventCreatePrologue(ze.EventPoolHandle, *ze.EventDesc, *ze.EventHandle) ze.Result            { return ze.Success }
func (BaseCore) EventCreateEpilogue(ze.EventPoolHandle, *ze.EventDesc, *ze.EventHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) EventDestroyPrologue(ze.EventHandle) ze.Result            { return ze.Success }
func (BaseCore) EventDestroyEpilogue(ze.EventHandle, ze.Result) ze.Result { return ze.Success }

func (BaseCore) EventHostSynchronizePrologue(ze.EventHandle, uint64) ze.Result            { return ze.Success }
func (BaseCore) EventHostSynchronizeEpilogue(ze.EventHandle, uint64, ze.Result) ze.Result { return ze.Success }

func (BaseCore) MemAllocHostPrologue(ze.ContextHandle, *ze.HostMemAllocDesc, uint64, uint64, *ze.Ptr) ze.Result            { return ze.Success }
func (BaseCore) MemAllocHostEpilogue(ze.ContextHandle, *ze.HostMemAllocDesc, uint64, uint64, *ze.Ptr, ze.Result) ze.Result { return ze.Success }

func (BaseCore) MemAllocDevicePrologue(ze.ContextHandle, *ze.DeviceMemAllocDesc, uint64, uint64, ze.DeviceHandle, *ze.Ptr) ze.Result            { return ze.Success }
func (BaseCore) MemAllocDeviceEpilogue(ze.ContextHandle, *ze.DeviceMemAllocDesc, uint64, uint64, ze.DeviceHandle, *ze.Ptr, ze.Result) ze.Result { return ze.Success }

func (BaseCore) MemFreePrologue(ze.ContextHandle, ze.Ptr) ze.Result            { return ze.Success }
func (BaseCore) MemFreeEpilogue(ze.ContextHandle, ze.Ptr, ze.Result) ze.Result { return ze.Success }
