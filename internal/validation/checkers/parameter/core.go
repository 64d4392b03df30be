package parameter

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

type core struct {
	validation.BaseCore
}

func (core) InitPrologue(flags ze.InitFlags) ze.Result {
	if flags&^ze.InitFlagsMask != 0 {
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (core) DriverGetPrologue(count *uint32, drivers []ze.DriverHandle) ze.Result {
	if count == nil {
		return ze.ErrorInvalidNullPointer
	}
	if drivers != nil && uint32(len(drivers)) < *count {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (core) DriverGetApiVersionPrologue(hDriver ze.DriverHandle, version *ze.APIVersion) ze.Result {
	if hDriver == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if version == nil {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (core) DeviceGetPrologue(hDriver ze.DriverHandle, count *uint32, devices []ze.DeviceHandle) ze.Result {
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

func (core) DeviceGetPropertiesPrologue(hDevice ze.DeviceHandle, props *ze.DeviceProperties) ze.Result {
	if hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if props == nil {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (core) ContextCreatePrologue(hDriver ze.DriverHandle, desc *ze.ContextDesc, phContext *ze.ContextHandle) ze.Result {
	if hDriver == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || phContext == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Flags > 0x1 {
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (core) ContextDestroyPrologue(hContext ze.ContextHandle) ze.Result {
	if hContext == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) ModuleCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.ModuleDesc, phModule *ze.ModuleHandle) ze.Result {
	if hContext == 0 || hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || desc.Input == nil || phModule == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Format > ze.ModuleFormatNative {
		return ze.ErrorInvalidEnumeration
	}
	if len(desc.Input) == 0 {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (core) ModuleDestroyPrologue(hModule ze.ModuleHandle) ze.Result {
	if hModule == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) CommandListCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandListDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if hContext == 0 || hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || phCommandList == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Flags&^ze.CommandListFlagsMask != 0 {
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (core) CommandListCreateImmediatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if hContext == 0 || hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || phCommandList == nil {
		return ze.ErrorInvalidNullPointer
	}
	switch {
	case desc.Flags&^ze.CommandQueueFlagsMask != 0,
		desc.Mode > ze.CommandQueueModeAsynchronous,
		desc.Priority > ze.CommandQueuePriorityPriorityHigh:
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (core) CommandListClosePrologue(hCommandList ze.CommandListHandle) ze.Result {
	if hCommandList == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) CommandListAppendMemoryCopyPrologue(hCommandList ze.CommandListHandle, dst, src ze.Ptr, _ uint64, _ ze.EventHandle, _ []ze.EventHandle) ze.Result {
	if hCommandList == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if dst == 0 || src == 0 {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func (core) CommandListDestroyPrologue(hCommandList ze.CommandListHandle) ze.Result {
	if hCommandList == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) EventPoolCreatePrologue(hContext ze.ContextHandle, desc *ze.EventPoolDesc, _ []ze.DeviceHandle, phEventPool *ze.EventPoolHandle) ze.Result {
	if hContext == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || phEventPool == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Flags&^ze.EventPoolFlagsMask != 0 {
		return ze.ErrorInvalidEnumeration
	}
	if desc.Count == 0 {
		return ze.ErrorInvalidSize
	}
	return ze.Success
}

func (core) EventPoolDestroyPrologue(hEventPool ze.EventPoolHandle) ze.Result {
	if hEventPool == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) EventCreatePrologue(hEventPool ze.EventPoolHandle, desc *ze.EventDesc, phEvent *ze.EventHandle) ze.Result {
	if hEventPool == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || phEvent == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Signal&^ze.EventScopeFlagsMask != 0 || desc.Wait&^ze.EventScopeFlagsMask != 0 {
		return ze.ErrorInvalidEnumeration
	}
	return ze.Success
}

func (core) EventDestroyPrologue(hEvent ze.EventHandle) ze.Result {
	if hEvent == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) EventHostSynchronizePrologue(hEvent ze.EventHandle, _ uint64) ze.Result {
	if hEvent == 0 {
		return ze.ErrorInvalidNullHandle
	}
	return ze.Success
}

func (core) MemAllocHostPrologue(hContext ze.ContextHandle, desc *ze.HostMemAllocDesc, size, alignment uint64, pptr *ze.Ptr) ze.Result {
	if hContext == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || pptr == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Flags > 0xf {
		return ze.ErrorInvalidEnumeration
	}
	return checkAllocation(size, alignment)
}

func (core) MemAllocDevicePrologue(hContext ze.ContextHandle, desc *ze.DeviceMemAllocDesc, size, alignment uint64, hDevice ze.DeviceHandle, pptr *ze.Ptr) ze.Result {
	if hContext == 0 || hDevice == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if desc == nil || pptr == nil {
		return ze.ErrorInvalidNullPointer
	}
	if desc.Flags > 0x7 {
		return ze.ErrorInvalidEnumeration
	}
	return checkAllocation(size, alignment)
}

func (core) MemFreePrologue(hContext ze.ContextHandle, ptr ze.Ptr) ze.Result {
	if hContext == 0 {
		return ze.ErrorInvalidNullHandle
	}
	if ptr == 0 {
		return ze.ErrorInvalidNullPointer
	}
	return ze.Success
}

func checkAllocation(size, alignment uint64) ze.Result {
	if size == 0 {
		return ze.ErrorUnsupportedSize
	}
	if !isPowerOfTwo(alignment) {
		return ze.ErrorUnsupportedAlignment
	}
	return ze.Success
}
