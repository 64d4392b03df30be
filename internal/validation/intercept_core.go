package validation

import "levelzero/pkg/ze"

// interceptCore saves the downstream entries of t and replaces each of them with
// the matching intercept.
func (l *Layer) interceptCore(t *ze.Table) {
	l.core = *t

	t.Init = l.zeInit
	t.DriverGet = l.zeDriverGet
	t.DriverGetApiVersion = l.zeDriverGetApiVersion
	t.DeviceGet = l.zeDeviceGet
	t.DeviceGetProperties = l.zeDeviceGetProperties
	t.ContextCreate = l.zeContextCreate
	t.ContextDestroy = l.zeContextDestroy
	t.ModuleCreate = l.zeModuleCreate
	t.ModuleDestroy = l.zeModuleDestroy
	t.CommandListCreate = l.zeCommandListCreate
	t.CommandListCreateImmediate = l.zeCommandListCreateImmediate
	t.CommandListClose = l.zeCommandListClose
	t.CommandListAppendMemoryCopy = l.zeCommandListAppendMemoryCopy
	t.CommandListDestroy = l.zeCommandListDestroy
	t.EventPoolCreate = l.zeEventPoolCreate
	t.EventPoolDestroy = l.zeEventPoolDestroy
	t.EventCreate = l.zeEventCreate
	t.EventDestroy = l.zeEventDestroy
	t.EventHostSynchronize = l.zeEventHostSynchronize
	t.MemAllocHost = l.zeMemAllocHost
	t.MemAllocDevice = l.zeMemAllocDevice
	t.MemFree = l.zeMemFree
}

func (l *Layer) zeInit(flags ze.InitFlags) ze.Result {
	next := l.core.Init
	if next == nil {
		return l.unsupported("zeInit")
	}
	return dispatch(l, "zeInit", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.InitPrologue(flags) },
		func() ze.Result { return next(flags) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.InitEpilogue(flags, r) },
	)
}

func (l *Layer) zeDriverGet(count *uint32, drivers []ze.DriverHandle) ze.Result {
	next := l.core.DriverGet
	if next == nil {
		return l.unsupported("zeDriverGet")
	}
	return dispatch(l, "zeDriverGet", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.DriverGetPrologue(count, drivers) },
		func() ze.Result { return next(count, drivers) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.DriverGetEpilogue(count, drivers, r) },
	)
}

func (l *Layer) zeDriverGetApiVersion(hDriver ze.DriverHandle, version *ze.APIVersion) ze.Result {
	next := l.core.DriverGetApiVersion
	if next == nil {
		return l.unsupported("zeDriverGetApiVersion")
	}
	return dispatch(l, "zeDriverGetApiVersion", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.DriverGetApiVersionPrologue(hDriver, version) },
		func() ze.Result { return next(hDriver, version) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.DriverGetApiVersionEpilogue(hDriver, version, r) },
	)
}

func (l *Layer) zeDeviceGet(hDriver ze.DriverHandle, count *uint32, devices []ze.DeviceHandle) ze.Result {
	next := l.core.DeviceGet
	if next == nil {
		return l.unsupported("zeDeviceGet")
	}
	return dispatch(l, "zeDeviceGet", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.DeviceGetPrologue(hDriver, count, devices) },
		func() ze.Result { return next(hDriver, count, devices) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.DeviceGetEpilogue(hDriver, count, devices, r) },
	)
}

func (l *Layer) zeDeviceGetProperties(hDevice ze.DeviceHandle, props *ze.DeviceProperties) ze.Result {
	next := l.core.DeviceGetProperties
	if next == nil {
		return l.unsupported("zeDeviceGetProperties")
	}
	return dispatch(l, "zeDeviceGetProperties", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.DeviceGetPropertiesPrologue(hDevice, props) },
		func() ze.Result { return next(hDevice, props) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.DeviceGetPropertiesEpilogue(hDevice, props, r) },
	)
}

func (l *Layer) zeContextCreate(hDriver ze.DriverHandle, desc *ze.ContextDesc, phContext *ze.ContextHandle) ze.Result {
	next := l.core.ContextCreate
	if next == nil {
		return l.unsupported("zeContextCreate")
	}
	return dispatch(l, "zeContextCreate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.ContextCreatePrologue(hDriver, desc, phContext) },
		func() ze.Result { return next(hDriver, desc, phContext) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.ContextCreateEpilogue(hDriver, desc, phContext, r) },
	)
}

func (l *Layer) zeContextDestroy(hContext ze.ContextHandle) ze.Result {
	next := l.core.ContextDestroy
	if next == nil {
		return l.unsupported("zeContextDestroy")
	}
	return dispatch(l, "zeContextDestroy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.ContextDestroyPrologue(hContext) },
		func() ze.Result { return next(hContext) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.ContextDestroyEpilogue(hContext, r) },
	)
}

func (l *Layer) zeModuleCreate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.ModuleDesc, phModule *ze.ModuleHandle) ze.Result {
	next := l.core.ModuleCreate
	if next == nil {
		return l.unsupported("zeModuleCreate")
	}
	return dispatch(l, "zeModuleCreate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.ModuleCreatePrologue(hContext, hDevice, desc, phModule) },
		func() ze.Result { return next(hContext, hDevice, desc, phModule) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.ModuleCreateEpilogue(hContext, hDevice, desc, phModule, r) },
	)
}

func (l *Layer) zeModuleDestroy(hModule ze.ModuleHandle) ze.Result {
	next := l.core.ModuleDestroy
	if next == nil {
		return l.unsupported("zeModuleDestroy")
	}
	return dispatch(l, "zeModuleDestroy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.ModuleDestroyPrologue(hModule) },
		func() ze.Result { return next(hModule) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.ModuleDestroyEpilogue(hModule, r) },
	)
}

func (l *Layer) zeCommandListCreate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandListDesc, phCommandList *ze.CommandListHandle) ze.Result {
	next := l.core.CommandListCreate
	if next == nil {
		return l.unsupported("zeCommandListCreate")
	}
	return dispatch(l, "zeCommandListCreate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.CommandListCreatePrologue(hContext, hDevice, desc, phCommandList) },
		func() ze.Result { return next(hContext, hDevice, desc, phCommandList) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.CommandListCreateEpilogue(hContext, hDevice, desc, phCommandList, r) },
	)
}

func (l *Layer) zeCommandListCreateImmediate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle) ze.Result {
	next := l.core.CommandListCreateImmediate
	if next == nil {
		return l.unsupported("zeCommandListCreateImmediate")
	}
	return dispatch(l, "zeCommandListCreateImmediate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.CommandListCreateImmediatePrologue(hContext, hDevice, desc, phCommandList) },
		func() ze.Result { return next(hContext, hDevice, desc, phCommandList) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.CommandListCreateImmediateEpilogue(hContext, hDevice, desc, phCommandList, r) },
	)
}

func (l *Layer) zeCommandListClose(hCommandList ze.CommandListHandle) ze.Result {
	next := l.core.CommandListClose
	if next == nil {
		return l.unsupported("zeCommandListClose")
	}
	return dispatch(l, "zeCommandListClose", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.CommandListClosePrologue(hCommandList) },
		func() ze.Result { return next(hCommandList) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.CommandListCloseEpilogue(hCommandList, r) },
	)
}

func (l *Layer) zeCommandListAppendMemoryCopy(hCommandList ze.CommandListHandle, dst, src ze.Ptr, size uint64, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) ze.Result {
	next := l.core.CommandListAppendMemoryCopy
	if next == nil {
		return l.unsupported("zeCommandListAppendMemoryCopy")
	}
	return dispatch(l, "zeCommandListAppendMemoryCopy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.CommandListAppendMemoryCopyPrologue(hCommandList, dst, src, size, hSignalEvent, waitEvents) },
		func() ze.Result { return next(hCommandList, dst, src, size, hSignalEvent, waitEvents) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.CommandListAppendMemoryCopyEpilogue(hCommandList, dst, src, size, hSignalEvent, waitEvents, r) },
	)
}

func (l *Layer) zeCommandListDestroy(hCommandList ze.CommandListHandle) ze.Result {
	next := l.core.CommandListDestroy
	if next == nil {
		return l.unsupported("zeCommandListDestroy")
	}
	return dispatch(l, "zeCommandListDestroy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.CommandListDestroyPrologue(hCommandList) },
		func() ze.Result { return next(hCommandList) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.CommandListDestroyEpilogue(hCommandList, r) },
	)
}

func (l *Layer) zeEventPoolCreate(hContext ze.ContextHandle, desc *ze.EventPoolDesc, devices []ze.DeviceHandle, phEventPool *ze.EventPoolHandle) ze.Result {
	next := l.core.EventPoolCreate
	if next == nil {
		return l.unsupported("zeEventPoolCreate")
	}
	return dispatch(l, "zeEventPoolCreate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.EventPoolCreatePrologue(hContext, desc, devices, phEventPool) },
		func() ze.Result { return next(hContext, desc, devices, phEventPool) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.EventPoolCreateEpilogue(hContext, desc, devices, phEventPool, r) },
	)
}

func (l *Layer) zeEventPoolDestroy(hEventPool ze.EventPoolHandle) ze.Result {
	next := l.core.EventPoolDestroy
	if next == nil {
		return l.unsupported("zeEventPoolDestroy")
	}
	return dispatch(l, "zeEventPoolDestroy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.EventPoolDestroyPrologue(hEventPool) },
		func() ze.Result { return next(hEventPool) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.EventPoolDestroyEpilogue(hEventPool, r) },
	)
}

func (l *Layer) zeEventCreate(hEventPool ze.EventPoolHandle, desc *ze.EventDesc, phEvent *ze.EventHandle) ze.Result {
	next := l.core.EventCreate
	if next == nil {
		return l.unsupported("zeEventCreate")
	}
	return dispatch(l, "zeEventCreate", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.EventCreatePrologue(hEventPool, desc, phEvent) },
		func() ze.Result { return next(hEventPool, desc, phEvent) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.EventCreateEpilogue(hEventPool, desc, phEvent, r) },
	)
}

func (l *Layer) zeEventDestroy(hEvent ze.EventHandle) ze.Result {
	next := l.core.EventDestroy
	if next == nil {
		return l.unsupported("zeEventDestroy")
	}
	return dispatch(l, "zeEventDestroy", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.EventDestroyPrologue(hEvent) },
		func() ze.Result { return next(hEvent) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.EventDestroyEpilogue(hEvent, r) },
	)
}

func (l *Layer) zeEventHostSynchronize(hEvent ze.EventHandle, timeout uint64) ze.Result {
	next := l.core.EventHostSynchronize
	if next == nil {
		return l.unsupported("zeEventHostSynchronize")
	}
	return dispatch(l, "zeEventHostSynchronize", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.EventHostSynchronizePrologue(hEvent, timeout) },
		func() ze.Result { return next(hEvent, timeout) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.EventHostSynchronizeEpilogue(hEvent, timeout, r) },
	)
}

func (l *Layer) zeMemAllocHost(hContext ze.ContextHandle, desc *ze.HostMemAllocDesc, size, alignment uint64, pptr *ze.Ptr) ze.Result {
	next := l.core.MemAllocHost
	if next == nil {
		return l.unsupported("zeMemAllocHost")
	}
	return dispatch(l, "zeMemAllocHost", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.MemAllocHostPrologue(hContext, desc, size, alignment, pptr) },
		func() ze.Result { return next(hContext, desc, size, alignment, pptr) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.MemAllocHostEpilogue(hContext, desc, size, alignment, pptr, r) },
	)
}

func (l *Layer) zeMemAllocDevice(hContext ze.ContextHandle, desc *ze.DeviceMemAllocDesc, size, alignment uint64, hDevice ze.DeviceHandle, pptr *ze.Ptr) ze.Result {
	next := l.core.MemAllocDevice
	if next == nil {
		return l.unsupported("zeMemAllocDevice")
	}
	return dispatch(l, "zeMemAllocDevice", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.MemAllocDevicePrologue(hContext, desc, size, alignment, hDevice, pptr) },
		func() ze.Result { return next(hContext, desc, size, alignment, hDevice, pptr) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.MemAllocDeviceEpilogue(hContext, desc, size, alignment, hDevice, pptr, r) },
	)
}

func (l *Layer) zeMemFree(hContext ze.ContextHandle, ptr ze.Ptr) ze.Result {
	next := l.core.MemFree
	if next == nil {
		return l.unsupported("zeMemFree")
	}
	return dispatch(l, "zeMemFree", coreOf,
		func(c CoreEntryPoints) ze.Result { return c.MemFreePrologue(hContext, ptr) },
		func() ze.Result { return next(hContext, ptr) },
		func(c CoreEntryPoints, r ze.Result) ze.Result { return c.MemFreeEpilogue(hContext, ptr, r) },
	)
}
