package handlelifetime

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

type core struct {
	validation.BaseCore
	state *state
}

func (c *core) DriverGetEpilogue(count *uint32, drivers []ze.DriverHandle, result ze.Result) ze.Result {
	if result != ze.Success || count == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	for _, h := range drivers[:min(int(*count), len(drivers))] {
		c.state.drivers[h] = struct{}{}
	}
	return ze.Success
}

func (c *core) DriverGetApiVersionPrologue(hDriver ze.DriverHandle, _ *ze.APIVersion) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.drivers, hDriver))
}

func (c *core) DeviceGetPrologue(hDriver ze.DriverHandle, _ *uint32, _ []ze.DeviceHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.drivers, hDriver))
}

func (c *core) DeviceGetEpilogue(_ ze.DriverHandle, count *uint32, devices []ze.DeviceHandle, result ze.Result) ze.Result {
	if result != ze.Success || count == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	for _, h := range devices[:min(int(*count), len(devices))] {
		c.state.devices[h] = struct{}{}
	}
	return ze.Success
}

func (c *core) DeviceGetPropertiesPrologue(hDevice ze.DeviceHandle, _ *ze.DeviceProperties) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.devices, hDevice))
}

func (c *core) ContextCreatePrologue(hDriver ze.DriverHandle, _ *ze.ContextDesc, _ *ze.ContextHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.drivers, hDriver))
}

func (c *core) ContextCreateEpilogue(_ ze.DriverHandle, _ *ze.ContextDesc, phContext *ze.ContextHandle, result ze.Result) ze.Result {
	if result != ze.Success || phContext == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.contexts[*phContext] = 0
	return ze.Success
}

func (c *core) ContextDestroyPrologue(hContext ze.ContextHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	dependents, ok := c.state.contexts[hContext]
	if !ok {
		return ze.ErrorInvalidNullHandle
	}
	if dependents > 0 {
		return ze.ErrorHandleObjectInUse
	}
	return ze.Success
}

func (c *core) ContextDestroyEpilogue(hContext ze.ContextHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	delete(c.state.contexts, hContext)
	return ze.Success
}

func (c *core) ModuleCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, _ *ze.ModuleDesc, _ *ze.ModuleHandle) ze.Result {
	return c.contextAndDevice(hContext, hDevice)
}

func (c *core) ModuleCreateEpilogue(hContext ze.ContextHandle, _ ze.DeviceHandle, _ *ze.ModuleDesc, phModule *ze.ModuleHandle, result ze.Result) ze.Result {
	if result != ze.Success || phModule == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.modules[*phModule] = hContext
	c.state.addChild(hContext)
	return ze.Success
}

func (c *core) ModuleDestroyPrologue(hModule ze.ModuleHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.modules, hModule))
}

func (c *core) ModuleDestroyEpilogue(hModule ze.ModuleHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if hContext, ok := c.state.modules[hModule]; ok {
		delete(c.state.modules, hModule)
		c.state.removeChild(hContext)
	}
	return ze.Success
}

func (c *core) CommandListCreatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, _ *ze.CommandListDesc, _ *ze.CommandListHandle) ze.Result {
	return c.contextAndDevice(hContext, hDevice)
}

func (c *core) CommandListCreateEpilogue(hContext ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandListDesc, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result {
	return c.addCommandList(hContext, phCommandList, result)
}

func (c *core) CommandListCreateImmediatePrologue(hContext ze.ContextHandle, hDevice ze.DeviceHandle, _ *ze.CommandQueueDesc, _ *ze.CommandListHandle) ze.Result {
	return c.contextAndDevice(hContext, hDevice)
}

func (c *core) CommandListCreateImmediateEpilogue(hContext ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result {
	return c.addCommandList(hContext, phCommandList, result)
}

func (c *core) CommandListClosePrologue(hCommandList ze.CommandListHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.commandLists, hCommandList))
}

func (c *core) CommandListCloseEpilogue(hCommandList ze.CommandListHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if cl, ok := c.state.commandLists[hCommandList]; ok {
		cl.open = false
	}
	return ze.Success
}

func (c *core) CommandListAppendMemoryCopyPrologue(hCommandList ze.CommandListHandle, _, _ ze.Ptr, _ uint64, hSignalEvent ze.EventHandle, waitEvents []ze.EventHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	cl, ok := c.state.commandLists[hCommandList]
	if !ok {
		return ze.ErrorInvalidNullHandle
	}
	if !cl.open {
		return ze.ErrorInvalidArgument
	}
	if hSignalEvent != 0 && !known(c.state.events, hSignalEvent) {
		return ze.ErrorInvalidNullHandle
	}
	for _, h := range waitEvents {
		if !known(c.state.events, h) {
			return ze.ErrorInvalidNullHandle
		}
	}
	return ze.Success
}

func (c *core) CommandListDestroyPrologue(hCommandList ze.CommandListHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.commandLists, hCommandList))
}

func (c *core) CommandListDestroyEpilogue(hCommandList ze.CommandListHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if cl, ok := c.state.commandLists[hCommandList]; ok {
		delete(c.state.commandLists, hCommandList)
		c.state.removeChild(cl.context)
	}
	return ze.Success
}

func (c *core) EventPoolCreatePrologue(hContext ze.ContextHandle, _ *ze.EventPoolDesc, devices []ze.DeviceHandle, _ *ze.EventPoolHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	if !known(c.state.contexts, hContext) {
		return ze.ErrorInvalidNullHandle
	}
	for _, h := range devices {
		if !known(c.state.devices, h) {
			return ze.ErrorInvalidNullHandle
		}
	}
	return ze.Success
}

func (c *core) EventPoolCreateEpilogue(hContext ze.ContextHandle, _ *ze.EventPoolDesc, _ []ze.DeviceHandle, phEventPool *ze.EventPoolHandle, result ze.Result) ze.Result {
	if result != ze.Success || phEventPool == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.eventPools[*phEventPool] = &eventPool{context: hContext}
	c.state.addChild(hContext)
	return ze.Success
}

func (c *core) EventPoolDestroyPrologue(hEventPool ze.EventPoolHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	pool, ok := c.state.eventPools[hEventPool]
	if !ok {
		return ze.ErrorInvalidNullHandle
	}
	if pool.events > 0 {
		return ze.ErrorHandleObjectInUse
	}
	return ze.Success
}

func (c *core) EventPoolDestroyEpilogue(hEventPool ze.EventPoolHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if pool, ok := c.state.eventPools[hEventPool]; ok {
		delete(c.state.eventPools, hEventPool)
		c.state.removeChild(pool.context)
	}
	return ze.Success
}

func (c *core) EventCreatePrologue(hEventPool ze.EventPoolHandle, _ *ze.EventDesc, _ *ze.EventHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.eventPools, hEventPool))
}

func (c *core) EventCreateEpilogue(hEventPool ze.EventPoolHandle, _ *ze.EventDesc, phEvent *ze.EventHandle, result ze.Result) ze.Result {
	if result != ze.Success || phEvent == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.events[*phEvent] = hEventPool
	if pool, ok := c.state.eventPools[hEventPool]; ok {
		pool.events++
	}
	return ze.Success
}

func (c *core) EventDestroyPrologue(hEvent ze.EventHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.events, hEvent))
}

func (c *core) EventDestroyEpilogue(hEvent ze.EventHandle, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	hEventPool, ok := c.state.events[hEvent]
	if !ok {
		return ze.Success
	}
	delete(c.state.events, hEvent)
	if pool, ok := c.state.eventPools[hEventPool]; ok && pool.events > 0 {
		pool.events--
	}
	return ze.Success
}

func (c *core) EventHostSynchronizePrologue(hEvent ze.EventHandle, _ uint64) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.events, hEvent))
}

func (c *core) MemAllocHostPrologue(hContext ze.ContextHandle, _ *ze.HostMemAllocDesc, _, _ uint64, _ *ze.Ptr) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.contexts, hContext))
}

func (c *core) MemAllocHostEpilogue(hContext ze.ContextHandle, _ *ze.HostMemAllocDesc, _, _ uint64, pptr *ze.Ptr, result ze.Result) ze.Result {
	return c.addAllocation(hContext, pptr, result)
}

func (c *core) MemAllocDevicePrologue(hContext ze.ContextHandle, _ *ze.DeviceMemAllocDesc, _, _ uint64, hDevice ze.DeviceHandle, _ *ze.Ptr) ze.Result {
	return c.contextAndDevice(hContext, hDevice)
}

func (c *core) MemAllocDeviceEpilogue(hContext ze.ContextHandle, _ *ze.DeviceMemAllocDesc, _, _ uint64, _ ze.DeviceHandle, pptr *ze.Ptr, result ze.Result) ze.Result {
	return c.addAllocation(hContext, pptr, result)
}

func (c *core) MemFreePrologue(hContext ze.ContextHandle, _ ze.Ptr) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.contexts, hContext))
}

func (c *core) MemFreeEpilogue(_ ze.ContextHandle, ptr ze.Ptr, result ze.Result) ze.Result {
	if result != ze.Success {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if hContext, ok := c.state.allocations[ptr]; ok {
		delete(c.state.allocations, ptr)
		c.state.removeChild(hContext)
	}
	return ze.Success
}

func (c *core) contextAndDevice(hContext ze.ContextHandle, hDevice ze.DeviceHandle) ze.Result {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return valid(known(c.state.contexts, hContext) && known(c.state.devices, hDevice))
}

func (c *core) addCommandList(hContext ze.ContextHandle, phCommandList *ze.CommandListHandle, result ze.Result) ze.Result {
	if result != ze.Success || phCommandList == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.commandLists[*phCommandList] = &commandList{context: hContext, open: true}
	c.state.addChild(hContext)
	return ze.Success
}

func (c *core) addAllocation(hContext ze.ContextHandle, pptr *ze.Ptr, result ze.Result) ze.Result {
	if result != ze.Success || pptr == nil {
		return ze.Success
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.allocations[*pptr] = hContext
	c.state.addChild(hContext)
	return ze.Success
}
