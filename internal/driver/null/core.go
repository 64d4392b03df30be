package null

import "levelzero/pkg/ze"

func (d *Driver) coreTable() ze.Table {
	return ze.Table{
		Init:                        d.init,
		DriverGet:                   d.driverGet,
		DriverGetApiVersion:         d.driverGetApiVersion,
		DeviceGet:                   d.deviceGet,
		DeviceGetProperties:         d.deviceGetProperties,
		ContextCreate:               d.contextCreate,
		ContextDestroy:              func(ze.ContextHandle) ze.Result { return d.simple("zeContextDestroy") },
		ModuleCreate:                d.moduleCreate,
		ModuleDestroy:               func(ze.ModuleHandle) ze.Result { return d.simple("zeModuleDestroy") },
		CommandListCreate:           d.commandListCreate,
		CommandListCreateImmediate:  d.commandListCreateImmediate,
		CommandListClose:            func(ze.CommandListHandle) ze.Result { return d.simple("zeCommandListClose") },
		CommandListAppendMemoryCopy: d.commandListAppendMemoryCopy,
		CommandListDestroy:          func(ze.CommandListHandle) ze.Result { return d.simple("zeCommandListDestroy") },
		EventPoolCreate:             d.eventPoolCreate,
		EventPoolDestroy:            func(ze.EventPoolHandle) ze.Result { return d.simple("zeEventPoolDestroy") },
		EventCreate:                 d.eventCreate,
		EventDestroy:                d.eventDestroy,
		EventHostSynchronize:        d.eventHostSynchronize,
		MemAllocHost:                d.memAllocHost,
		MemAllocDevice:              d.memAllocDevice,
		MemFree:                     func(ze.ContextHandle, ze.Ptr) ze.Result { return d.simple("zeMemFree") },
	}
}

// simple handles entry points that only need counting.
func (d *Driver) simple(name string) ze.Result {
	if r, ok := d.enter(name); ok {
		return r
	}
	return ze.Success
}

func (d *Driver) init(ze.InitFlags) ze.Result {
	return d.simple("zeInit")
}

func (d *Driver) driverGet(count *uint32, drivers []ze.DriverHandle) ze.Result {
	if r, ok := d.enter("zeDriverGet"); ok {
		return r
	}
	if count == nil {
		return d.fail("zeDriverGet", ze.ErrorInvalidNullPointer)
	}
	if *count == 0 || len(drivers) == 0 {
		*count = 1
		return ze.Success
	}
	drivers[0] = d.driver
	*count = 1
	return ze.Success
}

func (d *Driver) driverGetApiVersion(hDriver ze.DriverHandle, version *ze.APIVersion) ze.Result {
	if r, ok := d.enter("zeDriverGetApiVersion"); ok {
		return r
	}
	if version == nil {
		return d.fail("zeDriverGetApiVersion", ze.ErrorInvalidNullPointer)
	}
	*version = d.version
	return ze.Success
}

func (d *Driver) deviceGet(hDriver ze.DriverHandle, count *uint32, devices []ze.DeviceHandle) ze.Result {
	if r, ok := d.enter("zeDeviceGet"); ok {
		return r
	}
	if count == nil {
		return d.fail("zeDeviceGet", ze.ErrorInvalidNullPointer)
	}
	total := uint32(len(d.devices))
	if *count == 0 || *count > total {
		*count = total
	}
	if devices == nil {
		return ze.Success
	}
	n := min(int(*count), len(devices))
	for i := range n {
		devices[i] = d.devices[i].handle
	}
	*count = uint32(n)
	return ze.Success
}

func (d *Driver) deviceGetProperties(hDevice ze.DeviceHandle, props *ze.DeviceProperties) ze.Result {
	if r, ok := d.enter("zeDeviceGetProperties"); ok {
		return r
	}
	dev, found := d.device(hDevice)
	if !found {
		return d.fail("zeDeviceGetProperties", ze.ErrorInvalidNullHandle)
	}
	if props == nil {
		return d.fail("zeDeviceGetProperties", ze.ErrorInvalidNullPointer)
	}
	*props = dev.props
	return ze.Success
}

func (d *Driver) contextCreate(_ ze.DriverHandle, _ *ze.ContextDesc, phContext *ze.ContextHandle) ze.Result {
	if r, ok := d.enter("zeContextCreate"); ok {
		return r
	}
	if phContext == nil {
		return d.fail("zeContextCreate", ze.ErrorInvalidNullPointer)
	}
	*phContext = ze.ContextHandle(d.nextHandle())
	return ze.Success
}

func (d *Driver) moduleCreate(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.ModuleDesc, phModule *ze.ModuleHandle) ze.Result {
	if r, ok := d.enter("zeModuleCreate"); ok {
		return r
	}
	if phModule == nil {
		return d.fail("zeModuleCreate", ze.ErrorInvalidNullPointer)
	}
	*phModule = ze.ModuleHandle(d.nextHandle())
	return ze.Success
}

func (d *Driver) commandListCreate(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandListDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if r, ok := d.enter("zeCommandListCreate"); ok {
		return r
	}
	if phCommandList == nil {
		return d.fail("zeCommandListCreate", ze.ErrorInvalidNullPointer)
	}
	*phCommandList = ze.CommandListHandle(d.nextHandle())
	return ze.Success
}

func (d *Driver) commandListCreateImmediate(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if r, ok := d.enter("zeCommandListCreateImmediate"); ok {
		return r
	}
	if phCommandList == nil {
		return d.fail("zeCommandListCreateImmediate", ze.ErrorInvalidNullPointer)
	}
	*phCommandList = ze.CommandListHandle(d.nextHandle())
	return ze.Success
}

// commandListAppendMemoryCopy completes immediately and signals hSignalEvent.
func (d *Driver) commandListAppendMemoryCopy(_ ze.CommandListHandle, _, _ ze.Ptr, _ uint64, hSignalEvent ze.EventHandle, _ []ze.EventHandle) ze.Result {
	if r, ok := d.enter("zeCommandListAppendMemoryCopy"); ok {
		return r
	}
	if hSignalEvent != 0 {
		d.mu.Lock()
		d.signaled[hSignalEvent] = true
		d.mu.Unlock()
	}
	return ze.Success
}

func (d *Driver) eventPoolCreate(_ ze.ContextHandle, _ *ze.EventPoolDesc, _ []ze.DeviceHandle, phEventPool *ze.EventPoolHandle) ze.Result {
	if r, ok := d.enter("zeEventPoolCreate"); ok {
		return r
	}
	if phEventPool == nil {
		return d.fail("zeEventPoolCreate", ze.ErrorInvalidNullPointer)
	}
	*phEventPool = ze.EventPoolHandle(d.nextHandle())
	return ze.Success
}

func (d *Driver) eventCreate(_ ze.EventPoolHandle, _ *ze.EventDesc, phEvent *ze.EventHandle) ze.Result {
	if r, ok := d.enter("zeEventCreate"); ok {
		return r
	}
	if phEvent == nil {
		return d.fail("zeEventCreate", ze.ErrorInvalidNullPointer)
	}
	h := ze.EventHandle(d.nextHandle())
	d.mu.Lock()
	d.signaled[h] = false
	d.mu.Unlock()
	*phEvent = h
	return ze.Success
}

func (d *Driver) eventDestroy(hEvent ze.EventHandle) ze.Result {
	if r, ok := d.enter("zeEventDestroy"); ok {
		return r
	}
	d.mu.Lock()
	delete(d.signaled, hEvent)
	d.mu.Unlock()
	return ze.Success
}

// eventHostSynchronize polls when timeout is zero. Any other timeout waits
// for a signal that, without a device, is considered to arrive at once.
func (d *Driver) eventHostSynchronize(hEvent ze.EventHandle, timeout uint64) ze.Result {
	if r, ok := d.enter("zeEventHostSynchronize"); ok {
		return r
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if timeout == 0 && !d.signaled[hEvent] {
		return ze.NotReady
	}
	d.signaled[hEvent] = true
	return ze.Success
}

func (d *Driver) memAllocHost(_ ze.ContextHandle, _ *ze.HostMemAllocDesc, size, _ uint64, pptr *ze.Ptr) ze.Result {
	if r, ok := d.enter("zeMemAllocHost"); ok {
		return r
	}
	return d.alloc("zeMemAllocHost", size, pptr)
}

func (d *Driver) memAllocDevice(_ ze.ContextHandle, _ *ze.DeviceMemAllocDesc, size, _ uint64, _ ze.DeviceHandle, pptr *ze.Ptr) ze.Result {
	if r, ok := d.enter("zeMemAllocDevice"); ok {
		return r
	}
	return d.alloc("zeMemAllocDevice", size, pptr)
}

func (d *Driver) alloc(name string, size uint64, pptr *ze.Ptr) ze.Result {
	if pptr == nil {
		return d.fail(name, ze.ErrorInvalidNullPointer)
	}
	if size > maxMemAllocSize {
		return d.fail(name, ze.ErrorOutOfDeviceMemory)
	}
	*pptr = ze.Ptr(d.nextHandle() << 16)
	return ze.Success
}
