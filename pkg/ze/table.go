package ze

// Table is the core dispatch table. A driver fills in the entries it
// implements; layers replace entries with intercepts that forward to the
// previous value. A nil entry means the entry point is not provided.
//
// Output parameters follow the C convention: counts are in/out through
// *uint32 and created handles are written through a pointer.
type Table struct {
	Init func(flags InitFlags) Result

	DriverGet           func(count *uint32, drivers []DriverHandle) Result
	DriverGetApiVersion func(hDriver DriverHandle, version *APIVersion) Result

	DeviceGet           func(hDriver DriverHandle, count *uint32, devices []DeviceHandle) Result
	DeviceGetProperties func(hDevice DeviceHandle, props *DeviceProperties) Result

	ContextCreate  func(hDriver DriverHandle, desc *ContextDesc, phContext *ContextHandle) Result
	ContextDestroy func(hContext ContextHandle) Result

	ModuleCreate  func(hContext ContextHandle, hDevice DeviceHandle, desc *ModuleDesc, phModule *ModuleHandle) Result
	ModuleDestroy func(hModule ModuleHandle) Result

	CommandListCreate           func(hContext ContextHandle, hDevice DeviceHandle, desc *CommandListDesc, phCommandList *CommandListHandle) Result
	CommandListCreateImmediate  func(hContext ContextHandle, hDevice DeviceHandle, desc *CommandQueueDesc, phCommandList *CommandListHandle) Result
	CommandListClose            func(hCommandList CommandListHandle) Result
	CommandListAppendMemoryCopy func(hCommandList CommandListHandle, dst, src Ptr, size uint64, hSignalEvent EventHandle, waitEvents []EventHandle) Result
	CommandListDestroy          func(hCommandList CommandListHandle) Result

	EventPoolCreate      func(hContext ContextHandle, desc *EventPoolDesc, devices []DeviceHandle, phEventPool *EventPoolHandle) Result
	EventPoolDestroy     func(hEventPool EventPoolHandle) Result
	EventCreate          func(hEventPool EventPoolHandle, desc *EventDesc, phEvent *EventHandle) Result
	EventDestroy         func(hEvent EventHandle) Result
	EventHostSynchronize func(hEvent EventHandle, timeout uint64) Result

	MemAllocHost   func(hContext ContextHandle, desc *HostMemAllocDesc, size, alignment uint64, pptr *Ptr) Result
	MemAllocDevice func(hContext ContextHandle, desc *DeviceMemAllocDesc, size, alignment uint64, hDevice DeviceHandle, pptr *Ptr) Result
	MemFree        func(hContext ContextHandle, ptr Ptr) Result
}
