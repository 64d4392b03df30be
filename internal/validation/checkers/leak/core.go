package leak

import (
	"sync/atomic"

	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

// core counts successful calls. The counter map is built once and never
// written afterwards, so lookups need no lock.
type core struct {
	validation.BaseCore
	counts map[string]*atomic.Int64
}

func (c *core) count(name string, result ze.Result) ze.Result {
	if result == ze.Success {
		if n, ok := c.counts[name]; ok {
			n.Add(1)
		}
	}
	return ze.Success
}

func (c *core) ContextCreateEpilogue(_ ze.DriverHandle, _ *ze.ContextDesc, _ *ze.ContextHandle, result ze.Result) ze.Result {
	return c.count("zeContextCreate", result)
}

func (c *core) ContextDestroyEpilogue(_ ze.ContextHandle, result ze.Result) ze.Result {
	return c.count("zeContextDestroy", result)
}

func (c *core) ModuleCreateEpilogue(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.ModuleDesc, _ *ze.ModuleHandle, result ze.Result) ze.Result {
	return c.count("zeModuleCreate", result)
}

func (c *core) ModuleDestroyEpilogue(_ ze.ModuleHandle, result ze.Result) ze.Result {
	return c.count("zeModuleDestroy", result)
}

func (c *core) CommandListCreateEpilogue(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandListDesc, _ *ze.CommandListHandle, result ze.Result) ze.Result {
	return c.count("zeCommandListCreate", result)
}

func (c *core) CommandListCreateImmediateEpilogue(_ ze.ContextHandle, _ ze.DeviceHandle, _ *ze.CommandQueueDesc, _ *ze.CommandListHandle, result ze.Result) ze.Result {
	return c.count("zeCommandListCreateImmediate", result)
}

func (c *core) CommandListDestroyEpilogue(_ ze.CommandListHandle, result ze.Result) ze.Result {
	return c.count("zeCommandListDestroy", result)
}

func (c *core) EventPoolCreateEpilogue(_ ze.ContextHandle, _ *ze.EventPoolDesc, _ []ze.DeviceHandle, _ *ze.EventPoolHandle, result ze.Result) ze.Result {
	return c.count("zeEventPoolCreate", result)
}

func (c *core) EventPoolDestroyEpilogue(_ ze.EventPoolHandle, result ze.Result) ze.Result {
	return c.count("zeEventPoolDestroy", result)
}

func (c *core) EventCreateEpilogue(_ ze.EventPoolHandle, _ *ze.EventDesc, _ *ze.EventHandle, result ze.Result) ze.Result {
	return c.count("zeEventCreate", result)
}

func (c *core) EventDestroyEpilogue(_ ze.EventHandle, result ze.Result) ze.Result {
	return c.count("zeEventDestroy", result)
}

func (c *core) MemAllocHostEpilogue(_ ze.ContextHandle, _ *ze.HostMemAllocDesc, _, _ uint64, _ *ze.Ptr, result ze.Result) ze.Result {
	return c.count("zeMemAllocHost", result)
}

func (c *core) MemAllocDeviceEpilogue(_ ze.ContextHandle, _ *ze.DeviceMemAllocDesc, _, _ uint64, _ ze.DeviceHandle, _ *ze.Ptr, result ze.Result) ze.Result {
	return c.count("zeMemAllocDevice", result)
}

func (c *core) MemFreeEpilogue(_ ze.ContextHandle, _ ze.Ptr, result ze.Result) ze.Result {
	return c.count("zeMemFree", result)
}
