package certification

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
)

type core struct {
	validation.BaseCore
	state *state
}

func (c *core) InitPrologue(ze.InitFlags) ze.Result {
	return c.state.require("zeInit", ze.APIVersion1_0)
}

func (c *core) DriverGetPrologue(*uint32, []ze.DriverHandle) ze.Result {
	return c.state.require("zeDriverGet", ze.APIVersion1_0)
}

func (c *core) DriverGetApiVersionPrologue(ze.DriverHandle, *ze.APIVersion) ze.Result {
	return c.state.require("zeDriverGetApiVersion", ze.APIVersion1_0)
}

func (c *core) DriverGetApiVersionEpilogue(_ ze.DriverHandle, version *ze.APIVersion, result ze.Result) ze.Result {
	if result == ze.Success && version != nil {
		c.state.adopt(*version)
	}
	return ze.Success
}

func (c *core) DeviceGetPrologue(ze.DriverHandle, *uint32, []ze.DeviceHandle) ze.Result {
	return c.state.require("zeDeviceGet", ze.APIVersion1_0)
}

func (c *core) DeviceGetPropertiesPrologue(ze.DeviceHandle, *ze.DeviceProperties) ze.Result {
	return c.state.require("zeDeviceGetProperties", ze.APIVersion1_0)
}

func (c *core) ContextCreatePrologue(ze.DriverHandle, *ze.ContextDesc, *ze.ContextHandle) ze.Result {
	return c.state.require("zeContextCreate", ze.APIVersion1_0)
}

func (c *core) ContextDestroyPrologue(ze.ContextHandle) ze.Result {
	return c.state.require("zeContextDestroy", ze.APIVersion1_0)
}

func (c *core) ModuleCreatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.ModuleDesc, *ze.ModuleHandle) ze.Result {
	return c.state.require("zeModuleCreate", ze.APIVersion1_0)
}

func (c *core) ModuleDestroyPrologue(ze.ModuleHandle) ze.Result {
	return c.state.require("zeModuleDestroy", ze.APIVersion1_0)
}

func (c *core) CommandListCreatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandListDesc, *ze.CommandListHandle) ze.Result {
	return c.state.require("zeCommandListCreate", ze.APIVersion1_0)
}

func (c *core) CommandListCreateImmediatePrologue(ze.ContextHandle, ze.DeviceHandle, *ze.CommandQueueDesc, *ze.CommandListHandle) ze.Result {
	return c.state.require("zeCommandListCreateImmediate", ze.APIVersion1_0)
}

func (c *core) CommandListClosePrologue(ze.CommandListHandle) ze.Result {
	return c.state.require("zeCommandListClose", ze.APIVersion1_0)
}

func (c *core) CommandListAppendMemoryCopyPrologue(ze.CommandListHandle, ze.Ptr, ze.Ptr, uint64, ze.EventHandle, []ze.EventHandle) ze.Result {
	return c.state.require("zeCommandListAppendMemoryCopy", ze.APIVersion1_0)
}

func (c *core) CommandListDestroyPrologue(ze.CommandListHandle) ze.Result {
	return c.state.require("zeCommandListDestroy", ze.APIVersion1_0)
}

func (c *core) EventPoolCreatePrologue(ze.ContextHandle, *ze.EventPoolDesc, []ze.DeviceHandle, *ze.EventPoolHandle) ze.Result {
	return c.state.require("zeEventPoolCreate", ze.APIVersion1_0)
}

func (c *core) EventPoolDestroyPrologue(ze.EventPoolHandle) ze.Result {
	return c.state.require("zeEventPoolDestroy", ze.APIVersion1_0)
}

func (c *core) EventCreatePrologue(ze.EventPoolHandle, *ze.EventDesc, *ze.EventHandle) ze.Result {
	return c.state.require("zeEventCreate", ze.APIVersion1_0)
}

func (c *core) EventDestroyPrologue(ze.EventHandle) ze.Result {
	return c.state.require("zeEventDestroy", ze.APIVersion1_0)
}

func (c *core) EventHostSynchronizePrologue(ze.EventHandle, uint64) ze.Result {
	return c.state.require("zeEventHostSynchronize", ze.APIVersion1_0)
}

func (c *core) MemAllocHostPrologue(ze.ContextHandle, *ze.HostMemAllocDesc, uint64, uint64, *ze.Ptr) ze.Result {
	return c.state.require("zeMemAllocHost", ze.APIVersion1_0)
}

func (c *core) MemAllocDevicePrologue(ze.ContextHandle, *ze.DeviceMemAllocDesc, uint64, uint64, ze.DeviceHandle, *ze.Ptr) ze.Result {
	return c.state.require("zeMemAllocDevice", ze.APIVersion1_0)
}

func (c *core) MemFreePrologue(ze.ContextHandle, ze.Ptr) ze.Result {
	return c.state.require("zeMemFree", ze.APIVersion1_0)
}
