package null

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelzero/pkg/ze"
	"levelzero/pkg/zer"
	"levelzero/pkg/zes"
)

func TestEnumeration(t *testing.T) {
	d := New(WithDevices(3))
	core := d.Tables().Core

	var count uint32
	require.Equal(t, ze.Success, core.DriverGet(&count, nil))
	require.Equal(t, uint32(1), count)
	drivers := make([]ze.DriverHandle, count)
	require.Equal(t, ze.Success, core.DriverGet(&count, drivers))
	assert.NotZero(t, drivers[0])

	count = 0
	require.Equal(t, ze.Success, core.DeviceGet(drivers[0], &count, nil))
	assert.Equal(t, uint32(3), count)

	count = 2
	devices := make([]ze.DeviceHandle, 2)
	require.Equal(t, ze.Success, core.DeviceGet(drivers[0], &count, devices))
	assert.Equal(t, d.Devices()[:2], devices)

	var props ze.DeviceProperties
	require.Equal(t, ze.Success, core.DeviceGetProperties(devices[1], &props))
	assert.Equal(t, ze.DeviceTypeGPU, props.Type)
	assert.NotEqual(t, uuid.Nil, props.UUID)
	assert.Equal(t, "Null Device 1", props.Name)

	assert.Equal(t, 2, d.Calls("zeDriverGet"))
	assert.Equal(t, 2, d.Calls("zeDeviceGet"))
}

func TestHandlesAreUnique(t *testing.T) {
	d := New()
	core := d.Tables().Core

	seen := map[uintptr]bool{uintptr(d.driver): true, uintptr(d.Devices()[0]): true}
	for range 10 {
		var h ze.ContextHandle
		require.Equal(t, ze.Success, core.ContextCreate(d.driver, &ze.ContextDesc{}, &h))
		assert.False(t, seen[uintptr(h)], "handle %s reused", h)
		seen[uintptr(h)] = true
	}
}

func TestWithResult(t *testing.T) {
	d := New(WithResult("zeContextCreate", ze.ErrorOutOfHostMemory))
	tables := d.Tables()

	var h ze.ContextHandle
	assert.Equal(t, ze.ErrorOutOfHostMemory, tables.Core.ContextCreate(d.driver, &ze.ContextDesc{}, &h))
	assert.Zero(t, h)
	assert.Equal(t, 1, d.Calls("zeContextCreate"))

	var description string
	require.Equal(t, ze.Success, tables.Runtime.GetLastErrorDescription(&description))
	assert.Contains(t, description, "zeContextCreate")
}

func TestEventHostSynchronize(t *testing.T) {
	d := New()
	core := d.Tables().Core

	var event ze.EventHandle
	require.Equal(t, ze.Success, core.EventCreate(1, &ze.EventDesc{}, &event))

	assert.Equal(t, ze.NotReady, core.EventHostSynchronize(event, 0))
	assert.Equal(t, ze.Success, core.EventHostSynchronize(event, 1_000_000))
	assert.Equal(t, ze.Success, core.EventHostSynchronize(event, 0))

	var signal ze.EventHandle
	require.Equal(t, ze.Success, core.EventCreate(1, &ze.EventDesc{}, &signal))
	require.Equal(t, ze.Success, core.CommandListAppendMemoryCopy(1, 0x100, 0x200, 64, signal, nil))
	assert.Equal(t, ze.Success, core.EventHostSynchronize(signal, 0))
}

func TestMemAlloc(t *testing.T) {
	d := New()
	core := d.Tables().Core

	var a, b ze.Ptr
	require.Equal(t, ze.Success, core.MemAllocHost(1, &ze.HostMemAllocDesc{}, 64, 0, &a))
	require.Equal(t, ze.Success, core.MemAllocDevice(1, &ze.DeviceMemAllocDesc{}, 64, 0, d.Devices()[0], &b))
	assert.NotEqual(t, a, b)
	assert.Equal(t, ze.ErrorOutOfDeviceMemory, core.MemAllocHost(1, &ze.HostMemAllocDesc{}, maxMemAllocSize+1, 0, &a))
}

func TestRuntimeTranslation(t *testing.T) {
	d := New(WithDevices(2))
	rt := d.Tables().Runtime
	devices := d.Devices()

	assert.Equal(t, uint32(1), rt.TranslateDeviceHandleToIdentifier(devices[1]))
	assert.Equal(t, zer.InvalidIdentifier, rt.TranslateDeviceHandleToIdentifier(0xdead))
	assert.Equal(t, devices[0], rt.TranslateIdentifierToDeviceHandle(0))
	assert.Zero(t, rt.TranslateIdentifierToDeviceHandle(9))
	assert.NotZero(t, rt.GetDefaultContext())
}

func TestSysman(t *testing.T) {
	d := New(WithAPIVersion(ze.APIVersion1_5))
	sysman := d.Tables().Sysman

	var count uint32
	require.Equal(t, ze.Success, sysman.DriverGet(&count, nil))
	drivers := make([]zes.DriverHandle, count)
	require.Equal(t, ze.Success, sysman.DriverGet(&count, drivers))

	count = 1
	devices := make([]zes.DeviceHandle, 1)
	require.Equal(t, ze.Success, sysman.DeviceGet(drivers[0], &count, devices))

	var props zes.DeviceProperties
	require.Equal(t, ze.Success, sysman.DeviceGetProperties(devices[0], &props))
	assert.Equal(t, "1.5", props.DriverVersion)
	assert.Equal(t, "Null Device 0", props.ModelName)
}
