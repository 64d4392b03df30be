package parameter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

func TestCorePrologues(t *testing.T) {
	c := New().Core()
	var (
		ctx   ze.ContextHandle
		mod   ze.ModuleHandle
		cl    ze.CommandListHandle
		pool  ze.EventPoolHandle
		event ze.EventHandle
		ptr   ze.Ptr
		props ze.DeviceProperties
		vers  ze.APIVersion
	)
	count := uint32(2)
	spirv := []byte{0x03, 0x02, 0x23, 0x07}
	device := ze.DeviceHandle(0x10)

	tests := []struct {
		name string
		got  ze.Result
		want ze.Result
	}{
		{"init accepts gpu only", c.InitPrologue(ze.InitFlagGPUOnly), ze.Success},
		{"init accepts zero", c.InitPrologue(0), ze.Success},
		{"init rejects unknown flag", c.InitPrologue(0x4), ze.ErrorInvalidEnumeration},
		{"driver get requires count", c.DriverGetPrologue(nil, nil), ze.ErrorInvalidNullPointer},
		{"driver get query", c.DriverGetPrologue(&count, nil), ze.Success},
		{"driver get short slice", c.DriverGetPrologue(&count, make([]ze.DriverHandle, 1)), ze.ErrorInvalidSize},
		{"api version null driver", c.DriverGetApiVersionPrologue(0, &vers), ze.ErrorInvalidNullHandle},
		{"api version nil out", c.DriverGetApiVersionPrologue(1, nil), ze.ErrorInvalidNullPointer},
		{"device get null driver", c.DeviceGetPrologue(0, &count, nil), ze.ErrorInvalidNullHandle},
		{"device get ok", c.DeviceGetPrologue(1, &count, make([]ze.DeviceHandle, 2)), ze.Success},
		{"device properties nil", c.DeviceGetPropertiesPrologue(device, nil), ze.ErrorInvalidNullPointer},
		{"device properties ok", c.DeviceGetPropertiesPrologue(device, &props), ze.Success},
		{"context nil desc", c.ContextCreatePrologue(1, nil, &ctx), ze.ErrorInvalidNullPointer},
		{"context bad flags", c.ContextCreatePrologue(1, &ze.ContextDesc{Flags: 2}, &ctx), ze.ErrorInvalidEnumeration},
		{"context ok", c.ContextCreatePrologue(1, &ze.ContextDesc{}, &ctx), ze.Success},
		{"context destroy null", c.ContextDestroyPrologue(0), ze.ErrorInvalidNullHandle},
		{"module nil input", c.ModuleCreatePrologue(1, device, &ze.ModuleDesc{}, &mod), ze.ErrorInvalidNullPointer},
		{"module empty input", c.ModuleCreatePrologue(1, device, &ze.ModuleDesc{Input: []byte{}}, &mod), ze.ErrorInvalidSize},
		{"module bad format", c.ModuleCreatePrologue(1, device, &ze.ModuleDesc{Format: 7, Input: spirv}, &mod), ze.ErrorInvalidEnumeration},
		{"module ok", c.ModuleCreatePrologue(1, device, &ze.ModuleDesc{Input: spirv}, &mod), ze.Success},
		{"command list bad flags", c.CommandListCreatePrologue(1, device, &ze.CommandListDesc{Flags: 0x10}, &cl), ze.ErrorInvalidEnumeration},
		{"command list null device", c.CommandListCreatePrologue(1, 0, &ze.CommandListDesc{}, &cl), ze.ErrorInvalidNullHandle},
		{"immediate bad mode", c.CommandListCreateImmediatePrologue(1, device, &ze.CommandQueueDesc{Mode: 3}, &cl), ze.ErrorInvalidEnumeration},
		{"immediate bad priority", c.CommandListCreateImmediatePrologue(1, device, &ze.CommandQueueDesc{Priority: 3}, &cl), ze.ErrorInvalidEnumeration},
		{"immediate ok", c.CommandListCreateImmediatePrologue(1, device, &ze.CommandQueueDesc{Flags: ze.CommandQueueFlagInOrder}, &cl), ze.Success},
		{"copy null dst", c.CommandListAppendMemoryCopyPrologue(1, 0, 0x100, 8, 0, nil), ze.ErrorInvalidNullPointer},
		{"copy ok", c.CommandListAppendMemoryCopyPrologue(1, 0x200, 0x100, 8, 0, nil), ze.Success},
		{"event pool zero count", c.EventPoolCreatePrologue(1, &ze.EventPoolDesc{}, nil, &pool), ze.ErrorInvalidSize},
		{"event pool bad flags", c.EventPoolCreatePrologue(1, &ze.EventPoolDesc{Flags: 0x10, Count: 1}, nil, &pool), ze.ErrorInvalidEnumeration},
		{"event bad scope", c.EventCreatePrologue(1, &ze.EventDesc{Signal: 0x8}, &event), ze.ErrorInvalidEnumeration},
		{"event ok", c.EventCreatePrologue(1, &ze.EventDesc{Signal: ze.EventScopeFlagHost}, &event), ze.Success},
		{"synchronize null event", c.EventHostSynchronizePrologue(0, 0), ze.ErrorInvalidNullHandle},
		{"host alloc zero size", c.MemAllocHostPrologue(1, &ze.HostMemAllocDesc{}, 0, 0, &ptr), ze.ErrorUnsupportedSize},
		{"host alloc bad alignment", c.MemAllocHostPrologue(1, &ze.HostMemAllocDesc{}, 64, 3, &ptr), ze.ErrorUnsupportedAlignment},
		{"host alloc ok", c.MemAllocHostPrologue(1, &ze.HostMemAllocDesc{}, 64, 64, &ptr), ze.Success},
		{"device alloc null device", c.MemAllocDevicePrologue(1, &ze.DeviceMemAllocDesc{}, 64, 0, 0, &ptr), ze.ErrorInvalidNullHandle},
		{"device alloc bad flags", c.MemAllocDevicePrologue(1, &ze.DeviceMemAllocDesc{Flags: 0x8}, 64, 0, device, &ptr), ze.ErrorInvalidEnumeration},
		{"free null pointer", c.MemFreePrologue(1, 0), ze.ErrorInvalidNullPointer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestEpiloguesNeverFail(t *testing.T) {
	c := New().Core()
	assert.Equal(t, ze.Success, c.InitEpilogue(0x4, ze.ErrorInvalidEnumeration))
	assert.Equal(t, ze.Success, c.MemFreeEpilogue(0, 0, ze.ErrorDeviceLost))
}

func TestToolsSysmanRuntimePrologues(t *testing.T) {
	c := New()
	var (
		dbg   zet.DeviceDebugProperties
		props zes.DeviceProperties
		desc  string
	)
	count := uint32(1)
	size := uint64(16)

	tests := []struct {
		name string
		got  ze.Result
		want ze.Result
	}{
		{"debug properties null device", c.Tools().DeviceGetDebugPropertiesPrologue(0, &dbg), ze.ErrorInvalidNullHandle},
		{"debug info bad format", c.Tools().ModuleGetDebugInfoPrologue(1, 1, &size, nil), ze.ErrorInvalidEnumeration},
		{"debug info short buffer", c.Tools().ModuleGetDebugInfoPrologue(1, 0, &size, make([]byte, 4)), ze.ErrorInvalidSize},
		{"metric groups nil count", c.Tools().MetricGroupGetPrologue(1, nil, nil), ze.ErrorInvalidNullPointer},
		{"sysman init bad flags", c.Sysman().InitPrologue(0x2), ze.ErrorInvalidEnumeration},
		{"sysman init ok", c.Sysman().InitPrologue(0), ze.Success},
		{"sysman device get null driver", c.Sysman().DeviceGetPrologue(0, &count, nil), ze.ErrorInvalidNullHandle},
		{"sysman properties ok", c.Sysman().DeviceGetPropertiesPrologue(1, &props), ze.Success},
		{"sysman reset null device", c.Sysman().DeviceResetPrologue(0, true), ze.ErrorInvalidNullHandle},
		{"runtime description nil", c.Runtime().GetLastErrorDescriptionPrologue(nil), ze.ErrorInvalidNullPointer},
		{"runtime description ok", c.Runtime().GetLastErrorDescriptionPrologue(&desc), ze.Success},
		{"runtime translate null device", c.Runtime().TranslateDeviceHandleToIdentifierPrologue(0), ze.ErrorInvalidNullHandle},
		{"runtime default context", c.Runtime().GetDefaultContextPrologue(), ze.Success},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}
