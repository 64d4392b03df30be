package handlelifetime_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"levelzero/internal/driver/null"
	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/handlelifetime"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
	"levelzero/pkg/zer"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

// =============================================================================
// Handle Lifetime Test Suite
// =============================================================================
// Justification for unit tests: handle tracking must follow the driver's own
// view of object lifetimes. Tests run real call sequences through the layer
// against the null driver.

type HandleLifetimeSuite struct {
	suite.Suite
	driver  *null.Driver
	checker *handlelifetime.Checker
	tables  *zel.Tables

	hDriver ze.DriverHandle
	hDevice ze.DeviceHandle
	hCtx    ze.ContextHandle
}

func TestHandleLifetimeSuite(t *testing.T) {
	suite.Run(t, new(HandleLifetimeSuite))
}

func (s *HandleLifetimeSuite) SetupTest() {
	s.setup()
}

// setup installs a fresh checker over a null driver built with opts and
// creates one context.
func (s *HandleLifetimeSuite) setup(opts ...null.Option) {
	s.driver = null.New(opts...)
	s.checker = handlelifetime.New()

	registry := validation.NewRegistry()
	s.Require().NoError(registry.Append(s.checker))
	layer, err := validation.New(registry)
	s.Require().NoError(err)

	tables := s.driver.Tables()
	s.tables = &tables
	s.Require().NoError(layer.Intercept(ze.APIVersionCurrent, s.tables))

	count := uint32(1)
	drivers := make([]ze.DriverHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Core.DriverGet(&count, drivers))
	s.hDriver = drivers[0]

	devices := make([]ze.DeviceHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Core.DeviceGet(s.hDriver, &count, devices))
	s.hDevice = devices[0]

	s.Require().Equal(ze.Success, s.tables.Core.ContextCreate(s.hDriver, &ze.ContextDesc{}, &s.hCtx))
}

func (s *HandleLifetimeSuite) TestTracksEnumeratedHandles() {
	live := s.checker.Live()
	s.Equal(1, live.Drivers)
	s.Equal(1, live.Devices)
	s.Equal(1, live.Contexts)
}

func (s *HandleLifetimeSuite) TestRejectsUnknownHandles() {
	var version ze.APIVersion
	var props ze.DeviceProperties
	var h ze.ContextHandle

	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.DriverGetApiVersion(0xbad, &version))
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.DeviceGetProperties(0xbad, &props))
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.ContextCreate(0, &ze.ContextDesc{}, &h))
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.EventHostSynchronize(0xbad, 0))
	s.Zero(s.driver.Calls("zeDriverGetApiVersion"))
	s.Zero(s.driver.Calls("zeEventHostSynchronize"))
}

func (s *HandleLifetimeSuite) TestDestroyedHandleIsRejected() {
	var mod ze.ModuleHandle
	s.Require().Equal(ze.Success, s.tables.Core.ModuleCreate(s.hCtx, s.hDevice, &ze.ModuleDesc{Input: []byte{1}}, &mod))
	s.Require().Equal(ze.Success, s.tables.Core.ModuleDestroy(mod))

	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.ModuleDestroy(mod))
	s.Equal(1, s.driver.Calls("zeModuleDestroy"))
}

func (s *HandleLifetimeSuite) TestContextInUse() {
	var cl ze.CommandListHandle
	var ptr ze.Ptr
	s.Require().Equal(ze.Success, s.tables.Core.CommandListCreate(s.hCtx, s.hDevice, &ze.CommandListDesc{}, &cl))
	s.Require().Equal(ze.Success, s.tables.Core.MemAllocHost(s.hCtx, &ze.HostMemAllocDesc{}, 64, 0, &ptr))

	s.Equal(ze.ErrorHandleObjectInUse, s.tables.Core.ContextDestroy(s.hCtx))

	s.Require().Equal(ze.Success, s.tables.Core.CommandListDestroy(cl))
	s.Equal(ze.ErrorHandleObjectInUse, s.tables.Core.ContextDestroy(s.hCtx))

	s.Require().Equal(ze.Success, s.tables.Core.MemFree(s.hCtx, ptr))
	s.Equal(ze.Success, s.tables.Core.ContextDestroy(s.hCtx))
	s.Zero(s.checker.Live().Contexts)
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.ContextDestroy(s.hCtx))
}

func (s *HandleLifetimeSuite) TestEventPoolInUse() {
	var pool ze.EventPoolHandle
	var event ze.EventHandle
	s.Require().Equal(ze.Success, s.tables.Core.EventPoolCreate(s.hCtx, &ze.EventPoolDesc{Count: 1}, []ze.DeviceHandle{s.hDevice}, &pool))
	s.Require().Equal(ze.Success, s.tables.Core.EventCreate(pool, &ze.EventDesc{}, &event))

	s.Equal(ze.ErrorHandleObjectInUse, s.tables.Core.EventPoolDestroy(pool))
	s.Require().Equal(ze.Success, s.tables.Core.EventDestroy(event))
	s.Equal(ze.Success, s.tables.Core.EventPoolDestroy(pool))
}

func (s *HandleLifetimeSuite) TestAppendToClosedCommandList() {
	var cl ze.CommandListHandle
	s.Require().Equal(ze.Success, s.tables.Core.CommandListCreate(s.hCtx, s.hDevice, &ze.CommandListDesc{}, &cl))
	s.Require().Equal(ze.Success, s.tables.Core.CommandListAppendMemoryCopy(cl, 0x100, 0x200, 8, 0, nil))
	s.Require().Equal(ze.Success, s.tables.Core.CommandListClose(cl))

	s.Equal(ze.ErrorInvalidArgument, s.tables.Core.CommandListAppendMemoryCopy(cl, 0x100, 0x200, 8, 0, nil))
	s.Equal(1, s.driver.Calls("zeCommandListAppendMemoryCopy"))
}

func (s *HandleLifetimeSuite) TestAppendWithUnknownEvents() {
	var cl ze.CommandListHandle
	s.Require().Equal(ze.Success, s.tables.Core.CommandListCreate(s.hCtx, s.hDevice, &ze.CommandListDesc{}, &cl))

	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.CommandListAppendMemoryCopy(cl, 0x100, 0x200, 8, 0xbad, nil))
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.CommandListAppendMemoryCopy(cl, 0x100, 0x200, 8, 0, []ze.EventHandle{0xbad}))
}

func (s *HandleLifetimeSuite) TestFailedCreateIsNotTracked() {
	s.setup(null.WithResult("zeModuleCreate", ze.ErrorModuleBuildFailure))

	var mod ze.ModuleHandle
	s.Equal(ze.ErrorModuleBuildFailure, s.tables.Core.ModuleCreate(s.hCtx, s.hDevice, &ze.ModuleDesc{Input: []byte{1}}, &mod))
	s.Zero(s.checker.Live().Modules)
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Core.ModuleDestroy(mod))
}

func (s *HandleLifetimeSuite) TestRuntimeAndTools() {
	s.Run("device translation needs a known device", func() {
		s.Equal(uint32(0), s.tables.Runtime.TranslateDeviceHandleToIdentifier(s.hDevice))
		s.Equal(zer.InvalidIdentifier, s.tables.Runtime.TranslateDeviceHandleToIdentifier(0xbad))
	})

	s.Run("default context becomes usable", func() {
		hDefault := s.tables.Runtime.GetDefaultContext()
		s.Require().NotZero(hDefault)

		var ptr ze.Ptr
		s.Equal(ze.Success, s.tables.Core.MemAllocHost(hDefault, &ze.HostMemAllocDesc{}, 64, 0, &ptr))
	})

	s.Run("debug info needs a live module", func() {
		size := uint64(0)
		s.Equal(ze.ErrorInvalidNullHandle, s.tables.Tools.ModuleGetDebugInfo(0xbad, zet.ModuleDebugInfoFormatELFDWARF, &size, nil))

		var mod ze.ModuleHandle
		s.Require().Equal(ze.Success, s.tables.Core.ModuleCreate(s.hCtx, s.hDevice, &ze.ModuleDesc{Input: []byte{1}}, &mod))
		s.Equal(ze.Success, s.tables.Tools.ModuleGetDebugInfo(mod, zet.ModuleDebugInfoFormatELFDWARF, &size, nil))
		s.NotZero(size)
	})
}

func (s *HandleLifetimeSuite) TestSysmanHandles() {
	var props zes.DeviceProperties
	s.Equal(ze.ErrorInvalidNullHandle, s.tables.Sysman.DeviceGetProperties(zes.DeviceHandle(s.hDevice), &props))

	count := uint32(1)
	drivers := make([]zes.DriverHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Sysman.DriverGet(&count, drivers))
	devices := make([]zes.DeviceHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Sysman.DeviceGet(drivers[0], &count, devices))

	s.Equal(ze.Success, s.tables.Sysman.DeviceGetProperties(devices[0], &props))
	s.Equal(ze.Success, s.tables.Sysman.DeviceReset(devices[0], false))
}
