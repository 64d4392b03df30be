package leak_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"levelzero/internal/driver/null"
	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/leak"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

type LeakSuite struct {
	suite.Suite
	out     *bytes.Buffer
	checker *leak.Checker
	tables  *zel.Tables

	hDriver ze.DriverHandle
	hDevice ze.DeviceHandle
}

func TestLeakSuite(t *testing.T) {
	suite.Run(t, new(LeakSuite))
}

func (s *LeakSuite) SetupTest() {
	s.setup()
}

func (s *LeakSuite) setup(opts ...null.Option) {
	s.out = new(bytes.Buffer)
	s.checker = leak.New(leak.WithOutput(s.out))

	registry := validation.NewRegistry()
	s.Require().NoError(registry.Append(s.checker))
	layer, err := validation.New(registry)
	s.Require().NoError(err)

	tables := null.New(opts...).Tables()
	s.tables = &tables
	s.Require().NoError(layer.Intercept(ze.APIVersionCurrent, s.tables))

	count := uint32(1)
	drivers := make([]ze.DriverHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Core.DriverGet(&count, drivers))
	s.hDriver = drivers[0]
	devices := make([]ze.DeviceHandle, 1)
	s.Require().Equal(ze.Success, s.tables.Core.DeviceGet(s.hDriver, &count, devices))
	s.hDevice = devices[0]
}

func (s *LeakSuite) row(kind string) leak.Row {
	for _, row := range s.checker.Report() {
		if row.Kind == kind {
			return row
		}
	}
	s.FailNow("no row for " + kind)
	return leak.Row{}
}

func (s *LeakSuite) TestBalancedSequenceReportsNoLeak() {
	var ctx ze.ContextHandle
	s.Require().Equal(ze.Success, s.tables.Core.ContextCreate(s.hDriver, &ze.ContextDesc{}, &ctx))
	var ptr ze.Ptr
	s.Require().Equal(ze.Success, s.tables.Core.MemAllocHost(ctx, &ze.HostMemAllocDesc{}, 64, 8, &ptr))
	s.Require().Equal(ze.Success, s.tables.Core.MemFree(ctx, ptr))
	s.Require().Equal(ze.Success, s.tables.Core.ContextDestroy(ctx))

	for _, row := range s.checker.Report() {
		s.Zero(row.Leak, row.Kind)
	}
	s.Equal(int64(1), s.row("context").Creates[0].Calls)

	s.Require().NoError(s.checker.Close())
	s.True(strings.HasPrefix(s.out.String(), "Check balance of create/destroy calls\n"))
	s.NotContains(s.out.String(), "LEAK")
}

func (s *LeakSuite) TestUndestroyedObjectsAreReported() {
	var ctx ze.ContextHandle
	s.Require().Equal(ze.Success, s.tables.Core.ContextCreate(s.hDriver, &ze.ContextDesc{}, &ctx))
	var immediate, regular ze.CommandListHandle
	s.Require().Equal(ze.Success, s.tables.Core.CommandListCreateImmediate(ctx, s.hDevice, &ze.CommandQueueDesc{}, &immediate))
	s.Require().Equal(ze.Success, s.tables.Core.CommandListCreate(ctx, s.hDevice, &ze.CommandListDesc{}, &regular))
	s.Require().Equal(ze.Success, s.tables.Core.CommandListDestroy(regular))

	lists := s.row("command list")
	s.Equal(int64(1), lists.Leak)
	s.Equal("zeCommandListCreateImmediate", lists.Creates[0].EntryPoint)
	s.Equal("zeCommandListCreate", lists.Creates[1].EntryPoint)
	s.Equal(int64(1), s.row("context").Leak)

	s.Require().NoError(s.checker.Close())
	s.Contains(s.out.String(), "zeCommandListDestroy = 1")
	s.Contains(s.out.String(), "LEAK = 1")
}

func (s *LeakSuite) TestFailedCallsAreNotCounted() {
	s.setup(null.WithResult("zeContextCreate", ze.ErrorOutOfHostMemory))

	var ctx ze.ContextHandle
	s.Require().Equal(ze.ErrorOutOfHostMemory, s.tables.Core.ContextCreate(s.hDriver, &ze.ContextDesc{}, &ctx))
	s.Zero(s.row("context").Creates[0].Calls)
}

func (s *LeakSuite) TestReportCoversEveryKind() {
	var kinds []string
	for _, row := range s.checker.Report() {
		kinds = append(kinds, row.Kind)
	}
	s.Equal([]string{"context", "module", "event pool", "command list", "event", "memory"}, kinds)
}
