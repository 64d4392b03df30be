package threading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/threading"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

func TestBusyCommandListIsRejected(t *testing.T) {
	c := threading.New()
	core := c.Core()
	const cl = ze.CommandListHandle(0x100)

	require.Equal(t, ze.Success, core.CommandListAppendMemoryCopyPrologue(cl, 1, 2, 8, 0, nil))
	assert.Equal(t, ze.ErrorNotAvailable, core.CommandListClosePrologue(cl))
	assert.Equal(t, ze.Success, core.CommandListClosePrologue(0x200), "other lists are independent")
	assert.Equal(t, int64(1), c.Conflicts())

	require.Equal(t, ze.Success, core.CommandListAppendMemoryCopyEpilogue(cl, 1, 2, 8, 0, nil, ze.Success))
	assert.Equal(t, ze.Success, core.CommandListClosePrologue(cl))
}

func TestReleasedAfterDriverFailure(t *testing.T) {
	c := threading.New()
	core := c.Core()
	const cl = ze.CommandListHandle(0x100)

	require.Equal(t, ze.Success, core.CommandListDestroyPrologue(cl))
	require.Equal(t, ze.Success, core.CommandListDestroyEpilogue(cl, ze.ErrorDeviceLost))
	assert.Equal(t, ze.Success, core.CommandListDestroyPrologue(cl))
}

func TestConcurrentUseThroughLayer(t *testing.T) {
	entered := make(chan struct{})
	unblock := make(chan struct{})
	tables := &zel.Tables{Core: ze.Table{
		CommandListAppendMemoryCopy: func(ze.CommandListHandle, ze.Ptr, ze.Ptr, uint64, ze.EventHandle, []ze.EventHandle) ze.Result {
			close(entered)
			<-unblock
			return ze.Success
		},
		CommandListClose: func(ze.CommandListHandle) ze.Result { return ze.Success },
	}}

	checker := threading.New()
	registry := validation.NewRegistry()
	require.NoError(t, registry.Append(checker))
	layer, err := validation.New(registry)
	require.NoError(t, err)
	require.NoError(t, layer.Intercept(ze.APIVersionCurrent, tables))

	const cl = ze.CommandListHandle(0x100)
	var g errgroup.Group
	var first ze.Result
	g.Go(func() error {
		first = tables.Core.CommandListAppendMemoryCopy(cl, 1, 2, 8, 0, nil)
		return nil
	})

	<-entered
	assert.Equal(t, ze.ErrorNotAvailable, tables.Core.CommandListClose(cl))
	close(unblock)
	require.NoError(t, g.Wait())

	assert.Equal(t, ze.Success, first)
	assert.Equal(t, ze.Success, tables.Core.CommandListClose(cl))
	assert.Equal(t, int64(1), checker.Conflicts())
}
