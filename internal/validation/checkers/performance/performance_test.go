package performance_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelzero/internal/validation/checkers/performance"
	"levelzero/pkg/ze"
)

func TestCommandListCreateImmediateHints(t *testing.T) {
	tests := []struct {
		name  string
		desc  ze.CommandQueueDesc
		hints []string
	}{
		{
			name:  "asynchronous in-order with copy offload",
			desc:  ze.CommandQueueDesc{Mode: ze.CommandQueueModeAsynchronous, Flags: ze.CommandQueueFlagInOrder | ze.CommandQueueFlagCopyOffloadHint},
			hints: nil,
		},
		{
			name:  "synchronous",
			desc:  ze.CommandQueueDesc{Mode: ze.CommandQueueModeSynchronous, Flags: ze.CommandQueueFlagInOrder | ze.CommandQueueFlagCopyOffloadHint},
			hints: []string{performance.HintSynchronousQueue},
		},
		{
			name:  "in-order without copy offload",
			desc:  ze.CommandQueueDesc{Flags: ze.CommandQueueFlagInOrder},
			hints: []string{performance.HintNoCopyOffload},
		},
		{
			name:  "synchronous out-of-order",
			desc:  ze.CommandQueueDesc{Mode: ze.CommandQueueModeSynchronous},
			hints: []string{performance.HintSynchronousQueue, performance.HintOutOfOrder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := performance.New(performance.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
			list := ze.CommandListHandle(0x40)

			result := c.Core().CommandListCreateImmediateEpilogue(1, 2, &tt.desc, &list, ze.Success)

			require.Equal(t, ze.Success, result)
			assert.Equal(t, int64(len(tt.hints)), c.Hints())
			for _, hint := range tt.hints {
				assert.Contains(t, buf.String(), hint)
			}
		})
	}
}

func TestNoHintsForFailedCreate(t *testing.T) {
	c := performance.New()
	desc := ze.CommandQueueDesc{Mode: ze.CommandQueueModeSynchronous}

	assert.Equal(t, ze.Success, c.Core().CommandListCreateImmediateEpilogue(1, 2, &desc, nil, ze.ErrorOutOfHostMemory))
	assert.Zero(t, c.Hints())
}
