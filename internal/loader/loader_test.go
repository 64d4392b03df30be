package loader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelzero/internal/driver/null"
	"levelzero/internal/loader"
	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/parameter"
	"levelzero/pkg/ze"
	"levelzero/pkg/zel"
)

// tagLayer prepends its tag to a shared trace on every zeInit.
type tagLayer struct {
	tag   string
	trace *[]string
	err   error
	got   ze.APIVersion
}

func (l *tagLayer) Intercept(version ze.APIVersion, tables *zel.Tables) error {
	if l.err != nil {
		return l.err
	}
	l.got = version
	next := tables.Core.Init
	tables.Core.Init = func(flags ze.InitFlags) ze.Result {
		*l.trace = append(*l.trace, l.tag)
		return next(flags)
	}
	return nil
}

func TestNewRequiresDriver(t *testing.T) {
	_, err := loader.New(nil)
	assert.ErrorIs(t, err, loader.ErrNilDriver)
}

func TestLoadWithoutLayersIsTheDriver(t *testing.T) {
	driver := null.New()
	ld, err := loader.New(driver)
	require.NoError(t, err)

	tables, err := ld.Load()
	require.NoError(t, err)
	require.Equal(t, ze.Success, tables.Core.Init(0))
	assert.Equal(t, 1, driver.Calls("zeInit"))
}

func TestLayersWrapInOrder(t *testing.T) {
	var trace []string
	first := &tagLayer{tag: "first", trace: &trace}
	second := &tagLayer{tag: "second", trace: &trace}

	ld, err := loader.New(null.New(),
		loader.WithLayer(first),
		loader.WithLayer(second),
		loader.WithAPIVersion(ze.APIVersion1_5),
	)
	require.NoError(t, err)

	tables, err := ld.Load()
	require.NoError(t, err)
	require.Equal(t, ze.Success, tables.Core.Init(0))

	assert.Equal(t, []string{"second", "first"}, trace)
	assert.Equal(t, ze.APIVersion1_5, first.got)
}

func TestLoadReportsLayerFailure(t *testing.T) {
	boom := errors.New("boom")
	ld, err := loader.New(null.New(), loader.WithLayer(&tagLayer{err: boom}))
	require.NoError(t, err)

	_, err = ld.Load()
	assert.ErrorIs(t, err, boom)
}

func TestValidationLayerGuardsDriver(t *testing.T) {
	registry := validation.NewRegistry()
	require.NoError(t, registry.Append(parameter.New()))
	layer, err := validation.New(registry)
	require.NoError(t, err)

	driver := null.New()
	ld, err := loader.New(driver, loader.WithLayer(layer))
	require.NoError(t, err)
	tables, err := ld.Load()
	require.NoError(t, err)

	assert.Equal(t, ze.ErrorInvalidEnumeration, tables.Core.Init(0xff))
	assert.Zero(t, driver.Calls("zeInit"))
	assert.Equal(t, ze.Success, tables.Core.Init(ze.InitFlagGPUOnly))
	assert.Equal(t, 1, driver.Calls("zeInit"))
}
