package validation

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zet"
)

// interceptTools saves the downstream entries of t and replaces each of them with
// the matching intercept.
func (l *Layer) interceptTools(t *zet.Table) {
	l.tools = *t

	t.DeviceGetDebugProperties = l.zetDeviceGetDebugProperties
	t.ModuleGetDebugInfo = l.zetModuleGetDebugInfo
	t.MetricGroupGet = l.zetMetricGroupGet
}

func (l *Layer) zetDeviceGetDebugProperties(hDevice ze.DeviceHandle, props *zet.DeviceDebugProperties) ze.Result {
	next := l.tools.DeviceGetDebugProperties
	if next == nil {
		return l.unsupported("zetDeviceGetDebugProperties")
	}
	return dispatch(l, "zetDeviceGetDebugProperties", toolsOf,
		func(c ToolsEntryPoints) ze.Result { return c.DeviceGetDebugPropertiesPrologue(hDevice, props) },
		func() ze.Result { return next(hDevice, props) },
		func(c ToolsEntryPoints, r ze.Result) ze.Result { return c.DeviceGetDebugPropertiesEpilogue(hDevice, props, r) },
	)
}

func (l *Layer) zetModuleGetDebugInfo(hModule ze.ModuleHandle, format zet.ModuleDebugInfoFormat, size *uint64, debugInfo []byte) ze.Result {
	next := l.tools.ModuleGetDebugInfo
	if next == nil {
		return l.unsupported("zetModuleGetDebugInfo")
	}
	return dispatch(l, "zetModuleGetDebugInfo", toolsOf,
		func(c ToolsEntryPoints) ze.Result { return c.ModuleGetDebugInfoPrologue(hModule, format, size, debugInfo) },
		func() ze.Result { return next(hModule, format, size, debugInfo) },
		func(c ToolsEntryPoints, r ze.Result) ze.Result { return c.ModuleGetDebugInfoEpilogue(hModule, format, size, debugInfo, r) },
	)
}

func (l *Layer) zetMetricGroupGet(hDevice ze.DeviceHandle, count *uint32, groups []zet.MetricGroupHandle) ze.Result {
	next := l.tools.MetricGroupGet
	if next == nil {
		return l.unsupported("zetMetricGroupGet")
	}
	return dispatch(l, "zetMetricGroupGet", toolsOf,
		func(c ToolsEntryPoints) ze.Result { return c.MetricGroupGetPrologue(hDevice, count, groups) },
		func() ze.Result { return next(hDevice, count, groups) },
		func(c ToolsEntryPoints, r ze.Result) ze.Result { return c.MetricGroupGetEpilogue(hDevice, count, groups, r) },
	)
}
