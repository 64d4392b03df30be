package validation

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
)

// interceptSysman saves the downstream entries of t and replaces each of them with
// the matching intercept.
func (l *Layer) interceptSysman(t *zes.Table) {
	l.sysman = *t

	t.Init = l.zesInit
	t.DriverGet = l.zesDriverGet
	t.DeviceGet = l.zesDeviceGet
	t.DeviceGetProperties = l.zesDeviceGetProperties
	t.DeviceReset = l.zesDeviceReset
}

func (l *Layer) zesInit(flags zes.InitFlags) ze.Result {
	next := l.sysman.Init
	if next == nil {
		return l.unsupported("zesInit")
	}
	return dispatch(l, "zesInit", sysmanOf,
		func(c SysmanEntryPoints) ze.Result { return c.InitPrologue(flags) },
		func() ze.Result { return next(flags) },
		func(c SysmanEntryPoints, r ze.Result) ze.Result { return c.InitEpilogue(flags, r) },
	)
}

func (l *Layer) zesDriverGet(count *uint32, drivers []zes.DriverHandle) ze.Result {
	next := l.sysman.DriverGet
	if next == nil {
		return l.unsupported("zesDriverGet")
	}
	return dispatch(l, "zesDriverGet", sysmanOf,
		func(c SysmanEntryPoints) ze.Result { return c.DriverGetPrologue(count, drivers) },
		func() ze.Result { return next(count, drivers) },
		func(c SysmanEntryPoints, r ze.Result) ze.Result { return c.DriverGetEpilogue(count, drivers, r) },
	)
}

func (l *Layer) zesDeviceGet(hDriver zes.DriverHandle, count *uint32, devices []zes.DeviceHandle) ze.Result {
	next := l.sysman.DeviceGet
	if next == nil {
		return l.unsupported("zesDeviceGet")
	}
	return dispatch(l, "zesDeviceGet", sysmanOf,
		func(c SysmanEntryPoints) ze.Result { return c.DeviceGetPrologue(hDriver, count, devices) },
		func() ze.Result { return next(hDriver, count, devices) },
		func(c SysmanEntryPoints, r ze.Result) ze.Result { return c.DeviceGetEpilogue(hDriver, count, devices, r) },
	)
}

func (l *Layer) zesDeviceGetProperties(hDevice zes.DeviceHandle, props *zes.DeviceProperties) ze.Result {
	next := l.sysman.DeviceGetProperties
	if next == nil {
		return l.unsupported("zesDeviceGetProperties")
	}
	return dispatch(l, "zesDeviceGetProperties", sysmanOf,
		func(c SysmanEntryPoints) ze.Result { return c.DeviceGetPropertiesPrologue(hDevice, props) },
		func() ze.Result { return next(hDevice, props) },
		func(c SysmanEntryPoints, r ze.Result) ze.Result { return c.DeviceGetPropertiesEpilogue(hDevice, props, r) },
	)
}

func (l *Layer) zesDeviceReset(hDevice zes.DeviceHandle, force bool) ze.Result {
	next := l.sysman.DeviceReset
	if next == nil {
		return l.unsupported("zesDeviceReset")
	}
	return dispatch(l, "zesDeviceReset", sysmanOf,
		func(c SysmanEntryPoints) ze.Result { return c.DeviceResetPrologue(hDevice, force) },
		func() ze.Result { return next(hDevice, force) },
		func(c SysmanEntryPoints, r ze.Result) ze.Result { return c.DeviceResetEpilogue(hDevice, force, r) },
	)
}
