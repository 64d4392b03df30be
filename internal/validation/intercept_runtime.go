package validation

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zer"
)

// interceptRuntime saves the downstream entries of t and replaces each of
// them with the matching intercept.
func (l *Layer) interceptRuntime(t *zer.Table) {
	l.runtime = *t

	t.GetLastErrorDescription = l.zerGetLastErrorDescription
	t.TranslateDeviceHandleToIdentifier = l.zerTranslateDeviceHandleToIdentifier
	t.TranslateIdentifierToDeviceHandle = l.zerTranslateIdentifierToDeviceHandle
	t.GetDefaultContext = l.zerGetDefaultContext
}

func (l *Layer) zerGetLastErrorDescription(description *string) ze.Result {
	next := l.runtime.GetLastErrorDescription
	if next == nil {
		return l.unsupported("zerGetLastErrorDescription")
	}
	return dispatch(l, "zerGetLastErrorDescription", runtimeOf,
		func(c RuntimeEntryPoints) ze.Result { return c.GetLastErrorDescriptionPrologue(description) },
		func() ze.Result { return next(description) },
		func(c RuntimeEntryPoints, r ze.Result) ze.Result { return c.GetLastErrorDescriptionEpilogue(description, r) },
	)
}

func (l *Layer) zerTranslateDeviceHandleToIdentifier(hDevice ze.DeviceHandle) uint32 {
	next := l.runtime.TranslateDeviceHandleToIdentifier
	if next == nil {
		l.unsupported("zerTranslateDeviceHandleToIdentifier")
		return zer.InvalidIdentifier
	}
	return dispatchValue(l, "zerTranslateDeviceHandleToIdentifier", runtimeOf,
		func(c RuntimeEntryPoints) ze.Result { return c.TranslateDeviceHandleToIdentifierPrologue(hDevice) },
		func() uint32 { return next(hDevice) },
		func(c RuntimeEntryPoints, id uint32) ze.Result {
			return c.TranslateDeviceHandleToIdentifierEpilogue(hDevice, id)
		},
		zer.InvalidIdentifier,
	)
}

func (l *Layer) zerTranslateIdentifierToDeviceHandle(identifier uint32) ze.DeviceHandle {
	next := l.runtime.TranslateIdentifierToDeviceHandle
	if next == nil {
		l.unsupported("zerTranslateIdentifierToDeviceHandle")
		return 0
	}
	return dispatchValue(l, "zerTranslateIdentifierToDeviceHandle", runtimeOf,
		func(c RuntimeEntryPoints) ze.Result { return c.TranslateIdentifierToDeviceHandlePrologue(identifier) },
		func() ze.DeviceHandle { return next(identifier) },
		func(c RuntimeEntryPoints, h ze.DeviceHandle) ze.Result {
			return c.TranslateIdentifierToDeviceHandleEpilogue(identifier, h)
		},
		0,
	)
}

func (l *Layer) zerGetDefaultContext() ze.ContextHandle {
	next := l.runtime.GetDefaultContext
	if next == nil {
		l.unsupported("zerGetDefaultContext")
		return 0
	}
	return dispatchValue(l, "zerGetDefaultContext", runtimeOf,
		func(c RuntimeEntryPoints) ze.Result { return c.GetDefaultContextPrologue() },
		func() ze.ContextHandle { return next() },
		func(c RuntimeEntryPoints, h ze.ContextHandle) ze.Result { return c.GetDefaultContextEpilogue(h) },
		0,
	)
}
