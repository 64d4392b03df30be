// Package zer holds the runtime API family. Unlike the other families some
// entry points return a value instead of a status code; failures are then
// signalled with a sentinel value.
package zer

import (
	"math"

	"levelzero/pkg/ze"
)

// InvalidIdentifier is returned by TranslateDeviceHandleToIdentifier on failure.
const InvalidIdentifier uint32 = math.MaxUint32

// Table is the runtime dispatch table.
type Table struct {
	GetLastErrorDescription           func(description *string) ze.Result
	TranslateDeviceHandleToIdentifier func(hDevice ze.DeviceHandle) uint32
	TranslateIdentifierToDeviceHandle func(identifier uint32) ze.DeviceHandle
	GetDefaultContext                 func() ze.ContextHandle
}
