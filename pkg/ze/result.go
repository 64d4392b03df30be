// Package ze holds the core API family: status codes, versions, handles,
// descriptors and the dispatch table a driver fills in.
package ze

import (
	"fmt"
	"runtime"
)

// Result is the status code returned by every entry point.
type Result uint32

const (
	Success  Result = 0
	NotReady Result = 1

	ErrorDeviceLost              Result = 0x70000001
	ErrorOutOfHostMemory         Result = 0x70000002
	ErrorOutOfDeviceMemory       Result = 0x70000003
	ErrorModuleBuildFailure      Result = 0x70000004
	ErrorInsufficientPermissions Result = 0x70010000
	ErrorNotAvailable            Result = 0x70010001

	// Validation range.
	ErrorUninitialized                Result = 0x78000001
	ErrorUnsupportedVersion           Result = 0x78000002
	ErrorUnsupportedFeature           Result = 0x78000003
	ErrorInvalidArgument              Result = 0x78000004
	ErrorInvalidNullHandle            Result = 0x78000005
	ErrorHandleObjectInUse            Result = 0x78000006
	ErrorInvalidNullPointer           Result = 0x78000007
	ErrorInvalidSize                  Result = 0x78000008
	ErrorUnsupportedSize              Result = 0x78000009
	ErrorUnsupportedAlignment         Result = 0x7800000a
	ErrorInvalidSynchronizationObject Result = 0x7800000b
	ErrorInvalidEnumeration           Result = 0x7800000c
	ErrorUnsupportedEnumeration       Result = 0x7800000d

	ErrorUnknown Result = 0x7fffffff
)

var resultNames = map[Result]string{
	Success:                           "ZE_RESULT_SUCCESS",
	NotReady:                          "ZE_RESULT_NOT_READY",
	ErrorDeviceLost:                   "ZE_RESULT_ERROR_DEVICE_LOST",
	ErrorOutOfHostMemory:              "ZE_RESULT_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:            "ZE_RESULT_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorModuleBuildFailure:           "ZE_RESULT_ERROR_MODULE_BUILD_FAILURE",
	ErrorInsufficientPermissions:      "ZE_RESULT_ERROR_INSUFFICIENT_PERMISSIONS",
	ErrorNotAvailable:                 "ZE_RESULT_ERROR_NOT_AVAILABLE",
	ErrorUninitialized:                "ZE_RESULT_ERROR_UNINITIALIZED",
	ErrorUnsupportedVersion:           "ZE_RESULT_ERROR_UNSUPPORTED_VERSION",
	ErrorUnsupportedFeature:           "ZE_RESULT_ERROR_UNSUPPORTED_FEATURE",
	ErrorInvalidArgument:              "ZE_RESULT_ERROR_INVALID_ARGUMENT",
	ErrorInvalidNullHandle:            "ZE_RESULT_ERROR_INVALID_NULL_HANDLE",
	ErrorHandleObjectInUse:            "ZE_RESULT_ERROR_HANDLE_OBJECT_IN_USE",
	ErrorInvalidNullPointer:           "ZE_RESULT_ERROR_INVALID_NULL_POINTER",
	ErrorInvalidSize:                  "ZE_RESULT_ERROR_INVALID_SIZE",
	ErrorUnsupportedSize:              "ZE_RESULT_ERROR_UNSUPPORTED_SIZE",
	ErrorUnsupportedAlignment:         "ZE_RESULT_ERROR_UNSUPPORTED_ALIGNMENT",
	ErrorInvalidSynchronizationObject: "ZE_RESULT_ERROR_INVALID_SYNCHRONIZATION_OBJECT",
	ErrorInvalidEnumeration:           "ZE_RESULT_ERROR_INVALID_ENUMERATION",
	ErrorUnsupportedEnumeration:       "ZE_RESULT_ERROR_UNSUPPORTED_ENUMERATION",
	ErrorUnknown:                      "ZE_RESULT_ERROR_UNKNOWN",
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ZE_RESULT(%#x)", uint32(r))
}

// IsSuccess reports whether r is Success.
func (r Result) IsSuccess() bool {
	return r == Success
}

// ResultError carries a non-success Result out of the API as a Go error,
// along with the call site that observed it.
type ResultError struct {
	Op     string
	Result Result
	File   string
	Line   int
}

func (e *ResultError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("ze: %s: %s", e.Op, e.Result)
	}
	return fmt.Sprintf("ze: %s: %s (%s:%d)", e.Op, e.Result, e.File, e.Line)
}

// Is matches another *ResultError carrying the same Result.
func (e *ResultError) Is(target error) bool {
	t, ok := target.(*ResultError)
	if !ok {
		return false
	}
	return e.Result == t.Result
}

// Check returns nil for Success and a *ResultError otherwise. The caller's
// file and line are recorded on the error.
func Check(op string, r Result) error {
	if r == Success {
		return nil
	}
	err := &ResultError{Op: op, Result: r}
	if _, file, line, ok := runtime.Caller(1); ok {
		err.File = file
		err.Line = line
	}
	return err
}
