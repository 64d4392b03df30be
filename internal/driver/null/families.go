package null

import (
	"fmt"

	"levelzero/pkg/ze"
	"levelzero/pkg/zer"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

// debugInfo is returned by zetModuleGetDebugInfo: an ELF magic followed by
// padding.
var debugInfo = []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0}

func (d *Driver) toolsTable() zet.Table {
	return zet.Table{
		DeviceGetDebugProperties: func(hDevice ze.DeviceHandle, props *zet.DeviceDebugProperties) ze.Result {
			if r, ok := d.enter("zetDeviceGetDebugProperties"); ok {
				return r
			}
			if props == nil {
				return d.fail("zetDeviceGetDebugProperties", ze.ErrorInvalidNullPointer)
			}
			props.Flags = zet.DebugPropertyFlagAttach
			return ze.Success
		},
		ModuleGetDebugInfo: func(_ ze.ModuleHandle, _ zet.ModuleDebugInfoFormat, size *uint64, buf []byte) ze.Result {
			if r, ok := d.enter("zetModuleGetDebugInfo"); ok {
				return r
			}
			if size == nil {
				return d.fail("zetModuleGetDebugInfo", ze.ErrorInvalidNullPointer)
			}
			if buf == nil {
				*size = uint64(len(debugInfo))
				return ze.Success
			}
			*size = uint64(copy(buf, debugInfo))
			return ze.Success
		},
		MetricGroupGet: func(_ ze.DeviceHandle, count *uint32, _ []zet.MetricGroupHandle) ze.Result {
			if r, ok := d.enter("zetMetricGroupGet"); ok {
				return r
			}
			if count == nil {
				return d.fail("zetMetricGroupGet", ze.ErrorInvalidNullPointer)
			}
			*count = 0
			return ze.Success
		},
	}
}

// Sysman handles share values with their core counterparts.
func (d *Driver) sysmanTable() zes.Table {
	return zes.Table{
		Init: func(zes.InitFlags) ze.Result { return d.simple("zesInit") },
		DriverGet: func(count *uint32, drivers []zes.DriverHandle) ze.Result {
			if r, ok := d.enter("zesDriverGet"); ok {
				return r
			}
			if count == nil {
				return d.fail("zesDriverGet", ze.ErrorInvalidNullPointer)
			}
			if *count > 0 && len(drivers) > 0 {
				drivers[0] = zes.DriverHandle(d.driver)
			}
			*count = 1
			return ze.Success
		},
		DeviceGet: func(_ zes.DriverHandle, count *uint32, devices []zes.DeviceHandle) ze.Result {
			if r, ok := d.enter("zesDeviceGet"); ok {
				return r
			}
			if count == nil {
				return d.fail("zesDeviceGet", ze.ErrorInvalidNullPointer)
			}
			total := uint32(len(d.devices))
			if *count == 0 || *count > total {
				*count = total
			}
			if devices == nil {
				return ze.Success
			}
			n := min(int(*count), len(devices))
			for i := range n {
				devices[i] = zes.DeviceHandle(d.devices[i].handle)
			}
			*count = uint32(n)
			return ze.Success
		},
		DeviceGetProperties: func(hDevice zes.DeviceHandle, props *zes.DeviceProperties) ze.Result {
			if r, ok := d.enter("zesDeviceGetProperties"); ok {
				return r
			}
			dev, found := d.device(ze.DeviceHandle(hDevice))
			if !found {
				return d.fail("zesDeviceGetProperties", ze.ErrorInvalidNullHandle)
			}
			if props == nil {
				return d.fail("zesDeviceGetProperties", ze.ErrorInvalidNullPointer)
			}
			*props = zes.DeviceProperties{
				SerialNumber:  dev.props.UUID.String(),
				BoardNumber:   fmt.Sprintf("%#x", dev.props.DeviceID),
				BrandName:     "Null",
				ModelName:     dev.props.Name,
				VendorName:    "Null Vendor",
				DriverVersion: d.version.String(),
			}
			return ze.Success
		},
		DeviceReset: func(zes.DeviceHandle, bool) ze.Result { return d.simple("zesDeviceReset") },
	}
}

func (d *Driver) runtimeTable() zer.Table {
	return zer.Table{
		GetLastErrorDescription: func(description *string) ze.Result {
			if r, ok := d.enter("zerGetLastErrorDescription"); ok {
				return r
			}
			if description == nil {
				return ze.ErrorInvalidNullPointer
			}
			d.mu.Lock()
			*description = d.lastError
			d.mu.Unlock()
			return ze.Success
		},
		TranslateDeviceHandleToIdentifier: func(hDevice ze.DeviceHandle) uint32 {
			d.enter("zerTranslateDeviceHandleToIdentifier")
			for i, dev := range d.devices {
				if dev.handle == hDevice {
					return uint32(i)
				}
			}
			d.fail("zerTranslateDeviceHandleToIdentifier", ze.ErrorInvalidNullHandle)
			return zer.InvalidIdentifier
		},
		TranslateIdentifierToDeviceHandle: func(identifier uint32) ze.DeviceHandle {
			d.enter("zerTranslateIdentifierToDeviceHandle")
			if identifier >= uint32(len(d.devices)) {
				d.fail("zerTranslateIdentifierToDeviceHandle", ze.ErrorInvalidArgument)
				return 0
			}
			return d.devices[identifier].handle
		},
		GetDefaultContext: func() ze.ContextHandle {
			d.enter("zerGetDefaultContext")
			return d.defaultContext
		},
	}
}
