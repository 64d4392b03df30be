package handlelifetime

import (
	"levelzero/internal/validation"
	"levelzero/pkg/ze"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

type tools struct {
	validation.BaseTools
	state *state
}

func (t *tools) DeviceGetDebugPropertiesPrologue(hDevice ze.DeviceHandle, _ *zet.DeviceDebugProperties) ze.Result {
	t.state.mu.RLock()
	defer t.state.mu.RUnlock()
	return valid(known(t.state.devices, hDevice))
}

func (t *tools) ModuleGetDebugInfoPrologue(hModule ze.ModuleHandle, _ zet.ModuleDebugInfoFormat, _ *uint64, _ []byte) ze.Result {
	t.state.mu.RLock()
	defer t.state.mu.RUnlock()
	return valid(known(t.state.modules, hModule))
}

func (t *tools) MetricGroupGetPrologue(hDevice ze.DeviceHandle, _ *uint32, _ []zet.MetricGroupHandle) ze.Result {
	t.state.mu.RLock()
	defer t.state.mu.RUnlock()
	return valid(known(t.state.devices, hDevice))
}

type sysman struct {
	validation.BaseSysman
	state *state
}

func (s *sysman) DriverGetEpilogue(count *uint32, drivers []zes.DriverHandle, result ze.Result) ze.Result {
	if result != ze.Success || count == nil {
		return ze.Success
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, h := range drivers[:min(int(*count), len(drivers))] {
		s.state.sysmanDrivers[h] = struct{}{}
	}
	return ze.Success
}

func (s *sysman) DeviceGetPrologue(hDriver zes.DriverHandle, _ *uint32, _ []zes.DeviceHandle) ze.Result {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return valid(known(s.state.sysmanDrivers, hDriver))
}

func (s *sysman) DeviceGetEpilogue(_ zes.DriverHandle, count *uint32, devices []zes.DeviceHandle, result ze.Result) ze.Result {
	if result != ze.Success || count == nil {
		return ze.Success
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, h := range devices[:min(int(*count), len(devices))] {
		s.state.sysmanDevices[h] = struct{}{}
	}
	return ze.Success
}

func (s *sysman) DeviceGetPropertiesPrologue(hDevice zes.DeviceHandle, _ *zes.DeviceProperties) ze.Result {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return valid(known(s.state.sysmanDevices, hDevice))
}

func (s *sysman) DeviceResetPrologue(hDevice zes.DeviceHandle, _ bool) ze.Result {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return valid(known(s.state.sysmanDevices, hDevice))
}

type runtime struct {
	validation.BaseRuntime
	state *state
}

func (r *runtime) TranslateDeviceHandleToIdentifierPrologue(hDevice ze.DeviceHandle) ze.Result {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	return valid(known(r.state.devices, hDevice))
}

// The default context is created by the driver, not through ContextCreate.
func (r *runtime) GetDefaultContextEpilogue(hContext ze.ContextHandle) ze.Result {
	if hContext == 0 {
		return ze.Success
	}
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if _, ok := r.state.contexts[hContext]; !ok {
		r.state.contexts[hContext] = 0
	}
	return ze.Success
}
