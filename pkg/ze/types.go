package ze

import "github.com/google/uuid"

// InitFlags selects which driver types Init loads. Must be 0 or a
// combination of the InitFlag values.
type InitFlags uint32

const (
	InitFlagGPUOnly InitFlags = 1 << 0
	InitFlagVPUOnly InitFlags = 1 << 1

	InitFlagsMask = InitFlagGPUOnly | InitFlagVPUOnly
)

type DeviceType uint32

const (
	DeviceTypeGPU  DeviceType = 1
	DeviceTypeCPU  DeviceType = 2
	DeviceTypeFPGA DeviceType = 3
	DeviceTypeMCA  DeviceType = 4
	DeviceTypeVPU  DeviceType = 5
)

type DeviceProperties struct {
	Type            DeviceType
	VendorID        uint32
	DeviceID        uint32
	UUID            uuid.UUID
	Name            string
	MaxMemAllocSize uint64
}

type ContextDesc struct {
	Flags uint32
}

type ModuleFormat uint32

const (
	ModuleFormatILSPIRV ModuleFormat = 0
	ModuleFormatNative  ModuleFormat = 1
)

type ModuleDesc struct {
	Format     ModuleFormat
	Input      []byte
	BuildFlags string
}

type CommandListFlags uint32

const (
	CommandListFlagRelaxedOrdering    CommandListFlags = 1 << 0
	CommandListFlagMaximizeThroughput CommandListFlags = 1 << 1
	CommandListFlagExplicitOnly       CommandListFlags = 1 << 2
	CommandListFlagInOrder            CommandListFlags = 1 << 3

	CommandListFlagsMask = CommandListFlagRelaxedOrdering | CommandListFlagMaximizeThroughput |
		CommandListFlagExplicitOnly | CommandListFlagInOrder
)

type CommandListDesc struct {
	CommandQueueGroupOrdinal uint32
	Flags                    CommandListFlags
}

type CommandQueueFlags uint32

const (
	CommandQueueFlagExplicitOnly    CommandQueueFlags = 1 << 0
	CommandQueueFlagInOrder         CommandQueueFlags = 1 << 1
	CommandQueueFlagCopyOffloadHint CommandQueueFlags = 1 << 2

	CommandQueueFlagsMask = CommandQueueFlagExplicitOnly | CommandQueueFlagInOrder | CommandQueueFlagCopyOffloadHint
)

type CommandQueueMode uint32

const (
	CommandQueueModeDefault      CommandQueueMode = 0
	CommandQueueModeSynchronous  CommandQueueMode = 1
	CommandQueueModeAsynchronous CommandQueueMode = 2
)

type CommandQueuePriority uint32

const (
	CommandQueuePriorityNormal       CommandQueuePriority = 0
	CommandQueuePriorityPriorityLow  CommandQueuePriority = 1
	CommandQueuePriorityPriorityHigh CommandQueuePriority = 2
)

type CommandQueueDesc struct {
	Ordinal  uint32
	Index    uint32
	Flags    CommandQueueFlags
	Mode     CommandQueueMode
	Priority CommandQueuePriority
}

type EventPoolFlags uint32

const (
	EventPoolFlagHostVisible     EventPoolFlags = 1 << 0
	EventPoolFlagIPC             EventPoolFlags = 1 << 1
	EventPoolFlagKernelTimestamp EventPoolFlags = 1 << 2

	EventPoolFlagsMask = EventPoolFlagHostVisible | EventPoolFlagIPC | EventPoolFlagKernelTimestamp
)

type EventPoolDesc struct {
	Flags EventPoolFlags
	Count uint32
}

type EventScopeFlags uint32

const (
	EventScopeFlagSubdevice EventScopeFlags = 1 << 0
	EventScopeFlagDevice    EventScopeFlags = 1 << 1
	EventScopeFlagHost      EventScopeFlags = 1 << 2

	EventScopeFlagsMask = EventScopeFlagSubdevice | EventScopeFlagDevice | EventScopeFlagHost
)

type EventDesc struct {
	Index  uint32
	Signal EventScopeFlags
	Wait   EventScopeFlags
}

type HostMemAllocDesc struct {
	Flags uint32
}

type DeviceMemAllocDesc struct {
	Flags   uint32
	Ordinal uint32
}
