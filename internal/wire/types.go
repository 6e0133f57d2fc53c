package wire

// Device is the decoded form of one DPLL device reply.
type Device struct {
	ID                     uint32
	ModuleName             string
	HasModuleName          bool
	Mode                   uint32
	HasMode                bool
	ModeSupported          []uint32
	ClockID                uint64
	HasClockID             bool
	Type                   uint32
	HasType                bool
	LockStatus             uint32
	HasLockStatus          bool
	LockStatusError        uint32
	HasLockStatusError     bool
	ClockQualityLevel      []uint32
	Temp                   int32
	HasTemp                bool
	PhaseOffsetMonitor     uint32
	HasPhaseOffsetMonitor  bool
	PhaseOffsetAvgFactor   uint32
	HasPhaseOffsetAvgFactor bool
}

// FrequencyRange is the {min,max} sub-record nested inside
// frequency-supported and esync-frequency-supported entries.
type FrequencyRange struct {
	Min    uint64
	HasMin bool
	Max    uint64
	HasMax bool
}

// ParentDevice is the sub-record nested inside a pin's parent-device.
type ParentDevice struct {
	ParentID      uint32
	Direction     uint32
	HasDirection  bool
	Prio          uint32
	HasPrio       bool
	State         uint32
	HasState      bool
	PhaseOffset   int64
	HasPhaseOffset bool
}

// ParentPin is the sub-record nested inside a pin's parent-pin.
type ParentPin struct {
	ParentID uint32
	State    uint32
	HasState bool
}

// ReferenceSync is the sub-record nested inside a pin's reference-sync.
type ReferenceSync struct {
	PinID    uint32
	State    uint32
	HasState bool
}

// Pin is the decoded form of one DPLL pin reply.
type Pin struct {
	ID                          uint32
	ModuleName                  string
	HasModuleName               bool
	ClockID                     uint64
	HasClockID                  bool
	BoardLabel                  string
	HasBoardLabel               bool
	PanelLabel                  string
	HasPanelLabel               bool
	PackageLabel                string
	HasPackageLabel             bool
	Type                        uint32
	HasType                     bool
	Frequency                   uint64
	HasFrequency                bool
	FrequencySupported          []FrequencyRange
	Capabilities                uint32
	HasCapabilities              bool
	PhaseAdjustMin              int32
	HasPhaseAdjustMin           bool
	PhaseAdjustMax              int32
	HasPhaseAdjustMax           bool
	PhaseAdjust                 int32
	HasPhaseAdjust              bool
	FractionalFrequencyOffset   int64
	HasFractionalFrequencyOffset bool
	EsyncFrequency              uint64
	HasEsyncFrequency           bool
	EsyncFrequencySupported     []FrequencyRange
	EsyncPulse                  uint32
	HasEsyncPulse               bool
	ParentDevice                []ParentDevice
	ParentPin                   []ParentPin
	ReferenceSync               []ReferenceSync
}

// EventKind identifies the notification event carried by one
// asynchronous monitor message.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventDeviceCreate
	EventDeviceChange
	EventDeviceDelete
	EventPinCreate
	EventPinChange
	EventPinDelete
)

// String returns the bracketed tag the notification loop prefixes
// rendered events with, e.g. "[PIN_CHANGE]".
func (k EventKind) String() string {
	switch k {
	case EventDeviceCreate:
		return "[DEVICE_CREATE]"
	case EventDeviceChange:
		return "[DEVICE_CHANGE]"
	case EventDeviceDelete:
		return "[DEVICE_DELETE]"
	case EventPinCreate:
		return "[PIN_CREATE]"
	case EventPinChange:
		return "[PIN_CHANGE]"
	case EventPinDelete:
		return "[PIN_DELETE]"
	default:
		return "[UNKNOWN]"
	}
}

// EventKindForCommand maps a genetlink command id to the notification
// event kind it represents; ok is false for any command the monitor
// loop does not know how to classify.
func EventKindForCommand(cmd uint8) (EventKind, bool) {
	switch cmd {
	case CmdDeviceCreateNtf:
		return EventDeviceCreate, true
	case CmdDeviceChangeNtf:
		return EventDeviceChange, true
	case CmdDeviceDeleteNtf:
		return EventDeviceDelete, true
	case CmdPinCreateNtf:
		return EventPinCreate, true
	case CmdPinChangeNtf:
		return EventPinChange, true
	case CmdPinDeleteNtf:
		return EventPinDelete, true
	default:
		return EventUnknown, false
	}
}

// NotificationEvent is the envelope the monitor loop hands to the
// renderer for each delivered message.
type NotificationEvent struct {
	Kind   EventKind
	Device *Device
	Pin    *Pin
}
