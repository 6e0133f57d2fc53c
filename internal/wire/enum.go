package wire

import "fmt"

// UnknownLabelError is returned by Enum.Encode for a label the enum does
// not declare.
type UnknownLabelError struct {
	Enum  string
	Label string
}

func (e UnknownLabelError) Error() string {
	return fmt.Sprintf("wire: enum %s: unknown label %q", e.Enum, e.Label)
}

// unknownLabel is what Decode renders for a wire code the enum does not
// declare. Per spec this is lenient: the placeholder is rendered rather
// than treated as a hard decode error.
const unknownLabel = "unknown"

// Enum is a bi-directional map between wire codes and their canonical
// textual labels, declared once per kind of enumerated attribute.
type Enum struct {
	name       string
	codeToName map[uint32]string
	nameToCode map[string]uint32
}

// NewEnum builds an Enum from a list of (code, label) pairs. Order does
// not matter: both directions are looked up by map.
func NewEnum(name string, pairs ...struct {
	Code  uint32
	Label string
}) Enum {
	e := Enum{
		name:       name,
		codeToName: make(map[uint32]string, len(pairs)),
		nameToCode: make(map[string]uint32, len(pairs)),
	}
	for _, p := range pairs {
		e.codeToName[p.Code] = p.Label
		e.nameToCode[p.Label] = p.Code
	}
	return e
}

// Decode returns the canonical label for code, or "unknown" if the enum
// does not declare it.
func (e Enum) Decode(code uint32) string {
	if label, ok := e.codeToName[code]; ok {
		return label
	}
	return unknownLabel
}

// Encode returns the wire code for label, or UnknownLabelError if the
// enum does not declare it.
func (e Enum) Encode(label string) (uint32, error) {
	if code, ok := e.nameToCode[label]; ok {
		return code, nil
	}
	return 0, UnknownLabelError{Enum: e.name, Label: label}
}

func pair(code uint32, label string) struct {
	Code  uint32
	Label string
} {
	return struct {
		Code  uint32
		Label string
	}{Code: code, Label: label}
}

// DeviceModeEnum covers the device `mode`/`mode-supported` wire values.
// The kernel additionally reports holdover/freerun in mode_supported
// even though `device set mode` only ever requests manual/automatic.
var DeviceModeEnum = NewEnum("device-mode",
	pair(1, "manual"),
	pair(2, "automatic"),
	pair(3, "holdover"),
	pair(4, "freerun"),
)

// DeviceTypeEnum covers the device `type` wire values.
var DeviceTypeEnum = NewEnum("device-type",
	pair(1, "pps"),
	pair(2, "eec"),
)

// LockStatusEnum covers the device `lock_status` wire values.
var LockStatusEnum = NewEnum("lock-status",
	pair(1, "unlocked"),
	pair(2, "locked"),
	pair(3, "locked-ho-acq"),
	pair(4, "holdover"),
)

// LockStatusErrorEnum covers the device `lock_status_error` wire values.
var LockStatusErrorEnum = NewEnum("lock-status-error",
	pair(1, "none"),
	pair(2, "undefined"),
	pair(3, "media-down"),
	pair(4, "fractional-frequency-offset-too-high"),
)

// ClockQualityLevelEnum covers the device `clock_quality_level` wire
// values (ITU-T quality levels).
var ClockQualityLevelEnum = NewEnum("clock-quality-level",
	pair(1, "prc"),
	pair(2, "ssu-a"),
	pair(3, "ssu-b"),
	pair(4, "eec1"),
	pair(5, "eec2"),
	pair(6, "sec"),
)

// PinTypeEnum covers the pin `type` wire values.
var PinTypeEnum = NewEnum("pin-type",
	pair(1, "mux"),
	pair(2, "ext"),
	pair(3, "synce-eth-port"),
	pair(4, "int-oscillator"),
	pair(5, "gnss"),
)

// PinDirectionEnum covers the pin `direction` wire values.
var PinDirectionEnum = NewEnum("pin-direction",
	pair(1, "input"),
	pair(2, "output"),
)

// PinStateEnum covers the pin `state` wire values, used both at top
// level (pin set) and inside parent-device/parent-pin/reference-sync.
var PinStateEnum = NewEnum("pin-state",
	pair(1, "connected"),
	pair(2, "disconnected"),
	pair(3, "selectable"),
)

// PhaseOffsetMonitorEnum covers the device `phase_offset_monitor` 0/1
// wire representation.
var PhaseOffsetMonitorEnum = NewEnum("phase-offset-monitor",
	pair(0, "disabled"),
	pair(1, "enabled"),
)

// CapabilityLabels renders a pin capabilities bitmask as the canonically
// ordered subset of known bit names present; unknown bits are ignored.
func CapabilityLabels(bits uint32) []string {
	order := []struct {
		bit   uint32
		label string
	}{
		{PinCapStateCanChange, "state-can-change"},
		{PinCapPriorityCanChange, "priority-can-change"},
		{PinCapDirectionCanChange, "direction-can-change"},
	}
	labels := make([]string, 0, len(order))
	for _, o := range order {
		if bits&o.bit != 0 {
			labels = append(labels, o.label)
		}
	}
	return labels
}
