package wire

// Kind identifies how an attribute's raw bytes are interpreted.
type Kind int

const (
	KindU8 Kind = iota
	KindU32
	KindU64
	KindS32
	KindS64
	KindStr
	KindNest
	KindEnum
)

// Cardinality marks whether an attribute id may repeat at its level.
type Cardinality int

const (
	Single Cardinality = iota
	Multi
)

// FieldSpec is one entry of a per-object attribute schema: wire id,
// decoding kind, and whether it may repeat.
type FieldSpec struct {
	Name        string
	ID          uint16
	Kind        Kind
	Cardinality Cardinality
}

// Generic netlink controller family, used to resolve the dpll family by
// name before any dpll command can be sent.
const (
	GenlCtrlFamilyID   uint16 = 0x10
	CtrlCmdGetFamily   uint8  = 3
	CtrlAttrFamilyID   uint16 = 1
	CtrlAttrFamilyName uint16 = 2
	CtrlAttrMcastGroups uint16 = 7

	CtrlAttrMcastGrpName uint16 = 1
	CtrlAttrMcastGrpID   uint16 = 2
)

// DPLL family name and multicast group, from the kernel uAPI.
const (
	FamilyName     = "dpll"
	MonitorGroup   = "monitor"
)

// Command IDs, matching <linux/dpll.h>.
const (
	CmdDeviceIDGet     uint8 = 1
	CmdDeviceGet       uint8 = 2
	CmdDeviceSet       uint8 = 3
	CmdDeviceCreateNtf uint8 = 4
	CmdDeviceDeleteNtf uint8 = 5
	CmdDeviceChangeNtf uint8 = 6
	CmdPinIDGet        uint8 = 7
	CmdPinGet          uint8 = 8
	CmdPinSet          uint8 = 9
	CmdPinCreateNtf    uint8 = 10
	CmdPinDeleteNtf    uint8 = 11
	CmdPinChangeNtf    uint8 = 12
)

// Device attribute wire ids.
const (
	DeviceID                  uint16 = 1
	DeviceModuleName          uint16 = 2
	DeviceClockID             uint16 = 4
	DeviceMode                uint16 = 5
	DeviceModeSupported       uint16 = 6
	DeviceLockStatus          uint16 = 7
	DeviceTemp                uint16 = 8
	DeviceType                uint16 = 9
	DeviceLockStatusError     uint16 = 10
	DeviceClockQualityLevel   uint16 = 11
	DevicePhaseOffsetMonitor  uint16 = 12
	DevicePhaseOffsetAvgFactor uint16 = 13
)

// DeviceSchema describes every attribute the device object understands.
var DeviceSchema = []FieldSpec{
	{"id", DeviceID, KindU32, Single},
	{"module-name", DeviceModuleName, KindStr, Single},
	{"clock-id", DeviceClockID, KindU64, Single},
	{"mode", DeviceMode, KindEnum, Single},
	{"mode-supported", DeviceModeSupported, KindEnum, Multi},
	{"lock-status", DeviceLockStatus, KindEnum, Single},
	{"temp", DeviceTemp, KindS32, Single},
	{"type", DeviceType, KindEnum, Single},
	{"lock-status-error", DeviceLockStatusError, KindEnum, Single},
	{"clock-quality-level", DeviceClockQualityLevel, KindEnum, Multi},
	{"phase-offset-monitor", DevicePhaseOffsetMonitor, KindU32, Single},
	{"phase-offset-avg-factor", DevicePhaseOffsetAvgFactor, KindU32, Single},
}

// Pin attribute wire ids. Several of these ids are intentionally reused
// inside the PARENT_DEVICE/PARENT_PIN/REFERENCE_SYNC nests below,
// matching the kernel's own nlattr layout.
const (
	PinID                        uint16 = 1
	PinParentID                  uint16 = 2
	PinModuleName                uint16 = 3
	PinClockID                   uint16 = 5
	PinBoardLabel                uint16 = 6
	PinPanelLabel                uint16 = 7
	PinPackageLabel              uint16 = 8
	PinType                      uint16 = 9
	PinDirection                 uint16 = 10
	PinFrequency                 uint16 = 11
	PinFrequencySupported        uint16 = 12
	PinFrequencyMin              uint16 = 13
	PinFrequencyMax              uint16 = 14
	PinPrio                      uint16 = 15
	PinState                     uint16 = 16
	PinCapabilities              uint16 = 17
	PinParentDevice              uint16 = 18
	PinParentPin                 uint16 = 19
	PinPhaseAdjustMin            uint16 = 20
	PinPhaseAdjustMax            uint16 = 21
	PinPhaseAdjust               uint16 = 22
	PinPhaseOffset                uint16 = 23
	PinFractionalFrequencyOffset uint16 = 24
	PinEsyncFrequency            uint16 = 25
	PinEsyncFrequencySupported   uint16 = 26
	PinEsyncPulse                uint16 = 27
	PinReferenceSync             uint16 = 28
	PinEsyncFrequencyMin         uint16 = 29
	PinEsyncFrequencyMax         uint16 = 30
)

// Pin capability bits, carried in the PinCapabilities bitmask.
const (
	PinCapDirectionCanChange uint32 = 1 << 0
	PinCapPriorityCanChange  uint32 = 1 << 1
	PinCapStateCanChange     uint32 = 1 << 2
)

// PinSchema describes every top-level attribute the pin object understands.
var PinSchema = []FieldSpec{
	{"id", PinID, KindU32, Single},
	{"module-name", PinModuleName, KindStr, Single},
	{"clock-id", PinClockID, KindU64, Single},
	{"board-label", PinBoardLabel, KindStr, Single},
	{"panel-label", PinPanelLabel, KindStr, Single},
	{"package-label", PinPackageLabel, KindStr, Single},
	{"type", PinType, KindEnum, Single},
	{"frequency", PinFrequency, KindU64, Single},
	{"frequency-supported", PinFrequencySupported, KindNest, Multi},
	{"capabilities", PinCapabilities, KindU32, Single},
	{"phase-adjust-min", PinPhaseAdjustMin, KindS32, Single},
	{"phase-adjust-max", PinPhaseAdjustMax, KindS32, Single},
	{"phase-adjust", PinPhaseAdjust, KindS32, Single},
	{"fractional-frequency-offset", PinFractionalFrequencyOffset, KindS32, Single},
	{"esync-frequency", PinEsyncFrequency, KindU64, Single},
	{"esync-frequency-supported", PinEsyncFrequencySupported, KindNest, Multi},
	{"esync-pulse", PinEsyncPulse, KindU32, Single},
	{"parent-device", PinParentDevice, KindNest, Multi},
	{"parent-pin", PinParentPin, KindNest, Multi},
	{"reference-sync", PinReferenceSync, KindNest, Multi},
}

// FrequencyRangeSchema describes the {min,max} sub-record nested inside
// frequency-supported and esync-frequency-supported entries.
var FrequencyRangeSchema = []FieldSpec{
	{"min", PinFrequencyMin, KindU64, Single},
	{"max", PinFrequencyMax, KindU64, Single},
}

// EsyncFrequencyRangeSchema is the esync analogue of FrequencyRangeSchema.
var EsyncFrequencyRangeSchema = []FieldSpec{
	{"min", PinEsyncFrequencyMin, KindU64, Single},
	{"max", PinEsyncFrequencyMax, KindU64, Single},
}

// ParentDeviceSchema describes the sub-record nested inside parent-device.
var ParentDeviceSchema = []FieldSpec{
	{"parent-id", PinParentID, KindU32, Single},
	{"direction", PinDirection, KindEnum, Single},
	{"prio", PinPrio, KindU32, Single},
	{"state", PinState, KindEnum, Single},
	{"phase-offset", PinPhaseOffset, KindS64, Single},
}

// ParentPinSchema describes the sub-record nested inside parent-pin.
var ParentPinSchema = []FieldSpec{
	{"parent-id", PinParentID, KindU32, Single},
	{"state", PinState, KindEnum, Single},
}

// ReferenceSyncSchema describes the sub-record nested inside reference-sync.
var ReferenceSyncSchema = []FieldSpec{
	{"pin-id", PinID, KindU32, Single},
	{"state", PinState, KindEnum, Single},
}

// FindByName looks up a schema entry by its CLI keyword.
func FindByName(schema []FieldSpec, name string) (FieldSpec, bool) {
	for _, f := range schema {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FindByID looks up a schema entry by wire id.
func FindByID(schema []FieldSpec, id uint16) (FieldSpec, bool) {
	for _, f := range schema {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// MultiIDs returns the wire ids in schema declared multi-cardinality.
func MultiIDs(schema []FieldSpec) []uint16 {
	ids := make([]uint16, 0, 4)
	for _, f := range schema {
		if f.Cardinality == Multi {
			ids = append(ids, f.ID)
		}
	}
	return ids
}
