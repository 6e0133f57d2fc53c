package dispatch

import (
	"fmt"
	"strings"

	"github.com/orosp/iproute2/internal/output"
	"github.com/orosp/iproute2/internal/wire"
)

// renderDevice writes dev into sink as one entity. header is the
// leading line text the text sink prints ("device id N"); pass "" for
// an anonymous array element.
func renderDevice(sink output.Sink, dev *wire.Device, header string) {
	sink.OpenObject(header)
	sink.FieldU("id", uint64(dev.ID))
	if dev.HasModuleName {
		sink.FieldStr("module-name", dev.ModuleName)
	}
	if dev.HasClockID {
		sink.FieldHex("clock-id", dev.ClockID)
	}
	if dev.HasMode {
		sink.FieldStr("mode", wire.DeviceModeEnum.Decode(dev.Mode))
	}
	for _, m := range dev.ModeSupported {
		sink.FieldStr("mode-supported", wire.DeviceModeEnum.Decode(m))
	}
	if dev.HasLockStatus {
		sink.FieldStr("lock-status", wire.LockStatusEnum.Decode(dev.LockStatus))
	}
	if dev.HasLockStatusError {
		sink.FieldStr("lock-status-error", wire.LockStatusErrorEnum.Decode(dev.LockStatusError))
	}
	for _, q := range dev.ClockQualityLevel {
		sink.FieldStr("clock-quality-level", wire.ClockQualityLevelEnum.Decode(q))
	}
	if dev.HasTemp {
		sink.FieldStr("temp", formatTemp(dev.Temp))
	}
	if dev.HasType {
		sink.FieldStr("type", wire.DeviceTypeEnum.Decode(dev.Type))
	}
	if dev.HasPhaseOffsetMonitor {
		sink.FieldStr("phase-offset-monitor", wire.PhaseOffsetMonitorEnum.Decode(dev.PhaseOffsetMonitor))
	}
	if dev.HasPhaseOffsetAvgFactor {
		sink.FieldU("phase-offset-avg-factor", uint64(dev.PhaseOffsetAvgFactor))
	}
	sink.CloseObject()
}

func renderPin(sink output.Sink, pin *wire.Pin, header string) {
	sink.OpenObject(header)
	sink.FieldU("id", uint64(pin.ID))
	if pin.HasModuleName {
		sink.FieldStr("module-name", pin.ModuleName)
	}
	if pin.HasClockID {
		sink.FieldHex("clock-id", pin.ClockID)
	}
	if pin.HasBoardLabel {
		sink.FieldStr("board-label", pin.BoardLabel)
	}
	if pin.HasPanelLabel {
		sink.FieldStr("panel-label", pin.PanelLabel)
	}
	if pin.HasPackageLabel {
		sink.FieldStr("package-label", pin.PackageLabel)
	}
	if pin.HasType {
		sink.FieldStr("type", wire.PinTypeEnum.Decode(pin.Type))
	}
	if pin.HasFrequency {
		sink.FieldU("frequency", pin.Frequency)
	}
	renderFrequencyRanges(sink, "frequency-supported", pin.FrequencySupported)
	if pin.HasCapabilities {
		sink.FieldStr("capabilities", strings.Join(wire.CapabilityLabels(pin.Capabilities), ","))
	}
	if pin.HasPhaseAdjustMin {
		sink.FieldS("phase-adjust-min", int64(pin.PhaseAdjustMin))
	}
	if pin.HasPhaseAdjustMax {
		sink.FieldS("phase-adjust-max", int64(pin.PhaseAdjustMax))
	}
	if pin.HasPhaseAdjust {
		sink.FieldS("phase-adjust", int64(pin.PhaseAdjust))
	}
	if pin.HasFractionalFrequencyOffset {
		sink.FieldS("fractional-frequency-offset", pin.FractionalFrequencyOffset)
	}
	if pin.HasEsyncFrequency {
		sink.FieldU("esync-frequency", pin.EsyncFrequency)
	}
	renderFrequencyRanges(sink, "esync-frequency-supported", pin.EsyncFrequencySupported)
	if pin.HasEsyncPulse {
		sink.FieldU("esync-pulse", uint64(pin.EsyncPulse))
	}
	renderParentDevices(sink, pin.ParentDevice)
	renderParentPins(sink, pin.ParentPin)
	renderReferenceSyncs(sink, pin.ReferenceSync)
	sink.CloseObject()
}

func renderFrequencyRanges(sink output.Sink, name string, ranges []wire.FrequencyRange) {
	if len(ranges) == 0 {
		return
	}
	sink.OpenArray(name)
	for _, r := range ranges {
		sink.OpenObject("")
		if r.HasMin {
			sink.FieldU("min", r.Min)
		}
		if r.HasMax {
			sink.FieldU("max", r.Max)
		}
		sink.CloseObject()
	}
	sink.CloseArray()
}

func renderParentDevices(sink output.Sink, entries []wire.ParentDevice) {
	if len(entries) == 0 {
		return
	}
	sink.OpenArray("parent-device")
	for _, e := range entries {
		sink.OpenObject("")
		sink.FieldU("parent-id", uint64(e.ParentID))
		if e.HasDirection {
			sink.FieldStr("direction", wire.PinDirectionEnum.Decode(e.Direction))
		}
		if e.HasPrio {
			sink.FieldU("prio", uint64(e.Prio))
		}
		if e.HasState {
			sink.FieldStr("state", wire.PinStateEnum.Decode(e.State))
		}
		if e.HasPhaseOffset {
			sink.FieldS("phase-offset", e.PhaseOffset)
		}
		sink.CloseObject()
	}
	sink.CloseArray()
}

func renderParentPins(sink output.Sink, entries []wire.ParentPin) {
	if len(entries) == 0 {
		return
	}
	sink.OpenArray("parent-pin")
	for _, e := range entries {
		sink.OpenObject("")
		sink.FieldU("parent-id", uint64(e.ParentID))
		if e.HasState {
			sink.FieldStr("state", wire.PinStateEnum.Decode(e.State))
		}
		sink.CloseObject()
	}
	sink.CloseArray()
}

func renderReferenceSyncs(sink output.Sink, entries []wire.ReferenceSync) {
	if len(entries) == 0 {
		return
	}
	sink.OpenArray("reference-sync")
	for _, e := range entries {
		sink.OpenObject("")
		sink.FieldU("pin-id", uint64(e.PinID))
		if e.HasState {
			sink.FieldStr("state", wire.PinStateEnum.Decode(e.State))
		}
		sink.CloseObject()
	}
	sink.CloseArray()
}

// formatTemp renders a millidegree reading as "D.DDD C", matching the
// legacy tool's text display.
func formatTemp(milliC int32) string {
	whole := milliC / 1000
	frac := milliC % 1000
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%03d C", whole, frac)
}

func deviceHeader(id uint32) string {
	return fmt.Sprintf("device id %d", id)
}

func pinHeader(id uint32) string {
	return fmt.Sprintf("pin id %d", id)
}
