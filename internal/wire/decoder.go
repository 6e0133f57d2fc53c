package wire

import "errors"

// ErrMissingID is returned when a Device or Pin reply carries no id
// attribute. Inside a dump it is a soft decode error: the caller
// discards the message but does not abort the dump. Single-reply
// callers treat it as a hard failure.
var ErrMissingID = errors.New("wire: reply missing id attribute")

// Table is the result of decoding one message's top-level attributes:
// single-cardinality attributes indexed by wire id, and multi-cardinality
// attributes collected in wire order.
type Table struct {
	Single map[uint16]Attr
	Multi  map[uint16][]Attr
}

// DecodeTable runs the count pass then the collect pass described in
// spec §4.4/§4.5 over one message's flat attribute list: it first counts
// every multi-cardinality attribute so each sequence is allocated once,
// then walks again to populate the single-attribute table and append
// multi-attribute bodies in wire order.
func DecodeTable(attrs []Attr, schema []FieldSpec) Table {
	multiIDs := make(map[uint16]bool, 4)
	for _, id := range MultiIDs(schema) {
		multiIDs[id] = true
	}

	counts := make(map[uint16]int, len(multiIDs))
	for _, a := range attrs {
		if multiIDs[a.Type] {
			counts[a.Type]++
		}
	}

	t := Table{
		Single: make(map[uint16]Attr, len(attrs)),
		Multi:  make(map[uint16][]Attr, len(counts)),
	}
	for id, n := range counts {
		t.Multi[id] = make([]Attr, 0, n)
	}

	for _, a := range attrs {
		if multiIDs[a.Type] {
			t.Multi[a.Type] = append(t.Multi[a.Type], a)
			continue
		}
		t.Single[a.Type] = a
	}
	return t
}

// DecodeDevice decodes one DEVICE_GET/DEVICE_ID_GET/notification reply
// payload into a Device. It returns ErrMissingID if the reply carries no
// device id; the caller decides whether that is a soft (dump) or hard
// (single-reply) failure.
func DecodeDevice(payload []byte) (*Device, error) {
	attrs, err := DecodeAttrs(payload)
	if err != nil {
		return nil, err
	}
	t := DecodeTable(attrs, DeviceSchema)

	idAttr, ok := t.Single[DeviceID]
	if !ok {
		return nil, ErrMissingID
	}
	id, err := U32(idAttr.Value)
	if err != nil {
		return nil, err
	}

	d := &Device{ID: id}
	if a, ok := t.Single[DeviceModuleName]; ok {
		d.ModuleName = Str(a.Value)
		d.HasModuleName = true
	}
	if a, ok := t.Single[DeviceClockID]; ok {
		if v, err := U64(a.Value); err == nil {
			d.ClockID = v
			d.HasClockID = true
		}
	}
	if a, ok := t.Single[DeviceMode]; ok {
		if v, err := U32(a.Value); err == nil {
			d.Mode = v
			d.HasMode = true
		}
	}
	for _, a := range t.Multi[DeviceModeSupported] {
		if v, err := U32(a.Value); err == nil {
			d.ModeSupported = append(d.ModeSupported, v)
		}
	}
	if a, ok := t.Single[DeviceLockStatus]; ok {
		if v, err := U32(a.Value); err == nil {
			d.LockStatus = v
			d.HasLockStatus = true
		}
	}
	if a, ok := t.Single[DeviceLockStatusError]; ok {
		if v, err := U32(a.Value); err == nil {
			d.LockStatusError = v
			d.HasLockStatusError = true
		}
	}
	for _, a := range t.Multi[DeviceClockQualityLevel] {
		if v, err := U32(a.Value); err == nil {
			d.ClockQualityLevel = append(d.ClockQualityLevel, v)
		}
	}
	if a, ok := t.Single[DeviceTemp]; ok {
		if v, err := S32(a.Value); err == nil {
			d.Temp = v
			d.HasTemp = true
		}
	}
	if a, ok := t.Single[DeviceType]; ok {
		if v, err := U32(a.Value); err == nil {
			d.Type = v
			d.HasType = true
		}
	}
	if a, ok := t.Single[DevicePhaseOffsetMonitor]; ok {
		if v, err := U32(a.Value); err == nil {
			d.PhaseOffsetMonitor = v
			d.HasPhaseOffsetMonitor = true
		}
	}
	if a, ok := t.Single[DevicePhaseOffsetAvgFactor]; ok {
		if v, err := U32(a.Value); err == nil {
			d.PhaseOffsetAvgFactor = v
			d.HasPhaseOffsetAvgFactor = true
		}
	}
	return d, nil
}

// DecodePin decodes one PIN_GET/PIN_ID_GET/notification reply payload
// into a Pin. It returns ErrMissingID if the reply carries no pin id.
func DecodePin(payload []byte) (*Pin, error) {
	attrs, err := DecodeAttrs(payload)
	if err != nil {
		return nil, err
	}
	t := DecodeTable(attrs, PinSchema)

	idAttr, ok := t.Single[PinID]
	if !ok {
		return nil, ErrMissingID
	}
	id, err := U32(idAttr.Value)
	if err != nil {
		return nil, err
	}

	p := &Pin{ID: id}
	if a, ok := t.Single[PinModuleName]; ok {
		p.ModuleName = Str(a.Value)
		p.HasModuleName = true
	}
	if a, ok := t.Single[PinClockID]; ok {
		if v, err := U64(a.Value); err == nil {
			p.ClockID = v
			p.HasClockID = true
		}
	}
	if a, ok := t.Single[PinBoardLabel]; ok {
		p.BoardLabel = Str(a.Value)
		p.HasBoardLabel = true
	}
	if a, ok := t.Single[PinPanelLabel]; ok {
		p.PanelLabel = Str(a.Value)
		p.HasPanelLabel = true
	}
	if a, ok := t.Single[PinPackageLabel]; ok {
		p.PackageLabel = Str(a.Value)
		p.HasPackageLabel = true
	}
	if a, ok := t.Single[PinType]; ok {
		if v, err := U32(a.Value); err == nil {
			p.Type = v
			p.HasType = true
		}
	}
	if a, ok := t.Single[PinFrequency]; ok {
		if v, err := U64(a.Value); err == nil {
			p.Frequency = v
			p.HasFrequency = true
		}
	}
	for _, a := range t.Multi[PinFrequencySupported] {
		fr, err := ParseFrequencyRange(a.Value)
		if err == nil {
			p.FrequencySupported = append(p.FrequencySupported, fr)
		}
	}
	if a, ok := t.Single[PinCapabilities]; ok {
		if v, err := U32(a.Value); err == nil {
			p.Capabilities = v
			p.HasCapabilities = true
		}
	}
	if a, ok := t.Single[PinPhaseAdjustMin]; ok {
		if v, err := S32(a.Value); err == nil {
			p.PhaseAdjustMin = v
			p.HasPhaseAdjustMin = true
		}
	}
	if a, ok := t.Single[PinPhaseAdjustMax]; ok {
		if v, err := S32(a.Value); err == nil {
			p.PhaseAdjustMax = v
			p.HasPhaseAdjustMax = true
		}
	}
	if a, ok := t.Single[PinPhaseAdjust]; ok {
		if v, err := S32(a.Value); err == nil {
			p.PhaseAdjust = v
			p.HasPhaseAdjust = true
		}
	}
	if a, ok := t.Single[PinFractionalFrequencyOffset]; ok {
		if v, ok := SignedAny(a.Value); ok {
			p.FractionalFrequencyOffset = v
			p.HasFractionalFrequencyOffset = true
		}
	}
	if a, ok := t.Single[PinEsyncFrequency]; ok {
		if v, err := U64(a.Value); err == nil {
			p.EsyncFrequency = v
			p.HasEsyncFrequency = true
		}
	}
	for _, a := range t.Multi[PinEsyncFrequencySupported] {
		fr, err := parseFrequencyRangeWith(a.Value, EsyncFrequencyRangeSchema)
		if err == nil {
			p.EsyncFrequencySupported = append(p.EsyncFrequencySupported, fr)
		}
	}
	if a, ok := t.Single[PinEsyncPulse]; ok {
		if v, err := U32(a.Value); err == nil {
			p.EsyncPulse = v
			p.HasEsyncPulse = true
		}
	}
	for _, a := range t.Multi[PinParentDevice] {
		pd, err := ParseParentDevice(a.Value)
		if err == nil {
			p.ParentDevice = append(p.ParentDevice, pd)
		}
	}
	for _, a := range t.Multi[PinParentPin] {
		pp, err := ParseParentPin(a.Value)
		if err == nil {
			p.ParentPin = append(p.ParentPin, pp)
		}
	}
	for _, a := range t.Multi[PinReferenceSync] {
		rs, err := ParseReferenceSync(a.Value)
		if err == nil {
			p.ReferenceSync = append(p.ReferenceSync, rs)
		}
	}
	return p, nil
}
