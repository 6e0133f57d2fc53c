package wire

// ParseFrequencyRange decodes a nested frequency-supported entry body
// into a {min,max} sub-record. Missing fields are simply absent; this is
// never a hard error, as the supported-ranges list is advisory.
func ParseFrequencyRange(body []byte) (FrequencyRange, error) {
	return parseFrequencyRangeWith(body, FrequencyRangeSchema)
}

func parseFrequencyRangeWith(body []byte, schema []FieldSpec) (FrequencyRange, error) {
	attrs, err := DecodeAttrs(body)
	if err != nil {
		return FrequencyRange{}, err
	}
	minSpec, _ := FindByName(schema, "min")
	maxSpec, _ := FindByName(schema, "max")

	var fr FrequencyRange
	if a, ok := GetAttr(attrs, minSpec.ID); ok {
		if v, err := U64(a.Value); err == nil {
			fr.Min = v
			fr.HasMin = true
		}
	}
	if a, ok := GetAttr(attrs, maxSpec.ID); ok {
		if v, err := U64(a.Value); err == nil {
			fr.Max = v
			fr.HasMax = true
		}
	}
	return fr, nil
}

// ParseParentDevice decodes one nested parent-device entry body.
func ParseParentDevice(body []byte) (ParentDevice, error) {
	attrs, err := DecodeAttrs(body)
	if err != nil {
		return ParentDevice{}, err
	}
	var pd ParentDevice
	if a, ok := GetAttr(attrs, PinParentID); ok {
		if v, err := U32(a.Value); err == nil {
			pd.ParentID = v
		}
	}
	if a, ok := GetAttr(attrs, PinDirection); ok {
		if v, err := U32(a.Value); err == nil {
			pd.Direction = v
			pd.HasDirection = true
		}
	}
	if a, ok := GetAttr(attrs, PinPrio); ok {
		if v, err := U32(a.Value); err == nil {
			pd.Prio = v
			pd.HasPrio = true
		}
	}
	if a, ok := GetAttr(attrs, PinState); ok {
		if v, err := U32(a.Value); err == nil {
			pd.State = v
			pd.HasState = true
		}
	}
	if a, ok := GetAttr(attrs, PinPhaseOffset); ok {
		// phase_offset is a signed field that may arrive as 4 or 8
		// bytes on the wire; any other width leaves it absent.
		if v, ok := SignedAny(a.Value); ok {
			pd.PhaseOffset = v
			pd.HasPhaseOffset = true
		}
	}
	return pd, nil
}

// ParseParentPin decodes one nested parent-pin entry body.
func ParseParentPin(body []byte) (ParentPin, error) {
	attrs, err := DecodeAttrs(body)
	if err != nil {
		return ParentPin{}, err
	}
	var pp ParentPin
	if a, ok := GetAttr(attrs, PinParentID); ok {
		if v, err := U32(a.Value); err == nil {
			pp.ParentID = v
		}
	}
	if a, ok := GetAttr(attrs, PinState); ok {
		if v, err := U32(a.Value); err == nil {
			pp.State = v
			pp.HasState = true
		}
	}
	return pp, nil
}

// ParseReferenceSync decodes one nested reference-sync entry body.
func ParseReferenceSync(body []byte) (ReferenceSync, error) {
	attrs, err := DecodeAttrs(body)
	if err != nil {
		return ReferenceSync{}, err
	}
	var rs ReferenceSync
	if a, ok := GetAttr(attrs, PinID); ok {
		if v, err := U32(a.Value); err == nil {
			rs.PinID = v
		}
	}
	if a, ok := GetAttr(attrs, PinState); ok {
		if v, err := U32(a.Value); err == nil {
			rs.State = v
			rs.HasState = true
		}
	}
	return rs, nil
}
