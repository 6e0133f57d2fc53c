package wire

import "testing"

func TestBuilderPreservesCallOrder(t *testing.T) {
	b := NewBuilder()
	b.PutU32(PinID, 5)
	b.PutU64(PinFrequency, 10_000_000)
	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	attrs, err := DecodeAttrs(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(attrs) != 2 || attrs[0].Type != PinID || attrs[1].Type != PinFrequency {
		t.Fatalf("call order not preserved: %+v", attrs)
	}
	v, err := U64(attrs[1].Value)
	if err != nil || v != 10_000_000 {
		t.Fatalf("frequency value mismatch: %v %v", v, err)
	}
}

func TestBuilderRejectsMismatchedClose(t *testing.T) {
	b := NewBuilder()
	h0 := b.OpenNested(PinParentDevice)
	b.PutU32(PinParentID, 0)
	_ = b.OpenNested(PinParentDevice)
	// Closing the outer handle while the inner block is still open must fail.
	b.CloseNested(h0)
	if _, err := b.Finish(); err == nil {
		t.Fatalf("expected error for out-of-order close")
	}
}

func TestBuilderRejectsUnbalancedNest(t *testing.T) {
	b := NewBuilder()
	b.OpenNested(PinParentDevice)
	if _, err := b.Finish(); err == nil {
		t.Fatalf("expected error for unclosed nest")
	}
}

// TestNestedParentDeviceScenario covers spec scenario (c): two
// parent-device blocks, second omitting prio/state.
func TestNestedParentDeviceScenario(t *testing.T) {
	b := NewBuilder()
	b.PutU32(PinID, 3)

	h0 := b.OpenNested(PinParentDevice)
	b.PutU32(PinParentID, 0)
	direction, err := PinDirectionEnum.Encode("input")
	if err != nil {
		t.Fatalf("encode direction: %v", err)
	}
	b.PutU32(PinDirection, direction)
	b.PutU32(PinPrio, 10)
	state, err := PinStateEnum.Encode("connected")
	if err != nil {
		t.Fatalf("encode state: %v", err)
	}
	b.PutU32(PinState, state)
	b.CloseNested(h0)

	h1 := b.OpenNested(PinParentDevice)
	b.PutU32(PinParentID, 1)
	direction2, err := PinDirectionEnum.Encode("output")
	if err != nil {
		t.Fatalf("encode direction: %v", err)
	}
	b.PutU32(PinDirection, direction2)
	b.CloseNested(h1)

	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	attrs, err := DecodeAttrs(payload)
	if err != nil {
		t.Fatalf("decode top level: %v", err)
	}
	var nests []Attr
	for _, a := range attrs {
		if a.Type == PinParentDevice {
			nests = append(nests, a)
		}
	}
	if len(nests) != 2 {
		t.Fatalf("expected exactly 2 parent-device attributes, got %d", len(nests))
	}

	p, err := DecodePin(payload)
	if err != nil {
		t.Fatalf("decode pin: %v", err)
	}
	if len(p.ParentDevice) != 2 {
		t.Fatalf("expected 2 decoded entries, got %d", len(p.ParentDevice))
	}
	first := p.ParentDevice[0]
	if first.ParentID != 0 || PinDirectionEnum.Decode(first.Direction) != "input" ||
		first.Prio != 10 || PinStateEnum.Decode(first.State) != "connected" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	second := p.ParentDevice[1]
	if second.ParentID != 1 || PinDirectionEnum.Decode(second.Direction) != "output" || second.HasPrio || second.HasState {
		t.Fatalf("unexpected second entry: %+v", second)
	}
}
