package wire

import "testing"

func TestDecodeDeviceAggregatesModeSupportedInWireOrder(t *testing.T) {
	b := NewBuilder()
	b.PutU32(DeviceID, 3)
	b.PutU32(DeviceModeSupported, 2) // automatic
	b.PutU32(DeviceModeSupported, 1) // manual
	b.PutU32(DeviceModeSupported, 3) // holdover
	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	d, err := DecodeDevice(payload)
	if err != nil {
		t.Fatalf("decode device: %v", err)
	}
	want := []uint32{2, 1, 3}
	if len(d.ModeSupported) != len(want) {
		t.Fatalf("got %v, want %v", d.ModeSupported, want)
	}
	for i := range want {
		if d.ModeSupported[i] != want[i] {
			t.Fatalf("got %v, want %v", d.ModeSupported, want)
		}
	}
}

func TestDecodeDeviceMissingIDIsSoftError(t *testing.T) {
	b := NewBuilder()
	b.PutStr(DeviceModuleName, "dpll0")
	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	_, err = DecodeDevice(payload)
	if err != ErrMissingID {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestDecodePinExpandsParentDeviceNests(t *testing.T) {
	b := NewBuilder()
	b.PutU32(PinID, 3)

	h0 := b.OpenNested(PinParentDevice)
	b.PutU32(PinParentID, 0)
	b.PutU32(PinDirection, 1) // input
	b.PutU32(PinPrio, 10)
	b.PutU32(PinState, 1) // connected
	b.CloseNested(h0)

	h1 := b.OpenNested(PinParentDevice)
	b.PutU32(PinParentID, 1)
	b.PutU32(PinDirection, 2) // output
	b.CloseNested(h1)

	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	p, err := DecodePin(payload)
	if err != nil {
		t.Fatalf("decode pin: %v", err)
	}
	if len(p.ParentDevice) != 2 {
		t.Fatalf("expected 2 parent-device entries, got %d", len(p.ParentDevice))
	}
	if p.ParentDevice[0].ParentID != 0 || p.ParentDevice[0].Direction != 1 || p.ParentDevice[0].Prio != 10 || p.ParentDevice[0].State != 1 {
		t.Fatalf("unexpected first entry: %+v", p.ParentDevice[0])
	}
	if p.ParentDevice[1].ParentID != 1 || p.ParentDevice[1].Direction != 2 || p.ParentDevice[1].HasPrio {
		t.Fatalf("unexpected second entry: %+v", p.ParentDevice[1])
	}
}

func TestDecodePinFrequencySupportedMultipleRanges(t *testing.T) {
	b := NewBuilder()
	b.PutU32(PinID, 7)

	h0 := b.OpenNested(PinFrequencySupported)
	b.PutU64(PinFrequencyMin, 1000)
	b.PutU64(PinFrequencyMax, 2000)
	b.CloseNested(h0)

	h1 := b.OpenNested(PinFrequencySupported)
	b.PutU64(PinFrequencyMin, 5000)
	b.PutU64(PinFrequencyMax, 6000)
	b.CloseNested(h1)

	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	p, err := DecodePin(payload)
	if err != nil {
		t.Fatalf("decode pin: %v", err)
	}
	if len(p.FrequencySupported) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(p.FrequencySupported))
	}
	if p.FrequencySupported[0].Min != 1000 || p.FrequencySupported[0].Max != 2000 {
		t.Fatalf("unexpected first range: %+v", p.FrequencySupported[0])
	}
	if p.FrequencySupported[1].Min != 5000 || p.FrequencySupported[1].Max != 6000 {
		t.Fatalf("unexpected second range: %+v", p.FrequencySupported[1])
	}
}

func TestDecodePinMissingIDIsSoftError(t *testing.T) {
	b := NewBuilder()
	b.PutStr(PinBoardLabel, "left")
	payload, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	_, err = DecodePin(payload)
	if err != ErrMissingID {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

// TestMultiAttributeFaithfulness covers testable property #2: for any
// reply containing N top-level attributes of a multi-declared wire id,
// the resulting sequence has exactly N entries in wire order.
func TestMultiAttributeFaithfulness(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		b := NewBuilder()
		b.PutU32(DeviceID, 1)
		for i := 0; i < n; i++ {
			b.PutU32(DeviceClockQualityLevel, uint32(i+1))
		}
		payload, err := b.Finish()
		if err != nil {
			t.Fatalf("finish: %v", err)
		}
		d, err := DecodeDevice(payload)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(d.ClockQualityLevel) != n {
			t.Fatalf("n=%d: got %d entries", n, len(d.ClockQualityLevel))
		}
		for i := 0; i < n; i++ {
			if d.ClockQualityLevel[i] != uint32(i+1) {
				t.Fatalf("n=%d: order mismatch: %v", n, d.ClockQualityLevel)
			}
		}
	}
}
