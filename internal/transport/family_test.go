package transport

import (
	"testing"

	"github.com/orosp/iproute2/internal/wire"
)

func TestParseFamilyInfoExtractsIDAndMonitorGroup(t *testing.T) {
	group, err := wire.EncodeAttrs([]wire.Attr{
		wire.NewStr(wire.CtrlAttrMcastGrpName, wire.MonitorGroup),
		wire.NewU32(wire.CtrlAttrMcastGrpID, 9),
	})
	if err != nil {
		t.Fatalf("encode group: %v", err)
	}
	groups, err := wire.EncodeAttrs([]wire.Attr{wire.NewNested(1, group)})
	if err != nil {
		t.Fatalf("encode groups list: %v", err)
	}

	payload, err := wire.EncodeAttrs([]wire.Attr{
		{Type: wire.CtrlAttrFamilyID, Value: []byte{0x2a, 0x00}}, // u16 width on the wire
		wire.NewNested(wire.CtrlAttrMcastGroups, groups),
	})
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	info, ok, err := parseFamilyInfo(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !ok {
		t.Fatalf("expected family info present")
	}
	if info.FamilyID != 0x2a {
		t.Fatalf("unexpected family id: %d", info.FamilyID)
	}
	if info.MonitorGroup != 9 {
		t.Fatalf("unexpected monitor group id: %d", info.MonitorGroup)
	}
}

func TestParseFamilyInfoAbsentWithoutFamilyID(t *testing.T) {
	payload, err := wire.EncodeAttrs([]wire.Attr{wire.NewStr(wire.CtrlAttrFamilyName, "dpll")})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, ok, err := parseFamilyInfo(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ok {
		t.Fatalf("expected family info absent without a family id attribute")
	}
}
